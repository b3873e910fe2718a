// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Theme names the colour scheme the view should render with.
type Theme string

const (
	ThemeDefault Theme = "default"
	ThemeBlue    Theme = "blue"
)

// VaultSession is a read-only snapshot of a mounted vault view.
//
// When Secured is true Root is set and Items come from the remote listing;
// otherwise Items are the staged local items. Whitelist entries are unique.
type VaultSession struct {
	Items          []VaultItem
	Secured        bool
	Root           ContentID
	Preview        VaultItem
	Whitelist      []string
	Phase          ModalPhase
	PendingAddress string
	Error          string

	// Owner is the address that secured the vault, empty while unknown.
	Owner string

	Theme Theme
}

// Account is the connected wallet identity.
type Account struct {
	Address string
	// Name is the verified reverse-resolved name, empty when none exists.
	Name string
}

// DisplayName returns the resolved name, or the address when no name is
// known, or "unavailable" when no account is connected.
func (a Account) DisplayName() string {
	switch {
	case a.Name != "":
		return a.Name
	case a.Address != "":
		return a.Address
	default:
		return "unavailable"
	}
}

// Connected reports whether an address is available.
func (a Account) Connected() bool {
	return a.Address != ""
}
