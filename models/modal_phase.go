// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ModalPhase is the transient UI focus of a vault view. Exactly one phase is
// active at a time; PhaseClosed is both the initial and the resting phase.
type ModalPhase int

const (
	PhaseClosed ModalPhase = iota
	PhaseSubmit
	PhaseSuccess
	PhaseShare
	PhaseShared
	PhaseManageAccess
	PhaseProcessing
	PhaseError
	PhaseSelectPreview
	PhaseConfirmPreview

	// PhaseCount is the number of phases. Tables indexed by phase are sized
	// with it.
	PhaseCount
)

var phaseNames = [PhaseCount]string{
	PhaseClosed:         "closed",
	PhaseSubmit:         "submit",
	PhaseSuccess:        "success",
	PhaseShare:          "share",
	PhaseShared:         "shared",
	PhaseManageAccess:   "manage_access",
	PhaseProcessing:     "processing",
	PhaseError:          "error",
	PhaseSelectPreview:  "select_preview",
	PhaseConfirmPreview: "confirm_preview",
}

// String returns the wire name of the phase.
func (p ModalPhase) String() string {
	if p < 0 || p >= PhaseCount {
		return "unknown"
	}
	return phaseNames[p]
}

// Valid reports whether p is one of the declared phases.
func (p ModalPhase) Valid() bool {
	return p >= 0 && p < PhaseCount
}
