// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// IsHexAddress reports whether s is a 20-byte hex account address, with or
// without the 0x prefix.
func IsHexAddress(s string) bool {
	return common.IsHexAddress(strings.TrimSpace(s))
}

// NormalizeAddress returns the canonical form of an account identifier.
// Hex addresses are returned in EIP-55 checksum form; anything else (a name
// such as "alice.eth") is trimmed and lower-cased.
func NormalizeAddress(s string) string {
	s = strings.TrimSpace(s)
	if common.IsHexAddress(s) {
		return common.HexToAddress(s).Hex()
	}
	return strings.ToLower(s)
}

// SameAddress reports whether a and b identify the same account.
func SameAddress(a, b string) bool {
	na, nb := NormalizeAddress(a), NormalizeAddress(b)
	return na != "" && na == nb
}

// FormatAddress shortens raw for display. Names containing a dot are
// returned unchanged, values longer than 16 characters become the first 9
// characters, "..." and the last 4.
func FormatAddress(raw string) string {
	if strings.Contains(raw, ".") {
		return raw
	}
	if len(raw) > 16 {
		return raw[:9] + "..." + raw[len(raw)-4:]
	}
	return raw
}
