// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const helloRoot = "bafkreihdwdcefgh4dqkjv67uzcmw7ojee6xedzdetojuzjevtenxquvyku"

func TestParseContentID(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    ContentID
		wantErr bool
	}{
		{name: "canonical v1", raw: helloRoot, want: helloRoot},
		{name: "surrounding spaces", raw: "  " + helloRoot + "\n", want: helloRoot},
		{name: "upper-case base32 is canonicalised", raw: strings.ToUpper("b" + helloRoot[1:]), want: helloRoot},
		{name: "empty", raw: "   ", wantErr: true},
		{name: "garbage", raw: "not-a-cid", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseContentID(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidContentID)
				assert.True(t, got.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestModalPhase_String(t *testing.T) {
	for p := PhaseClosed; p < PhaseCount; p++ {
		assert.True(t, p.Valid())
		assert.NotEqual(t, "unknown", p.String(), "phase %d has no name", int(p))
	}

	assert.Equal(t, "manage_access", PhaseManageAccess.String())
	assert.Equal(t, "confirm_preview", PhaseConfirmPreview.String())
	assert.Equal(t, "unknown", PhaseCount.String())
	assert.False(t, ModalPhase(-1).Valid())
}

func TestAccount_DisplayName(t *testing.T) {
	assert.Equal(t, "alice.eth", Account{Address: "0xabc", Name: "alice.eth"}.DisplayName())
	assert.Equal(t, "0xabc", Account{Address: "0xabc"}.DisplayName())
	assert.Equal(t, "unavailable", Account{}.DisplayName())
	assert.False(t, Account{}.Connected())
}

func TestAddressCacheEntry_JSON(t *testing.T) {
	entry := AddressCacheEntry{
		Address:      "0xabc",
		ResolvedName: "alice.eth",
		ExpiresAt:    time.UnixMilli(1_700_000_000_000),
	}

	b, err := json.Marshal(entry)
	require.NoError(t, err)
	assert.JSONEq(t, `{"timestamp":1700000000000,"name":"alice.eth"}`, string(b))

	var decoded AddressCacheEntry
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, "alice.eth", decoded.ResolvedName)
	assert.True(t, decoded.ExpiresAt.Equal(entry.ExpiresAt))
	// адрес не хранится в значении
	assert.Empty(t, decoded.Address)

	assert.True(t, entry.Fresh(entry.ExpiresAt.Add(-time.Millisecond)))
	assert.False(t, entry.Fresh(entry.ExpiresAt))
}

func TestVaultListing_Items(t *testing.T) {
	l := VaultListing{Root: helloRoot, Keys: []string{"a.png", "b.png"}}

	items := l.Items()

	require.Len(t, items, 2)
	remote, ok := items[1].(RemoteItem)
	require.True(t, ok)
	assert.Equal(t, "b.png", remote.Key())
	assert.Equal(t, helloRoot+"/b.png", remote.Path())
}

func TestVaultItem_Kinds(t *testing.T) {
	assert.True(t, IsPlaceholder(PlaceholderItem{}))
	assert.False(t, IsPlaceholder(LocalItem{Name: "a.png"}))
	assert.False(t, IsPlaceholder(nil))

	assert.True(t, IsReservedKey(ReservedOwnerKey))
	assert.True(t, IsReservedKey(ReservedPreviewKey))
	assert.False(t, IsReservedKey("a.png"))

	item := NewLocalFileItem("/tmp/art/a.png")
	assert.Equal(t, "a.png", item.Key())

	rc, err := BytesBlob("data").Open()
	require.NoError(t, err)
	b, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "data", string(b))
}

func TestAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("1.0.0", "", "abc123")

	assert.Equal(t, "1.0.0", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, []string{
		"Build version: 1.0.0",
		"Build date: N/A",
		"Build commit: abc123",
	}, info.Lines())
}
