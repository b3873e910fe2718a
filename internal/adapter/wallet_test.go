// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-art-vault/internal/config"
	"github.com/MKhiriev/go-art-vault/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticWallet_Connect(t *testing.T) {
	w := NewStaticWallet(config.ClientApp{WalletAddress: "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed"}, logger.Nop())

	acc, err := w.Connect(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", acc.Address)
	assert.Empty(t, acc.Name)
}

func TestStaticWallet_NoAddress(t *testing.T) {
	w := NewStaticWallet(config.ClientApp{}, logger.Nop())

	_, err := w.Connect(context.Background())

	assert.ErrorIs(t, err, ErrWalletUnavailable)
}

func TestStaticWallet_Malformed(t *testing.T) {
	w := NewStaticWallet(config.ClientApp{WalletAddress: "alice.eth"}, logger.Nop())

	_, err := w.Connect(context.Background())

	assert.ErrorIs(t, err, ErrWalletUnavailable)
}

func TestStaticWallet_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := NewStaticWallet(config.ClientApp{WalletAddress: "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"}, logger.Nop())
	_, err := w.Connect(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}
