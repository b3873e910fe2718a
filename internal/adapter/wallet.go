// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-art-vault/internal/config"
	"github.com/MKhiriev/go-art-vault/internal/logger"
	"github.com/MKhiriev/go-art-vault/models"
	"github.com/ethereum/go-ethereum/common"
)

type staticWallet struct {
	address string

	logger *logger.Logger
}

// NewStaticWallet returns a [Wallet] that connects as the configured
// appCfg.WalletAddress. The name of the account is left empty; resolving it
// is the caller's job.
func NewStaticWallet(appCfg config.ClientApp, logger *logger.Logger) Wallet {
	return &staticWallet{address: strings.TrimSpace(appCfg.WalletAddress), logger: logger}
}

// Connect implements [Wallet].
func (w *staticWallet) Connect(ctx context.Context) (models.Account, error) {
	if err := ctx.Err(); err != nil {
		return models.Account{}, err
	}

	if w.address == "" {
		return models.Account{}, fmt.Errorf("%w: no wallet address configured", ErrWalletUnavailable)
	}
	if !common.IsHexAddress(w.address) {
		w.logger.Error().
			Str("func", "staticWallet.Connect").
			Str("address", w.address).
			Msg("configured wallet address is not a hex address")
		return models.Account{}, fmt.Errorf("%w: malformed address %q", ErrWalletUnavailable, w.address)
	}

	return models.Account{Address: common.HexToAddress(w.address).Hex()}, nil
}
