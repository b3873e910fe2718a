// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"time"

	"github.com/MKhiriev/go-art-vault/internal/adapter"
	"github.com/MKhiriev/go-art-vault/internal/service"
	"github.com/MKhiriev/go-art-vault/internal/utils"
	"github.com/MKhiriev/go-art-vault/internal/vault"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTimeout = 2 * time.Second

// cmdConnect connects the wallet and resolves the verified name of the
// account.
func cmdConnect(ctx context.Context, wallet adapter.Wallet, names service.ClientAddressService) tea.Cmd {
	return func() tea.Msg {
		acc, err := wallet.Connect(ctx)
		if err != nil {
			return connectedMsg{err: err}
		}
		if name := names.Resolve(ctx, acc.Address); !utils.SameAddress(name, acc.Address) {
			acc.Name = name
		}
		return connectedMsg{account: acc}
	}
}

func cmdRunUpload(ctx context.Context, task *vault.UploadTask) tea.Cmd {
	return func() tea.Msg {
		return uploadDoneMsg{result: task.Run(ctx)}
	}
}

func cmdLoadListing(ctx context.Context, task *vault.ListingTask) tea.Cmd {
	return func() tea.Msg {
		return listingLoadedMsg{result: task.Run(ctx)}
	}
}

// cmdResolveNames resolves display names of addresses. Unresolved addresses
// map to themselves.
func cmdResolveNames(ctx context.Context, names service.ClientAddressService, addresses []string) tea.Cmd {
	if len(addresses) == 0 {
		return nil
	}
	return func() tea.Msg {
		out := make(map[string]string, len(addresses))
		for _, a := range addresses {
			out[a] = names.Resolve(ctx, a)
		}
		return namesResolvedMsg{names: out}
	}
}

func cmdCopyToClipboard(text, what string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return failedMsg{err: err}
		}
		return copiedMsg{what: what}
	}
}

func cmdPasteFromClipboard() tea.Cmd {
	return func() tea.Msg {
		text, err := clipboard.ReadAll()
		return pastedMsg{text: text, err: err}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
