// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-art-vault/internal/adapter"
	"github.com/MKhiriev/go-art-vault/internal/config"
	"github.com/MKhiriev/go-art-vault/internal/logger"
	"github.com/MKhiriev/go-art-vault/internal/mock"
	"github.com/MKhiriev/go-art-vault/internal/service"
	"github.com/MKhiriev/go-art-vault/internal/vault"
	"github.com/MKhiriev/go-art-vault/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	aliceAddr = "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"
	bobAddr   = "0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359"
)

// stubNames resolves only the names it knows.
type stubNames struct {
	names map[string]string
}

func (s stubNames) Resolve(_ context.Context, address string) string {
	if n, ok := s.names[address]; ok {
		return n
	}
	return address
}

func (stubNames) PurgeExpired(context.Context) (int64, error) { return 0, nil }

type testDeps struct {
	uploader *mock.MockUploader
	records  *mock.MockRecordStore
	lister   *mock.MockLister
	storage  *mock.MockStorageAdapter
	wallet   *mock.MockWallet
}

func newTestModel(t *testing.T, openRoot models.ContentID) (appModel, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	d := testDeps{
		uploader: mock.NewMockUploader(ctrl),
		records:  mock.NewMockRecordStore(ctrl),
		lister:   mock.NewMockLister(ctrl),
		storage:  mock.NewMockStorageAdapter(ctrl),
		wallet:   mock.NewMockWallet(ctrl),
	}
	services := &service.ClientServices{
		UploadService:    d.uploader,
		AddressService:   stubNames{names: map[string]string{aliceAddr: "alice.eth"}},
		WhitelistService: d.records,
		ListingService:   d.lister,
	}

	m := newAppModel(context.Background(),
		appDeps{services: services, storage: d.storage, wallet: d.wallet},
		config.ClientApp{ShareHost: "vault.example", Columns: 3},
		models.NewAppBuildInfo("1.0.0", "2026-10-01", "abc123"),
		openRoot, logger.Nop())
	m.width, m.height = 100, 40
	return m, d
}

func update(t *testing.T, m appModel, msg tea.Msg) (appModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	am, ok := next.(appModel)
	require.True(t, ok)
	return am, cmd
}

func press(t *testing.T, m appModel, k string) appModel {
	t.Helper()
	var msg tea.KeyMsg
	switch k {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	m, _ = update(t, m, msg)
	return m
}

func writeArtwork(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("pixels"), 0o600))
	return path
}

// ── Mounting ────────────────────────────────────────────────────────────────

func TestAppModel_ConnectFailureMountsFreshVault(t *testing.T) {
	m, _ := newTestModel(t, "")
	assert.Contains(t, m.View(), "Connecting wallet")

	m, cmd := update(t, m, connectedMsg{err: adapter.ErrWalletUnavailable})

	assert.NotNil(t, cmd)
	require.NotNil(t, m.workflow)
	assert.False(t, m.workflow.Session().Secured)
	assert.Equal(t, "Wallet unavailable", m.status)

	view := m.View()
	assert.Contains(t, view, "Press a to add files")
	assert.Contains(t, view, "unavailable")
}

func TestAppModel_RestoreRedirectsToRecordedRoot(t *testing.T) {
	m, d := newTestModel(t, "")

	// первый Load перенаправляет, второй гидрирует whitelist уже адресной вью
	d.records.EXPECT().
		Load(gomock.Any(), aliceAddr).
		Return(models.UserVaultRecord{Address: aliceAddr, Root: testRoot, Whitelist: []string{bobAddr}}, true, nil).
		Times(2)

	m, _ = update(t, m, connectedMsg{account: models.Account{Address: aliceAddr, Name: "alice.eth"}})

	session := m.workflow.Session()
	assert.True(t, session.Secured)
	assert.Equal(t, testRoot, session.Root)
	assert.Equal(t, []string{bobAddr}, session.Whitelist)
	assert.True(t, m.workflow.IsOwner())
	assert.Equal(t, "/vault/"+testRoot.String(), m.nav.Path())
	assert.Contains(t, m.View(), "alice.eth")
}

func TestAppModel_OpenVaultRemounts(t *testing.T) {
	m, _ := newTestModel(t, "")
	m, _ = update(t, m, connectedMsg{err: adapter.ErrWalletUnavailable})
	fresh := m.workflow

	m = press(t, m, "o")
	assert.Equal(t, inputOpenVault, m.inputMode)

	m, _ = update(t, m, pastedMsg{text: "/vault/" + testRoot.String()})
	m = press(t, m, "enter")

	assert.NotSame(t, fresh, m.workflow)
	assert.Equal(t, testRoot, m.workflow.Session().Root)
	assert.Equal(t, models.ThemeBlue, m.workflow.Theme())
}

func TestAppModel_OpenVaultInvalidLink(t *testing.T) {
	m, _ := newTestModel(t, "")
	m, _ = update(t, m, connectedMsg{err: adapter.ErrWalletUnavailable})
	fresh := m.workflow

	m = press(t, m, "o")
	m, _ = update(t, m, pastedMsg{text: "/settings"})
	m = press(t, m, "enter")

	assert.Same(t, fresh, m.workflow)
	assert.Equal(t, "This is not a vault link", m.status)
}

// ── Securing ────────────────────────────────────────────────────────────────

func TestAppModel_SecureFlow(t *testing.T) {
	m, _ := newTestModel(t, "")
	m, _ = update(t, m, connectedMsg{err: adapter.ErrWalletUnavailable})
	mounted := m.workflow

	m = press(t, m, "a")
	require.Equal(t, inputStagePath, m.inputMode)
	m, _ = update(t, m, pastedMsg{text: writeArtwork(t, "sunset.png")})
	m = press(t, m, "enter")

	assert.Equal(t, inputNone, m.inputMode)
	require.Len(t, m.workflow.Items(), 1)
	assert.True(t, m.entering["sunset.png"], "новая плитка подсвечивается")

	m = press(t, m, "enter")
	require.Equal(t, models.PhaseSelectPreview, m.workflow.Phase())
	assert.Len(t, m.grid.Placements, 2, "picker offers the placeholder tile")

	m = press(t, m, "enter")
	require.Equal(t, models.PhaseConfirmPreview, m.workflow.Phase())
	assert.Equal(t, "sunset.png", m.workflow.Session().Preview.Key())

	m = press(t, m, "enter")
	require.Equal(t, models.PhaseSubmit, m.workflow.Phase())

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(appModel)
	require.Equal(t, models.PhaseProcessing, m.workflow.Phase())
	assert.NotNil(t, cmd)
	assert.Contains(t, m.View(), "Securing vault...")

	m = press(t, m, "esc")
	assert.Equal(t, models.PhaseProcessing, m.workflow.Phase(), "processing cannot be dismissed")

	m, _ = update(t, m, uploadDoneMsg{result: vault.UploadResult{ID: 1, Root: testRoot}})

	assert.Same(t, mounted, m.workflow, "navigation to the new root keeps the view mounted")
	assert.Equal(t, models.PhaseSuccess, m.workflow.Phase())
	assert.Equal(t, testRoot, m.workflow.Session().Root)
	assert.Equal(t, "/vault/"+testRoot.String(), m.nav.Path())
	assert.Contains(t, m.View(), "https://vault.example/?v="+testRoot.String())
}

func TestAppModel_UploadFailureAndRetry(t *testing.T) {
	m, _ := newTestModel(t, "")
	m, _ = update(t, m, connectedMsg{err: adapter.ErrWalletUnavailable})
	require.NoError(t, m.workflow.Stage(models.LocalItem{Name: "a.png", Blob: models.BytesBlob("a")}))

	m = press(t, m, "enter") // select preview
	m = press(t, m, "enter") // confirm preview
	m = press(t, m, "enter") // submit
	m = press(t, m, "enter") // processing
	require.Equal(t, models.PhaseProcessing, m.workflow.Phase())

	m, _ = update(t, m, uploadDoneMsg{result: vault.UploadResult{ID: 42, Root: testRoot}})
	assert.Equal(t, models.PhaseProcessing, m.workflow.Phase(), "stale result is dropped")

	m, _ = update(t, m, uploadDoneMsg{result: vault.UploadResult{ID: 1, Err: errors.New("disk full")}})
	require.Equal(t, models.PhaseError, m.workflow.Phase())
	assert.Contains(t, m.View(), "disk full")

	m = press(t, m, "enter")
	assert.Equal(t, models.PhaseSubmit, m.workflow.Phase())
	assert.Len(t, m.workflow.Items(), 1, "staged items survive a failure")
}

func TestAppModel_SubmitWithoutItems(t *testing.T) {
	m, _ := newTestModel(t, "")
	m, _ = update(t, m, connectedMsg{err: adapter.ErrWalletUnavailable})

	m = press(t, m, "enter")

	assert.Equal(t, models.PhaseClosed, m.workflow.Phase())
	assert.Equal(t, "Add at least one file first", m.status)
}

func TestAppModel_UnstageSelected(t *testing.T) {
	m, _ := newTestModel(t, "")
	m, _ = update(t, m, connectedMsg{err: adapter.ErrWalletUnavailable})
	require.NoError(t, m.workflow.Stage(models.LocalItem{Name: "a.png", Blob: models.BytesBlob("a")}))
	require.NoError(t, m.workflow.Stage(models.LocalItem{Name: "b.png", Blob: models.BytesBlob("b")}))
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	m = press(t, m, "l")
	m = press(t, m, "d")

	items := m.workflow.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "a.png", items[0].Key())
	assert.Equal(t, 0, m.cursor)
}

// ── Sharing ─────────────────────────────────────────────────────────────────

func TestAppModel_ShareAndRevoke(t *testing.T) {
	m, d := newTestModel(t, testRoot)
	ctx := gomock.Any()

	d.records.EXPECT().
		Load(ctx, aliceAddr).
		Return(models.UserVaultRecord{Address: aliceAddr, Root: testRoot}, true, nil)
	d.records.EXPECT().
		Save(ctx, models.UserVaultRecord{Address: aliceAddr, Root: testRoot, Whitelist: []string{bobAddr}}).
		Return(nil)

	m, _ = update(t, m, connectedMsg{account: models.Account{Address: aliceAddr}})
	require.True(t, m.workflow.IsOwner())

	m = press(t, m, "enter")
	require.Equal(t, models.PhaseShare, m.workflow.Phase())

	m = press(t, m, "enter")
	assert.Equal(t, models.PhaseShare, m.workflow.Phase(), "empty address keeps the dialog open")

	m, _ = update(t, m, pastedMsg{text: "  " + bobAddr + " "})
	assert.Equal(t, bobAddr, m.workflow.Session().PendingAddress)

	m = press(t, m, "enter")
	require.Equal(t, models.PhaseShared, m.workflow.Phase())
	assert.Contains(t, m.View(), "Shared with 1 viewer")

	d.records.EXPECT().
		Save(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, record models.UserVaultRecord) error {
			assert.Empty(t, record.Whitelist)
			return nil
		})

	m = press(t, m, "m")
	require.Equal(t, models.PhaseManageAccess, m.workflow.Phase())
	assert.Contains(t, m.View(), "0xfB69160...d359")

	m = press(t, m, "d")
	assert.Equal(t, models.PhaseClosed, m.workflow.Phase(), "removing the last viewer closes the dialog")
	assert.Empty(t, m.workflow.Whitelist())
}

func TestAppModel_ViewerBids(t *testing.T) {
	m, d := newTestModel(t, testRoot)

	d.records.EXPECT().
		Load(gomock.Any(), bobAddr).
		Return(models.UserVaultRecord{}, false, nil)

	m, _ = update(t, m, connectedMsg{account: models.Account{Address: bobAddr}})
	m, _ = update(t, m, listingLoadedMsg{result: vault.ListingResult{
		ID:   1,
		Root: testRoot,
		Listing: models.VaultListing{
			Root:       testRoot,
			Keys:       []string{"a.png", "b.png"},
			Owner:      aliceAddr,
			PreviewKey: "b.png",
		},
	}})
	m, _ = update(t, m, namesResolvedMsg{names: map[string]string{aliceAddr: "alice.eth"}})

	require.False(t, m.workflow.IsOwner())
	assert.Len(t, m.grid.Placements, 2)

	view := m.View()
	assert.Contains(t, view, "[enter] Bid")
	assert.Contains(t, view, "Owner: alice.eth (0x5aAeb60...eAed)")

	m = press(t, m, "enter")
	assert.Equal(t, models.PhaseClosed, m.workflow.Phase())

	m = press(t, m, "m")
	assert.Equal(t, "Only the owner can do that", m.status)
}

// ── Overlays ────────────────────────────────────────────────────────────────

func TestAppModel_ErrorOverlay(t *testing.T) {
	m, _ := newTestModel(t, "")
	m, _ = update(t, m, connectedMsg{err: adapter.ErrWalletUnavailable})

	m, _ = update(t, m, failedMsg{err: errors.New("clipboard is gone")})
	require.NotNil(t, m.errOverlay)
	assert.Contains(t, m.View(), "clipboard is gone")

	m = press(t, m, "a")
	assert.Equal(t, inputNone, m.inputMode, "keys go to the overlay first")

	m = press(t, m, "esc")
	assert.Nil(t, m.errOverlay)
}

func TestAppModel_AboutWindow(t *testing.T) {
	m, _ := newTestModel(t, "")
	m, _ = update(t, m, connectedMsg{err: adapter.ErrWalletUnavailable})

	m = press(t, m, "v")
	view := m.View()
	assert.Contains(t, view, "Build version: 1.0.0")
	assert.Contains(t, view, "Build commit: abc123")

	m = press(t, m, "esc")
	assert.False(t, m.showAbout)
}

func TestAppModel_ClearEnteringIgnoresOldGeneration(t *testing.T) {
	m, _ := newTestModel(t, "")
	m.entering = map[string]bool{"a.png": true}
	m.layoutGen = 2

	m, _ = update(t, m, clearEnteringMsg{gen: 1})
	assert.NotEmpty(t, m.entering)

	m, _ = update(t, m, clearEnteringMsg{gen: 2})
	assert.Empty(t, m.entering)
}
