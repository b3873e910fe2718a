// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/MKhiriev/go-art-vault/internal/adapter"
	"github.com/MKhiriev/go-art-vault/internal/config"
	"github.com/MKhiriev/go-art-vault/internal/layout"
	"github.com/MKhiriev/go-art-vault/internal/logger"
	"github.com/MKhiriev/go-art-vault/internal/service"
	"github.com/MKhiriev/go-art-vault/internal/share"
	"github.com/MKhiriev/go-art-vault/internal/vault"
	"github.com/MKhiriev/go-art-vault/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	// tileRows is the height of a gallery tile in terminal rows.
	tileRows = 3

	// enterHighlight is how long an entering tile stays highlighted after
	// its trail delay.
	enterHighlight = 400 * time.Millisecond

	defaultWidth = 80
)

type appDeps struct {
	services *service.ClientServices
	storage  adapter.StorageAdapter
	wallet   adapter.Wallet
}

type inputMode int

const (
	inputNone inputMode = iota
	inputStagePath
	inputOpenVault
)

type appModel struct {
	ctx       context.Context
	deps      appDeps
	appCfg    config.ClientApp
	buildInfo models.AppBuildInfo
	openRoot  models.ContentID
	log       *logger.Logger

	nav       *navigator
	workflow  *vault.Workflow
	account   models.Account
	connected bool

	width, height int
	cursor        int
	grid          layout.Grid[models.VaultItem]
	layoutGen     int
	entering      map[string]bool

	input     textinput.Model
	inputMode inputMode
	spinner   spinner.Model

	names      map[string]string
	status     string
	errOverlay *errorOverlayModel
	showAbout  bool
}

func newAppModel(ctx context.Context, deps appDeps, appCfg config.ClientApp, buildInfo models.AppBuildInfo,
	openRoot models.ContentID, log *logger.Logger) appModel {
	ti := textinput.New()
	ti.CharLimit = 512
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return appModel{
		ctx:       ctx,
		deps:      deps,
		appCfg:    appCfg,
		buildInfo: buildInfo,
		openRoot:  openRoot,
		log:       log,
		nav:       newNavigator(pathOfRoot(openRoot)),
		input:     ti,
		spinner:   sp,
		names:     make(map[string]string),
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, cmdConnect(m.ctx, m.deps.wallet, m.deps.services.AddressService))
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, m.relayout()

	case connectedMsg:
		if msg.err != nil {
			m.log.Warn().Err(msg.err).
				Str("func", "appModel.Update").
				Msg("wallet connection failed")
			m.status = humanizeError(msg.err)
		}
		m.account = msg.account
		m.connected = true
		return m, tea.Batch(m.mount(m.openRoot), cmdClearStatus())

	case uploadDoneMsg:
		if m.workflow == nil {
			return m, nil
		}
		applied, next := m.workflow.HandleUploadResult(m.ctx, msg.result)
		if !applied {
			return m, nil
		}
		cmds := []tea.Cmd{m.relayout()}
		if navCmd, remounted := m.followNavigation(); remounted {
			return m, navCmd
		}
		if next != nil {
			cmds = append(cmds, cmdLoadListing(m.ctx, next))
		}
		return m, tea.Batch(cmds...)

	case listingLoadedMsg:
		if m.workflow == nil || !m.workflow.HandleListing(msg.result) {
			return m, nil
		}
		return m, tea.Batch(m.relayout(), m.resolveNames())

	case namesResolvedMsg:
		for k, v := range msg.names {
			m.names[k] = v
		}
		return m, nil

	case pastedMsg:
		if msg.err != nil {
			m.status = "Clipboard is not available"
			return m, cmdClearStatus()
		}
		m.input.SetValue(strings.TrimSpace(msg.text))
		m.input.CursorEnd()
		m.syncPendingAddress()
		return m, nil

	case copiedMsg:
		m.status = "Copied " + msg.what
		return m, cmdClearStatus()

	case failedMsg:
		m.errOverlay = &errorOverlayModel{message: humanizeError(msg.err)}
		return m, nil

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case clearEnteringMsg:
		if msg.gen == m.layoutGen {
			m.entering = nil
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// ── Mounting ─────────────────────────────────────────────────────────────────

// mount replaces the workflow with one addressed to root. The previous
// workflow is unmounted so results of its tasks are dropped.
func (m *appModel) mount(root models.ContentID) tea.Cmd {
	if m.workflow != nil {
		m.workflow.Unmount()
	}

	svc := m.deps.services
	wf, err := vault.NewWorkflow(vault.Config{Account: m.account, Root: root}, vault.Deps{
		Uploader:  svc.UploadService,
		Records:   svc.WhitelistService,
		Lister:    svc.ListingService,
		Navigator: m.nav,
	}, m.log)
	if err != nil {
		m.errOverlay = &errorOverlayModel{message: humanizeError(err)}
		return nil
	}

	m.workflow = wf
	m.cursor = 0
	m.inputMode = inputNone
	m.grid = layout.Grid[models.VaultItem]{}

	wf.Restore(m.ctx)
	if cmd, remounted := m.followNavigation(); remounted {
		return cmd
	}

	cmds := []tea.Cmd{m.relayout(), m.resolveNames()}
	if task, ok := wf.LoadListing(); ok {
		cmds = append(cmds, cmdLoadListing(m.ctx, task))
	}
	return tea.Batch(cmds...)
}

// followNavigation applies a pending navigation request. Only a request for
// a root other than the mounted one remounts the view.
func (m *appModel) followNavigation() (tea.Cmd, bool) {
	path, ok := m.nav.Take()
	if !ok {
		return nil, false
	}
	root := rootOfPath(path)
	if m.workflow != nil && root == m.workflow.Session().Root {
		return nil, false
	}
	return m.mount(root), true
}

// ── Layout ───────────────────────────────────────────────────────────────────

func (m *appModel) columns() int {
	if m.appCfg.Columns < 1 {
		return layout.DefaultColumns
	}
	return m.appCfg.Columns
}

func (m *appModel) galleryWidth() int {
	w := m.width - appStyle.GetHorizontalFrameSize()
	if w <= 0 {
		return defaultWidth
	}
	return w
}

// relayout recomputes the grid of the current phase and highlights the
// tiles that entered it.
func (m *appModel) relayout() tea.Cmd {
	if m.workflow == nil {
		return nil
	}

	items := m.workflow.Items()
	opts := layout.Options{Columns: m.columns(), RowHeight: tileRows}
	if m.workflow.Phase() == models.PhaseSelectPreview {
		items = m.workflow.PreviewCandidates()
		opts.Square = true
	}

	next := layout.Masonry(items, layout.ItemKey, float64(m.galleryWidth()), opts)
	transitions := layout.Diff(m.grid.Placements, next.Placements, layout.DefaultAnimation)
	m.grid = next
	m.clampCursor(len(next.Placements))

	entering := make(map[string]bool)
	for _, t := range transitions {
		if t.Kind == layout.Enter {
			entering[t.Key] = true
		}
	}
	if len(entering) == 0 {
		return nil
	}

	m.layoutGen++
	m.entering = entering
	gen := m.layoutGen
	return tea.Tick(layout.MaxDelay(transitions)+enterHighlight, func(time.Time) tea.Msg {
		return clearEnteringMsg{gen: gen}
	})
}

func (m *appModel) clampCursor(n int) {
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *appModel) moveCursor(msg tea.KeyMsg, n int) {
	cols := m.columns()
	switch {
	case key.Matches(msg, keys.left):
		m.cursor--
	case key.Matches(msg, keys.right):
		m.cursor++
	case key.Matches(msg, keys.up):
		m.cursor -= cols
	case key.Matches(msg, keys.down):
		m.cursor += cols
	}
	m.clampCursor(n)
}

func (m *appModel) selected() (models.VaultItem, bool) {
	for _, p := range m.grid.Placements {
		if p.Index == m.cursor {
			return p.Item, true
		}
	}
	return nil, false
}

// ── Names ────────────────────────────────────────────────────────────────────

// resolveNames looks up the owner and whitelisted addresses not resolved yet.
func (m *appModel) resolveNames() tea.Cmd {
	if m.workflow == nil {
		return nil
	}
	var pending []string
	candidates := append([]string{m.workflow.Session().Owner}, m.workflow.Whitelist()...)
	for _, a := range candidates {
		if a == "" {
			continue
		}
		if _, ok := m.names[a]; ok {
			continue
		}
		pending = append(pending, a)
	}
	return cmdResolveNames(m.ctx, m.deps.services.AddressService, pending)
}

// ── Keys ─────────────────────────────────────────────────────────────────────

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.errOverlay != nil {
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			m.errOverlay = nil
		}
		return m, nil
	}

	if m.showAbout {
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.enter) || key.Matches(msg, keys.about) {
			m.showAbout = false
		}
		return m, nil
	}

	if m.workflow == nil {
		if key.Matches(msg, keys.quit) {
			return m, tea.Quit
		}
		return m, nil
	}

	if m.inputMode != inputNone {
		return m.handleInputKey(msg)
	}

	switch m.workflow.Phase() {
	case models.PhaseClosed:
		return m.handleGalleryKey(msg)
	case models.PhaseProcessing:
		return m, nil
	case models.PhaseShare:
		return m.handleShareKey(msg)
	case models.PhaseSelectPreview:
		return m.handlePickerKey(msg)
	case models.PhaseManageAccess:
		return m.handleManageKey(msg)
	default:
		return m.handleModalKey(msg)
	}
}

func (m appModel) handleGalleryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	session := m.workflow.Session()

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit

	case key.Matches(msg, keys.up), key.Matches(msg, keys.down),
		key.Matches(msg, keys.left), key.Matches(msg, keys.right):
		m.moveCursor(msg, len(m.grid.Placements))

	case key.Matches(msg, keys.enter):
		task, err := m.workflow.Primary(m.ctx)
		return m, m.afterAction(task, err)

	case key.Matches(msg, keys.add):
		if session.Secured {
			return m, m.flash(vault.ErrSecured)
		}
		return m, m.openInput(inputStagePath, "path/to/artwork.png")

	case key.Matches(msg, keys.delete):
		item, ok := m.selected()
		if !ok {
			return m, nil
		}
		return m, m.afterAction(nil, m.workflow.Unstage(item.Key()))

	case key.Matches(msg, keys.open):
		return m, m.openInput(inputOpenVault, "share link, /vault/{root} or root")

	case key.Matches(msg, keys.manage):
		return m, m.afterAction(nil, m.workflow.ManageAccess())

	case key.Matches(msg, keys.copy):
		return m, m.copyShareLink()

	case key.Matches(msg, keys.copyItem):
		item, ok := m.selected()
		if !ok || !session.Secured {
			return m, nil
		}
		return m, cmdCopyToClipboard(m.deps.storage.ItemURL(session.Root, item.Key()), "item link")

	case key.Matches(msg, keys.about):
		m.showAbout = true
	}

	return m, nil
}

func (m appModel) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		return m, m.afterAction(nil, m.workflow.Dismiss())

	case key.Matches(msg, keys.up), key.Matches(msg, keys.down),
		key.Matches(msg, keys.left), key.Matches(msg, keys.right):
		m.moveCursor(msg, len(m.grid.Placements))

	case key.Matches(msg, keys.enter):
		item, ok := m.selected()
		if !ok {
			return m, nil
		}
		return m, m.afterAction(nil, m.workflow.PickPreview(item))
	}
	return m, nil
}

func (m appModel) handleManageKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	whitelist := m.workflow.Whitelist()

	switch {
	case key.Matches(msg, keys.esc), key.Matches(msg, keys.enter):
		return m, m.afterAction(nil, m.workflow.Dismiss())

	case key.Matches(msg, keys.up):
		m.cursor--
		m.clampCursor(len(whitelist))

	case key.Matches(msg, keys.down):
		m.cursor++
		m.clampCursor(len(whitelist))

	case key.Matches(msg, keys.delete):
		if m.cursor < 0 || m.cursor >= len(whitelist) {
			return m, nil
		}
		err := m.workflow.RemoveWhitelisted(m.ctx, whitelist[m.cursor])
		m.clampCursor(len(m.workflow.Whitelist()))
		return m, m.afterAction(nil, err)
	}
	return m, nil
}

func (m appModel) handleShareKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.input.Blur()
		return m, m.afterAction(nil, m.workflow.Dismiss())

	case key.Matches(msg, keys.paste):
		return m, cmdPasteFromClipboard()

	case key.Matches(msg, keys.enter):
		m.syncPendingAddress()
		if m.workflow.PrimaryDisabled() {
			return m, nil
		}
		task, err := m.workflow.Primary(m.ctx)
		if err == nil {
			m.input.Blur()
		}
		return m, m.afterAction(task, err)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.syncPendingAddress()
	return m, cmd
}

func (m appModel) handleModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	phase := m.workflow.Phase()

	switch {
	case key.Matches(msg, keys.esc):
		return m, m.afterAction(nil, m.workflow.Dismiss())

	case key.Matches(msg, keys.enter):
		if m.workflow.Labels().OnlyDismiss {
			return m, m.afterAction(nil, m.workflow.Dismiss())
		}
		task, err := m.workflow.Primary(m.ctx)
		return m, m.afterAction(task, err)

	case key.Matches(msg, keys.editCover) && phase == models.PhaseConfirmPreview:
		return m, m.afterAction(nil, m.workflow.EditCover())

	case key.Matches(msg, keys.copy) && (phase == models.PhaseSuccess || phase == models.PhaseShared):
		return m, m.copyShareLink()

	case key.Matches(msg, keys.manage) && phase == models.PhaseShared:
		return m, m.afterAction(nil, m.workflow.ManageAccess())
	}
	return m, nil
}

func (m appModel) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.closeInput()
		return m, nil

	case key.Matches(msg, keys.paste):
		return m, cmdPasteFromClipboard()

	case key.Matches(msg, keys.enter):
		value := strings.TrimSpace(m.input.Value())
		mode := m.inputMode
		m.closeInput()
		if value == "" {
			return m, nil
		}
		if mode == inputStagePath {
			return m, m.stageFile(value)
		}
		return m, m.openVault(value)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// ── Actions ──────────────────────────────────────────────────────────────────

// afterAction follows up on a workflow action: it starts the returned upload,
// follows navigation, prepares the input of the new phase and refreshes the
// layout.
func (m *appModel) afterAction(task *vault.UploadTask, err error) tea.Cmd {
	if err != nil {
		return m.flash(err)
	}

	if cmd, remounted := m.followNavigation(); remounted {
		return cmd
	}

	var cmds []tea.Cmd
	if task != nil {
		cmds = append(cmds, m.spinner.Tick, cmdRunUpload(m.ctx, task))
	}

	switch m.workflow.Phase() {
	case models.PhaseShare:
		m.input.Reset()
		m.input.Placeholder = "0x... or name.eth"
		m.input.SetValue(m.workflow.Session().PendingAddress)
		cmds = append(cmds, m.input.Focus())
	case models.PhaseSelectPreview, models.PhaseManageAccess:
		m.cursor = 0
		cmds = append(cmds, m.resolveNames())
	case models.PhaseShared:
		cmds = append(cmds, m.resolveNames())
	}

	cmds = append(cmds, m.relayout())
	return tea.Batch(cmds...)
}

func (m *appModel) flash(err error) tea.Cmd {
	m.status = humanizeError(err)
	return cmdClearStatus()
}

func (m *appModel) openInput(mode inputMode, placeholder string) tea.Cmd {
	m.inputMode = mode
	m.input.Reset()
	m.input.Placeholder = placeholder
	return m.input.Focus()
}

func (m *appModel) closeInput() {
	m.inputMode = inputNone
	m.input.Blur()
	m.input.Reset()
}

func (m *appModel) syncPendingAddress() {
	if m.workflow == nil || m.workflow.Phase() != models.PhaseShare {
		return
	}
	_ = m.workflow.SetPendingAddress(m.input.Value())
}

func (m *appModel) stageFile(path string) tea.Cmd {
	info, err := os.Stat(path)
	if err != nil {
		return m.flash(fmt.Errorf("cannot read %s: %w", path, err))
	}
	if info.IsDir() {
		return m.flash(fmt.Errorf("%s is a directory", path))
	}
	if err = m.workflow.Stage(models.NewLocalFileItem(path)); err != nil {
		return m.flash(err)
	}
	return m.relayout()
}

func (m *appModel) openVault(link string) tea.Cmd {
	root, err := share.ParseLink(link)
	if err != nil {
		return m.flash(err)
	}
	m.nav.Navigate(pathOfRoot(root))
	cmd, _ := m.followNavigation()
	return cmd
}

func (m *appModel) copyShareLink() tea.Cmd {
	root := m.workflow.Session().Root
	if root.IsZero() {
		return nil
	}
	link, err := share.Build(m.appCfg.ShareHost, root)
	if err != nil {
		return m.flash(err)
	}
	return cmdCopyToClipboard(link.Clipboard, "share link")
}
