// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"context"
	"slices"
	"strings"

	"github.com/MKhiriev/go-art-vault/internal/layout"
	"github.com/MKhiriev/go-art-vault/internal/logger"
	"github.com/MKhiriev/go-art-vault/internal/share"
	"github.com/MKhiriev/go-art-vault/internal/utils"
	"github.com/MKhiriev/go-art-vault/models"
)

// Config describes the view a workflow is mounted for.
type Config struct {
	// Account is the connected identity. A zero value means no wallet.
	Account models.Account

	// Root addresses an existing vault. Zero mounts a fresh, unsecured view.
	Root models.ContentID

	// Items are staged into a fresh view at mount.
	Items []models.LocalItem
}

// Deps are the collaborators of a workflow. Navigator may be nil.
type Deps struct {
	Uploader  Uploader
	Records   RecordStore
	Lister    Lister
	Navigator Navigator
}

// Workflow is the state machine of one mounted vault view.
type Workflow struct {
	log *logger.Logger

	uploader  Uploader
	records   RecordStore
	lister    Lister
	navigator Navigator

	account models.Account
	store   *ItemStore

	phase          models.ModalPhase
	secured        bool
	addressed      bool
	root           models.ContentID
	preview        models.VaultItem
	whitelist      []string
	pendingAddress string
	err            *UploadError
	owner          string
	listing        *models.VaultListing

	mounted       bool
	seq           uint64
	activeUpload  uint64
	activeListing uint64
}

// NewWorkflow mounts a workflow. A view addressed by cfg.Root starts secured.
func NewWorkflow(cfg Config, deps Deps, log *logger.Logger) (*Workflow, error) {
	store, err := NewItemStore(cfg.Items...)
	if err != nil {
		return nil, err
	}

	return &Workflow{
		log:       log,
		uploader:  deps.Uploader,
		records:   deps.Records,
		lister:    deps.Lister,
		navigator: deps.Navigator,
		account:   cfg.Account,
		store:     store,
		phase:     models.PhaseClosed,
		secured:   !cfg.Root.IsZero(),
		addressed: !cfg.Root.IsZero(),
		root:      cfg.Root,
		mounted:   true,
	}, nil
}

// Restore applies the persisted record of the connected account. An
// unaddressed view is redirected to the recorded root; a view addressed to
// that same root gets its whitelist hydrated. Read failures are logged and
// leave the session untouched.
func (w *Workflow) Restore(ctx context.Context) {
	if !w.account.Connected() || w.records == nil {
		return
	}

	record, found, err := w.records.Load(ctx, w.account.Address)
	if err != nil {
		w.log.Warn().Err(err).
			Str("func", "Workflow.Restore").
			Str("address", w.account.Address).
			Msg("failed to load persisted vault record")
		return
	}
	if !found || record.Root.IsZero() {
		return
	}

	if !w.addressed {
		w.navigate(share.VaultPath(record.Root))
		return
	}

	if record.Root == w.root {
		w.whitelist = w.whitelist[:0]
		for _, a := range record.Whitelist {
			w.addWhitelisted(a)
		}
		if w.owner == "" {
			w.owner = w.account.Address
		}
	}
}

// Unmount detaches the workflow from the view. Results of tasks still in
// flight are dropped.
func (w *Workflow) Unmount() {
	w.mounted = false
}

// ── Staging ──────────────────────────────────────────────────────────────────

// Stage adds a local file to an unsecured vault.
func (w *Workflow) Stage(item models.LocalItem) error {
	if w.secured {
		return ErrSecured
	}
	if w.phase == models.PhaseProcessing {
		return ErrTransitionNotAllowed
	}
	return w.store.Add(item)
}

// Unstage removes a staged file from an unsecured vault.
func (w *Workflow) Unstage(key string) error {
	if w.secured {
		return ErrSecured
	}
	if w.phase == models.PhaseProcessing {
		return ErrTransitionNotAllowed
	}
	return w.store.Remove(key)
}

// ── User actions ─────────────────────────────────────────────────────────────

// RequestSubmit opens the preview picker for an unsecured, non-empty vault.
func (w *Workflow) RequestSubmit() error {
	if w.phase != models.PhaseClosed || w.secured {
		return ErrTransitionNotAllowed
	}
	if w.store.Len() == 0 {
		return ErrNoItems
	}
	w.phase = models.PhaseSelectPreview
	return nil
}

// PickPreview selects the vault cover. item must be one of
// [Workflow.PreviewCandidates]; the placeholder means no cover.
func (w *Workflow) PickPreview(item models.VaultItem) error {
	if w.phase != models.PhaseSelectPreview {
		return ErrTransitionNotAllowed
	}
	if item == nil {
		return ErrItemNotFound
	}
	idx := slices.IndexFunc(w.PreviewCandidates(), func(c models.VaultItem) bool { return c.Key() == item.Key() })
	if idx < 0 {
		return ErrItemNotFound
	}
	w.preview = w.PreviewCandidates()[idx]
	w.phase = models.PhaseConfirmPreview
	return nil
}

// ConfirmPreview accepts the chosen cover.
func (w *Workflow) ConfirmPreview() error {
	if w.phase != models.PhaseConfirmPreview {
		return ErrTransitionNotAllowed
	}
	w.phase = models.PhaseSubmit
	return nil
}

// EditCover goes back to the preview picker.
func (w *Workflow) EditCover() error {
	if w.phase != models.PhaseConfirmPreview {
		return ErrTransitionNotAllowed
	}
	w.phase = models.PhaseSelectPreview
	return nil
}

// ConfirmSecure enters processing and returns the upload to run. Only one
// upload can be in flight per workflow.
func (w *Workflow) ConfirmSecure() (*UploadTask, error) {
	if w.phase != models.PhaseSubmit || w.secured {
		return nil, ErrTransitionNotAllowed
	}
	if w.store.Len() == 0 {
		return nil, ErrNoItems
	}

	preview := w.preview
	if preview == nil {
		preview = models.PlaceholderItem{}
	}

	w.seq++
	w.activeUpload = w.seq
	w.err = nil
	w.phase = models.PhaseProcessing

	return &UploadTask{
		ID:       w.activeUpload,
		Owner:    w.account.Address,
		Items:    w.store.Items(),
		Preview:  preview,
		uploader: w.uploader,
	}, nil
}

// Retry returns from the error phase to the submit phase. Staged items are
// kept.
func (w *Workflow) Retry() error {
	if w.phase != models.PhaseError {
		return ErrTransitionNotAllowed
	}
	w.phase = models.PhaseSubmit
	return nil
}

// RequestShare opens the share dialog. It is reachable from success, and
// from the closed phase for the owner of a secured vault.
func (w *Workflow) RequestShare() error {
	switch {
	case w.phase == models.PhaseSuccess:
	case w.phase == models.PhaseClosed && w.secured:
		if !w.IsOwner() {
			return ErrNotOwner
		}
	default:
		return ErrTransitionNotAllowed
	}
	w.phase = models.PhaseShare
	return nil
}

// SetPendingAddress updates the address typed (or pasted) into the share
// dialog.
func (w *Workflow) SetPendingAddress(address string) error {
	if w.phase != models.PhaseShare {
		return ErrTransitionNotAllowed
	}
	w.pendingAddress = address
	return nil
}

// SubmitShare grants the pending address access. An address already on the
// whitelist is not added twice.
func (w *Workflow) SubmitShare(ctx context.Context) error {
	if w.phase != models.PhaseShare {
		return ErrTransitionNotAllowed
	}
	if strings.TrimSpace(w.pendingAddress) == "" {
		return ErrEmptyAddress
	}
	if !w.IsOwner() {
		return ErrNotOwner
	}

	w.addWhitelisted(w.pendingAddress)
	w.persist(ctx)
	w.phase = models.PhaseShared
	return nil
}

// ManageAccess opens the whitelist editor.
func (w *Workflow) ManageAccess() error {
	switch {
	case w.phase == models.PhaseShared:
	case w.phase == models.PhaseClosed && w.secured:
		if !w.IsOwner() {
			return ErrNotOwner
		}
	default:
		return ErrTransitionNotAllowed
	}
	w.phase = models.PhaseManageAccess
	return nil
}

// RemoveWhitelisted revokes access of address. Removing the last entry
// closes the dialog.
func (w *Workflow) RemoveWhitelisted(ctx context.Context, address string) error {
	if w.phase != models.PhaseManageAccess {
		return ErrTransitionNotAllowed
	}
	idx := slices.IndexFunc(w.whitelist, func(a string) bool { return utils.SameAddress(a, address) })
	if idx < 0 {
		return ErrNotWhitelisted
	}

	w.whitelist = slices.Delete(w.whitelist, idx, idx+1)
	w.persist(ctx)

	if len(w.whitelist) == 0 {
		w.close()
	}
	return nil
}

// Dismiss closes any open dialog and clears the pending address. It is
// refused while an upload is processing.
func (w *Workflow) Dismiss() error {
	if w.phase == models.PhaseProcessing {
		return ErrTransitionNotAllowed
	}
	w.close()
	return nil
}

// Bid is the primary action of a non-owner viewing a secured vault. The
// purchase itself happens outside the workflow.
func (w *Workflow) Bid() error {
	if w.phase != models.PhaseClosed || !w.secured || w.IsOwner() {
		return ErrTransitionNotAllowed
	}
	w.log.Info().
		Str("func", "Workflow.Bid").
		Str("root", w.root.String()).
		Str("bidder", w.account.Address).
		Msg("bid requested")
	return nil
}

// Primary triggers the primary control of the current phase. In the closed
// phase that is the page action (submit, share or bid). The returned task is
// non-nil only when securing started.
func (w *Workflow) Primary(ctx context.Context) (*UploadTask, error) {
	switch w.phase {
	case models.PhaseClosed:
		switch {
		case !w.secured:
			return nil, w.RequestSubmit()
		case w.IsOwner():
			return nil, w.RequestShare()
		default:
			return nil, w.Bid()
		}
	case models.PhaseSubmit:
		return w.ConfirmSecure()
	case models.PhaseConfirmPreview:
		return nil, w.ConfirmPreview()
	case models.PhaseSuccess:
		return nil, w.RequestShare()
	case models.PhaseShare:
		return nil, w.SubmitShare(ctx)
	case models.PhaseError:
		return nil, w.Retry()
	default:
		return nil, w.Dismiss()
	}
}

// ── Async completions ────────────────────────────────────────────────────────

// HandleUploadResult applies the outcome of an upload. Results of abandoned
// or superseded requests are dropped and reported as not applied. On success
// the vault is secured, the record persisted, the view navigated to the new
// root and a listing task returned.
func (w *Workflow) HandleUploadResult(ctx context.Context, res UploadResult) (applied bool, next *ListingTask) {
	if !w.mounted || res.ID == 0 || res.ID != w.activeUpload || w.phase != models.PhaseProcessing {
		w.log.Debug().
			Str("func", "Workflow.HandleUploadResult").
			Uint64("request_id", res.ID).
			Msg("dropping stale upload result")
		return false, nil
	}
	w.activeUpload = 0

	if res.Err == nil && res.Root.IsZero() {
		res.Err = ErrEmptyRoot
	}
	if res.Err != nil {
		w.err = newUploadError(res.Err)
		w.phase = models.PhaseError
		w.log.Err(res.Err).
			Str("func", "Workflow.HandleUploadResult").
			Msg("failed to secure vault")
		return true, nil
	}

	w.secured = true
	w.root = res.Root
	w.owner = w.account.Address
	w.listing = nil
	w.phase = models.PhaseSuccess

	w.persist(ctx)
	w.navigate(share.VaultPath(res.Root))

	task, _ := w.LoadListing()
	return true, task
}

// LoadListing returns the task fetching the remote listing of a secured
// vault. ok is false for unsecured vaults.
func (w *Workflow) LoadListing() (task *ListingTask, ok bool) {
	if !w.secured || w.lister == nil {
		return nil, false
	}
	w.seq++
	w.activeListing = w.seq
	return &ListingTask{ID: w.activeListing, Root: w.root, lister: w.lister}, true
}

// HandleListing applies a fetched listing. Stale results are dropped.
func (w *Workflow) HandleListing(res ListingResult) bool {
	if !w.mounted || res.ID == 0 || res.ID != w.activeListing || res.Root != w.root {
		return false
	}
	w.activeListing = 0

	if res.Err != nil {
		w.log.Err(res.Err).
			Str("func", "Workflow.HandleListing").
			Str("root", res.Root.String()).
			Msg("failed to load vault listing")
		return true
	}

	listing := res.Listing
	listing.Keys = slices.DeleteFunc(slices.Clone(listing.Keys), models.IsReservedKey)
	w.listing = &listing

	if listing.Owner != "" {
		w.owner = listing.Owner
	}
	switch {
	case listing.PreviewKey == models.PlaceholderKey:
		w.preview = models.PlaceholderItem{}
	case listing.PreviewKey != "":
		w.preview = models.RemoteItem{Root: w.root, ItemKey: listing.PreviewKey}
	}
	return true
}

// ── Views ────────────────────────────────────────────────────────────────────

// Session returns a snapshot of the view state.
func (w *Workflow) Session() models.VaultSession {
	s := models.VaultSession{
		Items:          w.Items(),
		Secured:        w.secured,
		Root:           w.root,
		Preview:        w.preview,
		Whitelist:      slices.Clone(w.whitelist),
		Phase:          w.phase,
		PendingAddress: w.pendingAddress,
		Owner:          w.owner,
		Theme:          w.Theme(),
	}
	if w.err != nil {
		s.Error = w.err.Message
	}
	return s
}

// Phase returns the active modal phase.
func (w *Workflow) Phase() models.ModalPhase {
	return w.phase
}

// Err returns the failure of the last upload, nil outside the error phase.
func (w *Workflow) Err() *UploadError {
	if w.phase != models.PhaseError {
		return nil
	}
	return w.err
}

// Account returns the connected identity the workflow was mounted with.
func (w *Workflow) Account() models.Account {
	return w.account
}

// Items returns the remote listing for a secured vault and the staged items
// otherwise.
func (w *Workflow) Items() []models.VaultItem {
	if w.secured {
		if w.listing == nil {
			return nil
		}
		return w.listing.Items()
	}
	return w.store.VaultItems()
}

// PreviewCandidates are the tiles of the preview picker.
func (w *Workflow) PreviewCandidates() []models.VaultItem {
	return layout.WithPlaceholder(w.Items())
}

// Whitelist returns the addresses with view access.
func (w *Workflow) Whitelist() []string {
	return slices.Clone(w.whitelist)
}

// Labels returns the modal controls of the current phase.
func (w *Workflow) Labels() Labels {
	return LabelsFor(w.phase)
}

// PrimaryDisabled reports whether the modal primary control is disabled.
func (w *Workflow) PrimaryDisabled() bool {
	return w.phase == models.PhaseShare && strings.TrimSpace(w.pendingAddress) == ""
}

// PrimaryAction returns the page-level control shown outside the modal.
func (w *Workflow) PrimaryAction() NavAction {
	switch {
	case !w.secured:
		return NavAction{Title: navSubmit, Disabled: w.store.Len() == 0 || w.phase == models.PhaseProcessing}
	case w.IsOwner():
		return NavAction{Title: navShare}
	default:
		return NavAction{Title: navBid}
	}
}

// IsOwner reports whether the connected account may mutate the vault. Any
// viewer owns an unsecured vault.
func (w *Workflow) IsOwner() bool {
	if !w.secured {
		return true
	}
	return w.account.Connected() && utils.SameAddress(w.owner, w.account.Address)
}

// Theme returns the colour scheme of the view.
func (w *Workflow) Theme() models.Theme {
	if w.secured {
		return models.ThemeBlue
	}
	return models.ThemeDefault
}

// ── helpers ──────────────────────────────────────────────────────────────────

func (w *Workflow) close() {
	w.pendingAddress = ""
	w.phase = models.PhaseClosed
}

func (w *Workflow) addWhitelisted(address string) {
	normalized := utils.NormalizeAddress(address)
	if normalized == "" {
		return
	}
	if slices.ContainsFunc(w.whitelist, func(a string) bool { return utils.SameAddress(a, normalized) }) {
		return
	}
	w.whitelist = append(w.whitelist, normalized)
}

func (w *Workflow) persist(ctx context.Context) {
	if w.records == nil || !w.secured || !w.account.Connected() || !w.IsOwner() {
		return
	}

	record := models.UserVaultRecord{
		Address:   w.account.Address,
		Root:      w.root,
		Whitelist: slices.Clone(w.whitelist),
	}
	if err := w.records.Save(ctx, record); err != nil {
		w.log.Warn().Err(err).
			Str("func", "Workflow.persist").
			Str("address", record.Address).
			Str("root", record.Root.String()).
			Msg("failed to persist vault record")
	}
}

func (w *Workflow) navigate(path string) {
	if w.navigator != nil {
		w.navigator.Navigate(path)
	}
}
