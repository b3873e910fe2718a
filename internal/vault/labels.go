// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import "github.com/MKhiriev/go-art-vault/models"

// Labels describes the modal controls of a phase.
type Labels struct {
	Primary string
	Dismiss string

	// OnlyDismiss hides the primary control.
	OnlyDismiss bool

	// Loading replaces both controls with a progress indicator.
	Loading bool

	// Centered lays the modal content out centered.
	Centered bool
}

var phaseLabels = [models.PhaseCount]Labels{
	models.PhaseClosed:         {Primary: "Continue", Dismiss: "Cancel"},
	models.PhaseSubmit:         {Primary: "Continue", Dismiss: "Cancel"},
	models.PhaseSuccess:        {Primary: "Share Vault", Dismiss: "Dismiss"},
	models.PhaseShare:          {Primary: "Share", Dismiss: "Cancel", Centered: true},
	models.PhaseShared:         {Primary: "Continue", Dismiss: "Continue", OnlyDismiss: true},
	models.PhaseManageAccess:   {Primary: "Done", Dismiss: "Done", OnlyDismiss: true},
	models.PhaseProcessing:     {Primary: "Continue", Dismiss: "Cancel", Loading: true},
	models.PhaseError:          {Primary: "Try again", Dismiss: "Cancel"},
	models.PhaseSelectPreview:  {Primary: "Continue", Dismiss: "Cancel"},
	models.PhaseConfirmPreview: {Primary: "Secure Vault", Dismiss: "Cancel", Centered: true},
}

// LabelsFor returns the modal labels of phase. Unknown phases get the closed
// phase labels.
func LabelsFor(phase models.ModalPhase) Labels {
	if !phase.Valid() {
		return phaseLabels[models.PhaseClosed]
	}
	return phaseLabels[phase]
}

// NavAction is the page-level primary control shown outside the modal.
type NavAction struct {
	Title    string
	Disabled bool
}

const (
	navSubmit = "Submit"
	navShare  = "Share"
	navBid    = "Bid"
)
