// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"testing"

	"github.com/MKhiriev/go-art-vault/models"
	"github.com/stretchr/testify/assert"
)

func TestLabelsFor_EveryPhaseHasLabels(t *testing.T) {
	for p := models.ModalPhase(0); p < models.PhaseCount; p++ {
		l := LabelsFor(p)
		assert.NotEmpty(t, l.Primary, "phase %s", p)
		assert.NotEmpty(t, l.Dismiss, "phase %s", p)
	}
}

func TestLabelsFor(t *testing.T) {
	tests := []struct {
		phase   models.ModalPhase
		primary string
		dismiss string
	}{
		{models.PhaseConfirmPreview, "Secure Vault", "Cancel"},
		{models.PhaseError, "Try again", "Cancel"},
		{models.PhaseSubmit, "Continue", "Cancel"},
		{models.PhaseSuccess, "Share Vault", "Dismiss"},
		{models.PhaseShare, "Share", "Cancel"},
		{models.PhaseManageAccess, "Done", "Done"},
		{models.PhaseShared, "Continue", "Continue"},
		{models.PhaseSelectPreview, "Continue", "Cancel"},
	}

	for _, tt := range tests {
		t.Run(tt.phase.String(), func(t *testing.T) {
			l := LabelsFor(tt.phase)
			assert.Equal(t, tt.primary, l.Primary)
			assert.Equal(t, tt.dismiss, l.Dismiss)
		})
	}
}

func TestLabelsFor_Flags(t *testing.T) {
	assert.True(t, LabelsFor(models.PhaseShared).OnlyDismiss)
	assert.True(t, LabelsFor(models.PhaseManageAccess).OnlyDismiss)
	assert.False(t, LabelsFor(models.PhaseSuccess).OnlyDismiss)

	assert.True(t, LabelsFor(models.PhaseProcessing).Loading)

	assert.True(t, LabelsFor(models.PhaseShare).Centered)
	assert.True(t, LabelsFor(models.PhaseConfirmPreview).Centered)
	assert.False(t, LabelsFor(models.PhaseSubmit).Centered)
}

func TestLabelsFor_UnknownPhase(t *testing.T) {
	assert.Equal(t, LabelsFor(models.PhaseClosed), LabelsFor(models.ModalPhase(99)))
}
