// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name       string
		data       any
		status     int
		wantStatus int
		wantBody   string
		wantErr    bool
	}{
		{
			name:       "listing keys",
			data:       []string{"a.png", "username", "preview"},
			status:     http.StatusOK,
			wantStatus: http.StatusOK,
			wantBody:   `["a.png","username","preview"]`,
		},
		{
			name:       "upload response",
			data:       map[string]string{"root": "bafk"},
			status:     http.StatusCreated,
			wantStatus: http.StatusCreated,
			wantBody:   `{"root":"bafk"}`,
		},
		{
			name:       "nil",
			data:       nil,
			status:     http.StatusOK,
			wantStatus: http.StatusOK,
			wantBody:   "null",
		},
		{
			name:       "not serializable",
			data:       make(chan int),
			status:     http.StatusOK,
			wantStatus: http.StatusInternalServerError,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			n, err := WriteJSON(w, tt.data, tt.status)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantErr {
				require.Error(t, err)
				assert.Zero(t, n)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.wantBody), n)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.Equal(t, tt.wantBody, w.Body.String())
		})
	}
}
