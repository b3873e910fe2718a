// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"
	"sync"

	"github.com/MKhiriev/go-art-vault/internal/share"
	"github.com/MKhiriev/go-art-vault/models"
)

// navigator records navigation requests of the workflow. The model applies
// them after each update: a request for a different root remounts the view,
// a request for the mounted root only updates the path.
type navigator struct {
	mu      sync.Mutex
	path    string
	pending *string
}

func newNavigator(path string) *navigator {
	return &navigator{path: path}
}

// Navigate implements [vault.Navigator].
func (n *navigator) Navigate(path string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.pending = &path
}

// Take returns the last pending request and clears it.
func (n *navigator) Take() (path string, ok bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.pending == nil {
		return "", false
	}
	path = *n.pending
	n.pending = nil
	n.path = path
	return path, true
}

// Path returns the current view path.
func (n *navigator) Path() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.path
}

// rootOfPath returns the root a view path is addressed to. "/" and any path
// that is not a vault path address a fresh view.
func rootOfPath(path string) models.ContentID {
	path = strings.TrimSpace(path)
	if path == "" || path == "/" {
		return ""
	}
	root, err := share.ParseLink(path)
	if err != nil {
		return ""
	}
	return root
}

// pathOfRoot is the inverse of rootOfPath.
func pathOfRoot(root models.ContentID) string {
	if root.IsZero() {
		return "/"
	}
	return share.VaultPath(root)
}
