// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package share formats and parses shareable vault links.
//
// A link has the form {host}/?v={root}. [Build] is pure; [ParseLink] accepts
// either a full link or a bare content identifier so that a user can paste
// whatever they were sent.
package share

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-art-vault/models"
)

// QueryParam is the query parameter carrying the vault root.
const QueryParam = "v"

var (
	// ErrEmptyRoot is returned by Build when no root is given.
	ErrEmptyRoot = errors.New("share: empty root")

	// ErrNoRoot is returned by ParseLink when the input carries no root.
	ErrNoRoot = errors.New("share: link carries no vault root")
)

// Link is a ready to use share link.
type Link struct {
	URL string

	// Clipboard is the payload copied when the user asks for the link.
	Clipboard string
}

// Build formats root into a share link under host. A host without a scheme
// gets https. Trailing slashes on host are dropped.
func Build(host string, root models.ContentID) (Link, error) {
	if root.IsZero() {
		return Link{}, ErrEmptyRoot
	}

	host = strings.TrimRight(strings.TrimSpace(host), "/")
	if host != "" && !strings.Contains(host, "://") {
		host = "https://" + host
	}

	u := fmt.Sprintf("%s/?%s=%s", host, QueryParam, url.QueryEscape(root.String()))
	return Link{URL: u, Clipboard: u}, nil
}

// ParseLink extracts the vault root from s. s may be a link produced by
// [Build], a root-addressed path such as /vault/{root}, or a bare content
// identifier.
func ParseLink(s string) (models.ContentID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrNoRoot
	}

	if !strings.ContainsAny(s, "/?=") {
		return models.ParseContentID(s)
	}

	u, err := url.Parse(s)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoRoot, err)
	}

	if v := u.Query().Get(QueryParam); v != "" {
		return models.ParseContentID(v)
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(segments) == 2 && segments[0] == "vault" && segments[1] != "" {
		return models.ParseContentID(segments[1])
	}

	return "", ErrNoRoot
}

// VaultPath is the root-addressed navigation path of a secured vault.
func VaultPath(root models.ContentID) string {
	return "/vault/" + root.String()
}
