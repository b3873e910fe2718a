// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router:
//
//	POST /              multipart upload, root in the Ipfs-Hash header
//	GET  /version       node build version
//	GET  /{root}        JSON array of keys under root
//	GET  /{root}/{key}  raw bytes of one item
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	router.Post("/", h.upload)
	router.Get("/version", h.getNodeVersion)
	router.Get("/{root}", h.listKeys)
	router.Get("/{root}/{key}", h.getItem)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
