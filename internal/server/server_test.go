// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-art-vault/internal/config"
	"github.com/MKhiriev/go-art-vault/internal/handler"
	"github.com/MKhiriev/go-art-vault/internal/logger"
	"github.com/MKhiriev/go-art-vault/internal/service"
	"github.com/MKhiriev/go-art-vault/internal/store"
	"github.com/MKhiriev/go-art-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freeAddress(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func TestNewServer_NoHandlers(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, config.NodeServer{HTTPAddress: ":8080"}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)

	_, err = NewServer(nil, config.NodeServer{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewHTTPServer_DefaultTimeout(t *testing.T) {
	s := newHTTPServer(http.NotFoundHandler(), config.NodeServer{HTTPAddress: ":0"}, logger.Nop())

	assert.Equal(t, defaultRequestTimeout, s.server.ReadTimeout)
	assert.Equal(t, defaultRequestTimeout, s.server.WriteTimeout)
	assert.Equal(t, readHeaderTimeout, s.server.ReadHeaderTimeout)
}

func TestServer_ServesUntilCanceled(t *testing.T) {
	content, err := store.NewFileContentStore(t.TempDir(), logger.Nop())
	require.NoError(t, err)
	services := service.NewServices(&store.NodeStorages{Content: content}, models.NewAppBuildInfo("0.1.0", "", ""), logger.Nop())

	cfg := config.NodeServer{HTTPAddress: freeAddress(t), RequestTimeout: time.Second}
	handlers, err := handler.NewHandlers(services, cfg, logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, cfg, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		srv.(*server).run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + cfg.HTTPAddress + "/version")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("server did not shut down")
	}
}
