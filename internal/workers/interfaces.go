// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface, a ticker driven [Periodic] worker and a
// Workers aggregate that starts and stops several workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Start must not block: implementations spawn their own goroutine that exits
// when ctx is cancelled or Stop is called. Stop blocks until that goroutine
// has exited and is safe to call on a worker that is not running.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
