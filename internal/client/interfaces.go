// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"time"

	"github.com/MKhiriev/franny-sync/internal/workers"
	"github.com/MKhiriev/franny-sync/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until ctx is done.
	Run(ctx context.Context) error
}

// Scheduler runs sync jobs and background I/O off the control goroutine.
type Scheduler interface {
	Submit(direction models.Direction, job workers.Job) error
	Results() <-chan models.SyncResult
	Background(name string, task workers.Task)
	Busy() bool
}

// Trigger fires the unattended sync.
type Trigger interface {
	Arm(interval time.Duration, fire func()) error
	Stop()
	Armed() bool
	NextRun() (time.Time, bool)
}

// StatusSink receives a [View] after every state change. It is called on
// the control goroutine and must not block.
type StatusSink func(View)
