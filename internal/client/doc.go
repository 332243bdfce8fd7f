// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the control loop of a running franny-sync
// client.
//
// One goroutine, [App.Run], owns the [models.AppState]. Control surfaces
// post requests to it, it hands snapshots to the worker pool and it is the
// only consumer of sync results, which it adopts and reports to status sinks.
package client
