// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the interactive status monitor of franny-sync.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/franny-sync/internal/client"
	"github.com/MKhiriev/franny-sync/internal/logger"
	"github.com/MKhiriev/franny-sync/models"
)

const viewBuffer = 128

// Controller is the part of [client.App] the monitor drives.
type Controller interface {
	RunSync(direction models.Direction, passphrase string)
	SetAutoSync(enabled bool, minutes int)
	SetPassphraseInput(passphrase string)
	AddBookmark(url string)
	Refresh()
}

type TUI struct {
	ctrl     Controller
	info     models.AppBuildInfo
	interval time.Duration
	views    chan client.View
	logger   *logger.Logger
}

func New(ctrl Controller, info models.AppBuildInfo, interval time.Duration, log *logger.Logger) *TUI {
	return &TUI{
		ctrl:     ctrl,
		info:     info,
		interval: interval,
		views:    make(chan client.View, viewBuffer),
		logger:   log,
	}
}

// Sink is the status sink to subscribe on the app. It never blocks the
// control loop; views that do not fit in the buffer are dropped.
func (t *TUI) Sink() client.StatusSink {
	return func(v client.View) {
		select {
		case t.views <- v:
		default:
			t.logger.Warn().Str("message", v.Message).Msg("status view dropped")
		}
	}
}

// Run shows the monitor until the user quits or ctx is done.
func (t *TUI) Run(ctx context.Context) error {
	p := tea.NewProgram(newStatusModel(t.ctrl, t.info, t.interval), tea.WithAltScreen(), tea.WithContext(ctx))

	pumpCtx, stop := context.WithCancel(ctx)
	defer stop()
	go func() {
		for {
			select {
			case <-pumpCtx.Done():
				return
			case v := <-t.views:
				p.Send(viewMsg{view: v})
			}
		}
	}()

	_, err := p.Run()
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}
