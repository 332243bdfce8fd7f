// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/franny-sync/internal/logger"
	"github.com/MKhiriev/franny-sync/internal/service"
	"github.com/MKhiriev/franny-sync/internal/store"
	"github.com/MKhiriev/franny-sync/models"
)

// Status messages shown verbatim.
const (
	msgSyncDisabled     = "Sync is disabled."
	msgAutoNoPassphrase = "Auto-sync skipped: no passphrase."
	msgAutoOff          = "Auto-sync off."
)

const commandBuffer = 32

// Deps are the collaborators of an [App].
type Deps struct {
	Engine      service.SyncEngine
	Credentials service.CredentialResolver
	Collections store.CollectionStorage
	SyncConfig  store.SyncConfigStorage
	Scheduler   Scheduler
	Trigger     Trigger
	Logger      *logger.Logger
}

// View is a copy of the state a status surface renders.
type View struct {
	Message   string
	Result    *models.SyncResult
	Enabled   bool
	LastSync  *time.Time
	Interval  time.Duration
	AutoArmed bool
	NextRun   time.Time
	Busy      bool
	Bookmarks int
	History   int
}

// App is the control loop. Its exported methods may be called from any
// goroutine; they are executed in order on the goroutine running [App.Run].
type App struct {
	deps  Deps
	state models.AppState
	sinks []StatusSink

	commands chan func()
	ticks    chan struct{}
	done     chan struct{}

	// edits counts local collection changes; submittedEdits is its value
	// when the running sync took its snapshot.
	edits          uint64
	submittedEdits uint64

	logger *logger.Logger
}

// NewApp loads the local collections and settings into a fresh state.
// interval is the auto-sync period used until SetAutoSync changes it.
func NewApp(deps Deps, interval time.Duration) *App {
	return &App{
		deps: deps,
		state: models.AppState{
			Bookmarks:        deps.Collections.LoadBookmarks(),
			History:          deps.Collections.LoadHistory(),
			Config:           deps.SyncConfig.Current(),
			AutoSyncInterval: clampInterval(interval),
		},
		commands: make(chan func(), commandBuffer),
		ticks:    make(chan struct{}, 1),
		done:     make(chan struct{}),
		logger:   deps.Logger,
	}
}

// Subscribe adds a status sink. It must be called before Run.
func (a *App) Subscribe(sink StatusSink) {
	a.sinks = append(a.sinks, sink)
}

// Run owns the state until ctx is done. Auto-sync is armed at start when
// the stored settings enable it.
func (a *App) Run(ctx context.Context) error {
	defer close(a.done)
	defer a.deps.Trigger.Stop()

	if a.state.Config.Enabled {
		a.armAutoSync()
	}
	a.publish("", nil)

	for {
		select {
		case <-ctx.Done():
			a.logger.Info().Msg("control loop stopped")
			return nil
		case cmd := <-a.commands:
			cmd()
		case <-a.ticks:
			a.autoSync()
		case result := <-a.deps.Scheduler.Results():
			a.adopt(result)
		}
	}
}

// RunSync starts a manual sync. passphrase may be empty to use the stored
// or typed one. The worker resolves it and remembers it once the run
// succeeds.
func (a *App) RunSync(direction models.Direction, passphrase string) {
	a.post(func() {
		if !a.state.Config.Enabled {
			a.publish(msgSyncDisabled, nil)
			return
		}
		a.submit(direction, passphrase, false)
	})
}

// SetAutoSync enables or disables sync and the periodic trigger. The period
// is minutes, at least one. The enabled flag is persisted.
func (a *App) SetAutoSync(enabled bool, minutes int) {
	a.post(func() {
		a.state.AutoSyncInterval = clampInterval(time.Duration(minutes) * time.Minute)
		a.state.Config.Enabled = enabled

		// staged here so the flushes may run in any order
		syncConfig := a.deps.SyncConfig
		syncConfig.StageEnabled(enabled)
		a.deps.Scheduler.Background("save sync settings", func(context.Context) error {
			return syncConfig.Flush()
		})

		if !enabled {
			a.deps.Trigger.Stop()
			a.publish(msgAutoOff, nil)
			return
		}
		a.armAutoSync()
	})
}

// SetPassphraseInput mirrors the passphrase text field.
func (a *App) SetPassphraseInput(passphrase string) {
	a.post(func() {
		a.state.PassphraseInput = passphrase
	})
}

// AddBookmark appends url unless it is already bookmarked.
func (a *App) AddBookmark(url string) {
	a.post(func() {
		if url == "" || a.state.Bookmarks.Contains(url) {
			return
		}
		a.state.Bookmarks = append(a.state.Bookmarks, url)
		a.saveBookmarks()
		a.publish(fmt.Sprintf("Bookmarked %s", url), nil)
	})
}

// RecordVisit appends url to the history.
func (a *App) RecordVisit(url string) {
	a.post(func() {
		if url == "" {
			return
		}
		a.state.History = append(a.state.History, url).Tail(models.HistoryCap)
		a.saveHistory()
		a.publish("", nil)
	})
}

// Refresh republishes the current view.
func (a *App) Refresh() {
	a.post(func() { a.publish("", nil) })
}

// post queues cmd for the control goroutine. Commands posted after Run has
// returned are dropped.
func (a *App) post(cmd func()) {
	select {
	case a.commands <- cmd:
	case <-a.done:
	}
}

// fire is the trigger callback. It never blocks the cron goroutine; ticks
// that arrive while one is pending collapse into it.
func (a *App) fire() {
	select {
	case a.ticks <- struct{}{}:
	default:
	}
}

func (a *App) armAutoSync() {
	if err := a.deps.Trigger.Arm(a.state.AutoSyncInterval, a.fire); err != nil {
		a.logger.Error().Err(err).Msg("arming auto-sync")
		return
	}
	a.publish(fmt.Sprintf("Auto-sync every %d min.", int(a.state.AutoSyncInterval/time.Minute)), nil)
}

func (a *App) autoSync() {
	if !a.state.Config.Enabled {
		return
	}
	if a.deps.Scheduler.Busy() {
		a.logger.Debug().Msg("auto-sync tick skipped, a sync is running")
		return
	}

	a.submit(models.DirectionSync, "", true)
}

// submit hands a sync to the pool. Passphrase lookup may hit the OS keyring,
// so it happens in the job, never here.
func (a *App) submit(direction models.Direction, passphrase string, auto bool) {
	snapshot := a.state.Snapshot()
	engine := a.deps.Engine
	credentials := a.deps.Credentials
	log := a.logger
	req := service.SyncRequest{
		JobID:        uuid.NewString(),
		Direction:    direction,
		Passphrase:   passphrase,
		UIPassphrase: a.state.PassphraseInput,
		Bookmarks:    snapshot.Bookmarks,
		History:      snapshot.History,
	}

	err := a.deps.Scheduler.Submit(direction, func(ctx context.Context) models.SyncResult {
		result := engine.PerformSync(ctx, req)
		switch {
		case result.Success:
			if err := credentials.Remember(req.Passphrase, req.UIPassphrase); err != nil {
				log.Warn().Err(err).Msg("passphrase not remembered")
			}
		case auto && result.Kind == models.KindMissingPassphrase:
			result.Message = msgAutoNoPassphrase
		}
		return result
	})
	if err != nil {
		// the rejection arrives on Results like any other outcome
		a.logger.Debug().Err(err).Str("direction", string(direction)).Msg("sync not started")
		return
	}
	a.submittedEdits = a.edits
	a.publish(fmt.Sprintf("Syncing (%s)...", direction), nil)
}

func (a *App) adopt(result models.SyncResult) {
	a.state.Adopt(result)

	// A local edit flushed after the engine wrote the merged collections
	// would leave the files behind the adopted state.
	merged := result.Success && (result.Bookmarks != nil || result.History != nil)
	if merged && a.edits != a.submittedEdits {
		a.saveBookmarks()
		a.saveHistory()
	}

	a.publish(result.Message, &result)
}

func (a *App) saveBookmarks() {
	a.edits++
	collections := a.deps.Collections
	collections.StageBookmarks(a.state.Bookmarks)
	a.deps.Scheduler.Background("save bookmarks", func(context.Context) error {
		return collections.Flush()
	})
}

func (a *App) saveHistory() {
	a.edits++
	collections := a.deps.Collections
	collections.StageHistory(a.state.History)
	a.deps.Scheduler.Background("save history", func(context.Context) error {
		return collections.Flush()
	})
}

func (a *App) publish(message string, result *models.SyncResult) {
	view := View{
		Message:   message,
		Result:    result,
		Enabled:   a.state.Config.Enabled,
		Interval:  a.state.AutoSyncInterval,
		AutoArmed: a.deps.Trigger.Armed(),
		Busy:      a.deps.Scheduler.Busy(),
		Bookmarks: len(a.state.Bookmarks),
		History:   len(a.state.History),
	}
	if a.state.Config.LastSync != nil {
		t := *a.state.Config.LastSync
		view.LastSync = &t
	}
	if next, ok := a.deps.Trigger.NextRun(); ok {
		view.NextRun = next
	}

	for _, sink := range a.sinks {
		sink(view)
	}
}

func clampInterval(d time.Duration) time.Duration {
	return max(d, time.Minute)
}
