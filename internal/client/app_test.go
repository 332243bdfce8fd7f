package client

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/franny-sync/internal/adapter"
	"github.com/MKhiriev/franny-sync/internal/logger"
	"github.com/MKhiriev/franny-sync/internal/mock"
	"github.com/MKhiriev/franny-sync/internal/service"
	"github.com/MKhiriev/franny-sync/internal/store"
	"github.com/MKhiriev/franny-sync/internal/workers"
	"github.com/MKhiriev/franny-sync/models"
)

// ── fakes ─────────────────────────────────────────────────────────────────────

// engineFunc adapts a function to service.SyncEngine.
type engineFunc func(ctx context.Context, req service.SyncRequest) models.SyncResult

func (f engineFunc) PerformSync(ctx context.Context, req service.SyncRequest) models.SyncResult {
	return f(ctx, req)
}

// fakeTrigger records arming and lets the test fire by hand.
type fakeTrigger struct {
	mu       sync.Mutex
	interval time.Duration
	fire     func()
}

func (f *fakeTrigger) Arm(interval time.Duration, fire func()) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.interval, f.fire = interval, fire
	return nil
}

func (f *fakeTrigger) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.interval, f.fire = 0, nil
}

func (f *fakeTrigger) Armed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fire != nil
}

func (f *fakeTrigger) NextRun() (time.Time, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fire == nil {
		return time.Time{}, false
	}
	return time.Now().Add(f.interval), true
}

func (f *fakeTrigger) Interval() time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.interval
}

func (f *fakeTrigger) Tick() {
	f.mu.Lock()
	fire := f.fire
	f.mu.Unlock()
	if fire != nil {
		fire()
	}
}

type harness struct {
	app         *App
	dir         string
	views       chan View
	trigger     *fakeTrigger
	backend     *mock.MockCredentialBackend
	credentials service.CredentialResolver
	scheduler   *workers.TaskScheduler
	requests    chan service.SyncRequest
	gate        chan struct{}
	collections store.CollectionStorage
	syncConfig  store.SyncConfigStorage
}

type harnessOption func(t *testing.T, h *harness)

func withSyncEnabled(t *testing.T, h *harness) {
	_, err := h.syncConfig.SetEnabled(true)
	require.NoError(t, err)
}

// withEngineGate holds every sync after its request is recorded until gate
// is closed.
func withEngineGate(gate chan struct{}) harnessOption {
	return func(_ *testing.T, h *harness) {
		h.gate = gate
	}
}

func newHarness(t *testing.T, opts ...harnessOption) *harness {
	t.Helper()
	dir := t.TempDir()
	file := store.NewAtomicFile(logger.Nop())

	h := &harness{
		dir:         dir,
		views:       make(chan View, 256),
		trigger:     &fakeTrigger{},
		backend:     mock.NewMockCredentialBackend(gomock.NewController(t)),
		requests:    make(chan service.SyncRequest, 8),
		collections: store.NewCollectionStorage(filepath.Join(dir, "bookmarks.json"), filepath.Join(dir, "history.json"), file),
		syncConfig:  store.NewSyncConfigStorage(filepath.Join(dir, "sync_config.json"), file),
	}
	h.syncConfig.Load()
	h.backend.EXPECT().Available().Return(true).AnyTimes()
	h.credentials = service.NewCredentialResolver(h.backend, "franny_sync", "alice", logger.Nop())
	for _, opt := range opts {
		opt(t, h)
	}

	scheduler := workers.NewTaskScheduler(2, logger.Nop())
	h.scheduler = scheduler
	// resolves like the real engine and reports the passphrase it used
	engine := engineFunc(func(_ context.Context, req service.SyncRequest) models.SyncResult {
		passphrase, err := h.credentials.Resolve(req.Passphrase, req.UIPassphrase)
		if err != nil {
			return models.Failed(req.Direction, models.KindMissingPassphrase, "No sync passphrase provided.")
		}
		req.Passphrase = passphrase
		h.requests <- req
		if h.gate != nil {
			<-h.gate
		}
		now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
		res := models.Succeeded(req.Direction, "Sync completed.")
		res.Bookmarks = append(req.Bookmarks.Clone(), "https://from-store")
		res.History = req.History.Clone()
		res.LastSync = &now
		return res
	})

	h.app = NewApp(Deps{
		Engine:      engine,
		Credentials: h.credentials,
		Collections: h.collections,
		SyncConfig:  h.syncConfig,
		Scheduler:   scheduler,
		Trigger:     h.trigger,
		Logger:      logger.Nop(),
	}, 10*time.Minute)
	h.app.Subscribe(func(v View) { h.views <- v })

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		_ = h.app.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-stopped
		sctx, scancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer scancel()
		_ = scheduler.Shutdown(sctx)
	})

	return h
}

// waitView returns the first view whose message is want.
func (h *harness) waitView(t *testing.T, want string) View {
	t.Helper()
	timeout := time.After(5 * time.Second)
	for {
		select {
		case v := <-h.views:
			if v.Message == want {
				return v
			}
		case <-timeout:
			t.Fatalf("no view with message %q", want)
			return View{}
		}
	}
}

// settle waits until every command posted so far has run on the control
// goroutine, then until every background write has finished.
func (h *harness) settle(t *testing.T) {
	t.Helper()
	processed := make(chan struct{})
	h.app.post(func() { close(processed) })
	select {
	case <-processed:
	case <-time.After(5 * time.Second):
		t.Fatal("control loop is stuck")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, h.scheduler.Shutdown(ctx))
}

func (h *harness) noRequest(t *testing.T) {
	t.Helper()
	select {
	case req := <-h.requests:
		t.Fatalf("unexpected sync request: %+v", req)
	case <-time.After(50 * time.Millisecond):
	}
}

// ── Manual sync ───────────────────────────────────────────────────────────────

func TestApp_RunSyncWhenDisabled(t *testing.T) {
	h := newHarness(t)

	h.app.RunSync(models.DirectionTest, "pw")

	h.waitView(t, "Sync is disabled.")
	h.noRequest(t)
}

func TestApp_RunSyncWithoutPassphrase(t *testing.T) {
	h := newHarness(t, withSyncEnabled)
	h.backend.EXPECT().Get("franny_sync", "alice").Return("", adapter.ErrCredentialNotFound)

	h.app.RunSync(models.DirectionTest, "")

	v := h.waitView(t, "No sync passphrase provided.")
	require.NotNil(t, v.Result)
	assert.Equal(t, models.KindMissingPassphrase, v.Result.Kind)
	h.noRequest(t)
}

func TestApp_RunSyncLooksUpPassphraseOnWorker(t *testing.T) {
	h := newHarness(t, withSyncEnabled)
	release := make(chan struct{})
	h.backend.EXPECT().Get("franny_sync", "alice").DoAndReturn(func(_, _ string) (string, error) {
		<-release
		return "stored", nil
	})

	h.app.RunSync(models.DirectionTest, "")

	// the lookup is stuck, yet the control loop keeps serving commands
	h.app.AddBookmark("https://go.dev")
	h.waitView(t, "Bookmarked https://go.dev")

	close(release)
	req := <-h.requests
	assert.Equal(t, "stored", req.Passphrase)
	h.waitView(t, "Sync completed.")
}

func TestApp_RunSyncAdoptsResult(t *testing.T) {
	h := newHarness(t, withSyncEnabled)
	stored := make(chan string, 1)
	h.backend.EXPECT().Set("franny_sync", "alice", "pw").DoAndReturn(func(_, _, secret string) error {
		stored <- secret
		return nil
	})

	h.app.AddBookmark("https://go.dev")
	h.app.RunSync(models.DirectionPull, "pw")

	req := <-h.requests
	assert.Equal(t, models.DirectionPull, req.Direction)
	assert.Equal(t, "pw", req.Passphrase)
	assert.Equal(t, models.BookmarkSet{"https://go.dev"}, req.Bookmarks)
	assert.NotEmpty(t, req.JobID)

	v := h.waitView(t, "Sync completed.")
	require.NotNil(t, v.Result)
	assert.True(t, v.Result.Success)
	assert.Equal(t, 2, v.Bookmarks, "merged bookmarks are adopted")
	require.NotNil(t, v.LastSync)
	assert.Equal(t, 2026, v.LastSync.Year())

	select {
	case secret := <-stored:
		assert.Equal(t, "pw", secret)
	case <-time.After(5 * time.Second):
		t.Fatal("passphrase was not remembered")
	}
}

func TestApp_RunSyncUsesTypedPassphrase(t *testing.T) {
	h := newHarness(t, withSyncEnabled)
	// once to resolve, once more before remembering it
	h.backend.EXPECT().Get("franny_sync", "alice").Return("", adapter.ErrCredentialNotFound).Times(2)
	stored := make(chan string, 1)
	h.backend.EXPECT().Set("franny_sync", "alice", "typed").DoAndReturn(func(_, _, secret string) error {
		stored <- secret
		return nil
	})

	h.app.SetPassphraseInput("typed")
	h.app.RunSync(models.DirectionTest, "")

	req := <-h.requests
	assert.Equal(t, "typed", req.Passphrase)
	h.waitView(t, "Sync completed.")

	select {
	case <-stored:
	case <-time.After(5 * time.Second):
		t.Fatal("typed passphrase was not remembered")
	}
}

// ── Auto-sync ─────────────────────────────────────────────────────────────────

func TestApp_ArmsAtStartWhenEnabled(t *testing.T) {
	h := newHarness(t, withSyncEnabled)

	v := h.waitView(t, "Auto-sync every 10 min.")
	assert.True(t, v.AutoArmed)
	assert.Equal(t, 10*time.Minute, h.trigger.Interval())
}

func TestApp_SetAutoSyncClampsAndPersists(t *testing.T) {
	h := newHarness(t)
	assert.False(t, h.trigger.Armed())

	h.app.SetAutoSync(true, 0)
	v := h.waitView(t, "Auto-sync every 1 min.")
	assert.True(t, v.Enabled)
	assert.Equal(t, time.Minute, h.trigger.Interval())
	assert.Eventually(t, func() bool { return h.syncConfig.Current().Enabled }, 5*time.Second, 10*time.Millisecond)

	h.app.SetAutoSync(false, 5)
	v = h.waitView(t, "Auto-sync off.")
	assert.False(t, v.Enabled)
	assert.False(t, h.trigger.Armed())
	assert.Eventually(t, func() bool { return !h.syncConfig.Current().Enabled }, 5*time.Second, 10*time.Millisecond)
}

func TestApp_SetAutoSyncLastToggleWinsOnDisk(t *testing.T) {
	h := newHarness(t)

	for i := range 200 {
		h.app.SetAutoSync(i%2 == 0, 1)
	}
	h.app.SetAutoSync(false, 1)
	h.settle(t)

	onDisk := store.NewSyncConfigStorage(filepath.Join(h.dir, "sync_config.json"), store.NewAtomicFile(logger.Nop())).Load()
	assert.False(t, onDisk.Enabled)
}

func TestApp_AutoTickRunsSync(t *testing.T) {
	h := newHarness(t, withSyncEnabled)
	h.backend.EXPECT().Get("franny_sync", "alice").Return("stored", nil)
	h.waitView(t, "Auto-sync every 10 min.")

	h.trigger.Tick()

	req := <-h.requests
	assert.Equal(t, models.DirectionSync, req.Direction)
	assert.Equal(t, "stored", req.Passphrase)
	h.waitView(t, "Sync completed.")
}

func TestApp_AutoTickWithoutPassphrase(t *testing.T) {
	h := newHarness(t, withSyncEnabled)
	h.backend.EXPECT().Get("franny_sync", "alice").Return("", adapter.ErrCredentialNotFound)
	h.waitView(t, "Auto-sync every 10 min.")

	h.trigger.Tick()

	v := h.waitView(t, "Auto-sync skipped: no passphrase.")
	require.NotNil(t, v.Result)
	assert.Equal(t, models.KindMissingPassphrase, v.Result.Kind)
	h.noRequest(t)
}

func TestApp_AutoTickWhenDisabledIsSilent(t *testing.T) {
	h := newHarness(t)

	// arm directly so a tick reaches the loop while sync stays disabled
	require.NoError(t, h.trigger.Arm(time.Minute, h.app.fire))
	h.trigger.Tick()
	h.app.Refresh()

	v := h.waitView(t, "")
	assert.False(t, v.Enabled)
	h.noRequest(t)
}

// ── Collections ───────────────────────────────────────────────────────────────

func TestApp_AddBookmarkAndRecordVisitPersist(t *testing.T) {
	h := newHarness(t)

	h.app.AddBookmark("https://go.dev")
	h.app.AddBookmark("https://go.dev")
	h.app.RecordVisit("https://go.dev/doc")

	assert.Eventually(t, func() bool {
		return len(h.collections.LoadBookmarks()) == 1 && len(h.collections.LoadHistory()) == 1
	}, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, models.BookmarkSet{"https://go.dev"}, h.collections.LoadBookmarks())
	assert.Equal(t, models.HistoryLog{"https://go.dev/doc"}, h.collections.LoadHistory())
}

func TestApp_RapidEditsLeaveNewestCollectionsOnDisk(t *testing.T) {
	h := newHarness(t)

	var want models.BookmarkSet
	for i := range 100 {
		url := fmt.Sprintf("https://example.com/%d", i)
		want = append(want, url)
		h.app.AddBookmark(url)
		h.app.RecordVisit(url)
	}
	h.settle(t)

	assert.Equal(t, want, h.collections.LoadBookmarks())
	assert.Len(t, h.collections.LoadHistory(), 100)
	assert.Equal(t, "https://example.com/99", h.collections.LoadHistory()[99])
}

func TestApp_EditDuringPullIsNotLeftOnDisk(t *testing.T) {
	gate := make(chan struct{})
	h := newHarness(t, withSyncEnabled, withEngineGate(gate))
	h.backend.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	h.app.AddBookmark("https://go.dev")
	h.app.RunSync(models.DirectionPull, "pw")
	<-h.requests
	// lands between the snapshot and the adopted result
	h.app.AddBookmark("https://late.example")
	h.waitView(t, "Bookmarked https://late.example")
	close(gate)

	v := h.waitView(t, "Sync completed.")
	assert.Equal(t, 2, v.Bookmarks)
	h.settle(t)

	assert.Equal(t, models.BookmarkSet{"https://go.dev", "https://from-store"}, h.collections.LoadBookmarks(),
		"the files match the adopted state")
}

func TestApp_PostAfterStopDoesNotBlock(t *testing.T) {
	h := newHarness(t)
	app := h.app

	ctx, cancel := context.WithCancel(context.Background())
	other := NewApp(app.deps, time.Minute)
	done := make(chan struct{})
	go func() {
		_ = other.Run(ctx)
		close(done)
	}()
	cancel()
	<-done

	for range commandBuffer + 1 {
		other.Refresh()
	}
}
