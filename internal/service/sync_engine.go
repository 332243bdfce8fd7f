// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"github.com/MKhiriev/franny-sync/internal/logger"
	"github.com/MKhiriev/franny-sync/internal/store"
	"github.com/MKhiriev/franny-sync/models"
)

// Result messages shown verbatim by status sinks.
const (
	msgMissingPassphrase = "No sync passphrase provided."
	msgSyncLocked        = "Another sync is in progress."
	msgTestOK            = "Sync test OK (local encrypted store)."
	msgTestMismatch      = "Sync test failed: read-back mismatch."
	msgCompleted         = "Sync completed."
)

// syncError carries the user-facing message of a failed stage together with
// its taxonomy sentinel.
type syncError struct {
	msg      string
	sentinel error
	cause    error
}

func (e *syncError) Error() string {
	if e.cause == nil {
		return e.msg
	}
	return e.msg + ": " + e.cause.Error()
}

func (e *syncError) Unwrap() []error {
	if e.cause == nil {
		return []error{e.sentinel}
	}
	return []error{e.sentinel, e.cause}
}

func kindOf(err error) models.ErrorKind {
	switch {
	case errors.Is(err, ErrMissingPassphrase):
		return models.KindMissingPassphrase
	case errors.Is(err, ErrSyncLocked):
		return models.KindSyncInProgress
	case errors.Is(err, ErrStoreUnavailable):
		return models.KindStoreUnavailable
	case errors.Is(err, ErrStoreReadWrite):
		return models.KindStoreReadWriteError
	case errors.Is(err, ErrMergeWrite):
		return models.KindMergeWriteError
	default:
		return models.KindUnexpectedError
	}
}

type syncEngine struct {
	credentials CredentialResolver
	opener      store.EncryptedStoreOpener
	collections store.CollectionStorage
	syncConfig  store.SyncConfigStorage
	lockPath    string
	now         func() time.Time
	logger      *logger.Logger
}

// NewSyncEngine wires the engine. lockPath names the file used to keep two
// processes from syncing the same profile at once.
func NewSyncEngine(
	credentials CredentialResolver,
	opener store.EncryptedStoreOpener,
	collections store.CollectionStorage,
	syncConfig store.SyncConfigStorage,
	lockPath string,
	log *logger.Logger,
) SyncEngine {
	return &syncEngine{
		credentials: credentials,
		opener:      opener,
		collections: collections,
		syncConfig:  syncConfig,
		lockPath:    lockPath,
		now:         time.Now,
		logger:      log,
	}
}

// PerformSync implements [SyncEngine]. The store is opened after the
// passphrase is resolved and the process lock is held, and is closed before
// returning. last_sync only moves on success.
func (e *syncEngine) PerformSync(ctx context.Context, req SyncRequest) (result models.SyncResult) {
	if req.JobID == "" {
		req.JobID = uuid.NewString()
	}
	ctx = e.logger.WithJob(ctx, req.JobID, "sync")
	log := logger.FromContext(ctx).With().Str("direction", string(req.Direction)).Logger()
	started := e.now()

	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Bytes("stack", debug.Stack()).Msg("sync panicked")
			result = models.Failed(req.Direction, models.KindUnexpectedError, fmt.Sprintf("Unexpected sync error: %v", r))
		}
		result.JobID = req.JobID
		log.Info().
			Bool("success", result.Success).
			Str("kind", string(result.Kind)).
			Dur("took", e.now().Sub(started)).
			Msg(result.Message)
	}()

	if err := e.run(ctx, req, &result); err != nil {
		return models.Failed(req.Direction, kindOf(err), err.Error())
	}
	return result
}

func (e *syncEngine) run(ctx context.Context, req SyncRequest, result *models.SyncResult) error {
	if _, err := models.ParseDirection(string(req.Direction)); err != nil {
		return &syncError{msg: fmt.Sprintf("Unknown sync direction: %s", req.Direction), sentinel: ErrUnknownDirection}
	}

	passphrase, err := e.credentials.Resolve(req.Passphrase, req.UIPassphrase)
	if err != nil {
		return &syncError{msg: msgMissingPassphrase, sentinel: ErrMissingPassphrase}
	}

	unlock, err := e.lock()
	if err != nil {
		return err
	}
	defer unlock()

	st, err := e.opener.Open(ctx, passphrase)
	if err != nil {
		return &syncError{msg: "Failed to open sync store", sentinel: ErrStoreUnavailable, cause: err}
	}
	defer func() {
		if err := st.Close(); err != nil {
			logger.FromContext(ctx).Warn().Err(err).Msg("closing sync store")
		}
	}()

	now := e.now().UTC()
	ts := models.FormatTimestamp(now)

	switch req.Direction {
	case models.DirectionTest:
		if err := e.roundTrip(ctx, st, ts); err != nil {
			return err
		}
		*result = models.Succeeded(req.Direction, msgTestOK)

	default:
		if req.Direction == models.DirectionPush || req.Direction == models.DirectionSync {
			if err := e.push(ctx, st, req, ts); err != nil {
				return err
			}
		}
		*result = models.Succeeded(req.Direction, msgCompleted)

		if req.Direction == models.DirectionPull || req.Direction == models.DirectionSync {
			bookmarks, history, err := e.pull(ctx, st, req)
			if err != nil {
				return err
			}
			result.Bookmarks, result.History = bookmarks, history
		}
	}

	e.markSynced(ctx, now, result)
	return nil
}

// lock takes the cross-process sync lock without waiting.
func (e *syncEngine) lock() (func(), error) {
	if err := os.MkdirAll(filepath.Dir(e.lockPath), 0o700); err != nil {
		return nil, &syncError{msg: "Failed to open sync store", sentinel: ErrStoreUnavailable, cause: err}
	}

	fl := flock.New(e.lockPath)
	locked, err := fl.TryLock()
	if err != nil {
		return nil, &syncError{msg: "Failed to open sync store", sentinel: ErrStoreUnavailable, cause: err}
	}
	if !locked {
		return nil, &syncError{msg: msgSyncLocked, sentinel: ErrSyncLocked}
	}

	return func() {
		if err := fl.Unlock(); err != nil {
			e.logger.Warn().Err(err).Str("path", e.lockPath).Msg("releasing sync lock")
		}
	}, nil
}

func (e *syncEngine) roundTrip(ctx context.Context, st store.EncryptedStore, ts string) error {
	if err := st.Set(ctx, models.DocumentKeySyncTest, models.SyncDocument{Timestamp: ts}); err != nil {
		return &syncError{msg: "Sync test failed", sentinel: ErrStoreReadWrite, cause: err}
	}

	got, found, err := st.Get(ctx, models.DocumentKeySyncTest)
	if err != nil {
		return &syncError{msg: "Sync test failed", sentinel: ErrStoreReadWrite, cause: err}
	}
	if !found || got.Timestamp != ts {
		return &syncError{msg: msgTestMismatch, sentinel: ErrStoreReadWrite}
	}

	return nil
}

func (e *syncEngine) push(ctx context.Context, st store.EncryptedStore, req SyncRequest, ts string) error {
	docs := []models.SyncDocument{
		{Key: models.DocumentKeyBookmarks, Timestamp: ts, Data: req.Bookmarks.Clone()},
		{Key: models.DocumentKeyHistory, Timestamp: ts, Data: req.History.Tail(models.PushHistoryLimit)},
	}
	for _, doc := range docs {
		if doc.Data == nil {
			doc.Data = []string{}
		}
		if err := st.Set(ctx, doc.Key, doc); err != nil {
			return &syncError{msg: "Failed to push data", sentinel: ErrStoreReadWrite, cause: err}
		}
	}

	logger.FromContext(ctx).Debug().
		Int("bookmarks", len(req.Bookmarks)).
		Int("history", min(len(req.History), models.PushHistoryLimit)).
		Msg("pushed collections")
	return nil
}

// pull merges the stored collections into the snapshot and commits the
// result to the local files, bookmarks first.
func (e *syncEngine) pull(ctx context.Context, st store.EncryptedStore, req SyncRequest) (models.BookmarkSet, models.HistoryLog, error) {
	remoteBookmarks, _, err := st.Get(ctx, models.DocumentKeyBookmarks)
	if err != nil {
		return nil, nil, &syncError{msg: "Failed to pull data", sentinel: ErrStoreReadWrite, cause: err}
	}
	remoteHistory, _, err := st.Get(ctx, models.DocumentKeyHistory)
	if err != nil {
		return nil, nil, &syncError{msg: "Failed to pull data", sentinel: ErrStoreReadWrite, cause: err}
	}

	bookmarks := MergeBookmarks(req.Bookmarks, models.BookmarkSet(remoteBookmarks.Data))
	if err := e.collections.SaveBookmarks(bookmarks); err != nil {
		return nil, nil, &syncError{msg: "Failed to write merged bookmarks", sentinel: ErrMergeWrite, cause: err}
	}

	history := MergeHistory(req.History, models.HistoryLog(remoteHistory.Data), models.HistoryCap)
	if err := e.collections.SaveHistory(history); err != nil {
		return nil, nil, &syncError{msg: "Failed to write merged history", sentinel: ErrMergeWrite, cause: err}
	}

	logger.FromContext(ctx).Debug().
		Int("bookmarks", len(bookmarks)).
		Int("history", len(history)).
		Msg("merged collections")
	return bookmarks, history, nil
}

// markSynced records the success time. A failed settings write is logged;
// the run still succeeded and the in-memory value moves forward.
func (e *syncEngine) markSynced(ctx context.Context, at time.Time, result *models.SyncResult) {
	if _, err := e.syncConfig.MarkSynced(at); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("saving last sync time")
	}
	result.LastSync = &at
}
