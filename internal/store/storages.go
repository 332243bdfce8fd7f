package store

import (
	"github.com/MKhiriev/franny-sync/internal/config"
	"github.com/MKhiriev/franny-sync/internal/crypto"
	"github.com/MKhiriev/franny-sync/internal/logger"
)

// lockSuffix names the cross-process sync lock next to the store file.
const lockSuffix = ".lock"

// Storages groups the on-disk state of one profile so it can be handed to
// the service layer as a single value.
type Storages struct {
	// SyncStore opens the encrypted sync store. Nothing is touched on disk
	// until Open is called.
	SyncStore EncryptedStoreOpener
	// Collections holds the local bookmark and history files.
	Collections CollectionStorage
	// SyncConfig holds the sync settings file.
	SyncConfig SyncConfigStorage
	// LockPath is the file locked for the duration of a sync.
	LockPath string
}

// NewStorages builds the storages for cfg. The settings file is loaded
// eagerly; the encrypted store is opened per operation.
func NewStorages(cfg config.Storage, keyChain crypto.KeyChain, logger *logger.Logger) *Storages {
	logger.Info().Str("store", cfg.StorePath).Msg("creating new storages...")

	file := NewAtomicFile(logger)
	syncConfig := NewSyncConfigStorage(cfg.SyncConfigPath, file)
	syncConfig.Load()

	return &Storages{
		SyncStore:   NewEncryptedStoreOpener(cfg.StorePath, keyChain, logger),
		Collections: NewCollectionStorage(cfg.BookmarksPath, cfg.HistoryPath, file),
		SyncConfig:  syncConfig,
		LockPath:    cfg.StorePath + lockSuffix,
	}
}
