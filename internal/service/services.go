package service

import (
	"github.com/MKhiriev/franny-sync/internal/adapter"
	"github.com/MKhiriev/franny-sync/internal/config"
	"github.com/MKhiriev/franny-sync/internal/logger"
	"github.com/MKhiriev/franny-sync/internal/store"
)

// Services is everything the control surfaces call into.
type Services struct {
	Credentials CredentialResolver
	SyncEngine  SyncEngine
	Collections CollectionService
	SyncConfig  store.SyncConfigStorage
}

func NewServices(storages *store.Storages, backend adapter.CredentialBackend, cfg config.Credentials, logger *logger.Logger) *Services {
	credentials := NewCredentialResolver(backend, cfg.Service, cfg.Account, logger)

	return &Services{
		Credentials: credentials,
		SyncEngine: NewSyncEngine(
			credentials,
			storages.SyncStore,
			storages.Collections,
			storages.SyncConfig,
			storages.LockPath,
			logger,
		),
		Collections: NewCollectionService(storages.Collections, logger),
		SyncConfig:  storages.SyncConfig,
	}
}
