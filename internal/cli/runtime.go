package cli

import (
	"fmt"
	"time"

	"github.com/MKhiriev/franny-sync/internal/adapter"
	"github.com/MKhiriev/franny-sync/internal/client"
	"github.com/MKhiriev/franny-sync/internal/config"
	"github.com/MKhiriev/franny-sync/internal/crypto"
	"github.com/MKhiriev/franny-sync/internal/logger"
	"github.com/MKhiriev/franny-sync/internal/service"
	"github.com/MKhiriev/franny-sync/internal/store"
	"github.com/MKhiriev/franny-sync/internal/workers"
)

// runtime is the wired application behind one command invocation.
type runtime struct {
	cfg      *config.StructuredConfig
	logger   *logger.Logger
	storages *store.Storages
	backend  adapter.CredentialBackend
	services *service.Services
}

// bootstrap resolves the configuration and wires storages and services.
// Logs go to the rotated log file so stdout stays for command output.
func (o *rootOptions) bootstrap(role string) (*runtime, error) {
	cfg, err := config.GetStructuredConfig(o.flagCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.NewClientLogger(role, cfg.App.LogFile)

	keyChain := o.keyChain
	if keyChain == nil {
		keyChain = crypto.NewKeyChain()
	}

	storages := store.NewStorages(cfg.Storage, keyChain, log)
	backend := adapter.NewCredentialBackend(cfg.Credentials, log)

	return &runtime{
		cfg:      cfg,
		logger:   log,
		storages: storages,
		backend:  backend,
		services: service.NewServices(storages, backend, cfg.Credentials, log),
	}, nil
}

// newApp builds the control loop on top of w.
func (r *runtime) newApp(w *workers.Workers, interval time.Duration) *client.App {
	return client.NewApp(client.Deps{
		Engine:      r.services.SyncEngine,
		Credentials: r.services.Credentials,
		Collections: r.storages.Collections,
		SyncConfig:  r.services.SyncConfig,
		Scheduler:   w.Scheduler,
		Trigger:     w.Trigger,
		Logger:      r.logger,
	}, interval)
}
