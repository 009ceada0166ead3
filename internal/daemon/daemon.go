// Package daemon is the HTTP API the dashboard talks to: note records,
// the active locale and the translation tables, persisted in bbolt and
// guarded by a bearer token.
package daemon

import (
	"context"
	"errors"
	"net/http"
	"time"

	"noteboard/internal/logging"
	"noteboard/internal/store"
)

type Daemon struct {
	addr    string
	token   string
	version string
	repo    *store.Repository
	log     logging.Logger
	server  *http.Server
}

func New(addr, token, version string, repo *store.Repository, log logging.Logger) *Daemon {
	if log == nil {
		log = logging.Nop()
	}
	return &Daemon{
		addr:    addr,
		token:   token,
		version: version,
		repo:    repo,
		log:     log,
	}
}

// Run serves the API until ctx is canceled, then shuts down gracefully.
func (d *Daemon) Run(ctx context.Context) error {
	if err := d.repo.SeedTranslations(ctx, seedTables); err != nil {
		return err
	}

	api := &API{
		Version: d.version,
		Repo:    d.repo,
		Logger:  d.log,
	}

	mux := http.NewServeMux()
	api.RegisterRoutes(mux)

	handler := LoggingMiddleware(d.log, TokenAuthMiddleware(d.token, mux))
	d.server = &http.Server{
		Addr:    d.addr,
		Handler: handler,
	}
	api.Shutdown = d.server.Shutdown

	errCh := make(chan error, 1)
	go func() {
		d.log.Info("daemon listening", logging.F("addr", d.addr))
		errCh <- d.server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := d.server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		err := <-errCh
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
