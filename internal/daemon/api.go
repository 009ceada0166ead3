package daemon

import (
	"context"

	"noteboard/internal/logging"
	"noteboard/internal/store"
)

type API struct {
	Version  string
	Repo     *store.Repository
	Shutdown func(context.Context) error
	Logger   logging.Logger
}
