package app

import (
	"github.com/trebuchet-org/abisync/internal/domain/config"
	"github.com/trebuchet-org/abisync/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	Config *config.RuntimeConfig

	SyncBindings *usecase.SyncBindings
}

// NewApp creates a new application instance
func NewApp(cfg *config.RuntimeConfig, syncBindings *usecase.SyncBindings) (*App, error) {
	return &App{
		Config:       cfg,
		SyncBindings: syncBindings,
	}, nil
}
