//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/abisync/internal/adapters"
	"github.com/trebuchet-org/abisync/internal/config"
	"github.com/trebuchet-org/abisync/internal/logging"
	"github.com/trebuchet-org/abisync/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper, chainArg config.ChainArg, sink usecase.ProgressSink) (*App, error) {
	wire.Build(
		config.Provider,
		logging.LoggingSet,

		adapters.AllAdapters,

		usecase.NewSyncBindings,

		NewApp,
	)
	return nil, nil
}
