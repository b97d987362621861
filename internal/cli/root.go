package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/abisync/internal/adapters/progress"
	"github.com/trebuchet-org/abisync/internal/app"
	"github.com/trebuchet-org/abisync/internal/cli/render"
	"github.com/trebuchet-org/abisync/internal/config"
	domainconfig "github.com/trebuchet-org/abisync/internal/domain/config"
	"github.com/trebuchet-org/abisync/internal/usecase"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the abisync command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "abisync [chain-id]",
		Short: "Sync deployed contract addresses and ABIs into frontend bindings",
		Long: `abisync reads the latest Foundry broadcast for a chain and writes one
TypeScript binding plus one raw ABI JSON file per deployed contract into the
frontend contracts directory.

The chain id defaults to ` + domainconfig.DefaultChainID + ` (local anvil).`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v, err := config.SetupViper(cmd)
			if err != nil {
				return err
			}

			var chainArg config.ChainArg
			if len(args) == 1 {
				chainArg = config.ChainArg(args[0])
			}

			appInstance, err := app.InitApp(v, chainArg, newProgressSink(v))
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			cmd.SetContext(context.WithValue(cmd.Context(), appKey, appInstance))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			renderer := render.NewSyncRenderer(cmd.OutOrStdout(), app.Config.ProjectRoot)
			renderer.RenderStart(app.Config)

			result, err := app.SyncBindings.Run(cmd.Context())
			if err != nil {
				return err
			}

			return renderer.RenderSyncResult(result)
		},
	}

	return rootCmd
}

// newProgressSink shows a spinner unless the run is non-interactive
func newProgressSink(v *viper.Viper) usecase.ProgressSink {
	if v.GetBool("non_interactive") {
		return progress.NewNopSink()
	}
	return progress.NewSpinnerSink()
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}
