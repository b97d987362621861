package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/abisync/internal/domain"
	"github.com/trebuchet-org/abisync/internal/domain/config"
)

// Defaults for configuration keys
const (
	DefaultScript     = "Deploy.s.sol"
	DefaultOutputDir  = "../dapp/src/app/contracts"
	DefaultBindingExt = "ts"
)

// ChainArg is the raw positional chain argument from the command line
type ChainArg string

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper, chainArg ChainArg) (*config.RuntimeConfig, error) {
	chainID, err := ParseChainID(string(chainArg))
	if err != nil {
		return nil, err
	}

	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		return nil, fmt.Errorf("project root not configured")
	}

	foundryConfig, err := loadFoundryConfig(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to load foundry config: %w", err)
	}
	profile := foundryConfig.DefaultProfile()

	checksummer := strings.ToLower(v.GetString("checksummer"))
	if checksummer != config.ChecksummerCast && checksummer != config.ChecksummerNative {
		return nil, fmt.Errorf("invalid checksummer %q (valid: %s, %s)", checksummer, config.ChecksummerCast, config.ChecksummerNative)
	}

	cfg := &config.RuntimeConfig{
		ProjectRoot:    projectRoot,
		ChainID:        chainID,
		BroadcastDir:   resolvePath(projectRoot, lo.CoalesceOrEmpty(profile.Broadcast, "broadcast")),
		OutDir:         resolvePath(projectRoot, lo.CoalesceOrEmpty(profile.Out, "out")),
		Script:         lo.CoalesceOrEmpty(v.GetString("script"), DefaultScript),
		OutputDir:      resolvePath(projectRoot, lo.CoalesceOrEmpty(v.GetString("output_dir"), DefaultOutputDir)),
		BindingExt:     strings.TrimPrefix(lo.CoalesceOrEmpty(v.GetString("binding_ext"), DefaultBindingExt), "."),
		Manifest:       v.GetBool("manifest"),
		Checksummer:    checksummer,
		CastPath:       lo.CoalesceOrEmpty(v.GetString("cast_path"), "cast"),
		ForgePath:      lo.CoalesceOrEmpty(v.GetString("forge_path"), "forge"),
		LogLevel:       v.GetString("log_level"),
		NonInteractive: v.GetBool("non_interactive"),
		FoundryConfig:  foundryConfig,
	}

	return cfg, nil
}

// ParseChainID parses the positional chain argument, falling back to the local anvil chain
func ParseChainID(arg string) (uint64, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		arg = config.DefaultChainID
	}
	chainID, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidChainID, arg)
	}
	return chainID, nil
}

// FindProjectRoot walks up from current directory to find foundry.toml
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return findProjectRootFrom(dir)
}

func findProjectRootFrom(dir string) (string, error) {
	for {
		foundryToml := filepath.Join(dir, "foundry.toml")
		if _, err := os.Stat(foundryToml); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root without finding foundry.toml
			return "", fmt.Errorf("not in a Foundry project (foundry.toml not found)")
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance.
// The project root is resolved first so that .env files and .abisync.yaml can be read from it.
func SetupViper(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()

	// Set up environment variables
	v.SetEnvPrefix("ABISYNC")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Set defaults
	v.SetDefault("script", DefaultScript)
	v.SetDefault("output_dir", DefaultOutputDir)
	v.SetDefault("binding_ext", DefaultBindingExt)
	v.SetDefault("checksummer", config.ChecksummerCast)
	v.SetDefault("cast_path", "cast")
	v.SetDefault("forge_path", "forge")
	v.SetDefault("manifest", false)
	v.SetDefault("log_level", "info")
	v.SetDefault("non_interactive", false)

	if cmd != nil {
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			if err := v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f); err != nil {
				panic(err)
			}
		})
	}

	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			return nil, err
		}
	}
	projectRoot, err := filepath.Abs(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project root: %w", err)
	}
	v.Set("project_root", projectRoot)

	loadDotEnv(projectRoot)

	// Set up config file
	v.SetConfigName(".abisync")
	v.SetConfigType("yaml")
	v.AddConfigPath(projectRoot)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read .abisync.yaml: %w", err)
		}
	}

	return v, nil
}

func resolvePath(projectRoot, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(projectRoot, p)
}
