package cmd

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mymath/mymath/internal/config"
	"github.com/mymath/mymath/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "mymath",
	Short: "Counting and addition games for young kids",
	Long:  "MyMath is a terminal game that teaches young children to count and add with pictures, sounds and a bonus video.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, nil)
	},
	SilenceUsage: true,
}

// Execute runs the root command until it finishes or the process is interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to the YAML config file (overrides MYMATH_CONFIG env var)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MYMATH_DB env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(assetsCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveEnv reads the MYMATH_* variables and lets the persistent flags
// override them.
func resolveEnv(cmd *cobra.Command) (config.Env, error) {
	env, err := config.LoadEnv()
	if err != nil {
		return config.Env{}, err
	}
	if p, _ := cmd.Flags().GetString("config"); p != "" {
		env.ConfigPath = p
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		env.DBPath = p
	}
	return env, nil
}

// loadConfig loads the config file. A missing file is only an error when
// the path was given explicitly.
func loadConfig(env config.Env) (*config.Config, error) {
	cfg, err := config.Load(env.ConfigPath, env.ConfigPath != "")
	if errors.Is(err, config.ErrConfigMissing) {
		return nil, fmt.Errorf("%w (create it with `mymath config set`)", err)
	}
	return cfg, err
}

// configPath is where `config set` writes.
func configPath(env config.Env) string {
	if env.ConfigPath != "" {
		return env.ConfigPath
	}
	return config.DefaultConfigPath()
}

// openStore resolves the database path and opens it.
func openStore(env config.Env) (*store.Store, error) {
	dbPath, err := store.DefaultDBPath(env.DBPath)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}
