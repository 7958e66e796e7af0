package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mymath/mymath/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change game settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := resolveEnv(cmd)
		if err != nil {
			return err
		}
		cfg, err := loadConfig(env)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "# %s\n", describeConfigPath(cfg.Path))
		settings := cfg.Settings()
		for _, k := range config.Keys() {
			fmt.Fprintf(out, "%-22s %v\n", k, settings[k])
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Write one setting to the config file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := resolveEnv(cmd)
		if err != nil {
			return err
		}
		path := configPath(env)
		if err := config.Set(path, args[0], args[1]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s = %s (%s)\n", args[0], args[1], path)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print where the config file is read from",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := resolveEnv(cmd)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), configPath(env))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
}
