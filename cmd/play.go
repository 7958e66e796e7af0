package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mymath/mymath/internal/round"
)

var playCmd = &cobra.Command{
	Use:       "play <counting|addition>",
	Short:     "Start a game right away, skipping the menus",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{round.Counting.String(), round.Addition.String()},
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := round.ParseMode(args[0])
		if err != nil {
			return err
		}
		return runApp(cmd, &mode)
	},
}
