package cmd

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mymath/mymath/internal/round"
	"github.com/mymath/mymath/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past game sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		mode, _ := cmd.Flags().GetString("mode")
		verbose, _ := cmd.Flags().GetBool("rounds")

		if mode != "" {
			m, err := round.ParseMode(mode)
			if err != nil {
				return err
			}
			mode = m.String()
		}

		env, err := resolveEnv(cmd)
		if err != nil {
			return err
		}
		st, err := openStore(env)
		if err != nil {
			return err
		}
		defer st.Close()

		return printHistory(cmd, st.EventRepo(), store.QueryOpts{Limit: limit, Mode: mode}, verbose)
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum number of sessions to show")
	historyCmd.Flags().String("mode", "", "Only show sessions of this game (counting or addition)")
	historyCmd.Flags().Bool("rounds", false, "Also list every round of each session")
}

func printHistory(cmd *cobra.Command, repo store.EventRepo, opts store.QueryOpts, verbose bool) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	sessions, err := repo.QuerySessions(ctx, opts)
	if err != nil {
		return fmt.Errorf("query sessions: %w", err)
	}
	if len(sessions) == 0 {
		fmt.Fprintln(out, "No sessions played yet.")
		return nil
	}

	fmt.Fprintf(out, "%-16s  %-9s  %-7s  %-7s  %-5s  %s\n",
		"Played", "Game", "Time", "Correct", "Acc", "Video")
	fmt.Fprintln(out, strings.Repeat("─", 64))

	for _, s := range sessions {
		fmt.Fprintf(out, "%-16s  %-9s  %-7s  %-7s  %4.0f%%  %s\n",
			s.StartedAt.Local().Format("2006-01-02 15:04"),
			s.Mode,
			formatDuration(s.EndedAt.Sub(s.StartedAt).Seconds()),
			fmt.Sprintf("%d/%d", s.Correct, s.Rounds),
			s.Accuracy()*100,
			videoName(s.VideoPath),
		)
		if verbose {
			if err := printRounds(cmd, out, repo, s.SessionID); err != nil {
				return err
			}
		}
	}
	return nil
}

func printRounds(cmd *cobra.Command, out io.Writer, repo store.EventRepo, sessionID string) error {
	outcomes, err := repo.QueryOutcomes(cmd.Context(), sessionID)
	if err != nil {
		return fmt.Errorf("query rounds of %s: %w", sessionID, err)
	}
	for _, o := range outcomes {
		fmt.Fprintf(out, "    %2d. %s\n", o.Round, o.Outcome().Review())
	}
	return nil
}

func formatDuration(secs float64) string {
	if secs < 0 {
		secs = 0
	}
	total := int(secs)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

func videoName(p string) string {
	if p == "" {
		return ""
	}
	return "🎬 " + filepath.Base(p)
}
