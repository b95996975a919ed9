package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/blockgame-go/internal/model"
)

func newScoresCmd() *cobra.Command {
	var (
		mode  string
		limit int
	)

	cmd := &cobra.Command{
		Use:   "scores",
		Short: "Show the high-score table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := model.ParseGameMode(mode)
			if err != nil {
				return err
			}

			result, err := client.TopScores(m, limit)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&mode, "mode", string(model.ModeClassic), modeUsage)
	cmd.Flags().IntVar(&limit, "limit", 0, "Number of scores to show (default: server default)")

	cmd.AddCommand(newScoreGetCmd())
	cmd.AddCommand(newScoreDeleteCmd())

	return cmd
}

func newScoreGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a single recorded game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := client.GetScore(args[0])
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func newScoreDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a recorded game from the table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.DeleteScore(args[0]); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.PrintMessage(fmt.Sprintf("Deleted score %s", args[0]))
			return nil
		},
	}
}
