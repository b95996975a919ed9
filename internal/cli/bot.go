package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mcoot/blockgame-go/internal/factory"
	"github.com/mcoot/blockgame-go/internal/model"
	"github.com/mcoot/blockgame-go/internal/services/bot"
	"github.com/mcoot/blockgame-go/internal/services/leaderboard"
)

type botOptions struct {
	strategy  string
	mode      string
	games     int
	maxPieces int
	seed      uint64
	submit    bool
}

func newBotCmd() *cobra.Command {
	opts := botOptions{}

	cmd := &cobra.Command{
		Use:   "bot",
		Short: "Let a bot play games without a terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := model.ParseGameMode(opts.mode)
			if err != nil {
				return err
			}
			if opts.games < 1 {
				return fmt.Errorf("games must be at least 1: %w", model.ErrInvalidConfig)
			}

			logger, logCloser, err := cfg.Logger()
			if err != nil {
				return err
			}
			defer func() { _ = logCloser.Close() }()

			fc, err := cfg.FactoryConfig(logger, opts.seed)
			if err != nil {
				return err
			}
			app, err := factory.New(fc)
			if err != nil {
				return err
			}

			results, err := runBotGames(cmd.Context(), app, mode, opts, logger)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			for _, r := range results {
				out.Print(r.GameResult)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.strategy, "strategy", bot.StrategyGreedy, "Bot strategy: greedy, random")
	cmd.Flags().StringVar(&opts.mode, "mode", string(model.ModeClassic), modeUsage)
	cmd.Flags().IntVar(&opts.games, "games", 1, "Number of games to play")
	cmd.Flags().IntVar(&opts.maxPieces, "max-pieces", bot.DefaultMaxPieces, "End a game after this many pieces")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "Fix the shape sequence")
	cmd.Flags().BoolVar(&opts.submit, "submit", false, "Submit each game to the leaderboard server")
	cmd.Flags().StringVar(&cfg.TuningFile, "tuning", cfg.TuningFile, "TOML tuning file (env: BLOCKGAME_TUNING)")
	cmd.Flags().StringVar(&cfg.StorageType, "storage", cfg.StorageType, "Local score storage: memory, redis (env: STORAGE_TYPE)")

	return cmd
}

// runBotGames plays opts.games games back to back, recording each one
func runBotGames(ctx context.Context, app *factory.App, mode model.GameMode, opts botOptions, logger *slog.Logger) ([]sessionResult, error) {
	player := "bot-" + opts.strategy

	results := make([]sessionResult, 0, opts.games)
	for i := 0; i < opts.games; i++ {
		recorder := leaderboard.NewRecorder(app.LeaderboardService, player, logger)
		game, err := app.NewGame(mode, recorder)
		if err != nil {
			return nil, err
		}

		summary, err := app.BotService.PlayGame(ctx, game.Engine, game.Runner, opts.strategy, opts.maxPieces)
		if err != nil {
			return nil, err
		}

		result := sessionResult{
			GameResult: NewGameResult(player, summary, true),
			summary:    summary,
		}
		if record := recorder.Last(); record != nil {
			result.RecordID = string(record.ID)
		}
		if opts.submit {
			submitted, err := client.SubmitScore(player, summary)
			if err != nil {
				return nil, fmt.Errorf("failed to submit score: %w", err)
			}
			result.SubmittedID = submitted.ID
		}
		results = append(results, result)
	}
	return results, nil
}
