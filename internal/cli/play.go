package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/mcoot/blockgame-go/internal/factory"
	"github.com/mcoot/blockgame-go/internal/model"
	"github.com/mcoot/blockgame-go/internal/services/engine"
	"github.com/mcoot/blockgame-go/internal/services/leaderboard"
	"github.com/mcoot/blockgame-go/internal/sound"
	"github.com/mcoot/blockgame-go/internal/terminal"
)

type playOptions struct {
	mode      string
	player    string
	timeLimit time.Duration
	seed      uint64
	sound     bool
	submit    bool
}

func newPlayCmd() *cobra.Command {
	opts := playOptions{}

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.mode, "mode", string(model.ModeClassic), modeUsage)
	cmd.Flags().StringVar(&opts.player, "player", cfg.Player, "Name recorded with the score (env: BLOCKGAME_PLAYER)")
	cmd.Flags().DurationVar(&opts.timeLimit, "time", 0, "Time limit for timed mode (default from tuning)")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "Fix the shape sequence")
	cmd.Flags().BoolVar(&opts.sound, "sound", false, "Play sound effects")
	cmd.Flags().BoolVar(&opts.submit, "submit", false, "Submit the finished game to the leaderboard server")
	cmd.Flags().StringVar(&cfg.TuningFile, "tuning", cfg.TuningFile, "TOML tuning file (env: BLOCKGAME_TUNING)")
	cmd.Flags().StringVar(&cfg.StorageType, "storage", cfg.StorageType, "Local score storage: memory, redis (env: STORAGE_TYPE)")

	return cmd
}

func runPlay(cmd *cobra.Command, opts playOptions) error {
	mode, err := model.ParseGameMode(opts.mode)
	if err != nil {
		return err
	}
	if opts.timeLimit < 0 {
		return fmt.Errorf("time limit must not be negative: %w", model.ErrInvalidConfig)
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
	if opts.timeLimit > 0 {
		fc.Settings.Scheduler.TimeLimit = opts.timeLimit
	}
	app, err := factory.New(fc)
	if err != nil {
		return err
	}

	var cues sound.Player
	if opts.sound {
		speaker, err := sound.OpenSpeaker(sound.DefaultVolume, logger)
		if err != nil {
			// The game is still playable without audio
			logger.Warn("sound disabled", slog.String("error", err.Error()))
		} else {
			defer speaker.Close()
			cues = speaker
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialise terminal: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := playSession(ctx, app, screen, mode, opts.player, cues, logger)
	screen.Fini()
	if err != nil {
		return err
	}

	if opts.submit && result.Finished {
		submitted, err := client.SubmitScore(opts.player, result.summary)
		if err != nil {
			return fmt.Errorf("failed to submit score: %w", err)
		}
		result.SubmittedID = submitted.ID
	}

	NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result.GameResult)
	return nil
}

type sessionResult struct {
	GameResult
	summary model.GameSummary
}

// playSession runs one game on screen and records it if it reaches game over.
// cues may be nil.
func playSession(
	ctx context.Context,
	app *factory.App,
	screen terminal.Screen,
	mode model.GameMode,
	player string,
	cues sound.Player,
	logger *slog.Logger,
) (sessionResult, error) {
	renderer := terminal.NewRenderer(screen)
	recorder := leaderboard.NewRecorder(app.LeaderboardService, player, logger)

	sinks := engine.MultiSink{renderer, recorder}
	if cues != nil {
		sinks = append(sinks, sound.NewCues(cues))
	}

	game, err := app.NewGame(mode, sinks)
	if err != nil {
		return sessionResult{}, err
	}

	err = terminal.Play(ctx, screen, game.Runner, renderer, logger)
	if err != nil && !errors.Is(err, context.Canceled) {
		return sessionResult{}, err
	}

	state := game.Engine.State()
	summary := state.Summary()
	if !state.IsOver() {
		summary.EndedAt = app.Clock.Now()
	}

	result := sessionResult{
		GameResult: NewGameResult(player, summary, state.IsOver()),
		summary:    summary,
	}
	if record := recorder.Last(); record != nil {
		result.RecordID = string(record.ID)
	}
	return result, nil
}
