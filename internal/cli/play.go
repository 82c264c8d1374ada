package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/aliskhannn/periodic-quiz-bot/internal/config"
	"github.com/aliskhannn/periodic-quiz-bot/internal/delivery/terminal"
	"github.com/aliskhannn/periodic-quiz-bot/internal/logger"
	"github.com/aliskhannn/periodic-quiz-bot/internal/repository"
	"github.com/aliskhannn/periodic-quiz-bot/internal/service"
)

var (
	catalogPath string
	rounds      int
	logLevel    string
	noColor     bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "play asks questions until you quit.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return runPlay(ctx, cmd)
	},
}

func init() {
	playCmd.Flags().StringVarP(&catalogPath, "catalog", "c", "", "JSON or YAML element catalog (bundled catalog if empty)")
	playCmd.Flags().IntVarP(&rounds, "rounds", "n", 0, "number of questions, 0 for no limit")
	playCmd.Flags().StringVar(&logLevel, "log-level", "error", "log level: debug, info, warn, error")
	playCmd.Flags().BoolVar(&noColor, "no-color", false, "disable coloured output")

	rootCmd.AddCommand(playCmd)
}

func runPlay(ctx context.Context, cmd *cobra.Command) error {
	log, err := logger.New(&config.Config{Env: "local", Log: config.Log{Level: logLevel}})
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	repo, err := repository.LoadCatalog(catalogPath)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	catalog, err := repo.GetAll(ctx)
	if err != nil {
		return err
	}

	generator, err := service.NewQuestionGenerator(catalog)
	if err != nil {
		return err
	}

	presenter := terminal.NewPresenter(cmd.InOrStdin(), cmd.OutOrStdout(), generator, service.NewAnswerMatcher(), log)
	if noColor || color.NoColor {
		presenter.DisableColor()
	}

	answered, err := presenter.Play(ctx, rounds)
	if err != nil && ctx.Err() == nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\n%d question(s). À bientôt !\n", answered)
	return nil
}
