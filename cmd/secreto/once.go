package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/sandevgo/secretowatch/internal/service/ui"
	"github.com/sandevgo/secretowatch/pkg/log"
	"github.com/spf13/cobra"
)

var onceCmd = &cobra.Command{
	Use:           "once",
	Short:         "Run a single cycle and exit",
	Long:          `Fetches the page once, reports new messages and appends them to the history file. Exits non-zero if the cycle fails.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		cfg := loadConfig(ctx)
		orchestrator, err := initOrchestrator(ctx, cfg, nil)
		if err != nil {
			return err
		}

		report, err := orchestrator.RunOnce(ctx)
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), ui.ErrorStyle.Render("cycle failed: "+err.Error()))
			return err
		}

		log.FromCtx(ctx).Info().
			Str("cycle_id", report.ID).
			Int("new", len(report.Delta)).
			Bool("notified", report.Notified).
			Msg("done")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(onceCmd)
}
