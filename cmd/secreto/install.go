package main

import (
	"github.com/joho/godotenv"
	"github.com/sandevgo/secretowatch/internal/config"
	"github.com/sandevgo/secretowatch/internal/core"
	"github.com/sandevgo/secretowatch/internal/service/installer"
	"github.com/sandevgo/secretowatch/pkg/log"
	"github.com/spf13/cobra"
)

var installCmd = &cobra.Command{
	Use:           "install",
	Short:         "Create the .env configuration interactively",
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		// Setup logger
		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)
		logger.Info().Msg("starting installation process")

		runtimePath := config.GetRuntimePath()

		// run wizard (includes save step)
		state, err := installer.RunWizard(runtimePath)
		if err != nil {
			return err
		}

		// Check that the written file parses before telling the user it is done
		if err := godotenv.Load(state.EnvPath); err != nil {
			logger.Warn().Err(err).Str("path", state.EnvPath).Msg("failed to load .env file")
		} else if _, err := config.LoadAppConfig(); err != nil {
			logger.Warn().Err(err).Msg("saved configuration does not validate")
		}

		logger.Info().Msgf("configuration written to: %s", state.EnvPath)
		logger.Info().Msgf("Installation complete! You can now run '%s start'.", core.AppName)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(installCmd)
}
