package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/vetlink/vetlink-api/internal/config"
	"github.com/vetlink/vetlink-api/internal/logger"
	"go.uber.org/zap"
)

const appName = "vetlink"

var (
	jsonLogs  bool
	debugLogs bool

	zlog *zap.Logger

	rootCmd = &cobra.Command{
		Use:          appName,
		Short:        "vetlink connects military veterans with employers",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if zlog != nil {
				_ = zlog.Sync()
			}
		},
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debugLogs, "debug", "d", false, "verbose/debug output (overrides LOG_DEBUG)")
	rootCmd.PersistentFlags().BoolVarP(&jsonLogs, "json", "j", false, "json format for logging (overrides LOG_JSON)")
}

// setup loads .env and builds the process logger. Flags win over the
// environment when given.
func setup(cmd *cobra.Command) error {
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()
	asJSON, debug := appConfig.LogJSON, appConfig.Debug
	if cmd.Flags().Changed("json") {
		asJSON = jsonLogs
	}
	if cmd.Flags().Changed("debug") {
		debug = debugLogs
	}

	var err error
	zlog, err = logger.New(logger.Options{
		Service: appConfig.Name,
		Env:     appConfig.Env,
		JSON:    asJSON,
		Debug:   debug,
	})
	if err != nil {
		log.Printf("creating a logger: %s", err)
		return err
	}
	return nil
}
