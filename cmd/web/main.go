package main

import (
	"fmt"
	"os"

	"github.com/costlens/costlens/pkg/server"
	"github.com/costlens/costlens/pkg/services/aggregation"
	"github.com/costlens/costlens/pkg/services/config"
	"github.com/costlens/costlens/pkg/services/inventory"
	"github.com/costlens/costlens/pkg/services/savings"
	"github.com/costlens/costlens/pkg/store/memory"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the costlens API server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the configuration file (default is ./costlens.yaml if present)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}

	logger := zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()
	logger.Info().Str("addr", cfg.Server.Addr()).Msg("configuration loaded")

	store := memory.NewStore()

	api := server.NewWebAPI(server.Config{
		Addr:            cfg.Server.Addr(),
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Dependencies: server.Dependencies{
			Inventory: inventory.NewService(store),
			Savings:   savings.NewService(store),
			Costs:     aggregation.NewEngine(store),
			Logger:    logger,
		},
	})

	return api.Start()
}
