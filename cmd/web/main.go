package main

import (
	"fmt"
	"net"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/store-tools/report-atlas/pkg/render"
	"github.com/store-tools/report-atlas/pkg/server"
	"github.com/store-tools/report-atlas/pkg/services/config"
	"github.com/store-tools/report-atlas/pkg/services/report"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the report rendering server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the service config file (optional)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(_ *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load service config: %w", err)
	}

	fonts, err := render.ResolveFonts(cfg.FontDir)
	if err != nil {
		logger.Warn().Err(err).Msg("continuing with the built-in fallback typeface")
		fonts = render.FontPair{}
	} else {
		logger.Info().Str("regular", fonts.Regular).Str("bold", fonts.Bold).Msg("korean fonts registered")
	}

	builders := report.NewBuilders(render.NewStyles(fonts))

	addr := cfg.Addr
	if host, port := os.Getenv("SERVER_HOST"), os.Getenv("SERVER_PORT"); host != "" && port != "" {
		addr = net.JoinHostPort(host, port)
	}

	api := server.NewWebAPI(server.Config{
		Addr:            addr,
		ShutdownTimeout: cfg.ShutdownTimeout,
		Dependencies: server.Dependencies{
			Reports: builders,
			Logger:  logger,
		},
	})

	return api.Start()
}
