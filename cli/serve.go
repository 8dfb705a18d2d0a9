package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/telartis/picqer-ontime/database"
	"github.com/telartis/picqer-ontime/logger"
	"github.com/telartis/picqer-ontime/server"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the webhook HTTP service",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			logFile, err := logger.Init(cfg.AppLogDir, logger.ParseLevel(cfg.LogLevel))
			if err != nil {
				logger.Error("Logging to console only", err)
			} else {
				defer logFile.Close()
			}

			fileSink, err := logger.NewFileSink(cfg.AuditLogDir)
			if err != nil {
				return err
			}
			sinks := []logger.Sink{fileSink}
			if cfg.Database.Enabled() {
				db, err := database.InitDB(cfg.Database)
				if err != nil {
					return fmt.Errorf("opening audit database: %w", err)
				}
				sinks = append(sinks, logger.NewDBSink(db))
			}

			srv := server.New(cfg, sinks...)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			if err := srv.Run(ctx); err != nil {
				return fmt.Errorf("serving: %w", err)
			}
			return nil
		},
	}
}
