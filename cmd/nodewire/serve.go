package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	httpAdapter "github.com/dvstudio/nodewire/internal/adapters/http"
	"github.com/dvstudio/nodewire/internal/config"
	"github.com/dvstudio/nodewire/internal/logging"
	"github.com/dvstudio/nodewire/pkg/adapters/file"
	"github.com/dvstudio/nodewire/pkg/adapters/memory"
	redisAdapter "github.com/dvstudio/nodewire/pkg/adapters/redis"
	"github.com/dvstudio/nodewire/pkg/formatstring"
	"github.com/dvstudio/nodewire/pkg/observability"
	"github.com/dvstudio/nodewire/pkg/ports"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the template HTTP server",
	Long:  `Starts the FormatString template service, exposing a JSON API over HTTP.`,
	Run: func(cmd *cobra.Command, args []string) {
		// A .env file is optional; environment overrides still apply without one.
		_ = godotenv.Load()

		cfgPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(cfgPath)
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			os.Exit(1)
		}
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.Addr = addr
		}

		log := logging.New(logging.ParseLevel(cfg.LogLevel))
		metrics := observability.New(prometheus.DefaultRegisterer)

		var configs ports.ConfigStore
		if cfg.Redis.Addr != "" {
			store := redisAdapter.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB,
				redisAdapter.WithTTL(cfg.ConfigTTL.Std()))
			defer store.Close()
			configs = store
			log.Info("using redis config store", "addr", cfg.Redis.Addr)
		} else {
			configs = memory.NewConfigStore(memory.WithExpiration(cfg.ConfigTTL.Std()))
		}

		svc := formatstring.NewService(configs, file.New(cfg.StateDir),
			formatstring.WithLogger(log))

		handler := httpAdapter.NewHandler(svc,
			httpAdapter.WithLogger(log),
			httpAdapter.WithMetrics(metrics),
		)

		srv := &http.Server{
			Addr:    cfg.Addr,
			Handler: handler,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			log.Info("starting nodewire server", "addr", srv.Addr, "states", cfg.StateDir)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			log.Info("starting shutdown", "signal", sig.String())

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			// Asking listener to shut down and shed load.
			if err := srv.Shutdown(ctx); err != nil {
				log.Error("graceful shutdown did not complete", "timeout", 5*time.Second, "error", err)
				if err := srv.Close(); err != nil {
					log.Error("error killing server", "error", err)
				}
			}
			log.Info("nodewire server stopped gracefully")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("addr", "a", "", "Listen address (overrides config)")
}
