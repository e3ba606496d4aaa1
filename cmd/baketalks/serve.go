package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/NishaManivannan/Bakery-chatbot/internal/adapters/httpapi"
	"github.com/NishaManivannan/Bakery-chatbot/internal/adapters/memory"
	"github.com/NishaManivannan/Bakery-chatbot/internal/adapters/postgres"
	redisstore "github.com/NishaManivannan/Bakery-chatbot/internal/adapters/redis"
	"github.com/NishaManivannan/Bakery-chatbot/internal/catalog"
	"github.com/NishaManivannan/Bakery-chatbot/internal/config"
	"github.com/NishaManivannan/Bakery-chatbot/internal/engine"
	"github.com/NishaManivannan/Bakery-chatbot/internal/logging"
	"github.com/NishaManivannan/Bakery-chatbot/internal/speech"
	"github.com/NishaManivannan/Bakery-chatbot/pkg/ports"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP chat server",
	Long:  `Starts the Bake Talks engine in server mode, exposing the chat API over HTTP.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")

		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		level, err := logging.ParseLevel(cfg.Log.Level)
		if err != nil {
			return err
		}
		log := logging.New(level, cfg.Log.Format)

		cat := catalog.Default()
		if cfg.Catalog.Path != "" {
			cat, err = catalog.Load(cfg.Catalog.Path)
			if err != nil {
				return err
			}
			log.Info("loaded price catalog", "path", cfg.Catalog.Path)
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		var orders ports.OrderStore
		if cfg.Database.DSN != "" {
			if err := postgres.Migrate(cfg.Database.DSN); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			pg, err := postgres.New(ctx, cfg.Database.DSN)
			if err != nil {
				return fmt.Errorf("connect postgres: %w", err)
			}
			defer pg.Close()
			orders = pg
			log.Info("using postgres order store")
		} else {
			orders = memory.NewOrderStore()
			log.Warn("no database configured, orders are held in memory only")
		}

		var sessions ports.SessionStore
		switch cfg.Session.Backend {
		case config.BackendRedis:
			rs := redisstore.New(cfg.Session.Redis.Addr, cfg.Session.Redis.Password, cfg.Session.Redis.DB,
				redisstore.WithTTL(2*cfg.SessionTimeout()))
			if err := rs.Ping(ctx); err != nil {
				return fmt.Errorf("connect redis: %w", err)
			}
			defer rs.Close()
			sessions = rs
			log.Info("using redis session store", "addr", cfg.Session.Redis.Addr)
		default:
			sessions = memory.NewSessionStore()
			log.Info("using in-memory session store")
		}

		reg := prometheus.NewRegistry()
		metrics := engine.NewMetrics(reg)

		eng := engine.New(cat, orders,
			engine.WithSessionTimeout(cfg.SessionTimeout()),
			engine.WithLogger(log),
			engine.WithMetrics(metrics),
		)

		opts := []httpapi.Option{
			httpapi.WithLogger(log),
			httpapi.WithMetrics(reg),
		}
		if cfg.Speech.Enabled {
			renderer, err := speech.New(cfg.Speech.URL, cfg.Speech.AudioDir,
				speech.WithRetention(cfg.SpeechRetention()))
			if err != nil {
				return err
			}
			renderer.StartJanitor(ctx, 5*time.Minute)
			opts = append(opts, httpapi.WithSpeech(renderer, cfg.Speech.AudioDir))
			log.Info("speech rendering enabled", "url", cfg.Speech.URL)
		}

		api := httpapi.NewServer(eng, sessions, opts...)

		srv := &http.Server{
			Addr:    cfg.Server.Addr,
			Handler: api.Handler(),
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			log.Info("starting server", "addr", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			return fmt.Errorf("server error: %w", err)

		case sig := <-shutdown:
			log.Info("starting shutdown", "signal", sig.String())

			// Give outstanding requests a deadline for completion.
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
			defer shutdownCancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Error("graceful shutdown did not complete", "timeout", cfg.ShutdownTimeout(), "err", err)
				if err := srv.Close(); err != nil {
					return fmt.Errorf("close server: %w", err)
				}
			}
			log.Info("server stopped")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
