package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/RiyaMate/Master-financial/internal/app"
	"github.com/RiyaMate/Master-financial/internal/config"
	"github.com/RiyaMate/Master-financial/internal/domain"
	"github.com/RiyaMate/Master-financial/internal/middleware"
	"github.com/RiyaMate/Master-financial/internal/ui"
	"github.com/RiyaMate/Master-financial/internal/warehouse"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		var cfgErr *domain.ConfigError
		if errors.As(err, &cfgErr) {
			fmt.Fprintf(os.Stderr, "configuration error: %s\n", cfgErr.Message)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		listenAddr  string
		envFile     string
		logLevel    string
		strictGuard bool
	)

	rootCmd := &cobra.Command{
		Use:           "explorer",
		Short:         "Warehouse data exploration dashboard",
		Long:          "Serves a browser dashboard for exploring, filtering and charting warehouse tables.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.LoadDotEnv(envFile); err != nil {
				return err
			}
			cfg, err := config.LoadFromEnv()
			if err != nil {
				return err
			}

			// Flags win over environment.
			cmd.Flags().Visit(func(f *pflag.Flag) {
				switch f.Name {
				case "listen":
					cfg.ListenAddr = listenAddr
				case "log-level":
					cfg.LogLevel = logLevel
				case "strict-guard":
					cfg.StrictGuard = strictGuard
				}
			})

			if err := promptPasswordIfNeeded(cfg); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	rootCmd.Flags().StringVar(&listenAddr, "listen", ":8080", "HTTP listen address")
	rootCmd.Flags().StringVar(&envFile, "env-file", ".env", "path to an optional dotenv file")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.Flags().BoolVar(&strictGuard, "strict-guard", false, "reject multi-statement console SQL")
	return rootCmd
}

// promptPasswordIfNeeded asks for the warehouse password interactively when
// credentials are otherwise complete and stdin is a terminal. Keeps passwords
// out of shell history without blocking non-interactive deployments.
func promptPasswordIfNeeded(cfg *config.Config) error {
	if cfg.Driver != config.DriverSnowflake || cfg.Password != "" || cfg.User == "" {
		return nil
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil
	}
	fmt.Fprintf(os.Stderr, "Password for %s: ", cfg.User)
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}
	cfg.Password = strings.TrimSpace(string(raw))
	return nil
}

func run(ctx context.Context, cfg *config.Config) error {
	logger := newLogger(cfg)
	for _, w := range cfg.Warnings {
		logger.Warn(w)
	}

	client, err := warehouse.Open(cfg, logger)
	if err != nil {
		return err
	}
	defer client.Close() //nolint:errcheck

	pingCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx); err != nil {
		return err
	}
	logger.Info("warehouse connected", "driver", cfg.Driver, "database", cfg.Database)

	a := app.New(app.Deps{Cfg: cfg, Client: client, Logger: logger})

	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(middleware.RateLimiter(middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		Burst:             cfg.RateLimitBurst,
	}))
	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		if err := client.Ping(req.Context()); err != nil {
			http.Error(w, "warehouse unreachable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	ui.MountRoutes(r, a.UI)

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("dashboard listening", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	var handler slog.Handler
	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.New(handler)
}
