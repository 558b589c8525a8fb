package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/anonto42/connectly/web/internal/apiclient"
	"github.com/anonto42/connectly/web/internal/router"
	"github.com/anonto42/connectly/web/internal/session"
	"github.com/anonto42/connectly/web/internal/views"
	"github.com/anonto42/connectly/web/pkg/config"
	"github.com/anonto42/connectly/web/validators"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	port    string
	apiURL  string
	verbose bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "connectly-web",
	Short: "Connectly web frontend",
	Long: `Serves the Connectly pages (login, posts, profile) and forwards
every post operation to the remote social API.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = newLogger(verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	RunE: serve,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&port, "port", "", "listen port (overrides PORT)")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "social API base URL (overrides API_BASE_URL)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// newLogger builds the process logger, at debug level when verbose
var newLogger = func(verbose bool) (*zap.Logger, error) {
	logCfg := zap.NewProductionConfig()
	if verbose {
		logCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return logCfg.Build()
}

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the root command and flushes the logger on every exit path
func run(args []string) int {
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	if logger != nil {
		_ = logger.Sync()
	}
	if err != nil {
		return 1
	}
	return 0
}

func serve(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg := config.Load()
	if port != "" {
		cfg.Port = port
	}
	if apiURL != "" {
		cfg.APIBaseURL = apiURL
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Initialize the latest-post cache
	cache, err := config.InitCache(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize cache: %w", err)
	}
	defer cache.Close(logger)

	renderer, err := views.New()
	if err != nil {
		return fmt.Errorf("failed to load templates: %w", err)
	}

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer
	e.Validator = validators.NewValidator()

	// Setup global middleware
	config.SetupMiddleware(e, logger)

	// Setup routes and dependencies
	router.SetupRoutes(e, router.Deps{
		API: apiclient.New(cfg.APIBaseURL, cfg.APIKey, cfg.APITimeout),
		Sessions: session.NewStore(session.Options{
			Name:   cfg.SessionName,
			Secret: cfg.SessionSecret,
			Secure: cfg.SecureCookies,
			MaxAge: int((7 * 24 * time.Hour).Seconds()),
		}),
		LatestPosts: cache.LatestPosts,
		Header: views.HeaderOptions{
			HighlightActive: cfg.HeaderActiveLinks,
			Search:          cfg.HeaderSearch,
		},
		LoginAlerts: cfg.LoginAlerts,
		SearchPath:  cfg.SearchPath,
		Logger:      logger,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", zap.String("port", cfg.Port), zap.String("api", cfg.APIBaseURL), zap.String("env", cfg.Env))
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
