package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/EpicMandM/calendar-booking/internal/config"
	"github.com/EpicMandM/calendar-booking/internal/handler"
	"github.com/EpicMandM/calendar-booking/internal/logger"
	"github.com/EpicMandM/calendar-booking/internal/service"
	"github.com/EpicMandM/calendar-booking/internal/store"
	"golang.org/x/oauth2"
)

type App struct {
	config     *config.Config
	featureCfg *service.FeatureConfig
	logger     *logger.Logger

	oauth       *oauth2.Config
	credentials store.CredentialStore
	handler     http.Handler
	server      *http.Server
}

func New(cfg *config.Config, featureCfg *service.FeatureConfig, log *logger.Logger) *App {
	if log == nil {
		log = logger.Discard()
	}
	if featureCfg == nil {
		featureCfg = service.DefaultFeatureConfig()
	}
	return &App{
		config:     cfg,
		featureCfg: featureCfg,
		logger:     log,
	}
}

// Initialize wires the OAuth config, credential store, services and routes.
// A nil oauthCfg builds the Google configuration from the app config.
func (a *App) Initialize(oauthCfg *oauth2.Config) error {
	if oauthCfg == nil {
		oauthCfg = service.NewOAuthConfig(a.config, a.featureCfg.Calendar.Scopes)
	}
	a.oauth = oauthCfg
	a.credentials = store.NewMemoryStore()

	calendarClient := service.NewGoogleCalendar(a.oauth, a.featureCfg.Calendar.Endpoint)
	bookingSvc, err := service.NewBookingService(a.logger, a.credentials, calendarClient, a.featureCfg.Calendar.CalendarID)
	if err != nil {
		return fmt.Errorf("failed to initialize booking service: %w", err)
	}
	authSvc := service.NewAuthService(a.oauth, a.credentials, a.logger)

	a.handler = handler.NewAPIHandler(authSvc, bookingSvc, a.logger).Routes()
	a.logger.Info("Services initialized",
		logger.Action("startup"),
		logger.Calendar(a.featureCfg.Calendar.CalendarID),
		logger.F("TIME_ZONE", service.TimeZone))
	return nil
}

// Handler returns the routed HTTP handler. Initialize must be called first.
func (a *App) Handler() http.Handler {
	return a.handler
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully.
func (a *App) Serve(ctx context.Context, ln net.Listener) error {
	if a.handler == nil {
		return fmt.Errorf("service not initialized")
	}
	a.server = &http.Server{
		Handler:      a.handler,
		ReadTimeout:  a.featureCfg.Server.ReadTimeout,
		WriteTimeout: a.featureCfg.Server.WriteTimeout,
		IdleTimeout:  a.featureCfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("Server listening", logger.Action("startup"), logger.F("ADDR", ln.Addr().String()))
		errCh <- a.server.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	return a.Close()
}

// ListenAndServe listens on the configured port and calls Serve.
func (a *App) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", a.config.Addr())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", a.config.Addr(), err)
	}
	return a.Serve(ctx, ln)
}

// Close shuts the server down, waiting up to the configured timeout.
func (a *App) Close() error {
	if a.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), a.featureCfg.Server.ShutdownTimeout)
	defer cancel()
	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	a.logger.Info("Server stopped", logger.Action("shutdown"), logger.Status("stopped"))
	return nil
}
