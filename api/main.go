package api

import (
	"context"
	errs "errors"
	"fmt"
	"net/http"

	"github.com/brpaz/echozap"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	oapiMiddleware "github.com/oapi-codegen/echo-middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/tidepool-org/glucoguide/config"
	"github.com/tidepool-org/glucoguide/errors"
	"github.com/tidepool-org/glucoguide/logger"
	"github.com/tidepool-org/glucoguide/observations"
	"github.com/tidepool-org/glucoguide/readings"
	"github.com/tidepool-org/glucoguide/store"
	"github.com/tidepool-org/glucoguide/users"
)

func Start(e *echo.Echo, cfg *config.Config, logger *zap.SugaredLogger, lifecycle fx.Lifecycle) {
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := e.Start(fmt.Sprintf(":%d", cfg.HttpPort)); err != nil && !errs.Is(err, http.ErrServerClosed) {
					logger.Errorw("server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return e.Shutdown(ctx)
		},
	})
}

func SetReady(healthCheck *HealthCheck, s store.Store, lifecycle fx.Lifecycle) {
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := s.Ping(ctx); err != nil {
				return err
			}

			// The store hooks were appended when the store was constructed,
			// so the connection is established before this runs
			healthCheck.SetReady(true)
			return nil
		},
	})
}

// Bootstrap seeds the demo users, backfills their histories and imports the
// configured CSV file on start.
func Bootstrap(service users.Service, cfg *config.Config, lifecycle fx.Lifecycle) {
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			service.InitializeDatabase(ctx)
			if cfg.UsersCSVPath != "" {
				service.ImportUsersFromCSV(ctx, cfg.UsersCSVPath)
			}
			return nil
		},
	})
}

func NewServer(handler *Handler, healthCheck *HealthCheck, zapLogger *zap.Logger, logger *zap.SugaredLogger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	swagger, err := GetSwagger()
	if err != nil {
		return nil, err
	}

	// Do not validate servers in the open api document
	swagger.Servers = nil

	// Skip validation and request logging for readiness probe and metrics routes
	skipper := RouteSkipper([]string{"/ready", "/metrics"})
	requestValidator := oapiMiddleware.OapiRequestValidatorWithOptions(swagger, &oapiMiddleware.Options{
		Options: openapi3filter.Options{
			AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
		},
		Skipper: skipper,
	})

	e.Use(middleware.Recover())
	e.Use(WithSkipper(skipper, echozap.ZapLogger(zapLogger)))
	e.Use(requestValidator)

	e.HTTPErrorHandler = errors.NewHTTPErrorHandler(logger)

	e.GET("/ready", healthCheck.Ready)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	RegisterHandlers(e, handler)

	return e, nil
}

// Dependencies are the providers shared by the server and the command line
// tools.
func Dependencies() []fx.Option {
	return []fx.Option{
		fx.Provide(
			config.NewConfig,
			logger.NewProductionLogger,
			logger.Suggar,
			store.NewConfig,
			store.NewStore,
			observations.NewConfig,
			observations.NewRepository,
			observations.NewGenerator,
			readings.NewSimulator,
			NewHealthCheck,
			NewHandler,
			NewServer,
		),
		users.Module,
	}
}

func MainLoop() {
	options := append(Dependencies(),
		fx.Invoke(SetReady),
		fx.Invoke(Bootstrap),
		fx.Invoke(Start),
	)
	fx.New(options...).Run()
}
