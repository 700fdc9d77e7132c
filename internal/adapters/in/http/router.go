// Package http exposes both registries of a node over the REST API described by
// internal/generated/servers/openapi.yaml.
package http

import (
	"net/http"
	"time"

	"tracking/internal/core/ports"
	_ "tracking/internal/generated/docs"
	"tracking/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

// RouterOptions configures the optional parts of the router.
type RouterOptions struct {
	Logger *zap.Logger

	// LogLevel is echo's own log level ("debug", "info", "warn", "error", "off").
	LogLevel string

	// IdempotencyStore enables Idempotency-Key handling when set.
	IdempotencyStore ports.IdempotencyStore
	IdempotencyTTL   time.Duration
}

// NewRouter builds the echo instance serving the API, the health check and the Swagger UI.
func NewRouter(server *Server, opts RouterOptions) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(echoLogLevel(opts.LogLevel))
	e.HTTPErrorHandler = ErrorHandler

	swagger, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}
	validator, err := OpenAPIValidator(swagger)
	if err != nil {
		return nil, err
	}

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(RequestLogger(opts.Logger))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("", validator)
	if opts.IdempotencyStore != nil {
		api.Use(Idempotency(opts.IdempotencyStore, opts.IdempotencyTTL, opts.Logger))
	}
	servers.RegisterHandlers(api, server)

	return e, nil
}

func echoLogLevel(level string) log.Lvl {
	switch level {
	case "debug":
		return log.DEBUG
	case "info":
		return log.INFO
	case "error":
		return log.ERROR
	case "off":
		return log.OFF
	default:
		return log.WARN
	}
}
