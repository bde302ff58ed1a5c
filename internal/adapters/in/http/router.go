package http

import (
	"log/slog"
	"net/http"

	"fooddelivery/internal/adapters/in/http/openapi"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type RouterConfig struct {
	// AllowedOrigins enables CORS with credentials for the listed origins.
	AllowedOrigins []string

	// Document turns on request validation and the swagger UI when set.
	Document *openapi3.T
}

// NewRouter builds the echo instance serving the API.
func NewRouter(s *Server, logger *slog.Logger, cfg RouterConfig) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewErrorHandler()

	e.Use(middleware.RequestID())
	e.Use(RequestLogger(logger))
	e.Use(middleware.Recover())
	if len(cfg.AllowedOrigins) > 0 {
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins:     cfg.AllowedOrigins,
			AllowCredentials: true,
			AllowMethods: []string{
				http.MethodGet, http.MethodPost, http.MethodPut,
				http.MethodPatch, http.MethodDelete, http.MethodOptions,
			},
		}))
	}

	if cfg.Document != nil {
		validator, err := openapi.RequestValidator(cfg.Document)
		if err != nil {
			return nil, err
		}
		e.Use(validator)
		if err := openapi.MountSwagger(e, cfg.Document); err != nil {
			return nil, err
		}
	}

	s.Register(e)
	return e, nil
}
