package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sort"
	"sync"

	"pancakelab/internal/api/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	legacyrouter "github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// HealthCheck reports whether a dependency is usable.
type HealthCheck func(ctx context.Context) error

var registerDocOnce sync.Once

type swaggerDoc struct {
	json string
}

func (d swaggerDoc) ReadDoc() string {
	return d.json
}

// NewRouter builds the echo instance serving the order API.
//
// Parameters:
//   - server: the ServerInterface implementation
//   - logger: request log destination
//   - checks: named dependency checks reported by GET /health
//
// Returns:
//   - *echo.Echo: ready to Start
//   - error: if the embedded OpenAPI document cannot be loaded
func NewRouter(server servers.ServerInterface, logger *slog.Logger, checks map[string]HealthCheck) (*echo.Echo, error) {
	doc, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = ErrorHandler

	e.Use(middleware.Recover())
	e.Use(requestLogger(logger))

	registerSwagger(doc)
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.GET("/health", healthHandler(checks))

	validator, err := requestValidator(doc)
	if err != nil {
		return nil, err
	}

	api := e.Group("", validator)
	servers.RegisterHandlers(api, server)

	return e, nil
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogMethod:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}

			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}

			logger.LogAttrs(c.Request().Context(), level, "request", attrs...)
			return nil
		},
	})
}

// requestValidator rejects requests that do not match the OpenAPI document.
// Unknown paths and methods fall through to echo's own 404 and 405.
func requestValidator(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := legacyrouter.NewRouter(doc)
	if err != nil {
		return nil, err
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
		MultiError:         false,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			route, pathParams, findErr := router.FindRoute(req)
			if findErr != nil {
				var routeErr *routers.RouteError
				if errors.As(findErr, &routeErr) {
					return next(c)
				}
				return echo.NewHTTPError(http.StatusBadRequest, findErr.Error())
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if validateErr := openapi3filter.ValidateRequest(req.Context(), input); validateErr != nil {
				return echo.NewHTTPError(http.StatusBadRequest, validateErr.Error())
			}

			return next(c)
		}
	}, nil
}

func registerSwagger(doc *openapi3.T) {
	registerDocOnce.Do(func() {
		raw, err := json.Marshal(doc)
		if err != nil {
			raw = []byte("{}")
		}
		swag.Register(swag.Name, swaggerDoc{json: string(raw)})
	})
}

func healthHandler(checks map[string]HealthCheck) echo.HandlerFunc {
	names := make([]string, 0, len(checks))
	for name := range checks {
		names = append(names, name)
	}
	sort.Strings(names)

	return func(c echo.Context) error {
		for _, name := range names {
			if err := checks[name](c.Request().Context()); err != nil {
				return c.JSON(http.StatusServiceUnavailable, servers.Error{
					Code:    http.StatusServiceUnavailable,
					Message: name + ": " + err.Error(),
				})
			}
		}
		return c.String(http.StatusOK, "Healthy")
	}
}
