package middleware

import (
	"cmp"
	"log/slog"
	"net/http"
	"slices"

	"github.com/labstack/echo/v4"

	"perfmeter/internal/meter"
	"perfmeter/internal/registry"
)

const (
	RouteKey  = "route"
	PathKey   = "path"
	StatusKey = "status"
	ErrorKey  = "error"
)

type RouteMeter interface {
	Start(method string, opts ...meter.Option) (*meter.Session, error)
}

// RouteMethod is the method name a request to path is recorded under.
func RouteMethod(httpMethod, path string) string {
	return httpMethod + " " + path
}

// RouteDescriptor describes routes as methods of className. Routes on an
// ignored path are known but never recorded.
func RouteDescriptor(className string, routes []*echo.Route, ignoredPaths []string) registry.Descriptor {
	d := registry.Descriptor{ClassName: className}
	seen := make(map[string]bool, len(routes))
	for _, r := range routes {
		name := RouteMethod(r.Method, r.Path)
		if seen[name] {
			continue
		}
		seen[name] = true
		d.Methods = append(d.Methods, registry.MethodSpec{
			Name:   name,
			Ignore: slices.Contains(ignoredPaths, r.Path),
		})
	}
	slices.SortFunc(d.Methods, func(a, b registry.MethodSpec) int {
		return cmp.Compare(a.Name, b.Name)
	})
	return d
}

// Watch records every request as a call of its route. The client IP is the
// caller; the request path, status and handler error go into custom data.
func Watch(m RouteMeter, ignoredPaths []string, logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := cmp.Or(c.Path(), "/")
			if slices.Contains(ignoredPaths, path) {
				return next(c)
			}

			s, err := m.Start(RouteMethod(c.Request().Method, path),
				meter.WithCaller(c.RealIP()),
				meter.WithCustomData(RouteKey, path),
				meter.WithCustomData(PathKey, c.Request().URL.Path),
			)
			if err != nil {
				logger.Warn("failed to watch request", slog.String("error", err.Error()))
				return next(c)
			}

			err = next(c)

			statusCode := c.Response().Status
			if err != nil {
				s.AddCustomData(ErrorKey, err.Error())
				if he, ok := err.(*echo.HTTPError); ok {
					statusCode = he.Code
				} else if !c.Response().Committed {
					statusCode = http.StatusInternalServerError
				}
			}
			s.AddCustomData(StatusKey, statusCode)

			if stopErr := s.Stop(); stopErr != nil {
				logger.Warn("failed to record request",
					slog.String("route", path),
					slog.String("error", stopErr.Error()))
			}
			return err
		}
	}
}
