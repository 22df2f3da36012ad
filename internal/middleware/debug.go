package middleware

import (
	"crypto/subtle"
	"net/http"
	"net/http/pprof"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const debugAuthHeader = "X-Debug-Secret"

var errDebugUnauthorized = map[string]string{"error": "unauthorized"}

// DebugAuth guards debug endpoints with a shared secret. An empty secret
// leaves them open.
func DebugAuth(secret string) echo.MiddlewareFunc {
	secretBytes := []byte(secret)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if secret == "" {
				return next(c)
			}
			provided := c.Request().Header.Get(debugAuthHeader)
			if subtle.ConstantTimeCompare([]byte(provided), secretBytes) != 1 {
				return c.JSON(http.StatusUnauthorized, errDebugUnauthorized)
			}
			return next(c)
		}
	}
}

// RegisterDebug mounts pprof under /pprof and the prometheus registry under
// /metrics of g.
func RegisterDebug(g *echo.Group, gatherer prometheus.Gatherer) {
	pp := g.Group("/pprof")
	pp.GET("/", echo.WrapHandler(http.HandlerFunc(pprof.Index)))
	pp.GET("/cmdline", echo.WrapHandler(http.HandlerFunc(pprof.Cmdline)))
	pp.GET("/profile", echo.WrapHandler(http.HandlerFunc(pprof.Profile)))
	pp.GET("/symbol", echo.WrapHandler(http.HandlerFunc(pprof.Symbol)))
	pp.POST("/symbol", echo.WrapHandler(http.HandlerFunc(pprof.Symbol)))
	pp.GET("/trace", echo.WrapHandler(http.HandlerFunc(pprof.Trace)))
	pp.GET("/allocs", echo.WrapHandler(pprof.Handler("allocs")))
	pp.GET("/block", echo.WrapHandler(pprof.Handler("block")))
	pp.GET("/goroutine", echo.WrapHandler(pprof.Handler("goroutine")))
	pp.GET("/heap", echo.WrapHandler(pprof.Handler("heap")))
	pp.GET("/mutex", echo.WrapHandler(pprof.Handler("mutex")))
	pp.GET("/threadcreate", echo.WrapHandler(pprof.Handler("threadcreate")))

	g.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
}
