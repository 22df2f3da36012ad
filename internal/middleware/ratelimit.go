package middleware

import (
	"crypto/subtle"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"perfmeter/internal/config"
)

const (
	bypassHeader = "X-Rate-Limit-Bypass"

	ReadBudget  = "read"
	WriteBudget = "write"

	allClasses = "*"
)

type rateLimitResponse struct {
	Error      string `json:"error"`
	Class      string `json:"class"`
	Budget     string `json:"budget"`
	RetryAfter int    `json:"retry_after"`
}

var rateLimiterInternalErr = map[string]string{
	"error": "internal server error",
}

// ReportLimiter throttles the reporting API per client and class. Reads are
// served from the report cache and get their own budget; writes reset or
// reconfigure a registry and share a smaller one.
type ReportLimiter struct {
	cfg    *config.RateLimitConfig
	logger *slog.Logger

	deniedReads  atomic.Uint64
	deniedWrites atomic.Uint64
}

func NewReportLimiter(cfg *config.RateLimitConfig, logger *slog.Logger) *ReportLimiter {
	return &ReportLimiter{cfg: cfg, logger: logger}
}

// Denied reports how many requests each budget has turned away.
func (l *ReportLimiter) Denied() (reads, writes uint64) {
	return l.deniedReads.Load(), l.deniedWrites.Load()
}

// Middleware must be mounted on the group holding the :class routes, so the
// class parameter is resolved when the limiter runs.
func (l *ReportLimiter) Middleware() echo.MiddlewareFunc {
	read := l.limiter(ReadBudget, l.cfg.RPS, l.cfg.Burst, &l.deniedReads)
	write := l.limiter(WriteBudget, l.cfg.WriteRPS, l.cfg.WriteBurst, &l.deniedWrites)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		readNext, writeNext := read(next), write(next)
		return func(c echo.Context) error {
			switch c.Request().Method {
			case http.MethodGet, http.MethodHead:
				return readNext(c)
			default:
				return writeNext(c)
			}
		}
	}
}

func (l *ReportLimiter) limiter(budget string, rps float64, burst int, denied *atomic.Uint64) echo.MiddlewareFunc {
	store := middleware.NewRateLimiterMemoryStoreWithConfig(
		middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(rps),
			Burst:     burst,
			ExpiresIn: time.Duration(l.cfg.ExpireMinutes) * time.Minute,
		},
	)
	retryAfter := retryAfterSeconds(rps)

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store:   store,
		Skipper: l.bypassed,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP() + " " + limitedClass(c), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			denied.Add(1)
			class := limitedClass(c)
			l.logger.Warn("rate limit exceeded",
				slog.String("ip", c.RealIP()),
				slog.String("class", class),
				slog.String("budget", budget),
				slog.String("path", c.Path()),
			)
			c.Response().Header().Set("Retry-After", strconv.Itoa(retryAfter))
			return c.JSON(http.StatusTooManyRequests, rateLimitResponse{
				Error:      "rate limit exceeded",
				Class:      class,
				Budget:     budget,
				RetryAfter: retryAfter,
			})
		},
		ErrorHandler: func(c echo.Context, err error) error {
			l.logger.Error("rate limiter error", slog.String("error", err.Error()))
			return c.JSON(http.StatusInternalServerError, rateLimiterInternalErr)
		},
	})
}

func (l *ReportLimiter) bypassed(c echo.Context) bool {
	if l.cfg.BypassSecret == "" {
		return false
	}
	provided := c.Request().Header.Get(bypassHeader)
	return subtle.ConstantTimeCompare([]byte(provided), []byte(l.cfg.BypassSecret)) == 1
}

// limitedClass is the decoded class of the request, or allClasses for
// routes without one.
func limitedClass(c echo.Context) string {
	raw := c.Param("class")
	if raw == "" {
		return allClasses
	}
	if class, err := url.PathUnescape(raw); err == nil {
		return class
	}
	return raw
}

func retryAfterSeconds(rps float64) int {
	if rps <= 0 {
		return 1
	}
	return max(1, int(math.Ceil(1/rps)))
}
