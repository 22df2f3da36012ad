package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/net/netutil"

	"perfmeter/internal/cache"
	"perfmeter/internal/callid"
	"perfmeter/internal/config"
	"perfmeter/internal/demo"
	"perfmeter/internal/handler"
	"perfmeter/internal/meter"
	"perfmeter/internal/metrics"
	custommiddleware "perfmeter/internal/middleware"
	"perfmeter/internal/registry"
	"perfmeter/internal/repository"
	"perfmeter/internal/service"
	"perfmeter/internal/validation"
)

var seedItems = []demo.Item{
	{SKU: "anvil", Name: "Anvil", Stock: 1000, Price: 120},
	{SKU: "bucket", Name: "Bucket", Stock: 5000, Price: 4.5},
	{SKU: "chisel", Name: "Chisel", Stock: 250, Price: 18},
	{SKU: "drill", Name: "Drill", Stock: 0, Price: 95},
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := run(ctx, logger); err != nil {
		logger.Error("application failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	hub := registry.NewHub(
		registry.WithLogger(logger),
		registry.WithDefaultRetention(cfg.Meter.RetentionMinutes),
	)
	provider := meter.NewProvider(hub)

	ids, err := callid.New()
	if err != nil {
		return fmt.Errorf("failed to create call id encoder: %w", err)
	}

	reportCache, err := cache.New(cfg.Report.CacheMaxSizePow2, time.Duration(cfg.Report.CacheTTLMillis)*time.Millisecond)
	if err != nil {
		return fmt.Errorf("failed to create report cache: %w", err)
	}
	defer reportCache.Close()

	reportLimiter := custommiddleware.NewReportLimiter(&cfg.RateLimit, logger)

	collectorOpts := []metrics.CollectorOption{
		metrics.WithCacheStats(reportCache),
		metrics.WithLimitStats(reportLimiter),
	}
	if cfg.Export.Enabled {
		repo, err := repository.NewCallRepository(ctx, &cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to create call repository: %w", err)
		}
		defer repo.Close()

		exporter := metrics.NewExporter(repo, ids, &cfg.Export, logger)
		hub.OnComplete(exporter.Record)
		exporter.Start(ctx)
		defer exporter.Close()

		collectorOpts = append(collectorOpts, metrics.WithExporter(exporter))
	}

	promRegistry := prometheus.NewRegistry()
	promRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		metrics.NewCollector(hub, collectorOpts...),
	)

	reportValidator := validation.NewReportValidator(
		cfg.Validation.MaxClassNameLength,
		cfg.Validation.MaxCustomDataKeyLen,
		cfg.Validation.MaxCustomDataValueLen,
		cfg.Validation.MaxRetentionMinutes,
	)
	reportService := service.NewReportService(hub, reportCache, ids, cfg.Report.MaxCalls, logger)
	h := handler.New(reportService, reportValidator, logger)

	inventory := demo.NewInventory(provider, nil, nil, logger, seedItems...)
	inventoryAPI := demo.NewAPI(inventory, logger)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(cfg.Validation.MaxRequestBodySize))

	h.Register(e, reportLimiter.Middleware())
	inventoryAPI.Register(e)

	// Routes registered so far become methods of the route class.
	routeMeter := provider.Described(custommiddleware.RouteDescriptor(cfg.Meter.RouteClass, e.Routes(), cfg.Meter.IgnoredPaths))
	e.Use(custommiddleware.Watch(routeMeter, cfg.Meter.IgnoredPaths, logger))

	if cfg.Debug.Enabled {
		debugGroup := e.Group("/debug", custommiddleware.DebugAuth(cfg.Debug.Secret))
		custommiddleware.RegisterDebug(debugGroup, promRegistry)
		logger.Info("debug endpoints enabled", slog.String("path", "/debug/*"))
	}

	httpAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting HTTP server",
		slog.String("addr", httpAddr),
		slog.Int("max_connections", cfg.Server.MaxConnections),
		slog.Int("retention_minutes", cfg.Meter.RetentionMinutes))

	httpListener, err := net.Listen("tcp", httpAddr)
	if err != nil {
		return fmt.Errorf("failed to create HTTP listener: %w", err)
	}
	if cfg.Server.MaxConnections > 0 {
		httpListener = netutil.LimitListener(httpListener, cfg.Server.MaxConnections)
	}

	httpServer := newServer(e)
	go func() {
		if err := httpServer.Serve(httpListener); err != nil && err != http.ErrServerClosed {
			logger.Error("http server error", slog.String("error", err.Error()))
		}
	}()

	var httpsServer *http.Server
	if cfg.TLS.Enabled {
		tlsListener, err := newTLSListener(cfg)
		if err != nil {
			return err
		}
		logger.Info("starting HTTPS server", slog.Int("port", cfg.TLS.Port))

		httpsServer = newServer(e)
		go func() {
			if err := httpsServer.Serve(tlsListener); err != nil && err != http.ErrServerClosed {
				logger.Error("https server error", slog.String("error", err.Error()))
			}
		}()
	}

	<-ctx.Done()
	logger.Info("shutting down servers")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown failed: %w", err)
	}

	if httpsServer != nil {
		if err := httpsServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("https server shutdown failed: %w", err)
		}
	}

	return nil
}

func newServer(h http.Handler) *http.Server {
	return &http.Server{
		Handler:        h,
		ReadTimeout:    5 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    120 * time.Second,
		MaxHeaderBytes: 1 << 14, // 16KB
	}
}

func newTLSListener(cfg *config.Config) (net.Listener, error) {
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.TLS.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTPS listener: %w", err)
	}
	if cfg.Server.MaxConnections > 0 {
		ln = netutil.LimitListener(ln, cfg.Server.MaxConnections)
	}

	cert, err := tls.LoadX509KeyPair(cfg.TLS.CertFile, cfg.TLS.KeyFile)
	if err != nil {
		_ = ln.Close()
		return nil, fmt.Errorf("failed to load TLS certificate: %w", err)
	}

	return tls.NewListener(ln, &tls.Config{
		MinVersion:       tls.VersionTLS13,
		Certificates:     []tls.Certificate{cert},
		CurvePreferences: []tls.CurveID{tls.X25519},
	}), nil
}
