package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"os"
	"time"

	"bench/internal/attack"
	"bench/internal/config"
	"bench/internal/prepare"
	"bench/internal/verify"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	client := &http.Client{
		Timeout: cfg.Timeout,
		Transport: &http.Transport{
			TLSClientConfig:   &tls.Config{InsecureSkipVerify: cfg.InsecureSkipVerify},
			MaxIdleConns:      64,
			IdleConnTimeout:   90 * time.Second,
			ForceAttemptHTTP2: true,
		},
	}
	ctx := context.Background()

	skus, err := prepare.Run(ctx, client, cfg.BaseURL, cfg.RestockQuantity, cfg.RateLimitBypass)
	if err != nil {
		return fmt.Errorf("prepare failed: %w", err)
	}

	err = attack.Run(&attack.Config{
		BaseURL:            cfg.BaseURL,
		SKUs:               skus,
		Rate:               cfg.Rate,
		Duration:           cfg.Duration,
		ReserveRatio:       cfg.ReserveRatio,
		Type:               cfg.BenchType,
		RateLimitBypass:    cfg.RateLimitBypass,
		InsecureSkipVerify: cfg.InsecureSkipVerify,
		Connections:        cfg.Connections,
		MaxWorkers:         cfg.MaxWorkers,
	})
	if err != nil {
		return fmt.Errorf("attack failed: %w", err)
	}

	return verify.Run(ctx, client, cfg.BaseURL, cfg.RateLimitBypass, cfg.InventoryClass, cfg.RouteClass)
}
