package attack

import (
	"crypto/tls"
	"errors"
	"fmt"
	"os"
	"time"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

var ErrNoSKUs = errors.New("attack requires at least one sku")

type Config struct {
	BaseURL            string
	SKUs               []string
	Rate               int
	Duration           time.Duration
	ReserveRatio       float64
	Type               string
	RateLimitBypass    string
	InsecureSkipVerify bool
	Connections        int
	MaxWorkers         uint64
}

func Run(cfg *Config) error {
	if len(cfg.SKUs) == 0 {
		return ErrNoSKUs
	}

	var targeter vegeta.Targeter
	switch cfg.Type {
	case "lookup":
		targeter = LookupTargeter(cfg.BaseURL, cfg.SKUs, cfg.RateLimitBypass)
	case "reserve":
		targeter = ReserveTargeter(cfg.BaseURL, cfg.SKUs, cfg.RateLimitBypass)
	case "mixed":
		targeter = MixedTargeter(cfg.BaseURL, cfg.SKUs, cfg.ReserveRatio, cfg.RateLimitBypass)
	default:
		return fmt.Errorf("unknown attack type: %s", cfg.Type)
	}

	opts := []func(*vegeta.Attacker){
		vegeta.Redirects(-1),
		vegeta.KeepAlive(true),
		vegeta.Connections(cfg.Connections),
		vegeta.Timeout(5 * time.Second),
		vegeta.MaxBody(0),
		vegeta.HTTP2(false),
		vegeta.TLSConfig(&tls.Config{InsecureSkipVerify: cfg.InsecureSkipVerify}),
	}
	if cfg.MaxWorkers > 0 {
		opts = append(opts, vegeta.MaxWorkers(cfg.MaxWorkers))
	}
	attacker := vegeta.NewAttacker(opts...)

	fmt.Printf("Starting %s attack: rate=%d/s duration=%s\n", cfg.Type, cfg.Rate, cfg.Duration)

	rate := vegeta.Rate{Freq: cfg.Rate, Per: time.Second}
	var metrics vegeta.Metrics
	for res := range attacker.Attack(targeter, rate, cfg.Duration, cfg.Type) {
		metrics.Add(res)
	}
	metrics.Close()

	reporter := vegeta.NewTextReporter(&metrics)
	return reporter.Report(os.Stdout)
}
