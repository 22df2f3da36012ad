package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	BaseURL            string        `env:"BASE_URL" envDefault:"http://localhost:8080"`
	Rate               int           `env:"RATE" envDefault:"1000"`
	Duration           time.Duration `env:"DURATION" envDefault:"30s"`
	BenchType          string        `env:"BENCH_TYPE" envDefault:"mixed"`
	ReserveRatio       float64       `env:"RESERVE_RATIO" envDefault:"0.2"`
	RestockQuantity    int           `env:"RESTOCK_QUANTITY" envDefault:"1000000"`
	RouteClass         string        `env:"ROUTE_CLASS" envDefault:"http.Routes"`
	InventoryClass     string        `env:"INVENTORY_CLASS" envDefault:"perfmeter/internal/demo.Inventory"`
	RateLimitBypass    string        `env:"RATE_LIMIT_BYPASS_SECRET"`
	InsecureSkipVerify bool          `env:"INSECURE_SKIP_VERIFY" envDefault:"false"`
	Connections        int           `env:"CONNECTIONS" envDefault:"10000"`
	MaxWorkers         uint64        `env:"MAX_WORKERS" envDefault:"0"`
	Timeout            time.Duration `env:"TIMEOUT" envDefault:"30s"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
