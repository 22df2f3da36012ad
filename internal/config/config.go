package config

import "github.com/caarlos0/env/v11"

type Config struct {
	Server     ServerConfig
	TLS        TLSConfig
	Database   DatabaseConfig
	Meter      MeterConfig
	Report     ReportConfig
	Export     ExportConfig
	RateLimit  RateLimitConfig
	Debug      DebugConfig
	Validation ValidationConfig
}

type ServerConfig struct {
	Host           string `env:"SERVER_HOST" envDefault:"localhost"`
	Port           int    `env:"SERVER_PORT" envDefault:"8080"`
	MaxConnections int    `env:"SERVER_MAX_CONNECTIONS" envDefault:"1024"`
}

type TLSConfig struct {
	Enabled  bool   `env:"TLS_ENABLED" envDefault:"false"`
	Port     int    `env:"TLS_PORT" envDefault:"8443"`
	CertFile string `env:"TLS_CERT_FILE"`
	KeyFile  string `env:"TLS_KEY_FILE"`
}

type DatabaseConfig struct {
	Host     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port     int    `env:"POSTGRES_PORT" envDefault:"5432"`
	User     string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password string `env:"POSTGRES_PASSWORD" envDefault:"postgres"`
	DBName   string `env:"POSTGRES_DB" envDefault:"perfmeter"`
	SSLMode  string `env:"POSTGRES_SSLMODE" envDefault:"disable"`
	MaxConns int32  `env:"POSTGRES_MAX_CONNS" envDefault:"8"`
}

type MeterConfig struct {
	RetentionMinutes int      `env:"METER_RETENTION_MINUTES" envDefault:"5"`
	IgnoredPaths     []string `env:"METER_IGNORED_PATHS" envSeparator:"," envDefault:"/api/v1/health"`
	RouteClass       string   `env:"METER_ROUTE_CLASS" envDefault:"http.Routes"`
}

type ReportConfig struct {
	CacheTTLMillis   int `env:"REPORT_CACHE_TTL_MS" envDefault:"1000"`
	CacheMaxSizePow2 int `env:"REPORT_CACHE_MAX_SIZE_POW2" envDefault:"24"`
	MaxCalls         int `env:"REPORT_MAX_CALLS" envDefault:"1000"`
}

type ExportConfig struct {
	Enabled        bool `env:"EXPORT_ENABLED" envDefault:"false"`
	BufferSize     int  `env:"EXPORT_BUFFER_SIZE" envDefault:"10000"`
	FlushInterval  int  `env:"EXPORT_FLUSH_INTERVAL_MS" envDefault:"1000"`
	FlushThreshold int  `env:"EXPORT_FLUSH_THRESHOLD" envDefault:"500"`
}

type RateLimitConfig struct {
	RPS           float64 `env:"RATE_LIMIT_RPS" envDefault:"50"`
	Burst         int     `env:"RATE_LIMIT_BURST" envDefault:"100"`
	WriteRPS      float64 `env:"RATE_LIMIT_WRITE_RPS" envDefault:"2"`
	WriteBurst    int     `env:"RATE_LIMIT_WRITE_BURST" envDefault:"5"`
	ExpireMinutes int     `env:"RATE_LIMIT_EXPIRE_MINUTES" envDefault:"3"`
	BypassSecret  string  `env:"RATE_LIMIT_BYPASS_SECRET"`
}

type DebugConfig struct {
	Enabled bool   `env:"DEBUG_ENABLED" envDefault:"false"`
	Secret  string `env:"DEBUG_SECRET"`
}

type ValidationConfig struct {
	MaxRequestBodySize    string `env:"MAX_REQUEST_BODY_SIZE" envDefault:"64K"`
	MaxClassNameLength    int    `env:"MAX_CLASS_NAME_LENGTH" envDefault:"256"`
	MaxCustomDataKeyLen   int    `env:"MAX_CUSTOM_DATA_KEY_LENGTH" envDefault:"128"`
	MaxCustomDataValueLen int    `env:"MAX_CUSTOM_DATA_VALUE_LENGTH" envDefault:"4096"`
	MaxRetentionMinutes   int    `env:"MAX_RETENTION_MINUTES" envDefault:"1440"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
