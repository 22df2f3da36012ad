package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"perfmeter/internal/config"
)

const schema = `
CREATE TABLE IF NOT EXISTS method_calls (
	id          TEXT             NOT NULL,
	class_name  TEXT             NOT NULL,
	method      TEXT             NOT NULL,
	caller      TEXT             NOT NULL,
	start_time  TIMESTAMPTZ      NOT NULL,
	end_time    TIMESTAMPTZ      NOT NULL,
	elapsed_ms  DOUBLE PRECISION NOT NULL,
	custom_data JSONB,
	steps       JSONB
);
CREATE INDEX IF NOT EXISTS method_calls_class_start_idx ON method_calls (class_name, start_time);
`

var callColumns = []string{
	"id", "class_name", "method", "caller", "start_time", "end_time", "elapsed_ms", "custom_data", "steps",
}

// CallRow is one exported method call. CustomData and Steps hold JSON.
type CallRow struct {
	ID         string
	ClassName  string
	Method     string
	Caller     string
	StartTime  time.Time
	EndTime    time.Time
	ElapsedMs  float64
	CustomData []byte
	Steps      []byte
}

type CallRepository struct {
	pool *pgxpool.Pool
}

func NewCallRepository(ctx context.Context, cfg *config.DatabaseConfig) (*CallRepository, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &CallRepository{pool: pool}, nil
}

func (r *CallRepository) WriteCalls(ctx context.Context, rows []CallRow) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	n, err := r.pool.CopyFrom(ctx,
		pgx.Identifier{"method_calls"},
		callColumns,
		pgx.CopyFromSlice(len(rows), func(i int) ([]any, error) {
			row := rows[i]
			return []any{
				row.ID, row.ClassName, row.Method, row.Caller,
				row.StartTime, row.EndTime, row.ElapsedMs, row.CustomData, row.Steps,
			}, nil
		}),
	)
	if err != nil {
		return n, fmt.Errorf("failed to copy method calls: %w", err)
	}
	return n, nil
}

func (r *CallRepository) Pool() *pgxpool.Pool {
	return r.pool
}

func (r *CallRepository) Close() {
	r.pool.Close()
}
