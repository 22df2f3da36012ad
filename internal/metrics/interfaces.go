package metrics

//go:generate go tool mockery

import (
	"context"

	"perfmeter/internal/repository"
)

type CallWriter interface {
	WriteCalls(ctx context.Context, rows []repository.CallRow) (int64, error)
}

type IDEncoder interface {
	Encode(className string, seq uint64) (string, error)
}

type CacheStats interface {
	Stats() (hits, misses uint64, ratio float64)
}

type LimitStats interface {
	Denied() (reads, writes uint64)
}
