package cache

import (
	"time"

	"github.com/dgraph-io/ristretto"
)

// ReportCache holds rendered class reports for a short TTL. Writes to a class
// invalidate its entry explicitly.
type ReportCache struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

func New(maxSizePow2 int, ttl time.Duration) (*ReportCache, error) {
	maxCost := max(1, int64(1)<<maxSizePow2)
	numCounters := max(1, maxCost/1000) // ~1KB per report estimate

	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: numCounters,
		MaxCost:     maxCost,
		BufferItems: 64,
		Metrics:     true,
	})
	if err != nil {
		return nil, err
	}
	return &ReportCache{cache: cache, ttl: ttl}, nil
}

func (c *ReportCache) Get(className string) ([]byte, bool) {
	val, found := c.cache.Get(className)
	if !found {
		return nil, false
	}
	return val.([]byte), true
}

// Set stores a rendered report. A non-positive TTL disables caching.
func (c *ReportCache) Set(className string, report []byte) {
	if c.ttl <= 0 {
		return
	}
	cost := int64(len(className) + len(report))
	c.cache.SetWithTTL(className, report, cost, c.ttl)
}

func (c *ReportCache) Invalidate(className string) {
	c.cache.Del(className)
}

// Wait blocks until buffered writes are applied.
func (c *ReportCache) Wait() {
	c.cache.Wait()
}

func (c *ReportCache) Close() {
	c.cache.Close()
}

func (c *ReportCache) Stats() (hits, misses uint64, ratio float64) {
	metrics := c.cache.Metrics
	hits = metrics.Hits()
	misses = metrics.Misses()
	ratio = metrics.Ratio()
	return
}
