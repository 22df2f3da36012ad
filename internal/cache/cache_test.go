package cache_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"perfmeter/internal/cache"
)

func TestNew_ValidSize(t *testing.T) {
	c, err := cache.New(10, time.Second)
	require.NoError(t, err)
	require.NotNil(t, c)
	defer c.Close()
}

func TestNew_ZeroSize(t *testing.T) {
	c, err := cache.New(0, time.Second)
	require.NoError(t, err)
	require.NotNil(t, c)
	defer c.Close()
}

func TestGet_MissingKey(t *testing.T) {
	c, err := cache.New(10, time.Second)
	require.NoError(t, err)
	defer c.Close()

	val, found := c.Get("nonexistent")
	assert.False(t, found)
	assert.Empty(t, val)
}

func TestSetThenGet(t *testing.T) {
	c, err := cache.New(20, time.Minute)
	require.NoError(t, err)
	defer c.Close()

	report := []byte(`{"class_name":"demo.Inventory"}`)
	c.Set("demo.Inventory", report)
	c.Wait()

	val, found := c.Get("demo.Inventory")
	assert.True(t, found)
	assert.Equal(t, report, val)
}

func TestSet_UpdateExisting(t *testing.T) {
	c, err := cache.New(20, time.Minute)
	require.NoError(t, err)
	defer c.Close()

	c.Set("demo.Inventory", []byte("first"))
	c.Wait()
	c.Set("demo.Inventory", []byte("second"))
	c.Wait()

	val, found := c.Get("demo.Inventory")
	assert.True(t, found)
	assert.Equal(t, []byte("second"), val)
}

func TestSet_ZeroTTLDisablesCaching(t *testing.T) {
	c, err := cache.New(20, 0)
	require.NoError(t, err)
	defer c.Close()

	c.Set("demo.Inventory", []byte("report"))
	c.Wait()

	_, found := c.Get("demo.Inventory")
	assert.False(t, found)
}

func TestSet_Expires(t *testing.T) {
	c, err := cache.New(20, 50*time.Millisecond)
	require.NoError(t, err)
	defer c.Close()

	c.Set("demo.Inventory", []byte("report"))
	c.Wait()
	time.Sleep(100 * time.Millisecond)

	_, found := c.Get("demo.Inventory")
	assert.False(t, found)
}

func TestInvalidate(t *testing.T) {
	c, err := cache.New(20, time.Minute)
	require.NoError(t, err)
	defer c.Close()

	c.Set("a", []byte("1"))
	c.Set("b", []byte("2"))
	c.Wait()

	c.Invalidate("a")

	_, found := c.Get("a")
	assert.False(t, found)
	_, found = c.Get("b")
	assert.True(t, found)
}

func TestStats_AfterOperations(t *testing.T) {
	c, err := cache.New(20, time.Minute)
	require.NoError(t, err)
	defer c.Close()

	hits, misses, _ := c.Stats()
	assert.Equal(t, uint64(0), hits)
	assert.Equal(t, uint64(0), misses)

	c.Get("nonexistent")

	_, misses, _ = c.Stats()
	assert.Equal(t, uint64(1), misses)

	c.Set("key1", []byte("value1"))
	c.Wait()
	c.Get("key1")

	hits, _, ratio := c.Stats()
	assert.Equal(t, uint64(1), hits)
	assert.Equal(t, 0.5, ratio)
}
