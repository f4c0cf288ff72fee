package query

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteThenRead(t *testing.T) {
	c := New()
	c.Write("k", 42)

	e, ok := c.Read("k")
	require.True(t, ok)
	assert.Equal(t, 42, e.Value)
	assert.False(t, e.Stale)
}

func TestRead_Missing(t *testing.T) {
	c := New()

	_, ok := c.Read("absent")
	assert.False(t, ok)
}

func TestInvalidate_MarksStaleButKeepsValue(t *testing.T) {
	c := New()
	c.Write("k", 42)

	c.Invalidate("k", "also-absent")

	e, ok := c.Read("k")
	require.True(t, ok)
	assert.True(t, e.Stale)
	assert.Equal(t, 42, e.Value)
}

func TestInvalidatePrefix(t *testing.T) {
	c := New()
	c.Write("shoes:inventory:a", 1)
	c.Write("shoes:inventory:b", 2)
	c.Write("shoe-stats", 3)

	c.InvalidatePrefix("shoes:inventory:")

	a, _ := c.Read("shoes:inventory:a")
	b, _ := c.Read("shoes:inventory:b")
	stats, _ := c.Read("shoe-stats")
	assert.True(t, a.Stale)
	assert.True(t, b.Stale)
	assert.False(t, stats.Stale)
}

func TestKeys_FiltersByPrefix(t *testing.T) {
	c := New()
	c.Write("shoes:inventory:a", 1)
	c.Write("shoes:inventory:b", 2)
	c.Write("other", 3)

	keys := c.Keys("shoes:inventory:")
	assert.ElementsMatch(t, []string{"shoes:inventory:a", "shoes:inventory:b"}, keys)
}

func TestGet_FetchesOnMiss(t *testing.T) {
	c := New()
	var calls int32

	v, err := c.Get(context.Background(), "k", func(context.Context) (any, error) {
		atomic.AddInt32(&calls, 1)
		return "fetched", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "fetched", v)
	assert.Equal(t, int32(1), calls)

	// Second Get hits the cache.
	v, err = c.Get(context.Background(), "k", func(context.Context) (any, error) {
		atomic.AddInt32(&calls, 1)
		return "refetched", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "fetched", v)
	assert.Equal(t, int32(1), calls)
}

func TestGet_RefetchesStaleEntry(t *testing.T) {
	c := New()
	c.Write("k", "old")
	c.Invalidate("k")

	v, err := c.Get(context.Background(), "k", func(context.Context) (any, error) {
		return "fresh", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "fresh", v)

	e, _ := c.Read("k")
	assert.False(t, e.Stale)
}

func TestGet_DeduplicatesConcurrentFetches(t *testing.T) {
	c := New()
	var calls int32

	fetch := func(context.Context) (any, error) {
		atomic.AddInt32(&calls, 1)
		time.Sleep(50 * time.Millisecond)
		return "v", nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := c.Get(context.Background(), "k", fetch)
			assert.NoError(t, err)
			assert.Equal(t, "v", v)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), calls)
}

func TestGet_FetchErrorLeavesEntryIntact(t *testing.T) {
	c := New()
	c.Write("k", "stale-but-usable")
	c.Invalidate("k")

	_, err := c.Get(context.Background(), "k", func(context.Context) (any, error) {
		return nil, errors.New("backend down")
	})
	require.Error(t, err)

	e, ok := c.Read("k")
	require.True(t, ok)
	assert.Equal(t, "stale-but-usable", e.Value)
	assert.True(t, e.Stale)
}

func TestUpdate_RewritesValue(t *testing.T) {
	c := New()
	c.Write("k", 10)

	c.Update("k", func(v any) any { return v.(int) + 5 })

	e, ok := c.Read("k")
	require.True(t, ok)
	assert.Equal(t, 15, e.Value)
}

func TestUpdate_MissingKeyIsNoOp(t *testing.T) {
	c := New()

	c.Update("k", func(v any) any {
		t.Fatal("fn must not run for an absent key")
		return v
	})

	_, ok := c.Read("k")
	assert.False(t, ok)
}

func TestUpdate_PreservesStaleness(t *testing.T) {
	c := New()
	c.Write("k", 10)
	c.Invalidate("k")

	c.Update("k", func(v any) any { return v.(int) + 5 })

	e, ok := c.Read("k")
	require.True(t, ok)
	assert.Equal(t, 15, e.Value)
	assert.True(t, e.Stale)
}

func TestUpdate_SerializesConcurrentRewrites(t *testing.T) {
	c := New()
	c.Write("k", 0)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Update("k", func(v any) any { return v.(int) + 1 })
		}()
	}
	wg.Wait()

	e, ok := c.Read("k")
	require.True(t, ok)
	assert.Equal(t, 100, e.Value)
}

func TestRestore_ReinstatesSnapshot(t *testing.T) {
	c := New()
	c.Write("k", "original")
	snap, existed := c.Read("k")

	c.Write("k", "speculative")
	c.Restore("k", snap, existed)

	e, ok := c.Read("k")
	require.True(t, ok)
	assert.Equal(t, "original", e.Value)
}

func TestRestore_DeletesWhenSnapshotAbsent(t *testing.T) {
	c := New()
	snap, existed := c.Read("k")
	require.False(t, existed)

	c.Write("k", "speculative")
	c.Restore("k", snap, existed)

	_, ok := c.Read("k")
	assert.False(t, ok)
}

func TestReadAs_TypeMismatch(t *testing.T) {
	c := New()
	c.Write("k", "a string")

	_, ok := ReadAs[int](c, "k")
	assert.False(t, ok)

	s, ok := ReadAs[string](c, "k")
	require.True(t, ok)
	assert.Equal(t, "a string", s)
}
