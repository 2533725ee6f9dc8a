package zonotope

import "sync"

// countKey indexes the memo table by (m, n).
type countKey struct{ m, n int }

// CountCache memoizes the zonotope vertex count recurrence. The zero
// value is not usable; construct with NewCountCache. Safe for concurrent
// use: the table is guarded by a mutex, so first-population races are
// impossible even when domains are built in parallel.
type CountCache struct {
	mu    sync.Mutex
	table map[countKey]int
}

// NewCountCache returns an empty memo table.
func NewCountCache() *CountCache {
	return &CountCache{table: make(map[countKey]int)}
}

// Count returns the exact number of vertices of a zonotope generated by m
// generic vectors in n dimensions, via the recurrence
//
//	count(m, n) = count(m-1, n-1) + count(m-1, n)
//
// with count(m, 1) = count(1, n) = 2. Deterministic and pure; the result
// is an expectation for generic (full-rank, no parallel generators) W1
// and serves only as a validation oracle.
//
// Returns ErrBadDims unless 1 ≤ n ≤ m.
func (c *CountCache) Count(m, n int) (int, error) {
	if m < 1 || n < 1 || n > m {
		return 0, ErrBadDims
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.count(m, n), nil
}

// count is the memoized recurrence body. Caller holds c.mu.
func (c *CountCache) count(m, n int) int {
	if m == 1 || n == 1 {
		return 2
	}
	k := countKey{m, n}
	if v, ok := c.table[k]; ok {
		return v
	}
	v := c.count(m-1, n-1) + c.count(m-1, n)
	c.table[k] = v

	return v
}

// sharedCounts backs the package-level Count for callers that do not need
// to own a cache.
var sharedCounts = NewCountCache()

// Count is a convenience wrapper over a shared process-wide CountCache.
func Count(m, n int) (int, error) {
	return sharedCounts.Count(m, n)
}
