package inventory

import "github.com/yoave717/yoavsshoes/internal/query"

// speculation is one optimistically mutated cache entry: the snapshot taken
// before the write, with enough to restore it exactly.
type speculation struct {
	cache   *query.Cache
	key     string
	prev    query.Entry
	existed bool
}

// speculate snapshots the entry for key and, when a value of type T is
// cached, replaces it with mutate(value). mutate must not modify its
// argument; it returns a rebuilt value, so the snapshot stays intact for
// rollback. When nothing is cached under key, speculate is a no-op apart
// from recording that fact.
func speculate[T any](c *query.Cache, key string, mutate func(T) T) *speculation {
	s := &speculation{cache: c, key: key}
	s.prev, s.existed = c.Read(key)

	if cur, ok := query.ReadAs[T](c, key); ok {
		c.Write(key, mutate(cur))
	}
	return s
}

// rollback restores the pre-mutation snapshot.
func (s *speculation) rollback() {
	s.cache.Restore(s.key, s.prev, s.existed)
}
