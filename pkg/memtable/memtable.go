package memtable

import (
	"github.com/coocood/freecache"
)

// MemTable is a process local cache with eviction, entries may disappear at any time
type MemTable struct {
	cache *freecache.Cache
}

// New creates freecache with size
func New(size int) *MemTable {
	return &MemTable{
		cache: freecache.NewCache(size),
	}
}

// Get ...
func (m *MemTable) Get(key string) ([]byte, bool) {
	data, err := m.cache.Get([]byte(key))
	if err != nil {
		return nil, false
	}
	return data, true
}

// Set with ttl in seconds, zero means no expiration
func (m *MemTable) Set(key string, value []byte, ttlSeconds int) {
	_ = m.cache.Set([]byte(key), value, ttlSeconds)
}

// Delete ...
func (m *MemTable) Delete(key string) {
	m.cache.Del([]byte(key))
}
