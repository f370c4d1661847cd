package analyzer

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
)

// fingerprintChars bounds how much of the hashed input contributes to a cache
// key. Two inputs identical in their first 1000 characters share an entry;
// that truncation is deliberate and keeps hashing cost flat for large
// documents.
const fingerprintChars = 1000

// Cache memoizes analysis results for the lifetime of the process. Entries
// are never evicted. The analyzer owns its cache; concurrent HTTP requests
// share it, so reads and writes are mutex-guarded with last-write-wins
// semantics.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]any
}

// NewCache creates an empty result cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]any)}
}

// Get returns the cached result for key, if present.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	val, ok := c.entries[key]
	return val, ok
}

// Put stores a result under key, replacing any previous entry.
func (c *Cache) Put(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// cacheKey derives the composite cache key for an analysis kind from the
// input that identifies the request (a document prefix, possibly with the
// query folded in by the caller).
func cacheKey(kind Kind, hashInput string) string {
	if len(hashInput) > fingerprintChars {
		hashInput = hashInput[:fingerprintChars]
	}
	sum := sha256.Sum256([]byte(hashInput))
	return fmt.Sprintf("%s_%s", kind, hex.EncodeToString(sum[:]))
}
