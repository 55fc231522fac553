package extraction

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// CacheStats is a snapshot of cache counters
type CacheStats struct {
	Hits    int64 `json:"hits"`
	Misses  int64 `json:"misses"`
	Entries int64 `json:"entries"`
}

// Cached wraps an Extractor with an in-memory result cache keyed by a hash of the text.
// Concurrent misses for the same text run a single extraction. Empty results are not cached.
type Cached struct {
	inner   *Extractor
	entries sync.Map // key → types.SkillSet
	group   singleflight.Group

	hits   atomic.Int64
	misses atomic.Int64
	size   atomic.Int64
}

// NewCached creates a caching wrapper around inner
func NewCached(inner *Extractor) (*Cached, error) {
	if inner == nil {
		return nil, &PreconditionError{Message: "cannot build cached extractor", Cause: ErrNilVocabulary}
	}
	return &Cached{inner: inner}, nil
}

// CacheKey returns the cache key for text
func CacheKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return "skills:" + hex.EncodeToString(sum[:])
}

// Extract returns the skills mentioned in text, serving repeated texts from the cache.
// The returned set is a copy and may be modified by the caller.
func (c *Cached) Extract(text string) types.SkillSet {
	key := CacheKey(text)

	if val, ok := c.entries.Load(key); ok {
		c.hits.Add(1)
		slog.Debug("extraction: cache hit", slog.String("key", key[:19]))
		return val.(types.SkillSet).Clone()
	}

	c.misses.Add(1)
	val, _, _ := c.group.Do(key, func() (interface{}, error) {
		skills := c.inner.Extract(text)
		if skills.Len() > 0 {
			if _, loaded := c.entries.LoadOrStore(key, skills); !loaded {
				c.size.Add(1)
			}
		}
		return skills, nil
	})

	return val.(types.SkillSet).Clone()
}

// Stats returns the current hit, miss, and entry counts
func (c *Cached) Stats() CacheStats {
	return CacheStats{
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
		Entries: c.size.Load(),
	}
}

// Clear drops every cached entry. Counters are preserved.
func (c *Cached) Clear() {
	c.entries.Range(func(key, _ interface{}) bool {
		if _, loaded := c.entries.LoadAndDelete(key); loaded {
			c.size.Add(-1)
		}
		return true
	})
}
