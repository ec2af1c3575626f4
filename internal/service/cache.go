package service

import (
	"fmt"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/kapu/member-directory-go/internal/constants"
	"github.com/kapu/member-directory-go/internal/domain"
)

// RecordCache memoizes validated member records for the process lifetime.
// Keys embed the schema version, so bumping constants.CacheSchemaVersion
// invalidates every previously stored entry on the next lookup. There is no
// eviction and no size bound; unbounded growth is an accepted limitation.
type RecordCache struct {
	mu            sync.RWMutex
	entries       map[uint64]*domain.MemberRecord
	schemaVersion string
}

func NewRecordCache(schemaVersion string) *RecordCache {
	if schemaVersion == "" {
		schemaVersion = constants.CacheSchemaVersion
	}
	return &RecordCache{
		entries:       make(map[uint64]*domain.MemberRecord),
		schemaVersion: schemaVersion,
	}
}

func (c *RecordCache) key(memberID int) uint64 {
	return xxhash.Sum64String(fmt.Sprintf(constants.CacheKeyFormat, memberID, c.schemaVersion))
}

// Get returns a copy of the stored record annotated as a cache hit, with
// ProcessingTimeMs zeroed since no extraction work happened.
func (c *RecordCache) Get(memberID int) (*domain.MemberRecord, bool) {
	c.mu.RLock()
	record, ok := c.entries[c.key(memberID)]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}

	hit := record.Clone()
	hit.FromCache = true
	hit.ExtractionMetadata.ProcessingTimeMs = 0
	return hit, true
}

// Put stores a copy of record. Only cacheable (warning-free) records are
// accepted. Concurrent writers for the same id race harmlessly: last writer
// wins on an identical key.
func (c *RecordCache) Put(memberID int, record *domain.MemberRecord) {
	if !record.IsCacheable() {
		return
	}

	c.mu.Lock()
	c.entries[c.key(memberID)] = record.Clone()
	c.mu.Unlock()
}

func (c *RecordCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
