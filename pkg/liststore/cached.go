package liststore

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/partstrack/parts_inventory_app/pkg/cache"
)

// CachedStore decorates a Store with a short-lived read cache.
// Get and List results are cached per collection; every successful write
// invalidates the whole collection's keys, so reads after a write always
// hit the backing store.
type CachedStore struct {
	inner Store
	cache cache.Cache
	ttl   time.Duration
}

var _ Store = (*CachedStore)(nil)

// NewCachedStore wraps inner with the given cache and TTL.
func NewCachedStore(inner Store, c cache.Cache, ttl time.Duration) *CachedStore {
	return &CachedStore{inner: inner, cache: c, ttl: ttl}
}

// List implements Store.
func (s *CachedStore) List(ctx context.Context, collection Collection, q Query) ([]Record, error) {
	key := s.listKey(collection, q)
	if cached, ok := s.cache.Get(ctx, key); ok {
		var records []Record
		if err := json.Unmarshal(cached, &records); err == nil {
			return records, nil
		}
		// An undecodable entry is dropped with the next write invalidation.
	}

	records, err := s.inner.List(ctx, collection, q)
	if err != nil {
		return nil, err
	}
	if encoded, err := json.Marshal(records); err == nil {
		_ = s.cache.Set(ctx, key, encoded, s.ttl)
	}
	return records, nil
}

// Get implements Store.
func (s *CachedStore) Get(ctx context.Context, collection Collection, id string) (Record, error) {
	key := s.recordKey(collection, id)
	if cached, ok := s.cache.Get(ctx, key); ok {
		var record Record
		if err := json.Unmarshal(cached, &record); err == nil {
			return record, nil
		}
	}

	record, err := s.inner.Get(ctx, collection, id)
	if err != nil {
		return nil, err
	}
	if encoded, err := json.Marshal(record); err == nil {
		_ = s.cache.Set(ctx, key, encoded, s.ttl)
	}
	return record, nil
}

// Create implements Store and invalidates the collection's cached reads.
func (s *CachedStore) Create(ctx context.Context, collection Collection, fields Record) (Record, error) {
	record, err := s.inner.Create(ctx, collection, fields)
	if err != nil {
		return nil, err
	}
	_ = s.cache.InvalidatePrefix(ctx, s.collectionPrefix(collection))
	return record, nil
}

// Update implements Store and invalidates the collection's cached reads.
func (s *CachedStore) Update(ctx context.Context, collection Collection, id string, fields Record) (Record, error) {
	record, err := s.inner.Update(ctx, collection, id, fields)
	if err != nil {
		return nil, err
	}
	_ = s.cache.InvalidatePrefix(ctx, s.collectionPrefix(collection))
	return record, nil
}

// Delete implements Store and invalidates the collection's cached reads.
func (s *CachedStore) Delete(ctx context.Context, collection Collection, id string) error {
	if err := s.inner.Delete(ctx, collection, id); err != nil {
		return err
	}
	_ = s.cache.InvalidatePrefix(ctx, s.collectionPrefix(collection))
	return nil
}

func (s *CachedStore) collectionPrefix(collection Collection) string {
	return "ls:" + string(collection) + ":"
}

func (s *CachedStore) recordKey(collection Collection, id string) string {
	return s.collectionPrefix(collection) + "id:" + id
}

// listKey builds a deterministic key from the query shape.
func (s *CachedStore) listKey(collection Collection, q Query) string {
	fields := make([]string, 0, len(q.Filter))
	for field, value := range q.Filter {
		fields = append(fields, field+"="+fmt.Sprint(value))
	}
	sort.Strings(fields)
	return fmt.Sprintf("%slist:%s:%s:%v:%d", s.collectionPrefix(collection), strings.Join(fields, ","), q.OrderBy, q.Desc, q.Top)
}
