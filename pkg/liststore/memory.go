package liststore

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/partstrack/parts_inventory_app/internal/apperrors"
)

// MemoryStore is an in-memory implementation of the Store contract, used in
// tests and local development. It matches the remote store's semantics:
// per-record writes only, no cross-record transactions.
type MemoryStore struct {
	mu       sync.Mutex
	tables   map[Collection]map[string]Record
	order    map[Collection][]string
	failures map[string]*injectedFailure
}

type injectedFailure struct {
	after int // number of calls to let through first
	err   error
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		tables:   make(map[Collection]map[string]Record),
		order:    make(map[Collection][]string),
		failures: make(map[string]*injectedFailure),
	}
}

// FailCreateAfter makes Create calls on the collection fail with err after
// `after` successful calls. Used to exercise partial-failure paths.
func (s *MemoryStore) FailCreateAfter(collection Collection, after int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures["create:"+string(collection)] = &injectedFailure{after: after, err: err}
}

// FailUpdateAfter makes Update calls on the collection fail with err after
// `after` successful calls.
func (s *MemoryStore) FailUpdateAfter(collection Collection, after int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures["update:"+string(collection)] = &injectedFailure{after: after, err: err}
}

func (s *MemoryStore) checkFailure(op string, collection Collection) error {
	key := op + ":" + string(collection)
	f, ok := s.failures[key]
	if !ok {
		return nil
	}
	if f.after > 0 {
		f.after--
		return nil
	}
	delete(s.failures, key)
	return f.err
}

// List implements Store.
func (s *MemoryStore) List(ctx context.Context, collection Collection, q Query) ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var results []Record
	for _, id := range s.order[collection] {
		record := s.tables[collection][id]
		if matches(record, q.Filter) {
			results = append(results, cloneRecord(record))
		}
	}

	if q.OrderBy != "" {
		sort.SliceStable(results, func(i, j int) bool {
			less := fmt.Sprint(results[i][q.OrderBy]) < fmt.Sprint(results[j][q.OrderBy])
			if q.Desc {
				return !less
			}
			return less
		})
	}
	if q.Top > 0 && len(results) > q.Top {
		results = results[:q.Top]
	}
	return results, nil
}

// Get implements Store.
func (s *MemoryStore) Get(ctx context.Context, collection Collection, id string) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.tables[collection][id]
	if !ok {
		return nil, fmt.Errorf("%s record %s: %w", collection, id, apperrors.ErrNotFound)
	}
	return cloneRecord(record), nil
}

// Create implements Store, assigning a fresh record id.
func (s *MemoryStore) Create(ctx context.Context, collection Collection, fields Record) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkFailure("create", collection); err != nil {
		return nil, err
	}

	record := cloneRecord(fields)
	id := uuid.NewString()
	record[RecordIDField] = id
	if _, ok := record["created_at"]; !ok {
		record["created_at"] = time.Now().UTC().Format(time.RFC3339Nano)
	}

	if s.tables[collection] == nil {
		s.tables[collection] = make(map[string]Record)
	}
	s.tables[collection][id] = record
	s.order[collection] = append(s.order[collection], id)
	return cloneRecord(record), nil
}

// Update implements Store, patching only the provided fields.
func (s *MemoryStore) Update(ctx context.Context, collection Collection, id string, fields Record) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkFailure("update", collection); err != nil {
		return nil, err
	}

	record, ok := s.tables[collection][id]
	if !ok {
		return nil, fmt.Errorf("%s record %s: %w", collection, id, apperrors.ErrNotFound)
	}
	for field, value := range fields {
		if field == RecordIDField {
			continue
		}
		record[field] = value
	}
	return cloneRecord(record), nil
}

// Delete implements Store.
func (s *MemoryStore) Delete(ctx context.Context, collection Collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tables[collection][id]; !ok {
		return fmt.Errorf("%s record %s: %w", collection, id, apperrors.ErrNotFound)
	}
	delete(s.tables[collection], id)
	ids := s.order[collection]
	for i, existing := range ids {
		if existing == id {
			s.order[collection] = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	return nil
}

func matches(record Record, filter map[string]any) bool {
	for field, want := range filter {
		got, ok := record[field]
		if !ok || got == nil {
			return false
		}
		// Loose comparison: JSON decoding yields float64 for numbers,
		// while filters are built from typed Go values.
		if fmt.Sprint(got) != fmt.Sprint(want) {
			return false
		}
	}
	return true
}

func cloneRecord(record Record) Record {
	clone := make(Record, len(record))
	for field, value := range record {
		clone[field] = value
	}
	return clone
}
