package archive

import (
	"context"
	"sort"
	"sync"
)

// memrepo is the in-memory repository used when no database is configured.
// Records live for the process lifetime only.
type memrepo struct {
	mu   sync.RWMutex
	byID map[string]*Record
	all  []*Record
}

func NewMemoryRepository() Repository {
	return &memrepo{byID: make(map[string]*Record)}
}

func (m *memrepo) Insert(ctx context.Context, rec *Record) error {
	if rec == nil {
		return ErrDuplicateRecord
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.byID[rec.ID]; exists {
		return ErrDuplicateRecord
	}
	cp := copyRecord(rec)
	m.byID[cp.ID] = cp
	m.all = append(m.all, cp)
	return nil
}

func (m *memrepo) Recent(ctx context.Context, limit int) ([]*Record, error) {
	if limit <= 0 {
		limit = 10
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	items := append([]*Record(nil), m.all...)
	sort.Slice(items, func(i, j int) bool {
		return items[i].EndedAt.After(items[j].EndedAt)
	})
	if len(items) > limit {
		items = items[:limit]
	}
	out := make([]*Record, 0, len(items))
	for _, rec := range items {
		out = append(out, copyRecord(rec))
	}
	return out, nil
}

func (m *memrepo) Get(ctx context.Context, id string) (*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.byID[id]
	if !ok {
		return nil, ErrRecordNotFound
	}
	return copyRecord(rec), nil
}

// copyRecord keeps stored records isolated from caller mutation on both the
// insert and read paths.
func copyRecord(rec *Record) *Record {
	cp := *rec
	cp.MovesUCI = append([]string(nil), rec.MovesUCI...)
	return &cp
}
