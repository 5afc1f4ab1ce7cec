package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/aretw0/registrar/pkg/domain"
)

// Store implements ports.RecordStore in memory.
// Safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	rows   map[int64]domain.Student
	lastID int64
}

// NewStore creates a new empty in-memory store.
func NewStore() *Store {
	return &Store{
		rows: make(map[int64]domain.Student),
	}
}

// BulkLoad inserts rows one by one and stops at the first failure.
func (s *Store) BulkLoad(ctx context.Context, rows []domain.Student) error {
	for _, row := range rows {
		if _, err := s.Insert(ctx, row); err != nil {
			return err
		}
	}
	return nil
}

// ListAll returns copies of every row ordered by identifier.
func (s *Store) ListAll(ctx context.Context) ([]domain.Student, error) {
	return s.filter(ctx, func(domain.Student) bool { return true })
}

// Get returns a copy of the identified row.
func (s *Store) Get(ctx context.Context, id int64) (domain.Student, error) {
	if err := ctx.Err(); err != nil {
		return domain.Student{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	row, ok := s.rows[id]
	if !ok {
		return domain.Student{}, domain.ErrStudentNotFound
	}
	return row, nil
}

// Insert stores a new active row.
func (s *Store) Insert(ctx context.Context, st domain.Student) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastID++
	st.ID = s.lastID
	st.IsDeleted = false
	s.rows[st.ID] = st
	return st.ID, nil
}

// UpdateField sets one column of the identified row.
func (s *Store) UpdateField(ctx context.Context, id int64, field domain.Field, value any) error {
	cv, err := field.CoerceUpdate(value)
	if err != nil {
		return err
	}
	return s.modify(ctx, id, func(row *domain.Student) error {
		return row.Set(field, cv)
	})
}

// SoftDelete flags the identified row as deleted.
func (s *Store) SoftDelete(ctx context.Context, id int64) error {
	return s.modify(ctx, id, func(row *domain.Student) error {
		row.IsDeleted = true
		return nil
	})
}

// QueryByField returns the rows whose column equals value.
func (s *Store) QueryByField(ctx context.Context, field domain.Field, value any) ([]domain.Student, error) {
	cv, err := field.Coerce(value)
	if err != nil {
		return nil, err
	}
	return s.filter(ctx, func(row domain.Student) bool {
		return row.Matches(field, cv)
	})
}

// Close is a no-op.
func (s *Store) Close() error {
	return nil
}

func (s *Store) modify(ctx context.Context, id int64, fn func(row *domain.Student) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.rows[id]
	if !ok {
		return domain.ErrStudentNotFound
	}
	if err := fn(&row); err != nil {
		return err
	}
	s.rows[id] = row
	return nil
}

func (s *Store) filter(ctx context.Context, keep func(domain.Student) bool) ([]domain.Student, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Student, 0, len(s.rows))
	for _, row := range s.rows {
		if keep(row) {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
