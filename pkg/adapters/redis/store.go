package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/aretw0/registrar/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

// DefaultPrefix namespaces every key written by the store.
const DefaultPrefix = "registrar:"

// Store implements ports.RecordStore using Redis.
// Each student is a hash; an ordered ZSET indexes the identifiers.
type Store struct {
	client *backend.Client
	prefix string
}

type Option func(*Store)

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// New creates a new Redis store with options.
func New(address, password string, db int, opts ...Option) *Store {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: DefaultPrefix,
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

// Ping verifies the server is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to reach redis: %w", err)
	}
	return nil
}

func (s *Store) key(id int64) string {
	return s.prefix + "student:" + strconv.FormatInt(id, 10)
}

func (s *Store) seqKey() string {
	return s.prefix + "seq"
}

func (s *Store) indexKey() string {
	return s.prefix + "index"
}

// BulkLoad inserts rows one by one and stops at the first failure.
func (s *Store) BulkLoad(ctx context.Context, rows []domain.Student) error {
	for i, row := range rows {
		if _, err := s.Insert(ctx, row); err != nil {
			return fmt.Errorf("row %d: %w", i+1, err)
		}
	}
	return nil
}

// Insert allocates an identifier and writes the hash and its index entry.
func (s *Store) Insert(ctx context.Context, st domain.Student) (int64, error) {
	id, err := s.client.Incr(ctx, s.seqKey()).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to allocate student id: %w", err)
	}
	st.ID = id
	st.IsDeleted = false

	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, s.key(id), encode(st))
	pipe.ZAdd(ctx, s.indexKey(), backend.Z{
		Score:  float64(id),
		Member: strconv.FormatInt(id, 10),
	})
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("failed to save to redis: %w", err)
	}
	return id, nil
}

// Get loads the identified hash.
func (s *Store) Get(ctx context.Context, id int64) (domain.Student, error) {
	vals, err := s.client.HGetAll(ctx, s.key(id)).Result()
	if err != nil {
		return domain.Student{}, fmt.Errorf("failed to get from redis: %w", err)
	}
	if len(vals) == 0 {
		return domain.Student{}, domain.ErrStudentNotFound
	}
	return decode(vals)
}

// ListAll walks the index in identifier order.
func (s *Store) ListAll(ctx context.Context) ([]domain.Student, error) {
	members, err := s.client.ZRange(ctx, s.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	if len(members) == 0 {
		return []domain.Student{}, nil
	}

	pipe := s.client.Pipeline()
	cmds := make([]*backend.MapStringStringCmd, len(members))
	for i, m := range members {
		cmds[i] = pipe.HGetAll(ctx, s.prefix+"student:"+m)
	}
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, backend.Nil) {
		return nil, fmt.Errorf("failed to load students: %w", err)
	}

	out := make([]domain.Student, 0, len(members))
	for _, cmd := range cmds {
		vals := cmd.Val()
		if len(vals) == 0 {
			continue
		}
		st, err := decode(vals)
		if err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, nil
}

// UpdateField rewrites one hash field of an existing student.
func (s *Store) UpdateField(ctx context.Context, id int64, field domain.Field, value any) error {
	cv, err := field.CoerceUpdate(value)
	if err != nil {
		return err
	}
	var st domain.Student
	if err := st.Set(field, cv); err != nil {
		return err
	}
	return s.setField(ctx, id, field.Column(), st.Format(field))
}

// SoftDelete sets the isDeleted hash field to 1.
func (s *Store) SoftDelete(ctx context.Context, id int64) error {
	return s.setField(ctx, id, domain.FieldIsDeleted.Column(), "1")
}

// QueryByField scans every student and keeps exact matches.
func (s *Store) QueryByField(ctx context.Context, field domain.Field, value any) ([]domain.Student, error) {
	cv, err := field.Coerce(value)
	if err != nil {
		return nil, err
	}
	rows, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := rows[:0]
	for _, row := range rows {
		if row.Matches(field, cv) {
			out = append(out, row)
		}
	}
	return out, nil
}

// Close closes the redis client.
func (s *Store) Close() error {
	return s.client.Close()
}

func (s *Store) setField(ctx context.Context, id int64, column, value string) error {
	key := s.key(id)
	n, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("failed to check student %d: %w", id, err)
	}
	if n == 0 {
		return domain.ErrStudentNotFound
	}
	if err := s.client.HSet(ctx, key, column, value).Err(); err != nil {
		return fmt.Errorf("failed to update student %d: %w", id, err)
	}
	return nil
}

func encode(st domain.Student) map[string]any {
	vals := make(map[string]any, len(domain.Fields()))
	for _, f := range domain.Fields() {
		vals[f.Column()] = st.Format(f)
	}
	return vals
}

func decode(vals map[string]string) (domain.Student, error) {
	var st domain.Student
	for _, f := range domain.Fields() {
		raw, ok := vals[f.Column()]
		if !ok {
			continue
		}
		if err := st.Set(f, raw); err != nil {
			return domain.Student{}, fmt.Errorf("corrupt student hash: %w", err)
		}
	}
	return st, nil
}
