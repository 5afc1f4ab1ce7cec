// Package students binds record store operations to the interactive menus.
package students

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/registrar/pkg/binder"
	"github.com/aretw0/registrar/pkg/domain"
	"github.com/aretw0/registrar/pkg/ports"
	"github.com/aretw0/registrar/pkg/validator"
)

// MsgUnknownStudent is printed when a well-formed identifier has no record.
const MsgUnknownStudent = "Invalid Student ID. No student with ID %d."

// Terminal is the console surface the service prompts and prints through.
type Terminal interface {
	ReadLine(ctx context.Context, prompt string) (string, error)
	Println(a ...any)
	Printf(format string, a ...any)
	Render(content string)
}

// Service implements every binder operation against a RecordStore.
type Service struct {
	store     ports.RecordStore
	term      Terminal
	validator *validator.Validator
	logger    *slog.Logger
	rich      bool
}

// Option configures a Service.
type Option func(*Service)

// WithValidator replaces the default input validator.
func WithValidator(v *validator.Validator) Option {
	return func(s *Service) {
		s.validator = v
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithRichOutput renders listings as markdown tables through the terminal renderer.
func WithRichOutput(enabled bool) Option {
	return func(s *Service) {
		s.rich = enabled
	}
}

// NewService creates a service over store and term.
func NewService(store ports.RecordStore, term Terminal, opts ...Option) *Service {
	s := &Service{
		store: store,
		term:  term,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.validator == nil {
		s.validator = validator.New()
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s
}

// Register installs a target for every operation.
func (s *Service) Register(reg *binder.Registry) {
	reg.Register(binder.OpListAll, s.listAll)
	reg.Register(binder.OpInsert, s.insert)
	reg.Register(binder.OpUpdateField, s.updateField)
	reg.Register(binder.OpSoftDelete, s.softDelete)
	reg.Register(binder.OpQueryByField, s.queryByField)
	reg.Register(binder.OpBulkLoad, s.bulkLoad)
}

// Field returns a deferred argument prompting for a value of kind.
func (s *Service) Field(prompt string, kind domain.FieldKind) binder.Source {
	return s.validator.Source(s.term, prompt, kind)
}

// ExistingID returns a deferred argument that prompts for an identifier and
// repeats until it names a stored record. Store failures other than a missing
// record are returned.
func (s *Service) ExistingID(prompt string) binder.Source {
	return binder.Defer(func(ctx context.Context) (any, error) {
		for {
			v, err := s.validator.Validate(ctx, s.term, prompt, domain.KindIdentifier)
			if err != nil {
				return nil, err
			}
			id, ok := v.(int64)
			if !ok {
				return nil, fmt.Errorf("identifier rule returned %T", v)
			}

			_, err = s.store.Get(ctx, id)
			if err == nil {
				return id, nil
			}
			if !errors.Is(err, domain.ErrStudentNotFound) {
				return nil, err
			}
			s.term.Printf(MsgUnknownStudent+"\n", id)
		}
	})
}

func (s *Service) listAll(ctx context.Context, args []any) (any, error) {
	rows, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		s.term.Println("No students on record.")
		return rows, nil
	}
	s.print(rows)
	return rows, nil
}

func (s *Service) insert(ctx context.Context, args []any) (any, error) {
	values, err := argAt[[]any](args, 0)
	if err != nil {
		return nil, err
	}
	st, err := domain.NewStudent(values)
	if err != nil {
		return nil, err
	}
	id, err := s.store.Insert(ctx, st)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("student inserted", "id", id)
	s.term.Printf("Student added with ID %d.\n", id)
	return id, nil
}

func (s *Service) updateField(ctx context.Context, args []any) (any, error) {
	id, err := argAt[int64](args, 0)
	if err != nil {
		return nil, err
	}
	field, err := argAt[domain.Field](args, 1)
	if err != nil {
		return nil, err
	}
	if len(args) < 3 {
		return nil, fmt.Errorf("missing argument 2 for %s", binder.OpUpdateField)
	}
	if err := s.store.UpdateField(ctx, id, field, args[2]); err != nil {
		return nil, err
	}
	s.logger.Debug("student updated", "id", id, "field", field.Column())
	s.term.Printf("Student %d updated: %s = %v.\n", id, field.Column(), args[2])
	return id, nil
}

func (s *Service) softDelete(ctx context.Context, args []any) (any, error) {
	id, err := argAt[int64](args, 0)
	if err != nil {
		return nil, err
	}
	if err := s.store.SoftDelete(ctx, id); err != nil {
		return nil, err
	}
	s.logger.Debug("student deleted", "id", id)
	s.term.Printf("Student %d deleted.\n", id)
	return id, nil
}

func (s *Service) queryByField(ctx context.Context, args []any) (any, error) {
	field, err := argAt[domain.Field](args, 0)
	if err != nil {
		return nil, err
	}
	if len(args) < 2 {
		return nil, fmt.Errorf("missing argument 1 for %s", binder.OpQueryByField)
	}
	rows, err := s.store.QueryByField(ctx, field, args[1])
	if err != nil {
		return nil, err
	}
	s.term.Printf("%d record(s) found.\n", len(rows))
	if len(rows) > 0 {
		s.print(rows)
	}
	return rows, nil
}

func (s *Service) bulkLoad(ctx context.Context, args []any) (any, error) {
	rows, err := argAt[[]domain.Student](args, 0)
	if err != nil {
		return nil, err
	}
	if err := s.store.BulkLoad(ctx, rows); err != nil {
		return nil, fmt.Errorf("bulk load: %w", err)
	}
	s.logger.Info("students imported", "count", len(rows))
	return len(rows), nil
}

func argAt[T any](args []any, i int) (T, error) {
	var zero T
	if i >= len(args) {
		return zero, fmt.Errorf("missing argument %d", i)
	}
	v, ok := args[i].(T)
	if !ok {
		return zero, fmt.Errorf("argument %d: expected %T, got %T", i, zero, args[i])
	}
	return v, nil
}
