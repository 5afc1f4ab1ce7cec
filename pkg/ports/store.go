package ports

import (
	"context"

	"github.com/aretw0/registrar/pkg/domain"
)

// RecordStore defines the interface for persisting student records.
// Identifiers are assigned by the store, starting at 1 and never reused.
// Every listing is ordered by ascending identifier.
type RecordStore interface {
	// BulkLoad inserts rows in order, ignoring their identifiers.
	BulkLoad(ctx context.Context, rows []domain.Student) error

	// ListAll returns every row, soft-deleted rows included.
	ListAll(ctx context.Context) ([]domain.Student, error)

	// Get returns the row with the given identifier.
	// Returns domain.ErrStudentNotFound if it does not exist.
	Get(ctx context.Context, id int64) (domain.Student, error)

	// Insert stores s as a new active row and returns its identifier.
	// s.ID and s.IsDeleted are ignored.
	Insert(ctx context.Context, s domain.Student) (int64, error)

	// UpdateField sets a single column of the identified row.
	// The value is coerced with Field.Coerce.
	UpdateField(ctx context.Context, id int64, field domain.Field, value any) error

	// SoftDelete marks the identified row as deleted without removing it.
	SoftDelete(ctx context.Context, id int64) error

	// QueryByField returns the rows whose column equals value exactly.
	QueryByField(ctx context.Context, field domain.Field, value any) ([]domain.Student, error)

	// Close releases the underlying connection.
	Close() error
}
