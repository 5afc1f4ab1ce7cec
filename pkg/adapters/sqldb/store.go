package sqldb

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aretw0/registrar/pkg/domain"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Store implements ports.RecordStore over database/sql.
type Store struct {
	db      *sql.DB
	dialect Dialect
}

// Open connects to the database and creates the Students table if missing.
func Open(ctx context.Context, driver, dsn string) (*Store, error) {
	dialect, err := DialectFor(driver)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(dialect.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", dialect.Name, err)
	}
	if dialect.Name == DialectSQLite.Name {
		// A single writer avoids SQLITE_BUSY between pooled connections.
		db.SetMaxOpenConns(1)
	}

	s := &Store{db: db, dialect: dialect}
	if err := s.init(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) init(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to connect to %s database: %w", s.dialect.Name, err)
	}
	if _, err := s.db.ExecContext(ctx, s.dialect.createTable()); err != nil {
		return fmt.Errorf("failed to create %s table: %w", TableName, err)
	}
	return nil
}

// BulkLoad inserts every row inside one transaction.
func (s *Store) BulkLoad(ctx context.Context, rows []domain.Student) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin bulk load: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.PrepareContext(ctx, s.dialect.insert(false))
	if err != nil {
		return fmt.Errorf("failed to prepare bulk load: %w", err)
	}
	defer stmt.Close()

	for i, row := range rows {
		if _, err = stmt.ExecContext(ctx, insertArgs(row)...); err != nil {
			return fmt.Errorf("bulk load row %d: %w", i+1, err)
		}
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit bulk load: %w", err)
	}
	return nil
}

// ListAll returns every row ordered by identifier.
func (s *Store) ListAll(ctx context.Context) ([]domain.Student, error) {
	return s.query(ctx, s.dialect.selectAll())
}

// Get returns the identified row.
func (s *Store) Get(ctx context.Context, id int64) (domain.Student, error) {
	rows, err := s.query(ctx, s.dialect.selectByID(), id)
	if err != nil {
		return domain.Student{}, err
	}
	if len(rows) == 0 {
		return domain.Student{}, domain.ErrStudentNotFound
	}
	return rows[0], nil
}

// Insert adds an active row and returns its identifier.
func (s *Store) Insert(ctx context.Context, st domain.Student) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, s.dialect.insert(true), insertArgs(st)...).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert student: %w", err)
	}
	return id, nil
}

// UpdateField sets one column of the identified row.
func (s *Store) UpdateField(ctx context.Context, id int64, field domain.Field, value any) error {
	cv, err := field.CoerceUpdate(value)
	if err != nil {
		return err
	}
	return s.exec(ctx, s.dialect.update(field), arg(cv), id)
}

// SoftDelete sets isDeleted to 1 on the identified row.
func (s *Store) SoftDelete(ctx context.Context, id int64) error {
	return s.exec(ctx, s.dialect.update(domain.FieldIsDeleted), 1, id)
}

// QueryByField returns rows whose column equals value.
func (s *Store) QueryByField(ctx context.Context, field domain.Field, value any) ([]domain.Student, error) {
	cv, err := field.Coerce(value)
	if err != nil {
		return nil, err
	}
	return s.query(ctx, s.dialect.selectWhere(field), arg(cv))
}

// Close closes the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) exec(ctx context.Context, query string, args ...any) error {
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update student: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update student: %w", err)
	}
	if n == 0 {
		return domain.ErrStudentNotFound
	}
	return nil
}

func (s *Store) query(ctx context.Context, query string, args ...any) ([]domain.Student, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query students: %w", err)
	}
	defer rows.Close()

	out := []domain.Student{}
	for rows.Next() {
		st, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read students: %w", err)
	}
	return out, nil
}

// scan tolerates NULL columns written by other tools.
func scan(rows *sql.Rows) (domain.Student, error) {
	var (
		st      domain.Student
		gpa     sql.NullFloat64
		deleted sql.NullInt64
		text    [9]sql.NullString
	)
	err := rows.Scan(
		&st.ID, &text[0], &text[1], &gpa, &text[2], &text[3],
		&text[4], &text[5], &text[6], &text[7], &text[8], &deleted,
	)
	if err != nil {
		return domain.Student{}, fmt.Errorf("failed to scan student: %w", err)
	}
	st.FirstName = text[0].String
	st.LastName = text[1].String
	st.GPA = gpa.Float64
	st.Major = text[2].String
	st.FacultyAdvisor = text[3].String
	st.Address = text[4].String
	st.City = text[5].String
	st.State = text[6].String
	st.ZipCode = text[7].String
	st.MobilePhoneNumber = text[8].String
	st.IsDeleted = deleted.Int64 != 0
	return st, nil
}

func insertArgs(st domain.Student) []any {
	fields := domain.InsertableFields()
	args := make([]any, len(fields))
	for i, f := range fields {
		args[i] = arg(st.Value(f))
	}
	return args
}

// arg maps the flag onto the 0/1 integer column.
func arg(v any) any {
	if b, ok := v.(bool); ok {
		if b {
			return 1
		}
		return 0
	}
	return v
}
