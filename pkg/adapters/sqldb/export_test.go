package sqldb

import "context"

// Reset drops and recreates the table so every contract case starts empty.
func (s *Store) Reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DROP TABLE IF EXISTS "+quote(TableName)); err != nil {
		return err
	}
	return s.init(ctx)
}

// Exec runs raw SQL against the underlying handle.
func (s *Store) Exec(ctx context.Context, query string) error {
	_, err := s.db.ExecContext(ctx, query)
	return err
}
