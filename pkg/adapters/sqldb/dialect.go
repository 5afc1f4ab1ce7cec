package sqldb

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/registrar/pkg/domain"
)

// TableName is the table holding the records.
const TableName = "Students"

// Dialect captures the SQL differences between supported engines.
type Dialect struct {
	// Name is the configuration name of the dialect.
	Name string
	// Driver is the database/sql driver name.
	Driver string

	placeholder func(n int) string
	idColumn    string
	scoreColumn string
}

var (
	// DialectSQLite targets modernc.org/sqlite.
	DialectSQLite = Dialect{
		Name:        "sqlite",
		Driver:      "sqlite",
		placeholder: func(int) string { return "?" },
		idColumn:    "INTEGER PRIMARY KEY AUTOINCREMENT",
		scoreColumn: "REAL",
	}

	// DialectPostgres targets PostgreSQL through pgx's database/sql driver.
	DialectPostgres = Dialect{
		Name:        "postgres",
		Driver:      "pgx",
		placeholder: func(n int) string { return "$" + strconv.Itoa(n) },
		idColumn:    "BIGSERIAL PRIMARY KEY",
		scoreColumn: "DOUBLE PRECISION",
	}
)

// DialectFor resolves a configured store driver name.
func DialectFor(name string) (Dialect, error) {
	switch strings.ToLower(name) {
	case "sqlite", "sqlite3":
		return DialectSQLite, nil
	case "postgres", "postgresql", "pgx":
		return DialectPostgres, nil
	}
	return Dialect{}, fmt.Errorf("unsupported sql dialect %q", name)
}

func quote(ident string) string {
	return `"` + ident + `"`
}

func (d Dialect) createTable() string {
	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE IF NOT EXISTS %s (", quote(TableName))
	for i, f := range domain.Fields() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(quote(f.Column()))
		b.WriteString(" ")
		switch f.Kind() {
		case domain.KindIdentifier:
			b.WriteString(d.idColumn)
		case domain.KindNumericScore:
			b.WriteString(d.scoreColumn)
		case domain.KindBooleanFlag:
			b.WriteString("INTEGER NOT NULL DEFAULT 0")
		default:
			b.WriteString("TEXT")
		}
	}
	b.WriteString(")")
	return b.String()
}

func (d Dialect) selectColumns() string {
	cols := make([]string, 0, len(domain.Fields()))
	for _, f := range domain.Fields() {
		cols = append(cols, quote(f.Column()))
	}
	return "SELECT " + strings.Join(cols, ", ") + " FROM " + quote(TableName)
}

func (d Dialect) selectAll() string {
	return d.selectColumns() + " ORDER BY " + quote(domain.FieldStudentID.Column())
}

func (d Dialect) selectByID() string {
	return d.selectColumns() + " WHERE " + quote(domain.FieldStudentID.Column()) + " = " + d.placeholder(1)
}

func (d Dialect) selectWhere(f domain.Field) string {
	return d.selectColumns() +
		" WHERE " + quote(f.Column()) + " = " + d.placeholder(1) +
		" ORDER BY " + quote(domain.FieldStudentID.Column())
}

// insert lists the insertable columns; returning appends the identifier clause.
func (d Dialect) insert(returning bool) string {
	fields := domain.InsertableFields()
	cols := make([]string, len(fields))
	marks := make([]string, len(fields))
	for i, f := range fields {
		cols[i] = quote(f.Column())
		marks[i] = d.placeholder(i + 1)
	}
	q := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		quote(TableName), strings.Join(cols, ", "), strings.Join(marks, ", "))
	if returning {
		q += " RETURNING " + quote(domain.FieldStudentID.Column())
	}
	return q
}

func (d Dialect) update(f domain.Field) string {
	return fmt.Sprintf("UPDATE %s SET %s = %s WHERE %s = %s",
		quote(TableName), quote(f.Column()), d.placeholder(1),
		quote(domain.FieldStudentID.Column()), d.placeholder(2))
}
