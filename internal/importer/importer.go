// Package importer reads student rows from a CSV file with a header row.
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/registrar/pkg/domain"
	"github.com/aretw0/registrar/pkg/validator"
)

// ErrEmptyFile is returned when the input has no header row.
var ErrEmptyFile = errors.New("import file has no header row")

// Load parses CSV rows into students. Header names map to columns
// case-insensitively; StudentId and isDeleted columns are ignored because
// the store assigns both.
func Load(r io.Reader) ([]domain.Student, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyFile
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	columns, err := mapHeader(header)
	if err != nil {
		return nil, err
	}

	score, _ := validator.New().Rule(domain.KindNumericScore)

	var out []domain.Student
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := reader.FieldPos(0)
		if len(record) != len(columns) {
			return nil, fmt.Errorf("line %d: expected %d values, got %d", line, len(columns), len(record))
		}

		var st domain.Student
		for i, f := range columns {
			if f == nil {
				continue
			}
			raw := strings.TrimSpace(record[i])
			var v any = raw
			if f.Kind() == domain.KindNumericScore {
				if v, err = score.Parse(raw); err != nil {
					return nil, fmt.Errorf("line %d: %s: %w", line, f.Column(), err)
				}
			}
			if err := st.Set(*f, v); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
		}
		out = append(out, st)
	}
	return out, nil
}

// LoadFile opens path and parses it with Load.
func LoadFile(path string) ([]domain.Student, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open import file: %w", err)
	}
	defer f.Close()

	rows, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}

// mapHeader resolves each header cell; skipped columns map to nil.
func mapHeader(header []string) ([]*domain.Field, error) {
	columns := make([]*domain.Field, len(header))
	seen := make(map[domain.Field]bool, len(header))
	for i, name := range header {
		f, err := domain.ParseField(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if err != nil {
			return nil, fmt.Errorf("header column %d: %w", i+1, err)
		}
		if seen[f] {
			return nil, fmt.Errorf("header column %d: duplicate %s", i+1, f.Column())
		}
		seen[f] = true
		if f == domain.FieldStudentID || f == domain.FieldIsDeleted {
			continue
		}
		columns[i] = &f
	}
	return columns, nil
}
