package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FieldKind selects the parsing and range rule applied to raw input for a field.
type FieldKind string

const (
	KindIdentifier   FieldKind = "identifier"
	KindPersonalName FieldKind = "personal-name"
	KindNumericScore FieldKind = "numeric-score"
	KindFreeText     FieldKind = "free-text"
	KindCategoryCode FieldKind = "category-code"
	KindPostalCode   FieldKind = "postal-code"
	KindPhoneNumber  FieldKind = "phone-number"
	KindBooleanFlag  FieldKind = "boolean-flag"
)

// Field is a column of the Students table.
type Field int

const (
	FieldStudentID Field = iota
	FieldFirstName
	FieldLastName
	FieldGPA
	FieldMajor
	FieldFacultyAdvisor
	FieldAddress
	FieldCity
	FieldState
	FieldZipCode
	FieldMobilePhoneNumber
	FieldIsDeleted
)

var fieldSpecs = [...]struct {
	column string
	kind   FieldKind
}{
	FieldStudentID:         {"StudentId", KindIdentifier},
	FieldFirstName:         {"FirstName", KindPersonalName},
	FieldLastName:          {"LastName", KindPersonalName},
	FieldGPA:               {"GPA", KindNumericScore},
	FieldMajor:             {"Major", KindCategoryCode},
	FieldFacultyAdvisor:    {"FacultyAdvisor", KindPersonalName},
	FieldAddress:           {"Address", KindFreeText},
	FieldCity:              {"City", KindFreeText},
	FieldState:             {"State", KindCategoryCode},
	FieldZipCode:           {"ZipCode", KindPostalCode},
	FieldMobilePhoneNumber: {"MobilePhoneNumber", KindPhoneNumber},
	FieldIsDeleted:         {"isDeleted", KindBooleanFlag},
}

// Fields returns every column in storage order.
func Fields() []Field {
	out := make([]Field, len(fieldSpecs))
	for i := range fieldSpecs {
		out[i] = Field(i)
	}
	return out
}

// InsertableFields returns the columns a caller supplies when creating a record:
// everything except the identifier and the soft-delete flag.
func InsertableFields() []Field {
	return Fields()[FieldFirstName:FieldIsDeleted]
}

// ParseField resolves a column name, ignoring case and surrounding whitespace.
func ParseField(name string) (Field, error) {
	clean := strings.TrimSpace(name)
	for i, spec := range fieldSpecs {
		if strings.EqualFold(spec.column, clean) {
			return Field(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// Valid reports whether f is one of the declared columns.
func (f Field) Valid() bool {
	return f >= 0 && int(f) < len(fieldSpecs)
}

// Column returns the storage column name.
func (f Field) Column() string {
	if !f.Valid() {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return fieldSpecs[f].column
}

// Kind returns the input rule of the column.
func (f Field) Kind() FieldKind {
	if !f.Valid() {
		return ""
	}
	return fieldSpecs[f].kind
}

func (f Field) String() string {
	return f.Column()
}

// Coerce converts v to the canonical Go type of the column:
// int64 for the identifier, float64 for the score, bool for the flag and
// string for every text kind.
func (f Field) Coerce(v any) (any, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownField, int(f))
	}
	switch f.Kind() {
	case KindIdentifier:
		return toInt64(f, v)
	case KindNumericScore:
		return toFloat64(f, v)
	case KindBooleanFlag:
		return toBool(f, v)
	default:
		switch s := v.(type) {
		case string:
			return s, nil
		case fmt.Stringer:
			return s.String(), nil
		}
		return nil, invalid(f, v)
	}
}

func invalid(f Field, v any) error {
	return fmt.Errorf("%w %s: %v (%T)", ErrInvalidValue, f.Column(), v, v)
}

func toInt64(f Field, v any) (int64, error) {
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case string:
		parsed, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		if err != nil {
			return 0, invalid(f, v)
		}
		return parsed, nil
	}
	return 0, invalid(f, v)
}

func toFloat64(f Field, v any) (float64, error) {
	var out float64
	switch n := v.(type) {
	case float64:
		out = n
	case float32:
		out = float64(n)
	case int:
		out = float64(n)
	case int64:
		out = float64(n)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, invalid(f, v)
		}
		out = parsed
	default:
		return 0, invalid(f, v)
	}
	if math.IsNaN(out) {
		return 0, invalid(f, v)
	}
	return out, nil
}

func toBool(f Field, v any) (bool, error) {
	switch b := v.(type) {
	case bool:
		return b, nil
	case int:
		if b == 0 || b == 1 {
			return b == 1, nil
		}
	case int64:
		if b == 0 || b == 1 {
			return b == 1, nil
		}
	case string:
		switch strings.TrimSpace(b) {
		case "0", "false":
			return false, nil
		case "1", "true":
			return true, nil
		}
	}
	return false, invalid(f, v)
}

// CoerceUpdate is Coerce for values written through an update.
// The identifier column is never writable.
func (f Field) CoerceUpdate(v any) (any, error) {
	if f == FieldStudentID {
		return nil, fmt.Errorf("%w: %s", ErrFieldNotWritable, f.Column())
	}
	return f.Coerce(v)
}
