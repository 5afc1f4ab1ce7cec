package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Student is one row of the Students table.
type Student struct {
	ID                int64   `json:"id"`
	FirstName         string  `json:"first_name"`
	LastName          string  `json:"last_name"`
	GPA               float64 `json:"gpa"`
	Major             string  `json:"major"`
	FacultyAdvisor    string  `json:"faculty_advisor"`
	Address           string  `json:"address"`
	City              string  `json:"city"`
	State             string  `json:"state"`
	ZipCode           string  `json:"zip_code"`
	MobilePhoneNumber string  `json:"mobile_phone_number"`
	IsDeleted         bool    `json:"is_deleted"`
}

// NewStudent builds a record from values ordered as InsertableFields.
// The identifier is left zero and the record is not deleted.
func NewStudent(values []any) (Student, error) {
	fields := InsertableFields()
	if len(values) != len(fields) {
		return Student{}, fmt.Errorf("expected %d values, got %d", len(fields), len(values))
	}
	var s Student
	for i, f := range fields {
		if err := s.Set(f, values[i]); err != nil {
			return Student{}, err
		}
	}
	return s, nil
}

// Value returns the typed value stored in column f.
func (s Student) Value(f Field) any {
	switch f {
	case FieldStudentID:
		return s.ID
	case FieldFirstName:
		return s.FirstName
	case FieldLastName:
		return s.LastName
	case FieldGPA:
		return s.GPA
	case FieldMajor:
		return s.Major
	case FieldFacultyAdvisor:
		return s.FacultyAdvisor
	case FieldAddress:
		return s.Address
	case FieldCity:
		return s.City
	case FieldState:
		return s.State
	case FieldZipCode:
		return s.ZipCode
	case FieldMobilePhoneNumber:
		return s.MobilePhoneNumber
	case FieldIsDeleted:
		return s.IsDeleted
	}
	return nil
}

// Set assigns v to column f after coercing it to the column type.
func (s *Student) Set(f Field, v any) error {
	cv, err := f.Coerce(v)
	if err != nil {
		return err
	}
	switch f {
	case FieldStudentID:
		s.ID = cv.(int64)
	case FieldFirstName:
		s.FirstName = cv.(string)
	case FieldLastName:
		s.LastName = cv.(string)
	case FieldGPA:
		s.GPA = cv.(float64)
	case FieldMajor:
		s.Major = cv.(string)
	case FieldFacultyAdvisor:
		s.FacultyAdvisor = cv.(string)
	case FieldAddress:
		s.Address = cv.(string)
	case FieldCity:
		s.City = cv.(string)
	case FieldState:
		s.State = cv.(string)
	case FieldZipCode:
		s.ZipCode = cv.(string)
	case FieldMobilePhoneNumber:
		s.MobilePhoneNumber = cv.(string)
	case FieldIsDeleted:
		s.IsDeleted = cv.(bool)
	}
	return nil
}

// Matches reports whether column f holds exactly v. No pattern matching is applied.
func (s Student) Matches(f Field, v any) bool {
	cv, err := f.Coerce(v)
	if err != nil {
		return false
	}
	return s.Value(f) == cv
}

// Format renders the value of column f the way it is displayed and stored as text.
func (s Student) Format(f Field) string {
	switch v := s.Value(f).(type) {
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		if v {
			return "1"
		}
		return "0"
	case string:
		return v
	}
	return ""
}

// String renders the record as a single pipe-separated line in column order.
func (s Student) String() string {
	parts := make([]string, 0, len(fieldSpecs))
	for _, f := range Fields() {
		if f == FieldIsDeleted {
			parts = append(parts, "deleted="+s.Format(f))
			continue
		}
		parts = append(parts, s.Format(f))
	}
	return strings.Join(parts, " | ")
}
