package domain

import "errors"

// ErrStudentNotFound is returned when an identifier does not resolve to a stored record.
var ErrStudentNotFound = errors.New("student not found")

// ErrUnknownField is returned when a column name is not part of the Students table.
var ErrUnknownField = errors.New("unknown field")

// ErrFieldNotWritable is returned when an update targets the identifier column.
var ErrFieldNotWritable = errors.New("field is not writable")

// ErrInvalidValue is returned when a value does not have the Go type a field expects.
var ErrInvalidValue = errors.New("invalid value for field")
