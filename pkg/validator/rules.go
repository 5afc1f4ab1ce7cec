package validator

import (
	"strconv"
	"strings"
)

// User-facing rejection messages.
const (
	MsgInvalidInput    = "Invalid input. Please enter a valid value."
	MsgInvalidID       = "Invalid Student ID. Please enter a positive integer."
	MsgInvalidGPA      = "Invalid GPA. Please enter a number between 0.0 and 4.0."
	MsgInvalidFlag     = "Invalid value for 'isDeleted'. Please enter either 0 or 1."
	MsgInvalidDataType = "Invalid data type."
)

// Rule parses one line of raw input into a typed value.
// A rejected line yields an *InputError carrying the message shown to the user.
type Rule interface {
	// Name returns a human-readable name of the rule (e.g. "positive-int").
	Name() string
	// Parse converts raw input or rejects it.
	Parse(raw string) (any, error)
}

// InputError is a rejected line of input.
type InputError struct {
	Input  string
	Reason string
}

func (e *InputError) Error() string {
	return e.Reason
}

func reject(raw, reason string) error {
	return &InputError{Input: raw, Reason: reason}
}

// PositiveInt accepts base-10 integers greater than zero as int64.
// Surrounding whitespace is ignored, as for every numeric rule.
type PositiveInt struct{}

func (PositiveInt) Name() string { return "positive-int" }

func (PositiveInt) Parse(raw string) (any, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return nil, reject(raw, MsgInvalidInput)
	}
	if n <= 0 {
		return nil, reject(raw, MsgInvalidID)
	}
	return n, nil
}

// FloatRange accepts floating point numbers within [Min, Max] as float64.
type FloatRange struct {
	Min, Max float64
	// Message is shown when the number falls outside the range.
	Message string
}

func (r FloatRange) Name() string { return "float-range" }

func (r FloatRange) Parse(raw string) (any, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return nil, reject(raw, MsgInvalidInput)
	}
	if !(f >= r.Min && f <= r.Max) {
		return nil, reject(raw, r.Message)
	}
	return f, nil
}

// Flag accepts the integers 0 and 1 as int.
type Flag struct{}

func (Flag) Name() string { return "flag" }

func (Flag) Parse(raw string) (any, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return nil, reject(raw, MsgInvalidInput)
	}
	if n != 0 && n != 1 {
		return nil, reject(raw, MsgInvalidFlag)
	}
	return n, nil
}

// Text accepts any line verbatim.
type Text struct{}

func (Text) Name() string { return "text" }

func (Text) Parse(raw string) (any, error) {
	return raw, nil
}

// RuleFunc adapts a function to the Rule interface.
type RuleFunc struct {
	name  string
	parse func(string) (any, error)
}

// Custom creates a rule from a parse function.
func Custom(name string, parse func(raw string) (any, error)) Rule {
	return RuleFunc{name: name, parse: parse}
}

func (r RuleFunc) Name() string { return r.name }

func (r RuleFunc) Parse(raw string) (any, error) {
	return r.parse(raw)
}
