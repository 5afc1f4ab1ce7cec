// Package validator collects typed field values from the console.
//
// Validate blocks until the user supplies a line that satisfies the rule of
// the requested field kind. Rejected lines print the rule's message and the
// prompt is repeated; only input stream failures are returned to callers.
package validator

import (
	"context"
	"errors"

	"github.com/aretw0/registrar/pkg/binder"
	"github.com/aretw0/registrar/pkg/domain"
)

// Prompter reads lines and prints rejection messages.
type Prompter interface {
	ReadLine(ctx context.Context, prompt string) (string, error)
	Println(a ...any)
}

// Validator dispatches field kinds to their rules through a lookup table.
type Validator struct {
	rules map[domain.FieldKind]Rule
}

// New creates a validator with the default rule for every field kind.
func New() *Validator {
	text := Text{}
	return &Validator{
		rules: map[domain.FieldKind]Rule{
			domain.KindIdentifier:   PositiveInt{},
			domain.KindNumericScore: FloatRange{Min: 0.0, Max: 4.0, Message: MsgInvalidGPA},
			domain.KindBooleanFlag:  Flag{},
			domain.KindPersonalName: text,
			domain.KindFreeText:     text,
			domain.KindCategoryCode: text,
			domain.KindPostalCode:   text,
			domain.KindPhoneNumber:  text,
		},
	}
}

// Register sets the rule for kind, replacing the existing one.
func (v *Validator) Register(kind domain.FieldKind, rule Rule) {
	v.rules[kind] = rule
}

// Rule returns the rule registered for kind.
func (v *Validator) Rule(kind domain.FieldKind) (Rule, bool) {
	r, ok := v.rules[kind]
	return r, ok
}

// Validate prompts until a line parses under the rule of kind and returns the
// typed value. Kinds without a rule report MsgInvalidDataType on every line.
func (v *Validator) Validate(ctx context.Context, in Prompter, prompt string, kind domain.FieldKind) (any, error) {
	rule, known := v.rules[kind]
	for {
		raw, err := in.ReadLine(ctx, prompt)
		if err != nil {
			return nil, err
		}
		if !known {
			in.Println(MsgInvalidDataType)
			continue
		}

		value, err := rule.Parse(raw)
		if err != nil {
			var inputErr *InputError
			if errors.As(err, &inputErr) {
				in.Println(inputErr.Reason)
			} else {
				in.Println(MsgInvalidInput)
			}
			continue
		}
		return value, nil
	}
}

// Source returns a deferred argument that runs Validate each time it resolves.
func (v *Validator) Source(in Prompter, prompt string, kind domain.FieldKind) binder.Source {
	return binder.Defer(func(ctx context.Context) (any, error) {
		return v.Validate(ctx, in, prompt, kind)
	})
}

var std = New()

// Validate runs the default validator.
func Validate(ctx context.Context, in Prompter, prompt string, kind domain.FieldKind) (any, error) {
	return std.Validate(ctx, in, prompt, kind)
}
