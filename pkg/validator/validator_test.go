package validator_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/aretw0/registrar/pkg/console"
	"github.com/aretw0/registrar/pkg/domain"
	"github.com/aretw0/registrar/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scripted(lines ...string) (*console.Console, *bytes.Buffer) {
	out := &bytes.Buffer{}
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	return console.New(in, out), out
}

func TestValidate_Identifier(t *testing.T) {
	c, out := scripted("abc", "-3", "0", "7")

	got, err := validator.Validate(context.Background(), c, "Enter Student ID:", domain.KindIdentifier)
	require.NoError(t, err)
	assert.Equal(t, int64(7), got)

	text := out.String()
	assert.Equal(t, 4, strings.Count(text, "Enter Student ID:"), "prompted once per line")
	assert.Equal(t, 1, strings.Count(text, validator.MsgInvalidInput))
	assert.Equal(t, 2, strings.Count(text, validator.MsgInvalidID))
}

func TestValidate_NumericScore(t *testing.T) {
	c, out := scripted("4.1", "-0.1", "NaN", "three", "3.25")

	got, err := validator.Validate(context.Background(), c, "GPA:", domain.KindNumericScore)
	require.NoError(t, err)
	assert.Equal(t, 3.25, got)
	assert.Equal(t, 3, strings.Count(out.String(), validator.MsgInvalidGPA))
	assert.Equal(t, 1, strings.Count(out.String(), validator.MsgInvalidInput))
}

func TestValidate_NumericScoreBounds(t *testing.T) {
	bounds := map[string]float64{"0": 0, "0.0": 0, "4": 4, "4.0": 4}
	for raw, want := range bounds {
		c, out := scripted(raw)
		got, err := validator.Validate(context.Background(), c, "GPA:", domain.KindNumericScore)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
		assert.NotContains(t, out.String(), validator.MsgInvalidGPA, raw)
	}
}

func TestValidate_NumericKindsIgnoreSurroundingSpace(t *testing.T) {
	c, _ := scripted(" 7 ")
	id, err := validator.Validate(context.Background(), c, "", domain.KindIdentifier)
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)

	c, _ = scripted("\t3.5  ")
	gpa, err := validator.Validate(context.Background(), c, "", domain.KindNumericScore)
	require.NoError(t, err)
	assert.Equal(t, 3.5, gpa)

	c, _ = scripted(" 0")
	flag, err := validator.Validate(context.Background(), c, "", domain.KindBooleanFlag)
	require.NoError(t, err)
	assert.Equal(t, 0, flag)
}

func TestValidate_BooleanFlag(t *testing.T) {
	c, out := scripted("2", "yes", "1")

	got, err := validator.Validate(context.Background(), c, "isDeleted:", domain.KindBooleanFlag)
	require.NoError(t, err)
	assert.Equal(t, 1, got)
	assert.Contains(t, out.String(), validator.MsgInvalidFlag)
	assert.Contains(t, out.String(), validator.MsgInvalidInput)
}

func TestValidate_TextKindsAcceptVerbatim(t *testing.T) {
	kinds := []domain.FieldKind{
		domain.KindPersonalName,
		domain.KindFreeText,
		domain.KindCategoryCode,
		domain.KindPostalCode,
		domain.KindPhoneNumber,
	}
	for _, kind := range kinds {
		t.Run(string(kind), func(t *testing.T) {
			c, out := scripted("  4.5 not\ta number ")
			got, err := validator.Validate(context.Background(), c, "Value:", kind)
			require.NoError(t, err)
			assert.Equal(t, "  4.5 not\ta number ", got)
			assert.Equal(t, "Value:", out.String())
		})
	}
}

// For every ranged kind, whatever sequence of lines arrives, the returned value
// is inside the range and is the first conforming line.
func TestValidate_NeverReturnsOutOfRange(t *testing.T) {
	candidates := []string{"", " ", "x", "-1", "0", "1", "2", "3.9", "4.0001", "1e3", "0x10", "9999999999999999999999", "Inf"}

	for i := range candidates {
		lines := append([]string{}, candidates[i:]...)
		lines = append(lines, candidates[:i]...)
		lines = append(lines, "1")

		t.Run(fmt.Sprintf("rotation_%d", i), func(t *testing.T) {
			c, _ := scripted(lines...)
			id, err := validator.Validate(context.Background(), c, "", domain.KindIdentifier)
			require.NoError(t, err)
			assert.Greater(t, id.(int64), int64(0))

			c, _ = scripted(lines...)
			gpa, err := validator.Validate(context.Background(), c, "", domain.KindNumericScore)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, gpa.(float64), 0.0)
			assert.LessOrEqual(t, gpa.(float64), 4.0)

			c, _ = scripted(lines...)
			flag, err := validator.Validate(context.Background(), c, "", domain.KindBooleanFlag)
			require.NoError(t, err)
			assert.Contains(t, []int{0, 1}, flag.(int))
		})
	}
}

func TestValidate_EOFIsReturned(t *testing.T) {
	c, _ := scripted("abc")

	_, err := validator.Validate(context.Background(), c, "Enter Student ID:", domain.KindIdentifier)
	assert.ErrorIs(t, err, io.EOF)
}

func TestValidate_UnknownKind(t *testing.T) {
	c, out := scripted("anything", "else")

	_, err := validator.Validate(context.Background(), c, "?", domain.FieldKind("nickname"))
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, 2, strings.Count(out.String(), validator.MsgInvalidDataType))
}

func TestValidator_RegisterCustomRule(t *testing.T) {
	v := validator.New()
	v.Register(domain.KindPostalCode, validator.Custom("zip5", func(raw string) (any, error) {
		if len(raw) != 5 {
			return nil, &validator.InputError{Input: raw, Reason: "Zip codes have five digits."}
		}
		return raw, nil
	}))

	rule, ok := v.Rule(domain.KindPostalCode)
	require.True(t, ok)
	assert.Equal(t, "zip5", rule.Name())

	c, out := scripted("123", "02139")
	got, err := v.Validate(context.Background(), c, "ZipCode:", domain.KindPostalCode)
	require.NoError(t, err)
	assert.Equal(t, "02139", got)
	assert.Contains(t, out.String(), "Zip codes have five digits.")
}

func TestValidator_SourceIsDeferred(t *testing.T) {
	c, out := scripted("3")
	v := validator.New()

	src := v.Source(c, "Enter Student ID:", domain.KindIdentifier)
	assert.Empty(t, out.String(), "no prompt before resolution")

	got, err := src.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), got)
	assert.Equal(t, "Enter Student ID:", out.String())
}
