package menu_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"math/rand"
	"strings"
	"testing"

	"github.com/aretw0/registrar/pkg/binder"
	"github.com/aretw0/registrar/pkg/console"
	"github.com/aretw0/registrar/pkg/menu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scripted(lines ...string) (*console.Console, *bytes.Buffer) {
	out := &bytes.Buffer{}
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	return console.New(in, out), out
}

// fixture builds a root with five items, the second opening a five-item submenu.
func fixture(calls *[]string) (*menu.Menu, *menu.Menu) {
	record := func(name string) menu.Invoker {
		return menu.InvokerFunc(func(ctx context.Context) error {
			*calls = append(*calls, name)
			return nil
		})
	}
	update := menu.New("Choose an attribute to update").
		Action("Major", record("major")).
		Action("GPA", record("gpa")).
		Action("City", record("city")).
		Action("State", record("state")).
		Action("Advisor", record("advisor")).
		Build()
	root := menu.New("Student Database Menu").
		Action("Display all students", record("display")).
		Submenu("Update student", update).
		Action("Add new student", record("add")).
		Item("Dead end", nil, nil).
		Item("Both", record("both"), menu.New("Nested").Item("x", nil, nil).Build()).
		Build()
	return root, update
}

func TestNavigator_QuitAtRoot(t *testing.T) {
	var calls []string
	root, _ := fixture(&calls)
	term, out := scripted("quit", "1")

	nav := menu.NewNavigator(root, menu.WithConsole(term))
	require.NoError(t, nav.Run(context.Background()))

	assert.Equal(t, 1, strings.Count(out.String(), "Student Database Menu"), "no render after quit")
	assert.Empty(t, calls)
}

func TestNavigator_RendersMenu(t *testing.T) {
	var calls []string
	root, _ := fixture(&calls)
	term, out := scripted("quit")

	require.NoError(t, menu.NewNavigator(root, menu.WithConsole(term)).Run(context.Background()))

	want := strings.Join([]string{
		"Student Database Menu",
		"1. Display all students",
		"2. Update student",
		"3. Add new student",
		"4. Dead end",
		"5. Both",
		"back. Back",
		"> ",
	}, "\n")
	assert.Equal(t, want, out.String())
}

func TestNavigator_BackAtRootIsNoop(t *testing.T) {
	var calls []string
	root, _ := fixture(&calls)
	term, _ := scripted()
	nav := menu.NewNavigator(root, menu.WithConsole(term))

	for i := 0; i < 3; i++ {
		stop, err := nav.Apply(context.Background(), menu.TokenBack)
		require.NoError(t, err)
		assert.False(t, stop)
		assert.Equal(t, 1, nav.Depth())
		assert.Same(t, root, nav.Current())
	}
}

func TestNavigator_SubmenuPushAndBack(t *testing.T) {
	var calls []string
	root, update := fixture(&calls)
	term, out := scripted("2", "1", "back", "quit")

	nav := menu.NewNavigator(root, menu.WithConsole(term))
	require.NoError(t, nav.Run(context.Background()))

	assert.Equal(t, []string{"major"}, calls)
	assert.Equal(t, 1, nav.Depth())

	text := out.String()
	assert.Contains(t, text, "Choose an attribute to update\n1. Major\n2. GPA\n3. City\n4. State\n5. Advisor\nback. Back\n")
	assert.Equal(t, 2, strings.Count(text, update.Title), "submenu rendered before and after the action")
}

func TestNavigator_InvalidTokensSilentlyReprompted(t *testing.T) {
	var calls []string
	root, _ := fixture(&calls)
	term, out := scripted("6", "0", "b", "q", "1.0", "display", "1", "quit")

	require.NoError(t, menu.NewNavigator(root, menu.WithConsole(term)).Run(context.Background()))

	assert.Equal(t, []string{"display"}, calls)
	text := out.String()
	assert.Equal(t, 2, strings.Count(text, "Student Database Menu"))
	assert.Equal(t, 8, strings.Count(text, menu.ChoicePrompt))
	assert.NotContains(t, text, "Error")
}

func TestNavigator_DeadEndIsNoop(t *testing.T) {
	var calls []string
	root, _ := fixture(&calls)
	term, _ := scripted()
	nav := menu.NewNavigator(root, menu.WithConsole(term))

	stop, err := nav.Apply(context.Background(), "4")
	require.NoError(t, err)
	assert.False(t, stop)
	assert.Equal(t, 1, nav.Depth())
	assert.Empty(t, calls)
}

func TestNavigator_SubmenuAndActionBothApply(t *testing.T) {
	var calls []string
	root, _ := fixture(&calls)
	term, _ := scripted()
	nav := menu.NewNavigator(root, menu.WithConsole(term))

	_, err := nav.Apply(context.Background(), "5")
	require.NoError(t, err)
	assert.Equal(t, 2, nav.Depth())
	assert.Equal(t, "Nested", nav.Current().Title)
	assert.Equal(t, []string{"both"}, calls)
}

func TestNavigator_ActionErrorIsReportedAndLoopContinues(t *testing.T) {
	failing := menu.New("Root").
		Action("Fail", menu.InvokerFunc(func(ctx context.Context) error {
			return errors.New("database is locked")
		})).
		Build()
	term, out := scripted("1", "quit")

	require.NoError(t, menu.NewNavigator(failing, menu.WithConsole(term)).Run(context.Background()))
	assert.Contains(t, out.String(), "Error: database is locked\n")
	assert.Equal(t, 2, strings.Count(out.String(), "Root"))
}

func TestNavigator_ReportsOnlyTheSourceFailure(t *testing.T) {
	reg := binder.NewRegistry()
	reg.Register(binder.OpSoftDelete, func(ctx context.Context, args []any) (any, error) {
		return nil, nil
	})
	lookup := binder.Defer(func(ctx context.Context) (any, error) {
		return nil, errors.New("connection reset")
	})
	m := menu.New("Root").
		Action("Delete", reg.Bind(binder.OpSoftDelete, lookup)).
		Action("Add", reg.Bind(binder.OpSoftDelete, binder.Group(binder.Literal(1), lookup))).
		Build()
	term, out := scripted("1", "2", "quit")

	require.NoError(t, menu.NewNavigator(m, menu.WithConsole(term)).Run(context.Background()))

	text := out.String()
	assert.Equal(t, 2, strings.Count(text, "> Error: connection reset\n"))
	assert.NotContains(t, text, binder.OpSoftDelete.String())
	assert.NotContains(t, text, "argument")
	assert.NotContains(t, text, "group member")
}

func TestNavigator_CustomErrorReporter(t *testing.T) {
	boom := errors.New("boom")
	m := menu.New("Root").
		Action("Fail", menu.InvokerFunc(func(ctx context.Context) error { return boom })).
		Build()
	term, _ := scripted("1", "quit")

	var reported []error
	nav := menu.NewNavigator(m, menu.WithConsole(term), menu.WithErrorReporter(func(err error) {
		reported = append(reported, err)
	}))
	require.NoError(t, nav.Run(context.Background()))
	assert.Equal(t, []error{boom}, reported)
}

func TestNavigator_ActionInputFailureEndsRun(t *testing.T) {
	m := menu.New("Root").
		Action("Prompt", menu.InvokerFunc(func(ctx context.Context) error {
			return io.EOF
		})).
		Build()
	term, out := scripted("1", "quit")

	err := menu.NewNavigator(m, menu.WithConsole(term)).Run(context.Background())
	assert.ErrorIs(t, err, io.EOF)
	assert.NotContains(t, out.String(), "Error:")
}

func TestNavigator_EOFEndsRun(t *testing.T) {
	var calls []string
	root, _ := fixture(&calls)
	term, _ := scripted("2")

	nav := menu.NewNavigator(root, menu.WithConsole(term))
	err := nav.Run(context.Background())
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, 2, nav.Depth())
}

func TestNavigator_StackInvariant(t *testing.T) {
	var calls []string
	root, _ := fixture(&calls)
	term, _ := scripted()
	nav := menu.NewNavigator(root, menu.WithConsole(term))

	tokens := []string{"1", "2", "3", "4", "5", "6", "back", "back", "back", "x"}
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 500; i++ {
		token := tokens[rng.Intn(len(tokens))]
		before := nav.Depth()

		_, err := nav.Apply(context.Background(), token)
		require.NoError(t, err)

		require.GreaterOrEqual(t, nav.Depth(), 1)
		require.Same(t, root, nav.Root())
		if token == menu.TokenBack && before == 1 {
			require.Equal(t, 1, nav.Depth(), "back at the root is a no-op")
		}
	}
}

func TestNavigator_ClearScreen(t *testing.T) {
	m := menu.New("Root").Item("Stay", nil, nil).Build()
	term, out := scripted("1", "quit")

	require.NoError(t, menu.NewNavigator(m, menu.WithConsole(term), menu.WithClearScreen(true)).Run(context.Background()))

	// Title + one item + back + prompt line.
	assert.Contains(t, out.String(), "\033[4A")
}

func TestNavigator_ClearScreenCountsRejectedLines(t *testing.T) {
	m := menu.New("Root").Item("Stay", nil, nil).Build()
	term, out := scripted("\xbd\xb2", "9", " 1 ", "quit")

	require.NoError(t, menu.NewNavigator(m, menu.WithConsole(term), menu.WithClearScreen(true)).Run(context.Background()))

	// Three menu lines, the rejected line and its error, the unknown token
	// and the accepted choice.
	text := out.String()
	assert.Contains(t, text, "Please try again.")
	assert.Contains(t, text, "\033[7A")
	assert.NotContains(t, text, "\033[5A")
}

func TestNavigator_ClearScreenSkipsAfterAction(t *testing.T) {
	m := menu.New("Root").
		Action("Say", menu.InvokerFunc(func(ctx context.Context) error { return nil })).
		Build()
	term, out := scripted("1", "quit")

	require.NoError(t, menu.NewNavigator(m, menu.WithConsole(term), menu.WithClearScreen(true)).Run(context.Background()))
	assert.NotContains(t, out.String(), "\033[")
}
