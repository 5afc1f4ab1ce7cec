package registrar_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/aretw0/registrar"
	"github.com/aretw0/registrar/pkg/adapters/memory"
	"github.com/aretw0/registrar/pkg/binder"
	"github.com/aretw0/registrar/pkg/console"
	"github.com/aretw0/registrar/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApp_ImportThenList(t *testing.T) {
	ctx := context.Background()
	out := &bytes.Buffer{}
	store := memory.NewStore()

	app, err := registrar.New(store,
		registrar.WithConsole(console.New(strings.NewReader("1\nquit\n"), out)))
	require.NoError(t, err)

	require.NoError(t, app.Import(ctx, []domain.Student{
		{FirstName: "Ada", Major: "Math"},
		{FirstName: "Alan", Major: "CS"},
	}))
	require.NoError(t, app.Run(ctx))

	text := out.String()
	assert.Contains(t, text, "1 | Ada |")
	assert.Contains(t, text, "2 | Alan |")
	assert.True(t, strings.HasPrefix(text, "Student Database Menu\n"))
}

func TestApp_ReplaceTarget(t *testing.T) {
	ctx := context.Background()
	out := &bytes.Buffer{}
	app, err := registrar.New(memory.NewStore(),
		registrar.WithConsole(console.New(strings.NewReader("1\nquit\n"), out)))
	require.NoError(t, err)

	calls := 0
	app.Registry().Register(binder.OpListAll, func(ctx context.Context, args []any) (any, error) {
		calls++
		return nil, nil
	})
	require.NoError(t, app.Run(ctx))
	assert.Equal(t, 1, calls)
}

func TestApp_ClearScreen(t *testing.T) {
	out := &bytes.Buffer{}
	app, err := registrar.New(memory.NewStore(),
		registrar.WithConsole(console.New(strings.NewReader("2\nquit\n"), out)),
		registrar.WithClearScreen(true))
	require.NoError(t, err)

	require.NoError(t, app.Run(context.Background()))
	// Root menu: title, five items, back line and the prompt.
	assert.Contains(t, out.String(), "\033[8A")
}
