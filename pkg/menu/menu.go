package menu

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// Reserved selection tokens.
const (
	TokenBack = "back"
	TokenQuit = "quit"
)

// Invoker is a deferred action bound to a menu item.
type Invoker interface {
	Invoke(ctx context.Context) error
}

// InvokerFunc adapts a plain function to the Invoker interface.
type InvokerFunc func(ctx context.Context) error

// Invoke calls f.
func (f InvokerFunc) Invoke(ctx context.Context) error {
	return f(ctx)
}

// Item is a single menu entry.
type Item struct {
	Label   string
	Action  Invoker
	Submenu *Menu
}

// Menu is a titled, ordered list of items. Items are numbered from 1.
type Menu struct {
	Title string
	Items []Item
}

// Len returns the number of items.
func (m *Menu) Len() int {
	return len(m.Items)
}

// ValidTokens returns every token accepted while m is displayed.
func (m *Menu) ValidTokens() []string {
	tokens := make([]string, 0, len(m.Items)+2)
	for i := range m.Items {
		tokens = append(tokens, strconv.Itoa(i+1))
	}
	return append(tokens, TokenBack, TokenQuit)
}

// Lookup maps a selection token to its item.
func (m *Menu) Lookup(token string) (Item, bool) {
	i, err := strconv.Atoi(token)
	if err != nil || i < 1 || i > len(m.Items) || strconv.Itoa(i) != token {
		return Item{}, false
	}
	return m.Items[i-1], true
}

// Lines returns the rendered form of m: the title (when set), one numbered
// line per item and the Back option.
func (m *Menu) Lines() []string {
	lines := make([]string, 0, len(m.Items)+2)
	if m.Title != "" {
		lines = append(lines, m.Title)
	}
	for i, item := range m.Items {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, item.Label))
	}
	return append(lines, TokenBack+". Back")
}

func (m *Menu) String() string {
	return strings.Join(m.Lines(), "\n")
}
