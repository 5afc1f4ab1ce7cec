package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/registrar/pkg/binder"
	"github.com/aretw0/registrar/pkg/menu"
)

// GenerateMermaid produces a Mermaid flowchart of a menu tree.
// Shapes:
// - Menu: [Rectangle]
// - Action item: [[Subroutine]] labelled with its operation
// - Dead-end item: (Rounded)
// Edges carry the selection token.
func GenerateMermaid(root *menu.Menu) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")
	if root == nil {
		return sb.String()
	}

	next := 0
	var walk func(m *menu.Menu) string
	walk = func(m *menu.Menu) string {
		id := fmt.Sprintf("m%d", next)
		next++
		sb.WriteString(fmt.Sprintf("    %s[\"%s\"]\n", id, escape(m.Title)))

		for i, item := range m.Items {
			token := i + 1
			if item.Submenu != nil {
				sub := walk(item.Submenu)
				sb.WriteString(fmt.Sprintf("    %s -- \"%d\" --> %s\n", id, token, sub))
			}
			if item.Submenu != nil && item.Action == nil {
				continue
			}

			itemID := fmt.Sprintf("%s_%d", id, token)
			if item.Action != nil {
				sb.WriteString(fmt.Sprintf("    %s[[\"%s <br/> %s\"]]\n", itemID, escape(item.Label), operation(item.Action)))
			} else {
				sb.WriteString(fmt.Sprintf("    %s(\"%s\")\n", itemID, escape(item.Label)))
			}
			sb.WriteString(fmt.Sprintf("    %s -- \"%d\" --> %s\n", id, token, itemID))
		}
		return id
	}
	walk(root)
	return sb.String()
}

func operation(inv menu.Invoker) string {
	if a, ok := inv.(*binder.Action); ok {
		return a.Operation().String()
	}
	return "action"
}

func escape(s string) string {
	return strings.ReplaceAll(s, `"`, "'")
}
