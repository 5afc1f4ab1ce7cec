package menu

import (
	"fmt"
	"strings"
)

// Validate checks that the menus reachable from root form a tree: every
// submenu is owned by exactly one item and no menu contains itself.
// Items without a label are reported too.
func Validate(root *Menu) error {
	if root == nil {
		return fmt.Errorf("root menu is nil")
	}

	owner := map[*Menu]string{root: "root"}
	queue := []*Menu{root}
	var problems []string

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for i, item := range current.Items {
			path := fmt.Sprintf("%s[%d]", describe(current), i+1)
			if strings.TrimSpace(item.Label) == "" {
				problems = append(problems, fmt.Sprintf("item %s has no label", path))
			}
			if item.Submenu == nil {
				continue
			}
			if prev, seen := owner[item.Submenu]; seen {
				problems = append(problems, fmt.Sprintf("menu %q reached from %s is already owned by %s", describe(item.Submenu), path, prev))
				continue
			}
			owner[item.Submenu] = path
			queue = append(queue, item.Submenu)
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("found %d menu errors:\n- %s", len(problems), strings.Join(problems, "\n- "))
	}
	return nil
}

func describe(m *Menu) string {
	if m.Title != "" {
		return m.Title
	}
	return "untitled"
}
