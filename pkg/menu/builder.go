package menu

// Builder provides a fluent API for declaring a menu.
type Builder struct {
	menu *Menu
}

// New starts a menu with the given title. An empty title renders no title line.
func New(title string) *Builder {
	return &Builder{menu: &Menu{Title: title}}
}

// Action adds a leaf item that invokes act when selected.
func (b *Builder) Action(label string, act Invoker) *Builder {
	return b.Item(label, act, nil)
}

// Submenu adds a branch item that opens sub when selected.
func (b *Builder) Submenu(label string, sub *Menu) *Builder {
	return b.Item(label, nil, sub)
}

// Item adds an entry with any combination of action and submenu.
// An entry with neither is a dead end: selecting it does nothing.
func (b *Builder) Item(label string, act Invoker, sub *Menu) *Builder {
	b.menu.Items = append(b.menu.Items, Item{
		Label:   label,
		Action:  act,
		Submenu: sub,
	})
	return b
}

// Build returns the constructed menu.
func (b *Builder) Build() *Menu {
	return b.menu
}
