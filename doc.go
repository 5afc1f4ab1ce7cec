/*
Package registrar is an interactive console application for maintaining a table of student records.

A session is a stack of numbered menus. Selecting an item opens a submenu, fires a
deferred action, or both. Actions are bound to store operations when the menu tree is
built, but their arguments are only prompted for, validated and resolved when the
item is selected.

# Architecture

  - pkg/binder: deferred argument sources and the operation registry.
  - pkg/validator: per-field input rules with re-prompting.
  - pkg/menu: menu tree, fluent builder and the stack navigator.
  - pkg/ports: the RecordStore port and its contract suite.
  - pkg/adapters: SQLite/PostgreSQL, Redis and in-memory stores.

# Usage

	store := memory.NewStore()
	app, err := registrar.New(store)
	if err != nil {
		log.Fatal(err)
	}
	if err := app.Run(context.Background()); err != nil && !errors.Is(err, io.EOF) {
		log.Fatal(err)
	}

Typing "quit" ends the session, "back" returns to the parent menu.
*/
package registrar
