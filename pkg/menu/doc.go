/*
Package menu implements a data-driven console menu engine.

A tree of Menus is declared once at startup. Each Item is a leaf carrying an
Action, a branch carrying a Submenu, both, or neither. The Navigator keeps a
stack of open menus (root at the bottom, never popped) and runs a strictly
sequential loop:

	render top menu -> read a token -> transition or invoke

Valid tokens for a menu with k items are "1".."k", "back" and "quit". Anything
else is silently re-prompted. Selecting an item pushes its submenu (if any)
and then invokes its action (if any) on the navigator's goroutine, so every
prompt an action triggers happens inline.

Action failures are reported and the loop continues; only input stream
failures (EOF, read errors, cancellation) end Run.
*/
package menu
