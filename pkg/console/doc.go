/*
Package console is the display sink and line reader shared by the menu
navigator and the field validator.

All reads are synchronous: a call to ReadLine blocks the calling goroutine
until a full line (or EOF) is available. Input is trimmed and sanitized before
it reaches callers, so parsers downstream only ever see printable text.
*/
package console
