package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrReadFailed wraps input stream failures other than io.EOF.
var ErrReadFailed = errors.New("console read failed")

// ContentRenderer transforms markdown content before it is written.
// This allows rich terminal rendering without coupling the console to a renderer.
type ContentRenderer func(string) (string, error)

// Console implements line-oriented text IO.
type Console struct {
	Reader   *bufio.Reader
	Writer   io.Writer
	Renderer ContentRenderer

	// terminal lines produced so far: newlines written plus echoed input lines
	lines int
}

// Option configures a Console.
type Option func(*Console)

// WithRenderer configures the content renderer used by Render.
func WithRenderer(renderer ContentRenderer) Option {
	return func(c *Console) {
		c.Renderer = renderer
	}
}

// New creates a console reading from r and writing to w.
// Nil arguments default to Stdin and Stdout.
func New(r io.Reader, w io.Writer, opts ...Option) *Console {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	c := &Console{
		Reader: bufio.NewReader(r),
		Writer: w,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ReadLine writes prompt and returns the next sanitized line without its
// terminator. Surrounding whitespace is kept.
// Lines rejected by the sanitizer are reported and the prompt is repeated.
// A final line without a trailing newline is returned before io.EOF.
func (c *Console) ReadLine(ctx context.Context, prompt string) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		fmt.Fprint(c.Writer, prompt)

		text, err := c.Reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return "", fmt.Errorf("%w: %w", ErrReadFailed, err)
		}
		if err == io.EOF && text == "" {
			return "", io.EOF
		}

		if strings.HasSuffix(text, "\n") {
			c.lines++
		}

		clean, sErr := SanitizeInput(strings.TrimRight(text, "\r\n"))
		if sErr != nil {
			c.Printf("Error: %v. Please try again.\n", sErr)
			if err == io.EOF {
				return "", err
			}
			continue
		}
		return clean, nil
	}
}

// Println writes its operands followed by a newline.
func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.Writer, a...)
	c.lines++
}

// Printf writes formatted output.
func (c *Console) Printf(format string, a ...any) {
	text := fmt.Sprintf(format, a...)
	fmt.Fprint(c.Writer, text)
	c.lines += strings.Count(text, "\n")
}

// Render writes markdown content, passing it through the Renderer when one is set.
// Renderer failures fall back to the raw content.
func (c *Console) Render(content string) {
	output := content
	if c.Renderer != nil {
		if rendered, err := c.Renderer(content); err == nil {
			output = rendered
		}
	}
	output = strings.TrimRight(output, "\n")
	fmt.Fprintln(c.Writer, output)
	c.lines += strings.Count(output, "\n") + 1
}

// Lines returns the number of terminal lines the console has produced.
// A line read from the input counts once, since its echo ends the prompt line.
func (c *Console) Lines() int {
	return c.lines
}

// Clear moves the cursor up n lines and erases them, keeping older
// terminal history intact.
func (c *Console) Clear(n int) {
	if n <= 0 {
		return
	}
	fmt.Fprintf(c.Writer, "\033[%dA%s\033[0G", n, strings.Repeat("\033[K", n))
}
