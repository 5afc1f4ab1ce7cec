package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the startup banner followed by the version line.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	lines := []struct {
		text  string
		color string
	}{
		{` ____            _     _`, "#34d399"},
		{`|  _ \ ___  __ _(_)___| |_ _ __ __ _ _ __`, "#2dd4bf"},
		{`| |_) / _ \/ _` + "`" + ` | / __| __| '__/ _` + "`" + ` | '__|`, "#22d3ee"},
		{`|  _ <  __/ (_| | \__ \ |_| | | (_| | |`, "#38bdf8"},
		{`|_| \_\___|\__, |_|___/\__|_|  \__,_|_|`, "#60a5fa"},
		{`           |___/`, "#818cf8"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	fmt.Fprintln(w, out.String("  student records "+version).Faint())
	fmt.Fprintln(w)
}
