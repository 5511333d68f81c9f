package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// PrintBanner writes the taskboard banner and version to w.
func PrintBanner(w io.Writer, version string) {
	p := termenv.ColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{" _____         _   _                         _ ", "#818cf8"},
		{"|_   _|_ _ ___| |_| |__   ___   __ _ _ __ __| |", "#a78bfa"},
		{"  | |/ _` / __| / / '_ \\ / _ \\ / _` | '__/ _` |", "#c084fc"},
		{"  | | (_| \\__ \\   <| |_) | (_) | (_| | | | (_| |", "#e879f9"},
		{"  |_|\\__,_|___/_|\\_\\_.__/ \\___/ \\__,_|_|  \\__,_|", "#f472b6"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w, termenv.String("  v"+strings.TrimSpace(version)).Faint())
	fmt.Fprintln(w)
}
