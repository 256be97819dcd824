package main

import (
	"bytes"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#02C39A"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F97316")).Bold(true)
)

// styledWriter renders each line written through it with a lipgloss style.
// Colors are dropped automatically when the output is not a terminal.
type styledWriter struct {
	w     io.Writer
	style lipgloss.Style
}

func (s styledWriter) Write(p []byte) (int, error) {
	var out bytes.Buffer
	for _, line := range bytes.SplitAfter(p, []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		text := bytes.TrimSuffix(line, []byte("\n"))
		out.WriteString(s.style.Render(string(text)))
		if len(text) < len(line) {
			out.WriteByte('\n')
		}
	}
	if _, err := s.w.Write(out.Bytes()); err != nil {
		return 0, err
	}
	return len(p), nil
}
