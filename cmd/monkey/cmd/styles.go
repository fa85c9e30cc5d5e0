package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/metaphox/monkey-lang/parser"
)

// Colors
var (
	colorError = lipgloss.Color("#EF4444")
	colorMuted = lipgloss.Color("#6B7280")
	colorCaret = lipgloss.Color("#F59E0B")
	colorKind  = lipgloss.Color("#7C3AED")
)

// styles groups the lipgloss styles used for terminal output. Styles are bound
// to a renderer for the destination writer, so output that is not a terminal
// stays free of escape sequences.
type styles struct {
	location lipgloss.Style
	label    lipgloss.Style
	source   lipgloss.Style
	caret    lipgloss.Style
	kind     lipgloss.Style
}

func newStyles(w io.Writer, color bool) styles {
	if !color {
		plain := lipgloss.NewStyle()
		return styles{location: plain, label: plain, source: plain, caret: plain, kind: plain}
	}
	r := lipgloss.NewRenderer(w)
	return styles{
		location: r.NewStyle().Bold(true),
		label:    r.NewStyle().Foreground(colorError).Bold(true),
		source:   r.NewStyle().Foreground(colorMuted),
		caret:    r.NewStyle().Foreground(colorCaret).Bold(true),
		kind:     r.NewStyle().Foreground(colorKind),
	}
}

// printDiagnostics writes every syntax error as
//
//	name:line:col: error: message
//	    <source line>
//	    ^
func printDiagnostics(w io.Writer, st styles, src source, diags []*parser.Error) {
	lines := strings.Split(src.text, "\n")
	for _, d := range diags {
		loc := fmt.Sprintf("%s:%s:", src.name, d.Pos)
		fmt.Fprintf(w, "%s %s %s\n", st.location.Render(loc), st.label.Render("error:"), d.Msg)

		if d.Pos.Line < 1 || d.Pos.Line > len(lines) {
			continue
		}
		line := strings.TrimRight(lines[d.Pos.Line-1], "\r")
		fmt.Fprintf(w, "    %s\n", st.source.Render(line))
		col := d.Pos.Col
		if col < 1 {
			col = 1
		}
		if col > len(line)+1 {
			col = len(line) + 1
		}
		fmt.Fprintf(w, "    %s%s\n", caretPadding(line, col), st.caret.Render("^"))
	}
}

// caretPadding returns the whitespace that lines a caret up under column col,
// keeping tabs so the caret stays aligned with tab-indented source.
func caretPadding(line string, col int) string {
	var b strings.Builder
	for i := 0; i < col-1 && i < len(line); i++ {
		if line[i] == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}
