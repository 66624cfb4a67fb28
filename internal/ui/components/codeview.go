package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/ptrdojo/internal/ui/theme"
)

// CodeView renders a read-only source sample with line numbers.
type CodeView struct {
	Source string
}

// NewCodeView creates a code view for the given source text.
func NewCodeView(source string) CodeView {
	return CodeView{Source: source}
}

// View renders the code block with gutter line numbers.
func (c CodeView) View() string {
	if c.Source == "" {
		return ""
	}

	lines := strings.Split(strings.TrimRight(c.Source, "\n"), "\n")

	gutterStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	var b strings.Builder
	for i, line := range lines {
		b.WriteString(gutterStyle.Render(fmt.Sprintf("%2d ", i+1)))
		b.WriteString(line)
		if i < len(lines)-1 {
			b.WriteString("\n")
		}
	}

	return theme.CodeBlock.Render(b.String())
}
