// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"io"

	"github.com/arthur-debert/packlink/pkg/ui/styles"
	"github.com/arthur-debert/packlink/pkg/ui/text"
)

// Renderer provides the text layout with lipgloss styles applied
type Renderer struct {
	*text.Renderer
}

// New creates a new terminal renderer
func New(w io.Writer) *Renderer {
	return &Renderer{Renderer: text.NewStyled(w, styles.Render)}
}
