// Package text provides plain text output without any styling. The
// terminal renderer reuses its layout with a Styler that adds color.
package text

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/packlink/pkg/ui/display"
	"github.com/pterm/pterm"
)

// Styler applies a named style to s
type Styler func(style, s string) string

func plainStyler(_, s string) string { return s }

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
	style  Styler
	plain  bool
}

// New creates a plain text renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output, style: plainStyler, plain: true}
}

// NewStyled creates a renderer with the text layout and the given styler
func NewStyled(output io.Writer, style Styler) *Renderer {
	return &Renderer{output: output, style: style}
}

// RenderResult renders the known view models and prints anything else as-is
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *display.ListResult:
		return r.renderList(v)
	case *display.StatusResult:
		return r.renderStatus(v)
	case *display.ActionResult:
		return r.writeln(r.style("Success", v.Message))
	case *display.ConfigResult:
		return r.renderConfig(v)
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	return r.writeln(r.style("Error", "Error: "+err.Error()))
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	return r.writeln(msg)
}

func (r *Renderer) renderList(v *display.ListResult) error {
	if v.HostError != "" {
		if err := r.writeln(r.style("Warning", "Host unavailable: "+v.HostError)); err != nil {
			return err
		}
	}

	if len(v.Instances) == 0 {
		return r.writeln(r.style("Muted", fmt.Sprintf("No instances found in %s", v.CatalogRoot)))
	}

	data := pterm.TableData{{"NAME", "ID", "PACK", "MINECRAFT", "LOADER", "LINKED"}}
	for _, inst := range v.Instances {
		data = append(data, []string{
			r.style("InstanceName", inst.Name),
			r.style("InstanceID", inst.ID),
			inst.PackVersion,
			inst.GameVersion,
			inst.Loader,
			r.linkedCell(inst.Linked),
		})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	if r.plain {
		table = pterm.RemoveColorFromString(table)
	}
	return r.writeln(strings.TrimRight(table, "\n"))
}

func (r *Renderer) renderStatus(v *display.StatusResult) error {
	icon := "none"
	if v.HasIcon {
		icon = v.IconTarget
		if icon == "" {
			icon = "present"
		}
	}

	alias := v.Alias
	if v.AliasTo != "" {
		alias = v.Alias + " -> " + v.AliasTo
	}

	lines := []string{
		r.style("InstanceName", v.Instance.Name) + " " + r.style("InstanceID", "["+v.Instance.ID+"]"),
		r.field("state", r.linkedWord(v.Instance.Linked)),
		r.field("pack", v.Instance.PackVersion),
		r.field("minecraft", v.Instance.GameVersion),
		r.field("loader", v.Instance.Loader),
		r.field("catalog", r.style("FilePath", v.CatalogDir)),
		r.field("host", r.style("FilePath", v.HostFolder)),
		r.field("alias", r.style("FilePath", alias)),
		r.field("icon", icon),
	}
	return r.writeln(strings.Join(lines, "\n"))
}

func (r *Renderer) renderConfig(v *display.ConfigResult) error {
	lines := []string{
		r.field("file", r.style("FilePath", v.File)),
		r.field("catalog", r.style("FilePath", orUnset(v.CatalogRoot))),
		r.field("host", r.style("FilePath", orUnset(v.HostRoot))),
		r.field("sort", v.Sort),
	}
	if v.Saved {
		lines = append(lines, r.style("Success", "Configuration saved to "+v.File))
	}
	return r.writeln(strings.Join(lines, "\n"))
}

func (r *Renderer) field(label, value string) string {
	return "  " + r.style("Label", fmt.Sprintf("%-10s", label)) + " " + value
}

func (r *Renderer) linkedCell(linked bool) string {
	if linked {
		return r.style("Linked", "yes")
	}
	return r.style("Unlinked", "no")
}

func (r *Renderer) linkedWord(linked bool) string {
	if linked {
		return r.style("Linked", "linked")
	}
	return r.style("Unlinked", "not linked")
}

func (r *Renderer) writeln(s string) error {
	_, err := fmt.Fprintln(r.output, s)
	return err
}

func orUnset(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}
