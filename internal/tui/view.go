package tui

import (
	"fmt"
	"strings"

	"github.com/joe/gifpick/internal/tui/shared"
	pkgerrors "github.com/joe/gifpick/pkg/errors"
)

// View renders the browser
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var builder strings.Builder

	builder.WriteString(shared.RenderTitle("gifpick " + m.dir))
	builder.WriteString("\n")

	switch m.state {
	case StateLoading:
		builder.WriteString(m.spinner.View() + " Scanning directory...\n")
	case StateError:
		builder.WriteString(renderError(m.err))
	default:
		builder.WriteString(m.renderList())
		builder.WriteString(m.renderSelection())

		if m.err != nil {
			builder.WriteString(renderError(m.err))
		}
	}

	builder.WriteString("\n")
	builder.WriteString(m.help.View(m.keys))

	return builder.String()
}

func (m Model) renderList() string {
	if len(m.paths) == 0 {
		return shared.RenderDim("No animation files found.") + "\n"
	}

	var builder strings.Builder

	start, end := m.visibleRange()
	for i := start; i < end; i++ {
		if i == m.cursor {
			builder.WriteString(shared.FileItemSelectedStyle().Render(shared.CursorArrow + m.paths[i]))
		} else {
			builder.WriteString(shared.FileItemStyle().Render("  " + m.paths[i]))
		}
		builder.WriteString("\n")
	}

	percent := float64(m.cursor+1) / float64(len(m.paths))
	fmt.Fprintf(&builder, "\n%s %s\n",
		m.position.ViewAs(percent),
		shared.RenderDim(fmt.Sprintf("%d/%d", m.cursor+1, len(m.paths))))

	return builder.String()
}

func (m Model) renderSelection() string {
	if m.selected == nil {
		return ""
	}

	content := fmt.Sprintf("%s %d\n%s %s\n%s %d bytes\n%s %q",
		shared.RenderLabel("Index:"), m.selected.Index,
		shared.RenderLabel("Path:"), m.selected.Path,
		shared.RenderLabel("Size:"), m.selected.Size,
		shared.RenderLabel("Signature:"), m.selected.Signature)

	return "\n" + shared.RenderBox(content) + "\n"
}

func renderError(err error) string {
	if err == nil {
		return ""
	}

	enriched := pkgerrors.NewEnricher().Enrich(err, "")

	result := shared.RenderError("Error: "+enriched.Error()) + "\n"
	if suggestions := pkgerrors.FormatSuggestions(enriched); suggestions != "" {
		result += shared.RenderDim(suggestions) + "\n"
	}

	return result
}
