package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/lehigh-university-libraries/artworks/internal/models"
	"github.com/lehigh-university-libraries/artworks/internal/viewer"
)

// column is one grid column with a fixed width.
type column struct {
	header string
	width  int
	value  func(models.Artwork) string
}

var columns = []column{
	{"Title", 32, func(a models.Artwork) string { return a.Title }},
	{"Place of Origin", 16, func(a models.Artwork) string { return viewer.Text(a.PlaceOfOrigin) }},
	{"Artist", 28, func(a models.Artwork) string { return viewer.Text(a.ArtistDisplay) }},
	{"Inscriptions", 20, func(a models.Artwork) string { return viewer.TextOr(a.Inscriptions, "N/A") }},
	{"Start Date", 10, func(a models.Artwork) string { return viewer.Number(a.DateStart) }},
	{"End Date", 10, func(a models.Artwork) string { return viewer.Number(a.DateEnd) }},
}

// maxChipLines bounds the selection panel height.
const maxChipLines = 6

// View satisfies tea.Model.
func (m Model) View() string {
	if m.Quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("Art Institute of Chicago Artworks"))
	b.WriteString("\n")
	b.WriteString(m.renderChips())
	b.WriteString("\n")
	b.WriteString(m.renderGrid())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderChips() string {
	var lines []string
	lines = append(lines, PanelHeaderStyle.Render(fmt.Sprintf("Selected Artworks (%d)", len(m.view.Selected))))

	if len(m.view.Selected) == 0 {
		lines = append(lines, MutedStyle.Render("No artworks selected yet."))
	} else {
		start := 0
		if m.chipCursor >= maxChipLines {
			start = m.chipCursor - maxChipLines + 1
		}
		end := min(start+maxChipLines, len(m.view.Selected))
		for i := start; i < end; i++ {
			label := ansi.Truncate(viewer.ChipLabel(m.view.Selected[i]), 90, "…") + " ×"
			if m.focus == FocusChips && i == m.chipCursor {
				lines = append(lines, FocusedChipStyle.Render(label))
			} else {
				lines = append(lines, ChipStyle.Render(label))
			}
		}
		if hidden := len(m.view.Selected) - (end - start); hidden > 0 {
			lines = append(lines, MutedStyle.Render(fmt.Sprintf("… %d more", hidden)))
		}
	}

	style := PanelStyle
	if m.focus == FocusChips {
		style = FocusedPanelStyle
	}
	return style.Render(strings.Join(lines, "\n"))
}

func (m Model) renderGrid() string {
	var body string
	switch {
	case m.view.State == viewer.StateLoading:
		body = m.spinner.View() + " Loading artworks..."
	case m.view.State == viewer.StateError:
		body = ErrorStyle.Render(m.view.Error)
	case len(m.view.Artworks) == 0:
		body = MutedStyle.Render("No artworks found.")
	default:
		body = m.renderRows()
	}

	style := PanelStyle
	if m.focus == FocusGrid {
		style = FocusedPanelStyle
	}
	return style.Render(body + "\n" + m.renderPager())
}

func (m Model) renderRows() string {
	cells := make([]string, 0, len(columns))
	for _, col := range columns {
		cells = append(cells, pad(col.header, col.width))
	}
	lines := []string{HeaderRowStyle.Render("    " + strings.Join(cells, " "))}

	for i, artwork := range m.view.Artworks {
		mark := "[ ]"
		if m.view.IsSelected(artwork.ID) {
			mark = SelectedMarkStyle.Render("[x]")
		}

		cells = cells[:0]
		for _, col := range columns {
			cells = append(cells, pad(col.value(artwork), col.width))
		}
		row := strings.Join(cells, " ")

		if m.focus == FocusGrid && i == m.cursor {
			row = CursorRowStyle.Render(row)
		} else {
			row = RowStyle.Render(row)
		}
		lines = append(lines, mark+" "+row)
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderPager() string {
	page := m.view.Page
	summary := fmt.Sprintf("Page %d of %d", page.CurrentPage, page.TotalPages())
	if n := len(m.view.Artworks); n > 0 && m.view.State == viewer.StateLoaded {
		summary += fmt.Sprintf(" · Showing %d to %d of %d", page.First()+1, page.First()+n, page.TotalRecords)
	}
	return MutedStyle.Render(summary)
}

func (m Model) renderFooter() string {
	help := "↑/↓ move · space toggle · a page · ←/→ page · g/G first/last · tab panel · x remove · c clear · q quit"
	footer := HelpStyle.Render(help)
	if m.status != "" {
		footer = ErrorStyle.Render(m.status) + "\n" + footer
	}
	if m.width > 0 {
		footer = lipgloss.NewStyle().MaxWidth(m.width).Render(footer)
	}
	return footer
}

// pad truncates or right-pads s to exactly width cells.
func pad(s string, width int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = ansi.Truncate(s, width, "…")
	if gap := width - ansi.StringWidth(s); gap > 0 {
		s += strings.Repeat(" ", gap)
	}
	return s
}
