// Package tui is the terminal surface of the artworks viewer.
package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/lehigh-university-libraries/artworks/internal/viewer"

	tea "github.com/charmbracelet/bubbletea"
)

// Model is the bubbletea model for browsing one controller.
type Model struct {
	ctx        context.Context
	controller *viewer.Controller
	view       viewer.View // refreshed from the controller after every event

	focus      FocusZone
	cursor     int // highlighted grid row
	chipCursor int // highlighted chip
	spinner    spinner.Model
	status     string // last transient message, cleared on the next key

	width, height int
	Quitting      bool
}

// NewModel creates a model over controller. Page fetches use ctx.
func NewModel(ctx context.Context, controller *viewer.Controller) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = MutedStyle

	return Model{
		ctx:        ctx,
		controller: controller,
		view:       controller.Snapshot(),
		spinner:    s,
	}
}

// Init loads the first page.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadPage(1))
}

// loadPage runs the fetch off the event loop and reports back with PageLoadedMsg.
func (m Model) loadPage(page int) tea.Cmd {
	controller := m.controller
	ctx := m.ctx
	return func() tea.Msg {
		return PageLoadedMsg{Page: page, Err: controller.ChangePage(ctx, page)}
	}
}

// Update satisfies tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case PageLoadedMsg:
		m.refresh()
		m.cursor = 0
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		// goToPage restarts the ticks for the next load
		if m.view.State != viewer.StateLoading {
			return m, nil
		}
		return m, cmd

	case tea.KeyMsg:
		m.status = ""
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys.
	switch msg.String() {
	case "ctrl+c", "q":
		m.Quitting = true
		return m, tea.Quit
	case "tab", "shift+tab":
		if m.focus == FocusGrid && len(m.view.Selected) > 0 {
			m.focus = FocusChips
		} else {
			m.focus = FocusGrid
		}
		return m, nil
	case "c":
		m.controller.ClearAll()
		m.refresh()
		return m, nil
	case "right", "l", "n":
		return m.goToPage(m.view.Page.CurrentPage + 1)
	case "left", "h", "p":
		return m.goToPage(m.view.Page.CurrentPage - 1)
	case "g", "home":
		return m.goToPage(1)
	case "G", "end":
		return m.goToPage(m.view.Page.TotalPages())
	}

	if m.focus == FocusChips {
		return m.handleChipKey(msg)
	}
	return m.handleGridKey(msg)
}

func (m Model) handleGridKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.view.Artworks)-1 {
			m.cursor++
		}
	case " ", "space", "enter":
		if m.cursor >= len(m.view.Artworks) {
			return m, nil
		}
		m.report(m.controller.ToggleSelection(m.view.Artworks[m.cursor].ID))
		m.refresh()
	case "a":
		ids := m.view.PageIDs()
		if m.view.AllSelected() {
			ids = nil
		}
		m.report(m.controller.ChangeSelection(m.view.Page.CurrentPage, ids))
		m.refresh()
	}
	return m, nil
}

func (m Model) handleChipKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k", "shift+left":
		if m.chipCursor > 0 {
			m.chipCursor--
		}
	case "down", "j", "shift+right":
		if m.chipCursor < len(m.view.Selected)-1 {
			m.chipCursor++
		}
	case "x", "backspace", "delete":
		if m.chipCursor >= len(m.view.Selected) {
			return m, nil
		}
		m.controller.Remove(m.view.Selected[m.chipCursor].ID)
		m.refresh()
	}
	return m, nil
}

// goToPage starts a fetch for page when it is inside the known page range.
func (m Model) goToPage(page int) (tea.Model, tea.Cmd) {
	if page < 1 || page == m.view.Page.CurrentPage && m.view.State == viewer.StateLoaded {
		return m, nil
	}
	if total := m.view.Page.TotalPages(); total > 0 && page > total {
		return m, nil
	}

	// Show the spinner right away; the controller's own state follows once
	// the command runs.
	m.view.State = viewer.StateLoading
	m.view.Page.CurrentPage = page
	return m, tea.Batch(m.spinner.Tick, m.loadPage(page))
}

func (m *Model) report(err error) {
	switch {
	case err == nil:
	case errors.Is(err, viewer.ErrNotLoaded):
		m.status = "Selection is unavailable until the page loads"
	default:
		m.status = err.Error()
	}
}

// refresh copies the controller state and keeps both cursors in range.
func (m *Model) refresh() {
	m.view = m.controller.Snapshot()

	if m.cursor >= len(m.view.Artworks) {
		m.cursor = max(len(m.view.Artworks)-1, 0)
	}
	if m.chipCursor >= len(m.view.Selected) {
		m.chipCursor = max(len(m.view.Selected)-1, 0)
	}
	if len(m.view.Selected) == 0 {
		m.focus = FocusGrid
	}
}
