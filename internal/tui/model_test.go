package tui

import (
	"context"
	"fmt"
	"testing"

	"github.com/lehigh-university-libraries/artworks/internal/catalog"
	"github.com/lehigh-university-libraries/artworks/internal/models"
	"github.com/lehigh-university-libraries/artworks/internal/viewer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tea "github.com/charmbracelet/bubbletea"
)

// pagedSource serves three pages of four artworks; page 3 fails.
type pagedSource struct{}

func (pagedSource) FetchPage(ctx context.Context, page int) (*models.ArtworksResponse, error) {
	if page == 3 {
		return nil, &catalog.FetchError{Kind: catalog.KindStatus, StatusCode: 503}
	}
	data := make([]models.Artwork, 0, 4)
	for i := 1; i <= 4; i++ {
		id := (page-1)*4 + i
		data = append(data, models.Artwork{ID: id, Title: fmt.Sprintf("Artwork %d", id)})
	}
	return &models.ArtworksResponse{
		Data:       data,
		Pagination: models.Pagination{Total: 12, Limit: 4, CurrentPage: page},
	}, nil
}

func newLoadedModel(t *testing.T) Model {
	t.Helper()
	m := NewModel(context.Background(), viewer.New(pagedSource{}))
	return run(t, m, m.loadPage(1))
}

// run executes cmd synchronously and feeds its message back into the model.
func run(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	require.NotNil(t, cmd)
	result, _ := m.Update(cmd())
	return result.(Model)
}

func send(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	result, cmd := m.Update(msg)
	return result.(Model), cmd
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

var keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}

// changePage presses key, checks the optimistic loading state, then runs the fetch.
func changePage(t *testing.T, m Model, key tea.KeyMsg, page int) Model {
	t.Helper()
	m, cmd := send(t, m, key)
	require.NotNil(t, cmd, "expected a page change command")
	assert.Equal(t, viewer.StateLoading, m.view.State)
	assert.Equal(t, page, m.view.Page.CurrentPage)
	return run(t, m, m.loadPage(page))
}

func TestInitialLoad(t *testing.T) {
	m := newLoadedModel(t)

	assert.Equal(t, viewer.StateLoaded, m.view.State)
	assert.Len(t, m.view.Artworks, 4)
	assert.Contains(t, m.View(), "No artworks selected yet.")
	assert.Contains(t, m.View(), "Artwork 1")
	assert.Contains(t, m.View(), "Page 1 of 3")
}

func TestToggleAndNavigate(t *testing.T) {
	m := newLoadedModel(t)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = send(t, m, keySpace)
	m, _ = send(t, m, keyRune('j'))
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = send(t, m, keySpace)
	require.Equal(t, []int{2, 4}, m.view.SelectedOnPage)
	assert.Contains(t, m.View(), "Selected Artworks (2)")
	assert.Contains(t, m.View(), "Artwork 2 by Unknown Artist")

	m = changePage(t, m, tea.KeyMsg{Type: tea.KeyRight}, 2)
	assert.Empty(t, m.view.SelectedOnPage)
	assert.Len(t, m.view.Selected, 2)
	assert.Equal(t, 0, m.cursor)

	m = changePage(t, m, keyRune('h'), 1)
	assert.Equal(t, []int{2, 4}, m.view.SelectedOnPage)
}

func TestSelectWholePage(t *testing.T) {
	m := newLoadedModel(t)

	m, _ = send(t, m, keyRune('a'))
	assert.True(t, m.view.AllSelected())
	assert.Len(t, m.view.Selected, 4)

	m, _ = send(t, m, keyRune('a'))
	assert.Empty(t, m.view.Selected)
}

func TestRemoveChip(t *testing.T) {
	m := newLoadedModel(t)
	m, _ = send(t, m, keyRune('a'))

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, FocusChips, m.focus)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = send(t, m, keyRune('x'))
	ids := make([]int, 0, len(m.view.Selected))
	for _, s := range m.view.Selected {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []int{1, 3, 4}, ids)
	assert.Equal(t, []int{1, 3, 4}, m.view.SelectedOnPage)

	m, _ = send(t, m, keyRune('c'))
	assert.Empty(t, m.view.Selected)
	assert.Empty(t, m.view.SelectedOnPage)
	assert.Equal(t, FocusGrid, m.focus, "focus returns to the grid when the panel empties")
}

func TestFetchErrorKeepsSelection(t *testing.T) {
	m := newLoadedModel(t)
	m, _ = send(t, m, keySpace)

	m = changePage(t, m, keyRune('G'), 3)
	assert.Equal(t, viewer.StateError, m.view.State)
	assert.Contains(t, m.View(), "Failed to load artworks: HTTP error! status: 503")
	assert.Len(t, m.view.Selected, 1)

	m, _ = send(t, m, keySpace)
	assert.Equal(t, "Selection is unavailable until the page loads", m.status)
	assert.Contains(t, m.View(), "Selection is unavailable")

	m = changePage(t, m, keyRune('g'), 1)
	assert.Equal(t, viewer.StateLoaded, m.view.State)
	assert.Equal(t, []int{1}, m.view.SelectedOnPage)
}

func TestPageBounds(t *testing.T) {
	m := newLoadedModel(t)

	_, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Nil(t, cmd, "no page before the first")

	_, cmd = send(t, m, keyRune('g'))
	assert.Nil(t, cmd, "already on the first page")
}

func TestSpinnerTicksOnlyWhileLoading(t *testing.T) {
	m := newLoadedModel(t)

	result, cmd := m.Update(m.spinner.Tick())
	m = result.(Model)
	assert.Nil(t, cmd, "idle grid stops the spinner")

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	require.Equal(t, viewer.StateLoading, m.view.State)
	_, cmd = m.Update(m.spinner.Tick())
	assert.NotNil(t, cmd, "spinner keeps ticking while a page loads")
}

func TestQuit(t *testing.T) {
	m := newLoadedModel(t)

	m, cmd := send(t, m, keyRune('q'))
	require.NotNil(t, cmd)
	assert.True(t, m.Quitting)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Empty(t, m.View())
}

func TestPad(t *testing.T) {
	assert.Equal(t, "abc  ", pad("abc", 5))
	assert.Equal(t, "abcd…", pad("abcdefgh", 5))
	assert.Equal(t, "a b  ", pad("a\nb", 5))
}
