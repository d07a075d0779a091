// Package viewer drives pagination against the artworks API and keeps the
// cross-page selection in step with whatever page is displayed.
package viewer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/lehigh-university-libraries/artworks/internal/models"
	"github.com/lehigh-university-libraries/artworks/internal/selection"
)

var (
	ErrInvalidPage = errors.New("page must be 1 or greater")
	ErrNotLoaded   = errors.New("no page is loaded")
	ErrNotOnPage   = errors.New("artwork is not on the current page")
	ErrStalePage   = errors.New("selection was made on a page that is no longer displayed")
)

// Source fetches one page of artworks
type Source interface {
	FetchPage(ctx context.Context, page int) (*models.ArtworksResponse, error)
}

// State is the controller's pagination state
type State int

const (
	StateLoading State = iota
	StateLoaded
	StateError
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateError:
		return "error"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// MarshalText renders the state by name in JSON snapshots
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *State) UnmarshalText(text []byte) error {
	switch string(text) {
	case "loading":
		*s = StateLoading
	case "loaded":
		*s = StateLoaded
	case "error":
		*s = StateError
	default:
		return fmt.Errorf("unknown state %q", text)
	}
	return nil
}

// Controller owns the current page, the selection ledger, and the selection
// derived from both. All mutation happens under mu; fetches run without it.
type Controller struct {
	mu     sync.Mutex
	source Source
	ledger *selection.Ledger

	state      State
	page       models.PageState
	artworks   []models.Artwork
	displayed  []models.Artwork
	errMessage string

	// token identifies the latest page request; responses carrying an older
	// token are dropped so a slow response cannot replace a newer page.
	token uint64
}

// New returns a controller in the Loading state on page 1. The caller issues
// the first ChangePage.
func New(source Source) *Controller {
	return &Controller{
		source: source,
		ledger: selection.New(),
		state:  StateLoading,
		page: models.PageState{
			CurrentPage: 1,
			PageSize:    models.DefaultPageSize,
		},
	}
}

// ChangePage moves to a 1-based page and fetches it. The returned error is the
// fetch error, already reflected in the controller's state.
func (c *Controller) ChangePage(ctx context.Context, page int) error {
	if page < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidPage, page)
	}

	c.mu.Lock()
	c.state = StateLoading
	c.errMessage = ""
	c.page.CurrentPage = page
	c.token++
	token := c.token
	c.mu.Unlock()

	slog.Debug("Fetching artworks", "page", page, "token", token)
	resp, err := c.source.FetchPage(ctx, page)
	if err == nil && resp == nil {
		err = errors.New("empty response")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if token != c.token {
		slog.Debug("Discarding stale artworks response", "page", page, "token", token, "latest", c.token)
		return nil
	}

	if err != nil {
		slog.Error("Failed to fetch artworks", "page", page, "err", err)
		c.state = StateError
		c.errMessage = "Failed to load artworks: " + err.Error()
		c.reconcile()
		return err
	}

	c.artworks = resp.Data
	c.page.PageSize = resp.Pagination.Limit
	c.page.TotalRecords = resp.Pagination.Total
	c.state = StateLoaded
	c.reconcile()

	slog.Info("Loaded artworks", "page", page, "rows", len(resp.Data), "total", resp.Pagination.Total)
	return nil
}

// ChangeSelection applies the complete selection for page, which must be the
// page currently displayed. A selection made on any other page is rejected
// with ErrStalePage so it cannot deselect rows the user never saw.
func (c *Controller) ChangeSelection(page int, ids []int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateLoaded {
		return ErrNotLoaded
	}
	if page != c.page.CurrentPage {
		return fmt.Errorf("%w: got page %d, showing page %d", ErrStalePage, page, c.page.CurrentPage)
	}
	c.applySelection(selection.IDSet(ids))
	return nil
}

// ToggleSelection flips one row of the visible page
func (c *Controller) ToggleSelection(id int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateLoaded {
		return ErrNotLoaded
	}

	onPage := false
	for _, artwork := range c.artworks {
		if artwork.ID == id {
			onPage = true
			break
		}
	}
	if !onPage {
		return fmt.Errorf("%w: %d", ErrNotOnPage, id)
	}

	set := make(map[int]struct{}, len(c.displayed)+1)
	for _, artwork := range c.displayed {
		set[artwork.ID] = struct{}{}
	}
	if _, selected := set[id]; selected {
		delete(set, id)
	} else {
		set[id] = struct{}{}
	}
	c.applySelection(set)
	return nil
}

func (c *Controller) applySelection(set map[int]struct{}) {
	c.ledger.ApplyPageSelection(c.artworks, set)
	c.reconcile()
	slog.Debug("Selection changed", "page", c.page.CurrentPage, "on_page", len(c.displayed), "total", c.ledger.Len())
}

// Remove drops one artwork from the selection, whatever page it came from
func (c *Controller) Remove(id int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.ledger.Remove(id)
	c.reconcile()
}

// ClearAll empties the selection
func (c *Controller) ClearAll() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.ledger.Clear()
	c.reconcile()
}

// reconcile recomputes the displayed selection from scratch. Callers hold mu.
func (c *Controller) reconcile() {
	c.displayed = c.ledger.Intersect(c.artworks)
}

// View is a consistent copy of the controller's state
type View struct {
	State          State                    `json:"state"`
	Page           models.PageState         `json:"page"`
	Artworks       []models.Artwork         `json:"artworks"`
	SelectedOnPage []int                    `json:"selected_on_page"`
	Selected       []models.SelectedArtwork `json:"selected"`
	Error          string                   `json:"error,omitempty"`
}

// Snapshot copies the current state
func (c *Controller) Snapshot() View {
	c.mu.Lock()
	defer c.mu.Unlock()

	artworks := make([]models.Artwork, len(c.artworks))
	copy(artworks, c.artworks)

	onPage := make([]int, 0, len(c.displayed))
	for _, artwork := range c.displayed {
		onPage = append(onPage, artwork.ID)
	}

	return View{
		State:          c.state,
		Page:           c.page,
		Artworks:       artworks,
		SelectedOnPage: onPage,
		Selected:       c.ledger.Values(),
		Error:          c.errMessage,
	}
}

// IsSelected reports whether a row of the visible page is checked
func (v View) IsSelected(id int) bool {
	for _, selected := range v.SelectedOnPage {
		if selected == id {
			return true
		}
	}
	return false
}

// AllSelected reports whether every row of a non-empty page is checked
func (v View) AllSelected() bool {
	return len(v.Artworks) > 0 && len(v.SelectedOnPage) == len(v.Artworks)
}

// PageIDs returns the ids of the visible page in order
func (v View) PageIDs() []int {
	ids := make([]int, 0, len(v.Artworks))
	for _, artwork := range v.Artworks {
		ids = append(ids, artwork.ID)
	}
	return ids
}
