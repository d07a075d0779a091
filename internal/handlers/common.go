package handlers

import (
	"embed"
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/lehigh-university-libraries/artworks/internal/storage"
	"github.com/lehigh-university-libraries/artworks/internal/viewer"
)

//go:embed assets
var assets embed.FS

var indexTemplate = template.Must(template.ParseFS(assets, "assets/index.html"))

type Handler struct {
	sessionStore *storage.SessionStore
}

func New(sessionStore *storage.SessionStore) *Handler {
	return &Handler{
		sessionStore: sessionStore,
	}
}

// Routes registers every endpoint on mux
func (h *Handler) Routes(mux *http.ServeMux) {
	mux.HandleFunc("/", h.HandleIndex)
	mux.HandleFunc("/page", h.HandlePage)
	mux.HandleFunc("/selection", h.HandleSelection)
	mux.HandleFunc("/selection/remove", h.HandleSelectionRemove)
	mux.HandleFunc("/selection/clear", h.HandleSelectionClear)
	mux.HandleFunc("/api/sessions/", h.HandleSessionDetail)
	mux.HandleFunc("/static/", h.HandleStatic)
	mux.HandleFunc("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte("OK")); err != nil {
			slog.Error("Unable to write healthcheck", "err", err)
		}
	})
}

// Response helpers
func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Unable to encode JSON response", "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	slog.Error(message, "status", code)
	http.Error(w, message, code)
}

// Session helpers
func (h *Handler) getSessionOrError(w http.ResponseWriter, sessionID string) (*storage.Session, bool) {
	session, exists := h.sessionStore.Get(sessionID)
	if !exists {
		h.writeError(w, "Session not found", http.StatusNotFound)
		return nil, false
	}
	return session, true
}

// formSession parses a POSTed form and resolves its session field
func (h *Handler) formSession(w http.ResponseWriter, r *http.Request) (*storage.Session, bool) {
	if r.Method != http.MethodPost {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return nil, false
	}
	if err := r.ParseForm(); err != nil {
		h.writeError(w, "Invalid form: "+err.Error(), http.StatusBadRequest)
		return nil, false
	}
	return h.getSessionOrError(w, r.PostForm.Get("session"))
}

func (h *Handler) redirectToView(w http.ResponseWriter, r *http.Request, sessionID string) {
	http.Redirect(w, r, "/?session="+url.QueryEscape(sessionID), http.StatusSeeOther)
}

func parseIDs(values []string) ([]int, error) {
	ids := make([]int, 0, len(values))
	for _, v := range values {
		id, err := strconv.Atoi(v)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// rowData is one grid row ready for the template
type rowData struct {
	ID           int
	Checked      bool
	Title        string
	Place        string
	Artist       string
	Inscriptions string
	DateStart    string
	DateEnd      string
}

type chipData struct {
	ID    int
	Label string
}

type pagerData struct {
	Current    int
	TotalPages int
	Prev       int
	Next       int
	From       int
	To         int
	Total      int
	HasPrev    bool
	HasNext    bool
}

type pageData struct {
	SessionID string
	Loading   bool
	Error     string
	Rows      []rowData
	PageIDs   []int
	Chips     []chipData
	Pager     pagerData
}

func newPageData(sessionID string, view viewer.View) pageData {
	data := pageData{
		SessionID: sessionID,
		Loading:   view.State == viewer.StateLoading,
		Error:     view.Error,
		PageIDs:   view.PageIDs(),
		Rows:      make([]rowData, 0, len(view.Artworks)),
		Chips:     make([]chipData, 0, len(view.Selected)),
	}

	for _, a := range view.Artworks {
		data.Rows = append(data.Rows, rowData{
			ID:           a.ID,
			Checked:      view.IsSelected(a.ID),
			Title:        a.Title,
			Place:        viewer.Text(a.PlaceOfOrigin),
			Artist:       viewer.Text(a.ArtistDisplay),
			Inscriptions: viewer.TextOr(a.Inscriptions, "N/A"),
			DateStart:    viewer.Number(a.DateStart),
			DateEnd:      viewer.Number(a.DateEnd),
		})
	}

	for _, item := range view.Selected {
		data.Chips = append(data.Chips, chipData{ID: item.ID, Label: viewer.ChipLabel(item)})
	}

	page := view.Page
	data.Pager = pagerData{
		Current:    page.CurrentPage,
		TotalPages: page.TotalPages(),
		Prev:       page.CurrentPage - 1,
		Next:       page.CurrentPage + 1,
		Total:      page.TotalRecords,
		HasPrev:    page.CurrentPage > 1,
		HasNext:    page.CurrentPage < page.TotalPages(),
	}
	if len(view.Artworks) > 0 {
		data.Pager.From = page.First() + 1
		data.Pager.To = page.First() + len(view.Artworks)
	}

	return data
}
