package handlers

import (
	"net/http"
	"strings"

	"github.com/lehigh-university-libraries/artworks/internal/models"
	"gopkg.in/yaml.v3"
)

// selectionExport is the downloadable form of a session's selection
type selectionExport struct {
	Count    int                      `json:"count" yaml:"count"`
	Selected []models.SelectedArtwork `json:"selected" yaml:"selected"`
}

// HandleSessionDetail serves /api/sessions/{id} and /api/sessions/{id}/selection
func (h *Handler) HandleSessionDetail(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/sessions/")
	sessionID, resource, _ := strings.Cut(rest, "/")

	if r.Method != http.MethodGet {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	session, ok := h.getSessionOrError(w, sessionID)
	if !ok {
		return
	}

	view := session.Controller.Snapshot()

	switch resource {
	case "":
		h.writeJSON(w, view)
	case "selection":
		export := selectionExport{Count: len(view.Selected), Selected: view.Selected}
		switch r.URL.Query().Get("format") {
		case "", "json":
			h.writeJSON(w, export)
		case "yaml":
			data, err := yaml.Marshal(&export)
			if err != nil {
				h.writeError(w, "Failed to marshal YAML: "+err.Error(), http.StatusInternalServerError)
				return
			}
			w.Header().Set("Content-Type", "application/yaml")
			w.Header().Set("Content-Disposition", `attachment; filename="selection.yaml"`)
			_, _ = w.Write(data)
		default:
			h.writeError(w, "Invalid format. Must be 'json' or 'yaml'", http.StatusBadRequest)
		}
	default:
		http.NotFound(w, r)
	}
}
