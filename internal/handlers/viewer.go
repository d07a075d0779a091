package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/lehigh-university-libraries/artworks/internal/viewer"
)

func (h *Handler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sessionID := r.URL.Query().Get("session")
	if sessionID == "" {
		session := h.sessionStore.Create()
		slog.Info("Session created", "session_id", session.ID)
		// fetch errors are kept in the controller's state and rendered
		_ = session.Controller.ChangePage(r.Context(), 1)
		h.redirectToView(w, r, session.ID)
		return
	}

	session, exists := h.sessionStore.Get(sessionID)
	if !exists {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		if err := indexTemplate.ExecuteTemplate(w, "missing", nil); err != nil {
			slog.Error("Unable to render page", "err", err)
		}
		return
	}

	data := newPageData(session.ID, session.Controller.Snapshot())
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, data); err != nil {
		slog.Error("Unable to render page", "session_id", session.ID, "err", err)
	}
}

func (h *Handler) HandlePage(w http.ResponseWriter, r *http.Request) {
	session, ok := h.formSession(w, r)
	if !ok {
		return
	}

	page, err := strconv.Atoi(r.PostForm.Get("page"))
	if err != nil {
		h.writeError(w, "Invalid page: "+r.PostForm.Get("page"), http.StatusBadRequest)
		return
	}

	if err := session.Controller.ChangePage(r.Context(), page); errors.Is(err, viewer.ErrInvalidPage) {
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.redirectToView(w, r, session.ID)
}

// HandleSelection receives the complete selection for the visible page
func (h *Handler) HandleSelection(w http.ResponseWriter, r *http.Request) {
	session, ok := h.formSession(w, r)
	if !ok {
		return
	}

	page, err := strconv.Atoi(r.PostForm.Get("page"))
	if err != nil {
		h.writeError(w, "Invalid page: "+r.PostForm.Get("page"), http.StatusBadRequest)
		return
	}

	ids, err := parseIDs(r.PostForm["id"])
	if err != nil {
		h.writeError(w, "Invalid artwork id: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := session.Controller.ChangeSelection(page, ids); err != nil {
		h.writeError(w, "Unable to change selection: "+err.Error(), http.StatusConflict)
		return
	}

	h.redirectToView(w, r, session.ID)
}

func (h *Handler) HandleSelectionRemove(w http.ResponseWriter, r *http.Request) {
	session, ok := h.formSession(w, r)
	if !ok {
		return
	}

	id, err := strconv.Atoi(r.PostForm.Get("id"))
	if err != nil {
		h.writeError(w, "Invalid artwork id: "+r.PostForm.Get("id"), http.StatusBadRequest)
		return
	}

	session.Controller.Remove(id)
	h.redirectToView(w, r, session.ID)
}

func (h *Handler) HandleSelectionClear(w http.ResponseWriter, r *http.Request) {
	session, ok := h.formSession(w, r)
	if !ok {
		return
	}

	session.Controller.ClearAll()
	h.redirectToView(w, r, session.ID)
}
