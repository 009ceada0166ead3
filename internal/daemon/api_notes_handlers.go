package daemon

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"noteboard/internal/types"
)

func (a *API) Notes(w http.ResponseWriter, r *http.Request) {
	service := NewNoteService(a.Repo)
	switch r.Method {
	case http.MethodGet:
		notes, err := service.List(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"notes": notes})
	case http.MethodPost:
		var req types.Note
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json body"})
			return
		}
		note, err := service.Create(r.Context(), req)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, note)
	default:
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
	}
}

func (a *API) NoteByID(w http.ResponseWriter, r *http.Request) {
	service := NewNoteService(a.Repo)
	path := strings.TrimPrefix(r.URL.Path, "/api/v1/notes/")
	raw := strings.TrimSpace(strings.Trim(path, "/"))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
		return
	}

	switch r.Method {
	case http.MethodDelete:
		if err := service.Delete(r.Context(), id); err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	default:
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
	}
}
