package daemon

import (
	"encoding/json"
	"net/http"
	"strings"

	"noteboard/internal/types"
)

func (a *API) Settings(w http.ResponseWriter, r *http.Request) {
	service := NewSettingsService(a.Repo)
	switch r.Method {
	case http.MethodGet:
		settings, err := service.Get(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, settings)
	case http.MethodPatch:
		var req types.Settings
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json body"})
			return
		}
		settings, err := service.Update(r.Context(), req)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, settings)
	default:
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
	}
}

func (a *API) Translations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}
	service := NewSettingsService(a.Repo)
	path := strings.TrimPrefix(r.URL.Path, "/api/v1/translations/")
	locale := strings.TrimSpace(strings.Trim(path, "/"))
	table, err := service.Translations(r.Context(), locale)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"locale":       locale,
		"translations": table,
	})
}
