package daemon

import "net/http"

func (a *API) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/health", a.Health)
	mux.HandleFunc("/api/v1/notes", a.Notes)
	mux.HandleFunc("/api/v1/notes/", a.NoteByID)
	mux.HandleFunc("/api/v1/settings", a.Settings)
	mux.HandleFunc("/api/v1/translations/", a.Translations)
	mux.HandleFunc("/api/v1/shutdown", a.ShutdownDaemon)
}
