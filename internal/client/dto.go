package client

import "noteboard/internal/types"

type NotesResponse struct {
	Notes []types.Note `json:"notes"`
}

type TranslationsResponse struct {
	Locale       string            `json:"locale"`
	Translations map[string]string `json:"translations"`
}

type HealthResponse struct {
	OK      bool   `json:"ok"`
	Version string `json:"version"`
	PID     int    `json:"pid"`
}
