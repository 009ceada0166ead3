package daemon

import (
	"context"
	"strings"

	"noteboard/internal/store"
	"noteboard/internal/types"
)

type SettingsService struct {
	repo *store.Repository
}

func NewSettingsService(repo *store.Repository) *SettingsService {
	return &SettingsService{repo: repo}
}

func (s *SettingsService) Get(ctx context.Context) (types.Settings, error) {
	if s.repo == nil {
		return types.Settings{}, unavailableError("settings store not available", nil)
	}
	settings, err := s.repo.Settings(ctx)
	if err != nil {
		return types.Settings{}, unavailableError(err.Error(), err)
	}
	return settings, nil
}

func (s *SettingsService) Update(ctx context.Context, patch types.Settings) (types.Settings, error) {
	if s.repo == nil {
		return types.Settings{}, unavailableError("settings store not available", nil)
	}
	locale := strings.TrimSpace(patch.Locale)
	if locale == "" {
		return types.Settings{}, invalidError("locale is required", nil)
	}
	settings := types.Settings{Locale: locale}
	if err := s.repo.SaveSettings(ctx, settings); err != nil {
		return types.Settings{}, unavailableError(err.Error(), err)
	}
	return settings, nil
}

// Translations resolves the table for a locale. Unknown locales return
// an empty table so clients degrade to key echoes rather than failing.
func (s *SettingsService) Translations(ctx context.Context, locale string) (map[string]string, error) {
	if s.repo == nil {
		return nil, unavailableError("translation store not available", nil)
	}
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return nil, invalidError("locale is required", nil)
	}
	table, err := s.repo.Translations(ctx, locale)
	if err != nil {
		return nil, unavailableError(err.Error(), err)
	}
	return table, nil
}
