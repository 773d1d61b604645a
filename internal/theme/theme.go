package theme

import (
	"context"
	"ctchen222/Tic-Tac-Toe-Solo/internal/events"
	"ctchen222/Tic-Tac-Toe-Solo/internal/repository"
	"fmt"
	"log/slog"
)

// Icons shown on the theme toggle: the sun switches back to light.
const (
	IconSun  = "sun"
	IconMoon = "moon"

	MessageEnabled  = "Dark theme enabled"
	MessageDisabled = "Dark theme disabled"
)

type Theme struct {
	DarkMode bool   `json:"darkMode"`
	Icon     string `json:"icon"`
}

// For returns the theme shown for the given flag.
func For(dark bool) Theme {
	if dark {
		return Theme{DarkMode: true, Icon: IconSun}
	}
	return Theme{DarkMode: false, Icon: IconMoon}
}

// Service reads and flips the persisted dark-mode flag.
type Service struct {
	repo repository.SettingsRepository
	bus  events.Bus
}

func NewService(repo repository.SettingsRepository, bus events.Bus) *Service {
	return &Service{repo: repo, bus: bus}
}

func (s *Service) Load(ctx context.Context, profileID string) (Theme, error) {
	dark, err := s.repo.DarkMode(ctx, profileID)
	if err != nil {
		return Theme{}, fmt.Errorf("failed to load theme: %w", err)
	}
	return For(dark), nil
}

// Toggle flips and persists the flag, returning the new theme and the
// notification text for it.
func (s *Service) Toggle(ctx context.Context, profileID string) (Theme, string, error) {
	dark, err := s.repo.DarkMode(ctx, profileID)
	if err != nil {
		return Theme{}, "", fmt.Errorf("failed to load theme: %w", err)
	}
	dark = !dark
	if err := s.repo.SetDarkMode(ctx, profileID, dark); err != nil {
		return Theme{}, "", fmt.Errorf("failed to save theme: %w", err)
	}

	if s.bus != nil {
		event, err := events.New(events.TypeThemeChanged, events.ThemeChangedPayload{ProfileID: profileID, DarkMode: dark})
		if err == nil {
			err = s.bus.Publish(ctx, event)
		}
		if err != nil {
			slog.ErrorContext(ctx, "Failed to publish theme_changed event", "profile.id", profileID, "error", err)
		}
	}

	message := MessageDisabled
	if dark {
		message = MessageEnabled
	}
	return For(dark), message, nil
}
