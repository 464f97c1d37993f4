package prefs

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ThemeKey is the preference key holding the theme.
const ThemeKey = "theme"

// Theme is the visual mode of the dashboard.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// ParseTheme accepts "light" or "dark".
func ParseTheme(s string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case Light:
		return Light, nil
	case Dark:
		return Dark, nil
	}
	return "", fmt.Errorf("unknown theme %q", s)
}

// Toggle switches between light and dark.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// LoadTheme reads the stored theme. An absent key yields Light with no error;
// any other failure yields Light and the error.
func LoadTheme(ctx context.Context, s Store) (Theme, error) {
	v, err := s.Get(ctx, ThemeKey)
	if errors.Is(err, ErrNotFound) {
		return Light, nil
	}
	if err != nil {
		return Light, fmt.Errorf("load theme: %w", err)
	}
	t, err := ParseTheme(v)
	if err != nil {
		return Light, fmt.Errorf("load theme: %w", err)
	}
	return t, nil
}

// SaveTheme persists t.
func SaveTheme(ctx context.Context, s Store, t Theme) error {
	if err := s.Set(ctx, ThemeKey, string(t)); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	return nil
}
