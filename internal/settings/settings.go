package settings

import (
	"fmt"
	"strings"

	"calnotes/internal/i18n"
	"calnotes/internal/storage"
)

const (
	LocaleKey = "locale"
	ThemeKey  = "theme"
)

// Theme is the light/dark presentation flag.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// ParseTheme accepts light or dark, case-insensitively.
func ParseTheme(s string) (Theme, bool) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case Light:
		return Light, true
	case Dark:
		return Dark, true
	default:
		return Light, false
	}
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// Settings are the persisted user preferences.
type Settings struct {
	Locale i18n.Locale
	Theme  Theme
}

// Defaults returns tr and light.
func Defaults() Settings {
	return Settings{Locale: i18n.Default, Theme: Light}
}

// Load reads both settings from kv. Missing or unrecognized values fall back
// to Defaults; only read failures are returned.
func Load(kv storage.KV) (Settings, error) {
	s := Defaults()

	raw, found, err := kv.Get(LocaleKey)
	if err != nil {
		return s, fmt.Errorf("load locale: %w", err)
	}
	if found {
		if l, ok := i18n.Parse(string(raw)); ok {
			s.Locale = l
		}
	}

	raw, found, err = kv.Get(ThemeKey)
	if err != nil {
		return s, fmt.Errorf("load theme: %w", err)
	}
	if found {
		if t, ok := ParseTheme(string(raw)); ok {
			s.Theme = t
		}
	}
	return s, nil
}

// SetLocale persists l.
func SetLocale(kv storage.KV, l i18n.Locale) error {
	if _, ok := i18n.Parse(string(l)); !ok {
		return fmt.Errorf("unknown locale %q", l)
	}
	return kv.Set(LocaleKey, []byte(l))
}

// SetTheme persists t.
func SetTheme(kv storage.KV, t Theme) error {
	if _, ok := ParseTheme(string(t)); !ok {
		return fmt.Errorf("unknown theme %q", t)
	}
	return kv.Set(ThemeKey, []byte(t))
}
