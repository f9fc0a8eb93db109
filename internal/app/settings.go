package app

import (
	"context"
	"fmt"

	"github.com/theirongolddev/taka/internal/model"
	"github.com/theirongolddev/taka/internal/store"
)

func withDefaults(d model.Settings) model.Settings {
	if d.Language == "" {
		d.Language = model.Bengali
	}
	if d.Theme == "" {
		d.Theme = model.Light
	}
	if d.Currency == "" {
		d.Currency = "৳"
	}
	return d
}

// loadSettings reads each setting, keeping the default for absent keys and
// for stored values the app does not recognise.
func loadSettings(ctx context.Context, s store.Store, def model.Settings) (model.Settings, error) {
	lang, err := store.LoadString(ctx, s, store.KeyLanguage, string(def.Language))
	if err != nil {
		return def, fmt.Errorf("loading language: %w", err)
	}
	theme, err := store.LoadString(ctx, s, store.KeyTheme, string(def.Theme))
	if err != nil {
		return def, fmt.Errorf("loading theme: %w", err)
	}
	currency, err := store.LoadString(ctx, s, store.KeyCurrency, def.Currency)
	if err != nil {
		return def, fmt.Errorf("loading currency: %w", err)
	}

	out := def
	if l := model.Language(lang); l == model.Bengali || l == model.English {
		out.Language = l
	}
	if t := model.Theme(theme); t == model.Light || t == model.Dark {
		out.Theme = t
	}
	if currency != "" {
		out.Currency = currency
	}
	return out, nil
}

// Settings returns the current preferences. They are readable while locked
// so the lock screen can use the language and theme.
func (a *App) Settings() model.Settings {
	return a.settings
}

// SetLanguage switches the display language.
func (a *App) SetLanguage(ctx context.Context, lang model.Language) error {
	if err := a.guard(); err != nil {
		return err
	}
	if lang != model.Bengali && lang != model.English {
		return &model.ValidationError{Field: "language", Reason: fmt.Sprintf("%q is not bn or en", lang)}
	}
	a.settings.Language = lang
	return a.saveSetting(ctx, store.KeyLanguage, string(lang))
}

// SetTheme switches the color theme.
func (a *App) SetTheme(ctx context.Context, theme model.Theme) error {
	if err := a.guard(); err != nil {
		return err
	}
	if theme != model.Light && theme != model.Dark {
		return &model.ValidationError{Field: "theme", Reason: fmt.Sprintf("%q is not light or dark", theme)}
	}
	a.settings.Theme = theme
	return a.saveSetting(ctx, store.KeyTheme, string(theme))
}

// ToggleTheme flips between light and dark and returns the new theme.
func (a *App) ToggleTheme(ctx context.Context) (model.Theme, error) {
	next := model.Dark
	if a.settings.Theme == model.Dark {
		next = model.Light
	}
	if err := a.SetTheme(ctx, next); err != nil {
		return a.settings.Theme, err
	}
	return next, nil
}

// SetCurrency changes the currency symbol shown next to amounts.
func (a *App) SetCurrency(ctx context.Context, symbol string) error {
	if err := a.guard(); err != nil {
		return err
	}
	if symbol == "" {
		return &model.ValidationError{Field: "currency", Reason: "must not be empty"}
	}
	a.settings.Currency = symbol
	return a.saveSetting(ctx, store.KeyCurrency, symbol)
}

func (a *App) saveSetting(ctx context.Context, key, value string) error {
	a.log.Debug("changed setting", "key", key, "value", value)
	a.dirtySettings[key] = value
	return a.Flush(ctx)
}
