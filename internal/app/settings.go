package app

import (
	"go.trai.ch/vtrg/internal/adapters/settings"
	"go.trai.ch/vtrg/internal/core/domain"
	"go.trai.ch/zerr"
)

// Setting returns the value stored at key.
func (a *App) Setting(key string) (any, error) {
	return a.settings.Get(key)
}

// SetSetting parses raw as a YAML scalar or flow sequence and stores it at key.
func (a *App) SetSetting(key, raw string) error {
	if key == "" {
		return zerr.With(domain.Fail(domain.ErrInvalidSettingKey, nil), "key", key)
	}
	if err := a.settings.Set(key, settings.ParseValue(raw)); err != nil {
		return err
	}
	a.logger.Success("set " + key)
	return nil
}

// Settings returns the merged settings document.
func (a *App) Settings() map[string]any {
	return a.settings.All()
}

// ResetSettings restores the built-in defaults.
func (a *App) ResetSettings() error {
	if err := a.settings.Reset(); err != nil {
		return err
	}
	a.logger.Success("settings reset to defaults")
	return nil
}

// SettingsPath returns the location of the settings file.
func (a *App) SettingsPath() string {
	return a.settings.Path()
}
