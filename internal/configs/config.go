package configs

import (
	"fmt"
	"os"
)

// Preferences is the optional user preferences file.
type Preferences struct {
	Delete DeletePreferences `toml:"delete"`
	Audit  AuditPreferences  `toml:"audit"`
}

type DeletePreferences struct {
	// Confirm prompts before a key is deleted unless --force is given.
	Confirm bool `toml:"confirm"`
}

type AuditPreferences struct {
	// Disabled stops operations from being appended to the audit log.
	Disabled bool `toml:"disabled"`
}

// DefaultPreferences returns the preferences used when no file exists.
func DefaultPreferences() *Preferences {
	return &Preferences{}
}

// LoadPreferences loads the preferences file, falling back to defaults when it is missing.
func LoadPreferences(settings *VaultSettings) (*Preferences, error) {
	prefs := DefaultPreferences()

	if _, err := os.Stat(settings.PreferencesPath); os.IsNotExist(err) {
		return prefs, nil
	}

	if err := LoadTOML(settings.PreferencesPath, prefs); err != nil {
		return nil, fmt.Errorf("failed to load preferences: %w", err)
	}

	return prefs, nil
}

// SavePreferences writes the preferences file, creating its directory if needed.
func SavePreferences(settings *VaultSettings, prefs *Preferences) error {
	if err := SaveTOML(settings.PreferencesPath, prefs); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	return nil
}
