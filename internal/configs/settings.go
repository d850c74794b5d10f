package configs

import (
	"fmt"
	"os"
	"path/filepath"

	kerrors "github.com/PolarWolf314/kpv/internal/errors"
)

// VaultSettings holds every path kpv reads or writes outside the working directory.
type VaultSettings struct {
	HomePath        string
	VaultPath       string
	PreferencesPath string
	AuditLogPath    string
}

// ResolveVaultSettings derives the settings from the current user's home directory.
// It is evaluated on every call so a changed HOME is always honoured.
func ResolveVaultSettings() (*VaultSettings, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil || homeDir == "" {
		return nil, fmt.Errorf("%w: %v", kerrors.ErrHomeNotFound, err)
	}
	return NewVaultSettings(homeDir), nil
}

// NewVaultSettings derives the settings for an explicit home directory. Nothing is created.
func NewVaultSettings(homeDir string) *VaultSettings {
	configDir := filepath.Join(homeDir, ".config")

	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		dataDir = filepath.Join(homeDir, ".local", "share")
	}

	return &VaultSettings{
		HomePath:        homeDir,
		VaultPath:       filepath.Join(configDir, "kpv"),
		PreferencesPath: filepath.Join(configDir, "kpv.toml"),
		AuditLogPath:    filepath.Join(dataDir, "kpv", "audit.jsonl"),
	}
}
