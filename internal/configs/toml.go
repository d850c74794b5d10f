package configs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Permissions for the preferences file, matching the vault's own.
const (
	configDirPerm  os.FileMode = 0700
	configFilePerm os.FileMode = 0600
)

// SaveTOML encodes data to filePath, replacing any previous contents.
// A new file is created with mode 0600.
func SaveTOML(filePath string, data any) error {
	if err := os.MkdirAll(filepath.Dir(filePath), configDirPerm); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(filePath), err)
	}

	f, err := os.OpenFile(filePath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, configFilePerm)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", filePath, err)
	}

	if err := toml.NewEncoder(f).Encode(data); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", filePath, err)
	}
	return f.Close()
}

// LoadTOML decodes filePath into data. Keys kpv does not know are rejected
// so a misspelt setting is not silently ignored.
func LoadTOML(filePath string, data any) error {
	meta, err := toml.DecodeFile(filePath, data)
	if err != nil {
		return err
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown setting %q in %s", undecoded[0].String(), filePath)
	}
	return nil
}
