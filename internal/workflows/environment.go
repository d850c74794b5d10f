package workflows

import (
	"github.com/PolarWolf314/kpv/internal/audit"
	"github.com/PolarWolf314/kpv/internal/configs"
	"github.com/PolarWolf314/kpv/internal/vault"
)

// environment is everything a workflow needs to run a vault command.
type environment struct {
	settings *configs.VaultSettings
	prefs    *configs.Preferences
	storage  *vault.Storage

	// prefsErr is set when the preferences file could not be read and
	// defaults are in effect instead.
	prefsErr error
}

func loadEnvironment(settings *configs.VaultSettings) (*environment, error) {
	if settings == nil {
		resolved, err := configs.ResolveVaultSettings()
		if err != nil {
			return nil, err
		}
		settings = resolved
	}

	env := &environment{
		settings: settings,
		storage:  vault.NewStorage(settings.VaultPath),
	}

	prefs, err := configs.LoadPreferences(settings)
	if err != nil {
		prefs = configs.DefaultPreferences()
		env.prefsErr = err
	}
	env.prefs = prefs

	return env, nil
}

// requirePreferences returns the error from reading the preferences file, if any.
// Workflows that act on a preference must call it before doing anything.
func (e *environment) requirePreferences() error {
	return e.prefsErr
}

// resolveKey returns key, or the working directory name when key is empty.
func resolveKey(key string) (string, bool, error) {
	if key != "" {
		return key, false, nil
	}
	derived, err := vault.DeriveKey()
	if err != nil {
		return "", false, err
	}
	return derived, true, nil
}

// record appends entry to the audit log unless auditing is disabled.
func (e *environment) record(entry audit.Entry) error {
	if e.prefs.Audit.Disabled {
		return nil
	}
	return audit.Log(e.settings.AuditLogPath, entry)
}
