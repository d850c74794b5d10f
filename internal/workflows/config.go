package workflows

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/kpv/internal/configs"
	kerrors "github.com/PolarWolf314/kpv/internal/errors"
	"github.com/PolarWolf314/kpv/internal/utils"
)

// ConfigOptions configures the config workflows.
type ConfigOptions struct {
	// Force overwrites an existing preferences file (init only).
	Force bool

	Settings *configs.VaultSettings
}

// ConfigResult describes the effective configuration.
type ConfigResult struct {
	Settings    *configs.VaultSettings
	Preferences *configs.Preferences

	// PreferencesFileExists is false when defaults are in effect.
	PreferencesFileExists bool
}

// ShowConfig returns the resolved paths and the effective preferences.
func ShowConfig(ctx context.Context, opts ConfigOptions) (*ConfigResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	env, err := loadEnvironment(opts.Settings)
	if err != nil {
		return nil, err
	}
	if err := env.requirePreferences(); err != nil {
		return nil, err
	}

	exists, err := utils.FileExists(env.settings.PreferencesPath)
	if err != nil {
		return nil, fmt.Errorf("checking preferences file: %w", err)
	}

	return &ConfigResult{
		Settings:              env.settings,
		Preferences:           env.prefs,
		PreferencesFileExists: exists,
	}, nil
}

// InitConfig writes a preferences file with default values.
//
// Returns ErrConfigExists if the file is already there and Force is not set.
func InitConfig(ctx context.Context, opts ConfigOptions) (*ConfigResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	settings := opts.Settings
	if settings == nil {
		resolved, err := configs.ResolveVaultSettings()
		if err != nil {
			return nil, err
		}
		settings = resolved
	}

	exists, err := utils.PathExists(settings.PreferencesPath)
	if err != nil {
		return nil, fmt.Errorf("checking preferences file: %w", err)
	}
	if exists && !opts.Force {
		return nil, fmt.Errorf("%w: %s", kerrors.ErrConfigExists, settings.PreferencesPath)
	}

	prefs := configs.DefaultPreferences()
	if err := configs.SavePreferences(settings, prefs); err != nil {
		return nil, err
	}

	return &ConfigResult{
		Settings:              settings,
		Preferences:           prefs,
		PreferencesFileExists: true,
	}, nil
}
