package workflows

import (
	"context"

	"github.com/PolarWolf314/kpv/internal/audit"
	"github.com/PolarWolf314/kpv/internal/configs"
	"github.com/PolarWolf314/kpv/internal/vault"
)

// SaveOptions configures the save workflow.
type SaveOptions struct {
	// Key to save under. Empty derives it from the working directory name.
	Key string

	// Source is the file to save. Defaults to ./.env.
	Source string

	Settings *configs.VaultSettings
}

// SaveResult contains the outcome of a save operation.
type SaveResult struct {
	Key        string
	KeyDerived bool

	// StoredPath is the file written in the vault.
	StoredPath string

	// Unchanged is set when the source already was the stored file.
	Unchanged bool

	AuditErr error
}

// Save copies the working .env into the vault, overwriting any previous save.
//
// Returns ErrSourceNotFound if there is nothing to save.
func Save(ctx context.Context, opts SaveOptions) (*SaveResult, error) {
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

	key, derived, err := resolveKey(opts.Key)
	if err != nil {
		return nil, err
	}

	source := opts.Source
	if source == "" {
		source = vault.EnvFileName
	}

	res, err := vault.SaveCommand{Key: key, Source: source}.Execute(env.storage)
	if err != nil {
		return nil, err
	}

	entry := audit.NewEntry("save", key)
	entry.Source = source
	entry.Unchanged = res.Unchanged

	return &SaveResult{
		Key:        key,
		KeyDerived: derived,
		StoredPath: res.Path,
		Unchanged:  res.Unchanged,
		AuditErr:   env.record(entry),
	}, nil
}
