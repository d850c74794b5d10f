package workflows

import (
	"context"

	"github.com/PolarWolf314/kpv/internal/audit"
	"github.com/PolarWolf314/kpv/internal/configs"
	"github.com/PolarWolf314/kpv/internal/vault"
)

// LinkOptions configures the link workflow.
type LinkOptions struct {
	// Key to link. Empty derives it from the working directory name.
	Key string

	// Dest is the link to create. Defaults to ./.env.
	Dest string

	Settings *configs.VaultSettings
}

// LinkResult contains the outcome of a link operation.
type LinkResult struct {
	Key        string
	KeyDerived bool

	// LinkPath is the created symlink; TargetPath is the stored file it points at.
	LinkPath   string
	TargetPath string

	AuditErr error
}

// Link creates ./.env as a symlink to the stored file for the key.
//
// Returns ErrStoredFileNotFound if the key was never saved and
// ErrDestinationExists if ./.env is already present.
func Link(ctx context.Context, opts LinkOptions) (*LinkResult, error) {
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

	dest := opts.Dest
	if dest == "" {
		dest = vault.EnvFileName
	}

	res, err := vault.LinkCommand{Key: key, Dest: dest}.Execute(env.storage)
	if err != nil {
		return nil, err
	}

	entry := audit.NewEntry("link", key)
	entry.Destination = dest

	return &LinkResult{
		Key:        key,
		KeyDerived: derived,
		LinkPath:   res.Path,
		TargetPath: env.storage.KeyFile(key),
		AuditErr:   env.record(entry),
	}, nil
}
