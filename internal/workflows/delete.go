package workflows

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/kpv/internal/audit"
	"github.com/PolarWolf314/kpv/internal/configs"
	kerrors "github.com/PolarWolf314/kpv/internal/errors"
	"github.com/PolarWolf314/kpv/internal/vault"
)

// ConfirmFunc asks the user whether key may be deleted.
type ConfirmFunc func(key string) (bool, error)

// DeleteOptions configures the delete workflow.
type DeleteOptions struct {
	Key string

	// Force skips the confirmation that [delete] confirm = true asks for.
	Force bool

	// Confirm is consulted when confirmation is required. A nil Confirm with
	// confirmation required fails with ErrConfirmationRequired.
	Confirm ConfirmFunc

	Settings *configs.VaultSettings
}

// DeleteResult contains the outcome of a delete operation.
type DeleteResult struct {
	Key string

	// RemovedPath is the key directory that was removed.
	RemovedPath string

	// Aborted is set when the user declined the confirmation.
	Aborted bool

	AuditErr error
}

// Delete removes a key and its stored file.
//
// Returns ErrKeyNotFound if the key does not exist. Deleting is never
// silently successful for a missing key.
func Delete(ctx context.Context, opts DeleteOptions) (*DeleteResult, error) {
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

	if err := vault.ValidateKey(opts.Key); err != nil {
		return nil, err
	}

	result := &DeleteResult{Key: opts.Key}

	if env.prefs.Delete.Confirm && !opts.Force {
		if opts.Confirm == nil {
			return nil, kerrors.ErrConfirmationRequired
		}
		// Do not prompt for a key that is not there.
		exists, err := env.storage.Exists(opts.Key)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, fmt.Errorf("%w: '%s'", kerrors.ErrKeyNotFound, opts.Key)
		}

		ok, err := opts.Confirm(opts.Key)
		if err != nil {
			return nil, err
		}
		if !ok {
			result.Aborted = true
			return result, nil
		}
	}

	res, err := vault.DeleteCommand{Key: opts.Key}.Execute(env.storage)
	if err != nil {
		return nil, err
	}

	result.RemovedPath = res.Path
	result.AuditErr = env.record(audit.NewEntry("delete", opts.Key))
	return result, nil
}
