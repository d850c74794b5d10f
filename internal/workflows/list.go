package workflows

import (
	"context"

	"github.com/PolarWolf314/kpv/internal/configs"
	"github.com/PolarWolf314/kpv/internal/vault"
)

// ListOptions configures the list workflow.
type ListOptions struct {
	// Pattern keeps only keys matching this glob.
	Pattern string

	// Details adds size and modification time of every stored file.
	Details bool

	Settings *configs.VaultSettings
}

// ListResult contains the saved keys.
type ListResult struct {
	// Keys in ascending order. Never nil.
	Keys []string

	// Details is filled when ListOptions.Details is set, in the order of Keys.
	Details []vault.KeyInfo

	VaultPath string

	// PreferencesErr is set when the preferences file could not be read.
	// Listing does not depend on it, so defaults were used.
	PreferencesErr error
}

// List enumerates saved keys. A vault that was never written to is empty, not an error.
func List(ctx context.Context, opts ListOptions) (*ListResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	env, err := loadEnvironment(opts.Settings)
	if err != nil {
		return nil, err
	}

	res, err := vault.ListCommand{Pattern: opts.Pattern}.Execute(env.storage)
	if err != nil {
		return nil, err
	}

	result := &ListResult{Keys: res.Keys, VaultPath: env.storage.Root(), PreferencesErr: env.prefsErr}
	if !opts.Details {
		return result, nil
	}

	for _, key := range res.Keys {
		info, err := env.storage.Describe(key)
		if err != nil {
			return nil, err
		}
		result.Details = append(result.Details, info)
	}

	return result, nil
}
