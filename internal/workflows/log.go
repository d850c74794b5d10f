package workflows

import (
	"context"
	"fmt"
	"slices"

	"github.com/PolarWolf314/kpv/internal/audit"
	"github.com/PolarWolf314/kpv/internal/configs"
)

// LogOptions configures the log workflow.
type LogOptions struct {
	// Key filters entries to a single key. Empty means all keys.
	Key string

	// Limit is the maximum number of entries to return, keeping the most
	// recent ones. 0 means no limit.
	Limit int

	// Reverse orders entries from most recent to oldest when true.
	Reverse bool

	Settings *configs.VaultSettings
}

// LogResult contains the audit entries.
type LogResult struct {
	Entries []audit.Entry
	LogPath string

	// PreferencesErr is set when the preferences file could not be read.
	PreferencesErr error
}

// Log reads the audit log. A missing log yields no entries.
func Log(ctx context.Context, opts LogOptions) (*LogResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	env, err := loadEnvironment(opts.Settings)
	if err != nil {
		return nil, err
	}

	entries, err := audit.ReadEntries(env.settings.AuditLogPath)
	if err != nil {
		return nil, fmt.Errorf("reading audit log: %w", err)
	}

	if opts.Key != "" {
		entries = audit.FilterByKey(entries, opts.Key)
	}

	if opts.Limit > 0 && len(entries) > opts.Limit {
		entries = entries[len(entries)-opts.Limit:]
	}

	if opts.Reverse {
		slices.Reverse(entries)
	}

	return &LogResult{Entries: entries, LogPath: env.settings.AuditLogPath, PreferencesErr: env.prefsErr}, nil
}
