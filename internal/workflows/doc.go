// Package workflows provides high-level orchestration for kpv commands.
//
// Each workflow handles one command's business logic, independent of CLI
// concerns like flag parsing, spinners and output formatting:
//
//   - Resolving the vault settings (home directory → vault root)
//   - Deriving the key from the working directory when none is given
//   - Executing the vault command
//   - Recording an audit trail entry
//
// # Available Workflows
//
//   - Save: copies ./.env into the vault
//   - Link: symlinks a stored .env into the working directory
//   - List: enumerates saved keys, optionally with file details
//   - Delete: removes a key, asking for confirmation when configured
//   - Log: reads the audit trail
//   - ShowConfig, InitConfig: inspect and create the preferences file
//
// # Settings
//
// Every options struct carries an optional *configs.VaultSettings. When nil
// the settings are resolved from the user's home directory; tests pass an
// explicit value instead of changing the environment.
//
// # Error Handling
//
// Workflows return typed errors from the internal/errors package:
//
//	result, err := workflows.Link(ctx, opts)
//	if errors.Is(err, kerrors.ErrDestinationExists) {
//	    // Suggest removing the local .env first
//	}
//
// Audit failures are never returned as errors; they are reported on the
// result's AuditErr field so the CLI can warn.
package workflows
