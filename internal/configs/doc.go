// Package configs resolves where kpv keeps its state and loads user preferences.
//
// # Settings
//
// ResolveVaultSettings derives every path from the user's home directory:
//
//   - VaultPath: ~/.config/kpv, one subdirectory per saved key
//   - PreferencesPath: ~/.config/kpv.toml
//   - AuditLogPath: $XDG_DATA_HOME/kpv/audit.jsonl (~/.local/share by default)
//
// Settings are resolved per invocation and passed explicitly to the
// workflows; no package-level state is kept.
//
// # Preferences
//
// Preferences are stored in TOML. A missing file means defaults:
//
//	[delete]
//	confirm = false
//
//	[audit]
//	disabled = false
package configs
