// Package audit records what kpv did to the vault.
//
// Every save, link and delete appends one JSON object to a JSON Lines file,
// by default:
//
//	~/.local/share/kpv/audit.jsonl
//
// The log sits outside the vault root so the vault directory listing stays
// the only index of keys. Each entry carries a UUID, a UTC timestamp with
// microseconds, the local user and host, the operation and the key.
//
// # Usage
//
//	entry := audit.NewEntry("save", key)
//	entry.Source = "./.env"
//	if err := audit.Log(settings.AuditLogPath, entry); err != nil {
//	    log.Warnf("audit log not written: %v", err)
//	}
//
// # Failure Handling
//
// Audit logging is best-effort. Callers warn and carry on when Log fails;
// an operation never fails because its audit entry could not be written.
// ParseEntries skips malformed lines.
package audit
