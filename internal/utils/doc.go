// Package utils provides small helpers shared by the kpv packages.
//
// # Filesystem Utilities
//
//   - FileExists, PathExists: existence checks that separate "missing" from I/O errors
//   - CopyFile: byte copy that truncates an existing destination
//
// # System Utilities
//
//   - GetUsername, GetHostname: identify who ran a command, for the audit log
//
// # Terminal Utilities
//
//   - IsTerminal: whether stdin can answer a prompt
//   - Confirm: y/N prompt
package utils
