// Package vault stores .env files under a vault root, one directory per key.
//
// The layout is fixed:
//
//	<root>/<key>/.env
//
// There is no index file; the directory listing is the index. Storage maps
// keys to paths and performs no I/O. The operations are a closed set of
// Command values executed against a Storage:
//
//   - SaveCommand: copy ./.env into the vault, overwriting
//   - LinkCommand: symlink ./.env to a stored file, never overwriting
//   - ListCommand: sorted key names, empty when the root does not exist
//   - DeleteCommand: remove a key directory recursively
//
// Every command validates its key with ValidateKey first, so a key can never
// address a path outside its own directory below the root.
//
// None of the commands are atomic. A save that fails after creating the key
// directory leaves that directory behind; List still reports it and
// Describe marks it Missing.
package vault
