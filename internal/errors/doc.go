// Package errors provides typed error values for kpv.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching.
//
// # Error Categories
//
//   - Environment errors: the vault root or default key cannot be resolved
//     (ErrHomeNotFound, ErrInvalidWorkingDirectory, ErrNonTextDirectoryName,
//     ErrInvalidKey)
//   - File errors: the working .env or stored file is missing or in the way
//     (ErrSourceNotFound, ErrStoredFileNotFound, ErrDestinationExists,
//     ErrKeyNotFound)
//   - CLI errors: prompts and preferences (ErrConfirmationRequired,
//     ErrConfigExists)
//
// # Usage
//
// Wrap errors with the offending path or key:
//
//	return nil, fmt.Errorf("%w: %s", kerrors.ErrSourceNotFound, source)
//
// Handle them in the CLI layer:
//
//	if errors.Is(err, kerrors.ErrDestinationExists) {
//	    // Suggest removing the local .env first
//	}
package errors
