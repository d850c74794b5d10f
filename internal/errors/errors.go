package errors

import "errors"

// Environment errors indicate the vault or key name could not be resolved.
var (
	// ErrHomeNotFound indicates the user's home directory could not be determined.
	ErrHomeNotFound = errors.New("home directory not found")

	// ErrInvalidWorkingDirectory indicates the current directory could not be read.
	ErrInvalidWorkingDirectory = errors.New("could not determine current directory name")

	// ErrNonTextDirectoryName indicates the current directory name is not valid UTF-8.
	ErrNonTextDirectoryName = errors.New("current directory name is not valid UTF-8")

	// ErrInvalidKey indicates a key cannot be used as a single vault directory name.
	ErrInvalidKey = errors.New("invalid key")
)

// File errors indicate the working .env or the stored file is missing or in the way.
var (
	// ErrSourceNotFound indicates there is no .env file to save.
	ErrSourceNotFound = errors.New("no .env file found")

	// ErrStoredFileNotFound indicates no .env has been saved under the key.
	ErrStoredFileNotFound = errors.New("no saved .env file for key")

	// ErrDestinationExists indicates linking would overwrite an existing file.
	ErrDestinationExists = errors.New(".env file already exists")

	// ErrKeyNotFound indicates the key has no entry in the vault.
	ErrKeyNotFound = errors.New("key not found")
)

// CLI errors.
var (
	// ErrConfirmationRequired indicates a prompt was needed but stdin is not a terminal.
	ErrConfirmationRequired = errors.New("confirmation required (use --force)")

	// ErrConfigExists indicates the preferences file has already been written.
	ErrConfigExists = errors.New("preferences file already exists")
)
