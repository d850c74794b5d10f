package vault

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	kerrors "github.com/PolarWolf314/kpv/internal/errors"
)

// DeriveKey returns the name of the current working directory, used as the
// key when none is given on the command line.
func DeriveKey() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("%w: %v", kerrors.ErrInvalidWorkingDirectory, err)
	}
	return DeriveKeyFromPath(wd)
}

// DeriveKeyFromPath returns the final component of path as a key.
func DeriveKeyFromPath(path string) (string, error) {
	name := filepath.Base(filepath.Clean(path))
	if name == "." || name == ".." || name == string(filepath.Separator) {
		return "", fmt.Errorf("%w: %s", kerrors.ErrInvalidWorkingDirectory, path)
	}

	if !utf8.ValidString(name) {
		return "", fmt.Errorf("%w: %q", kerrors.ErrNonTextDirectoryName, name)
	}

	return name, nil
}
