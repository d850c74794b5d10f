package vault

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	kerrors "github.com/PolarWolf314/kpv/internal/errors"
)

// EnvFileName is the name of the stored file inside every key directory,
// and the default name of the working file.
const EnvFileName = ".env"

// Directory and file permissions for vault contents.
const (
	DirPerm  os.FileMode = 0700
	FilePerm os.FileMode = 0600
)

// Storage maps keys onto paths under a vault root.
type Storage struct {
	root string
}

// NewStorage returns a Storage rooted at root. The root does not need to exist.
func NewStorage(root string) *Storage {
	return &Storage{root: root}
}

// Root returns the vault root directory.
func (s *Storage) Root() string {
	return s.root
}

// KeyDir returns the directory holding the entry for key.
func (s *Storage) KeyDir(key string) string {
	return filepath.Join(s.root, key)
}

// KeyFile returns the path of the stored .env file for key.
func (s *Storage) KeyFile(key string) string {
	return filepath.Join(s.KeyDir(key), EnvFileName)
}

// Exists reports whether key has an entry, i.e. a directory below the root.
func (s *Storage) Exists(key string) (bool, error) {
	info, err := os.Stat(s.KeyDir(key))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to stat %s: %w", s.KeyDir(key), err)
	}
	return info.IsDir(), nil
}

// KeyInfo describes a saved key.
type KeyInfo struct {
	Key     string
	Path    string
	Size    int64
	ModTime time.Time
	// Missing is set when the key directory exists without a stored file,
	// as left behind by an interrupted save.
	Missing bool
}

// Describe returns size and modification time of the stored file for key.
func (s *Storage) Describe(key string) (KeyInfo, error) {
	info := KeyInfo{Key: key, Path: s.KeyFile(key)}

	fileInfo, err := os.Stat(info.Path)
	if os.IsNotExist(err) {
		info.Missing = true
		return info, nil
	}
	if err != nil {
		return info, fmt.Errorf("failed to stat %s: %w", info.Path, err)
	}

	info.Size = fileInfo.Size()
	info.ModTime = fileInfo.ModTime()
	return info, nil
}

// ValidateKey rejects keys that would not map to exactly one directory
// directly below the vault root.
func ValidateKey(key string) error {
	switch {
	case key == "":
		return fmt.Errorf("%w: key is empty", kerrors.ErrInvalidKey)
	case key == "." || key == "..":
		return fmt.Errorf("%w: %q", kerrors.ErrInvalidKey, key)
	case strings.ContainsAny(key, `/\`) || strings.ContainsRune(key, os.PathSeparator):
		return fmt.Errorf("%w: %q contains a path separator", kerrors.ErrInvalidKey, key)
	case strings.ContainsRune(key, 0):
		return fmt.Errorf("%w: %q contains a NUL byte", kerrors.ErrInvalidKey, key)
	}
	return nil
}
