package vault

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"

	kerrors "github.com/PolarWolf314/kpv/internal/errors"
	"github.com/PolarWolf314/kpv/internal/utils"
)

// Command is one vault operation.
type Command interface {
	Execute(s *Storage) (*Result, error)
}

// Result is the outcome of a Command.
type Result struct {
	// Key is the key the command acted on. Empty for ListCommand.
	Key string

	// Path is the stored file (save), the created link (link) or the removed
	// directory (delete).
	Path string

	// Keys lists the saved keys in ascending order (list only).
	Keys []string

	// Unchanged is set when save found the source already was the stored file.
	Unchanged bool
}

// SaveCommand copies Source into the vault under Key, overwriting any stored file.
type SaveCommand struct {
	Key    string
	Source string
}

func (c SaveCommand) Execute(s *Storage) (*Result, error) {
	if err := ValidateKey(c.Key); err != nil {
		return nil, err
	}

	source := c.Source
	if source == "" {
		source = EnvFileName
	}

	sourceInfo, err := os.Stat(source)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", kerrors.ErrSourceNotFound, source)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", source, err)
	}
	if sourceInfo.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", kerrors.ErrSourceNotFound, source)
	}

	keyDir := s.KeyDir(c.Key)
	if err := os.MkdirAll(keyDir, DirPerm); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", keyDir, err)
	}

	stored := s.KeyFile(c.Key)
	result := &Result{Key: c.Key, Path: stored}

	// A working .env linked from this key resolves to the stored file itself.
	if storedInfo, err := os.Stat(stored); err == nil && os.SameFile(sourceInfo, storedInfo) {
		result.Unchanged = true
		return result, nil
	}

	if err := utils.CopyFile(source, stored, FilePerm); err != nil {
		return nil, fmt.Errorf("failed to copy %s to %s: %w", source, stored, err)
	}

	return result, nil
}

// LinkCommand creates Dest as a symbolic link to the stored file for Key.
// An existing Dest is never replaced.
type LinkCommand struct {
	Key  string
	Dest string
}

func (c LinkCommand) Execute(s *Storage) (*Result, error) {
	if err := ValidateKey(c.Key); err != nil {
		return nil, err
	}

	dest := c.Dest
	if dest == "" {
		dest = EnvFileName
	}

	stored := s.KeyFile(c.Key)
	exists, err := utils.FileExists(stored)
	if err != nil {
		return nil, fmt.Errorf("failed to check %s: %w", stored, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w '%s'", kerrors.ErrStoredFileNotFound, c.Key)
	}

	exists, err = utils.PathExists(dest)
	if err != nil {
		return nil, fmt.Errorf("failed to check %s: %w", dest, err)
	}
	if exists {
		return nil, fmt.Errorf("%w: %s", kerrors.ErrDestinationExists, dest)
	}

	target, err := filepath.Abs(stored)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", stored, err)
	}

	if err := os.Symlink(target, dest); err != nil {
		return nil, fmt.Errorf("failed to link %s: %w", dest, err)
	}

	return &Result{Key: c.Key, Path: dest}, nil
}

// ListCommand enumerates saved keys. A non-empty Pattern keeps only keys
// matching the glob.
type ListCommand struct {
	Pattern string
}

func (c ListCommand) Execute(s *Storage) (*Result, error) {
	if c.Pattern != "" && !doublestar.ValidatePattern(c.Pattern) {
		return nil, fmt.Errorf("invalid pattern %q: %w", c.Pattern, doublestar.ErrBadPattern)
	}

	result := &Result{Keys: []string{}}

	entries, err := os.ReadDir(s.root)
	if err != nil {
		if os.IsNotExist(err) {
			return result, nil
		}
		return nil, fmt.Errorf("failed to read vault directory: %w", err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if !entry.IsDir() || !utf8.ValidString(name) {
			continue
		}
		if c.Pattern != "" {
			// Pattern was validated above.
			if matched, _ := doublestar.Match(c.Pattern, name); !matched {
				continue
			}
		}
		result.Keys = append(result.Keys, name)
	}

	sort.Strings(result.Keys)
	return result, nil
}

// DeleteCommand removes the entry for Key and everything inside it.
type DeleteCommand struct {
	Key string
}

func (c DeleteCommand) Execute(s *Storage) (*Result, error) {
	if err := ValidateKey(c.Key); err != nil {
		return nil, err
	}

	exists, err := s.Exists(c.Key)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: '%s'", kerrors.ErrKeyNotFound, c.Key)
	}

	keyDir := s.KeyDir(c.Key)
	if err := os.RemoveAll(keyDir); err != nil {
		return nil, fmt.Errorf("failed to remove %s: %w", keyDir, err)
	}

	return &Result{Key: c.Key, Path: keyDir}, nil
}
