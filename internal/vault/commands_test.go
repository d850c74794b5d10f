package vault

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	kerrors "github.com/PolarWolf314/kpv/internal/errors"
)

// newTestVault returns a Storage under a fresh root and a separate working directory.
func newTestVault(t *testing.T) (*Storage, string) {
	t.Helper()
	base := t.TempDir()
	workDir := filepath.Join(base, "work")
	if err := os.MkdirAll(workDir, 0755); err != nil {
		t.Fatalf("Failed to create work dir: %v", err)
	}
	return NewStorage(filepath.Join(base, "home", ".config", "kpv")), workDir
}

func writeEnv(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(data)
}

func save(t *testing.T, s *Storage, key, source string) {
	t.Helper()
	if _, err := (SaveCommand{Key: key, Source: source}).Execute(s); err != nil {
		t.Fatalf("Save %s failed: %v", key, err)
	}
}

func TestSaveCommand(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		s, workDir := newTestVault(t)
		source := filepath.Join(workDir, ".env")
		writeEnv(t, source, "API_KEY=secret123\n")

		result, err := SaveCommand{Key: "test-project", Source: source}.Execute(s)
		if err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		if result.Key != "test-project" {
			t.Errorf("Result key = %q, expected %q", result.Key, "test-project")
		}
		if result.Path != s.KeyFile("test-project") {
			t.Errorf("Result path = %q, expected %q", result.Path, s.KeyFile("test-project"))
		}
		if got := readFile(t, s.KeyFile("test-project")); got != "API_KEY=secret123\n" {
			t.Errorf("stored content = %q", got)
		}
		if got := readFile(t, source); got != "API_KEY=secret123\n" {
			t.Errorf("source should be left intact, got %q", got)
		}
	})

	t.Run("OverwritesPreviousContent", func(t *testing.T) {
		s, workDir := newTestVault(t)
		source := filepath.Join(workDir, ".env")

		writeEnv(t, source, "FIRST=a much longer first value\n")
		save(t, s, "proj", source)
		writeEnv(t, source, "SECOND=b\n")
		save(t, s, "proj", source)

		if got := readFile(t, s.KeyFile("proj")); got != "SECOND=b\n" {
			t.Errorf("stored content = %q, expected only the second save", got)
		}
	})

	t.Run("MissingSource", func(t *testing.T) {
		s, workDir := newTestVault(t)

		_, err := SaveCommand{Key: "proj", Source: filepath.Join(workDir, ".env")}.Execute(s)
		if !errors.Is(err, kerrors.ErrSourceNotFound) {
			t.Fatalf("expected ErrSourceNotFound, got %v", err)
		}
		if _, err := os.Stat(s.Root()); !os.IsNotExist(err) {
			t.Error("vault root should not be created when the source is missing")
		}
	})

	t.Run("SourceIsDirectory", func(t *testing.T) {
		s, workDir := newTestVault(t)

		_, err := SaveCommand{Key: "proj", Source: workDir}.Execute(s)
		if !errors.Is(err, kerrors.ErrSourceNotFound) {
			t.Fatalf("expected ErrSourceNotFound, got %v", err)
		}
	})

	t.Run("InvalidKey", func(t *testing.T) {
		s, workDir := newTestVault(t)
		source := filepath.Join(workDir, ".env")
		writeEnv(t, source, "A=1\n")

		_, err := SaveCommand{Key: "../escape", Source: source}.Execute(s)
		if !errors.Is(err, kerrors.ErrInvalidKey) {
			t.Fatalf("expected ErrInvalidKey, got %v", err)
		}
	})

	t.Run("LinkedSourceSavedToSameKey", func(t *testing.T) {
		s, workDir := newTestVault(t)
		source := filepath.Join(workDir, "original.env")
		writeEnv(t, source, "KEEP=me\n")
		save(t, s, "proj", source)

		linked := filepath.Join(workDir, ".env")
		if _, err := (LinkCommand{Key: "proj", Dest: linked}).Execute(s); err != nil {
			t.Fatalf("Link failed: %v", err)
		}

		result, err := SaveCommand{Key: "proj", Source: linked}.Execute(s)
		if err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		if !result.Unchanged {
			t.Error("expected Unchanged when saving a link back to its own key")
		}
		if got := readFile(t, s.KeyFile("proj")); got != "KEEP=me\n" {
			t.Errorf("stored content = %q, expected it to survive", got)
		}
	})
}

func TestLinkCommand(t *testing.T) {
	t.Run("CreatesSymlink", func(t *testing.T) {
		s, workDir := newTestVault(t)
		source := filepath.Join(workDir, "saved.env")
		writeEnv(t, source, "DATABASE_URL=postgres://localhost\n")
		save(t, s, "db-project", source)

		dest := filepath.Join(workDir, ".env")
		result, err := LinkCommand{Key: "db-project", Dest: dest}.Execute(s)
		if err != nil {
			t.Fatalf("Link failed: %v", err)
		}
		if result.Path != dest {
			t.Errorf("Result path = %q, expected %q", result.Path, dest)
		}

		info, err := os.Lstat(dest)
		if err != nil {
			t.Fatalf("Failed to lstat link: %v", err)
		}
		if info.Mode()&os.ModeSymlink == 0 {
			t.Fatal("expected .env to be a symlink")
		}
		target, err := os.Readlink(dest)
		if err != nil {
			t.Fatalf("Readlink failed: %v", err)
		}
		if !filepath.IsAbs(target) {
			t.Errorf("expected an absolute link target, got %q", target)
		}
		if got := readFile(t, dest); got != readFile(t, s.KeyFile("db-project")) {
			t.Errorf("link content %q differs from stored file", got)
		}
	})

	t.Run("MissingKey", func(t *testing.T) {
		s, workDir := newTestVault(t)

		_, err := LinkCommand{Key: "nope", Dest: filepath.Join(workDir, ".env")}.Execute(s)
		if !errors.Is(err, kerrors.ErrStoredFileNotFound) {
			t.Fatalf("expected ErrStoredFileNotFound, got %v", err)
		}
	})

	t.Run("KeyDirectoryWithoutFile", func(t *testing.T) {
		s, workDir := newTestVault(t)
		if err := os.MkdirAll(s.KeyDir("half"), DirPerm); err != nil {
			t.Fatalf("Failed to create key dir: %v", err)
		}

		_, err := LinkCommand{Key: "half", Dest: filepath.Join(workDir, ".env")}.Execute(s)
		if !errors.Is(err, kerrors.ErrStoredFileNotFound) {
			t.Fatalf("expected ErrStoredFileNotFound, got %v", err)
		}
	})

	t.Run("DestinationExists", func(t *testing.T) {
		s, workDir := newTestVault(t)
		source := filepath.Join(workDir, "saved.env")
		writeEnv(t, source, "TEST=value\n")
		save(t, s, "existing-project", source)

		dest := filepath.Join(workDir, ".env")
		writeEnv(t, dest, "LOCAL=unsaved\n")

		_, err := LinkCommand{Key: "existing-project", Dest: dest}.Execute(s)
		if !errors.Is(err, kerrors.ErrDestinationExists) {
			t.Fatalf("expected ErrDestinationExists, got %v", err)
		}
		if got := readFile(t, dest); got != "LOCAL=unsaved\n" {
			t.Errorf("existing .env was modified: %q", got)
		}
	})

	t.Run("DanglingSymlinkCountsAsExisting", func(t *testing.T) {
		s, workDir := newTestVault(t)
		source := filepath.Join(workDir, "saved.env")
		writeEnv(t, source, "TEST=value\n")
		save(t, s, "proj", source)

		dest := filepath.Join(workDir, ".env")
		if err := os.Symlink(filepath.Join(workDir, "gone"), dest); err != nil {
			t.Skipf("symlinks not supported: %v", err)
		}

		_, err := LinkCommand{Key: "proj", Dest: dest}.Execute(s)
		if !errors.Is(err, kerrors.ErrDestinationExists) {
			t.Fatalf("expected ErrDestinationExists, got %v", err)
		}
	})
}

func TestListCommand(t *testing.T) {
	t.Run("MissingRootIsEmpty", func(t *testing.T) {
		s, _ := newTestVault(t)

		result, err := ListCommand{}.Execute(s)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(result.Keys) != 0 {
			t.Errorf("expected no keys, got %v", result.Keys)
		}
	})

	t.Run("SortedAndDirectoriesOnly", func(t *testing.T) {
		s, workDir := newTestVault(t)
		source := filepath.Join(workDir, ".env")
		writeEnv(t, source, "A=1\n")

		for _, key := range []string{"zeta", "alpha", "Mid", "beta"} {
			save(t, s, key, source)
		}
		writeEnv(t, filepath.Join(s.Root(), "stray-file"), "ignored")
		if err := os.MkdirAll(filepath.Join(s.KeyDir("alpha"), "nested"), DirPerm); err != nil {
			t.Fatalf("Failed to create nested dir: %v", err)
		}

		result, err := ListCommand{}.Execute(s)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		want := []string{"Mid", "alpha", "beta", "zeta"}
		if !reflect.DeepEqual(result.Keys, want) {
			t.Errorf("Keys = %v, expected %v", result.Keys, want)
		}
	})

	t.Run("Pattern", func(t *testing.T) {
		s, workDir := newTestVault(t)
		source := filepath.Join(workDir, ".env")
		writeEnv(t, source, "A=1\n")
		for _, key := range []string{"api-prod", "api-dev", "web"} {
			save(t, s, key, source)
		}

		result, err := ListCommand{Pattern: "api-*"}.Execute(s)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		want := []string{"api-dev", "api-prod"}
		if !reflect.DeepEqual(result.Keys, want) {
			t.Errorf("Keys = %v, expected %v", result.Keys, want)
		}
	})

	t.Run("NonUTF8Skipped", func(t *testing.T) {
		s, workDir := newTestVault(t)
		source := filepath.Join(workDir, ".env")
		writeEnv(t, source, "A=1\n")
		save(t, s, "good", source)

		if err := os.Mkdir(filepath.Join(s.Root(), "bad\xffname"), DirPerm); err != nil {
			t.Skipf("filesystem rejects non-UTF-8 names: %v", err)
		}

		result, err := ListCommand{}.Execute(s)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if !reflect.DeepEqual(result.Keys, []string{"good"}) {
			t.Errorf("Keys = %q, expected only \"good\"", result.Keys)
		}
	})

	t.Run("BadPattern", func(t *testing.T) {
		s, _ := newTestVault(t)

		if _, err := (ListCommand{Pattern: "api-["}).Execute(s); err == nil {
			t.Fatal("expected an error for a malformed pattern")
		}
	})
}

func TestDeleteCommand(t *testing.T) {
	t.Run("RemovesKey", func(t *testing.T) {
		s, workDir := newTestVault(t)
		source := filepath.Join(workDir, ".env")
		writeEnv(t, source, "A=1\n")
		save(t, s, "k1", source)
		save(t, s, "k2", source)

		result, err := DeleteCommand{Key: "k1"}.Execute(s)
		if err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if result.Path != s.KeyDir("k1") {
			t.Errorf("Result path = %q, expected %q", result.Path, s.KeyDir("k1"))
		}
		if _, err := os.Stat(s.KeyDir("k1")); !os.IsNotExist(err) {
			t.Error("key directory should be removed")
		}

		list, err := ListCommand{}.Execute(s)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if !reflect.DeepEqual(list.Keys, []string{"k2"}) {
			t.Errorf("Keys = %v, expected [k2]", list.Keys)
		}

		_, err = LinkCommand{Key: "k1", Dest: filepath.Join(workDir, "linked.env")}.Execute(s)
		if !errors.Is(err, kerrors.ErrStoredFileNotFound) {
			t.Errorf("expected ErrStoredFileNotFound after delete, got %v", err)
		}
	})

	t.Run("MissingKey", func(t *testing.T) {
		s, _ := newTestVault(t)

		_, err := DeleteCommand{Key: "ghost"}.Execute(s)
		if !errors.Is(err, kerrors.ErrKeyNotFound) {
			t.Fatalf("expected ErrKeyNotFound, got %v", err)
		}
	})

	t.Run("FileAtRootIsNotAKey", func(t *testing.T) {
		s, _ := newTestVault(t)
		if err := os.MkdirAll(s.Root(), DirPerm); err != nil {
			t.Fatalf("Failed to create root: %v", err)
		}
		writeEnv(t, filepath.Join(s.Root(), "notes"), "x")

		_, err := DeleteCommand{Key: "notes"}.Execute(s)
		if !errors.Is(err, kerrors.ErrKeyNotFound) {
			t.Fatalf("expected ErrKeyNotFound, got %v", err)
		}
	})

	t.Run("InvalidKey", func(t *testing.T) {
		s, _ := newTestVault(t)

		_, err := DeleteCommand{Key: ".."}.Execute(s)
		if !errors.Is(err, kerrors.ErrInvalidKey) {
			t.Fatalf("expected ErrInvalidKey, got %v", err)
		}
	})
}
