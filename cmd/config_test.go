package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	kerrors "github.com/PolarWolf314/kpv/internal/errors"
)

func TestConfigCommand_ShowsPaths(t *testing.T) {
	homeDir, _ := setupTestEnvironment(t, "work")

	output, err := runCLI(t, "config")
	if err != nil {
		t.Fatalf("config failed: %v", err)
	}
	for _, want := range []string{
		filepath.Join(homeDir, ".config", "kpv"),
		filepath.Join(homeDir, ".config", "kpv.toml"),
		"not created",
		"delete.confirm = false",
		"audit.disabled = false",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("config output missing %q:\n%s", want, output)
		}
	}
}

func TestConfigInitCommand(t *testing.T) {
	homeDir, _ := setupTestEnvironment(t, "work")
	prefs := filepath.Join(homeDir, ".config", "kpv.toml")

	if _, err := runCLI(t, "config", "init"); err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	if _, err := os.Stat(prefs); err != nil {
		t.Fatalf("preferences file not written: %v", err)
	}

	_, err := runCLI(t, "config", "init")
	if !errors.Is(err, kerrors.ErrConfigExists) {
		t.Fatalf("expected ErrConfigExists, got %v", err)
	}

	if _, err := runCLI(t, "config", "init", "--force"); err != nil {
		t.Fatalf("config init --force failed: %v", err)
	}
}

func TestConfigInitDoesNotCreateKey(t *testing.T) {
	setupTestEnvironment(t, "work")

	if _, err := runCLI(t, "config", "init"); err != nil {
		t.Fatalf("config init failed: %v", err)
	}

	output, err := runCLI(t, "list")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(output, "(none)") {
		t.Errorf("preferences should not show up as a key: %s", output)
	}
}
