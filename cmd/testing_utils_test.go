package cmd

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
)

// setupTestEnvironment points HOME at a temporary directory and changes into
// a fresh working directory named workName. It returns both paths.
func setupTestEnvironment(t *testing.T, workName string) (string, string) {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	workDir := filepath.Join(base, workName)
	for _, dir := range []string{homeDir, workDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create %s: %v", dir, err)
		}
	}

	t.Setenv("HOME", homeDir)
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("NO_COLOR", "1")

	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	if err := os.Chdir(workDir); err != nil {
		t.Fatalf("Failed to change to work directory: %v", err)
	}

	t.Cleanup(func() {
		if err := os.Chdir(originalWd); err != nil {
			t.Fatalf("Failed to change to original directory: %v", err)
		}
		ResetGlobalState()
	})

	return homeDir, workDir
}

// captureOutput captures both stdout and stderr during function execution.
func captureOutput(fn func() error) (string, error) {
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	stdoutReader, stdoutWriter, _ := os.Pipe()
	stderrReader, stderrWriter, _ := os.Pipe()

	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	stdoutChan := make(chan string, 1)
	stderrChan := make(chan string, 1)

	go func() {
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, stdoutReader); err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		stdoutChan <- buf.String()
	}()

	go func() {
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, stderrReader); err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		stderrChan <- buf.String()
	}()

	err := fn()

	stdoutWriter.Close()
	stderrWriter.Close()

	os.Stdout = originalStdout
	os.Stderr = originalStderr

	return <-stdoutChan + <-stderrChan, err
}

// runCLI executes the real command tree with args and returns its output.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return captureOutput(func() error {
		ResetGlobalState()
		KpvCmd.SetArgs(args)
		return KpvCmd.Execute()
	})
}

// writeWorkingEnv writes ./.env in the current directory.
func writeWorkingEnv(t *testing.T, content string) {
	t.Helper()
	if err := os.WriteFile(".env", []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write .env: %v", err)
	}
}

// storedEnvPath returns where kpv keeps the .env for key under homeDir.
func storedEnvPath(homeDir, key string) string {
	return filepath.Join(homeDir, ".config", "kpv", key, ".env")
}
