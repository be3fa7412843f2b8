package logging

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestLogFilePath(t *testing.T) {
	path, err := logFilePath("collapsible-demo")
	if err != nil {
		t.Fatalf("logFilePath failed: %v", err)
	}
	if !filepath.IsAbs(path) {
		t.Errorf("logFilePath returned relative path: %s", path)
	}

	home, _ := os.UserHomeDir()
	switch runtime.GOOS {
	case "darwin":
		expected := filepath.Join(home, "Library", "Logs", "collapsible-demo", "collapsible-demo.log")
		if path != expected {
			t.Errorf("macOS path mismatch: got %s, want %s", path, expected)
		}
	case "linux":
		expected := filepath.Join(home, ".local", "state", "collapsible-demo", "collapsible-demo.log")
		if path != expected {
			t.Errorf("Linux path mismatch: got %s, want %s", path, expected)
		}
	}
}

func TestNew(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	if runtime.GOOS == "windows" {
		t.Setenv("USERPROFILE", tmpDir)
		t.Setenv("LOCALAPPDATA", filepath.Join(tmpDir, "AppData", "Local"))
	}

	tests := []struct {
		name  string
		debug bool
	}{
		{"info level", false},
		{"debug level", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New("collapsible-demo-test", tt.debug)
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}

			logger.Info("expansion changed", "title", "Settings", "expanded", true)

			path, _ := logFilePath("collapsible-demo-test")
			info, err := os.Stat(path)
			if err != nil {
				t.Fatalf("log file was not created: %v", err)
			}
			if info.Size() == 0 {
				t.Error("log file is empty after writing a record")
			}
		})
	}
}

func TestRotate(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "demo.log")

	if err := os.WriteFile(path, []byte("0123456789"), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	// Below the limit: nothing happens.
	if err := rotate(path, 100); err != nil {
		t.Fatalf("rotate below limit failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("file should be untouched below the limit: %v", err)
	}

	// At the limit: current file becomes .1.
	if err := rotate(path, 10); err != nil {
		t.Fatalf("rotate at limit failed: %v", err)
	}
	if _, err := os.Stat(path + ".1"); err != nil {
		t.Errorf("rotated backup missing: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("current file should have been renamed away")
	}
}

func TestRotate_MissingFile(t *testing.T) {
	if err := rotate(filepath.Join(t.TempDir(), "absent.log"), 10); err != nil {
		t.Errorf("rotate on missing file should be a no-op, got: %v", err)
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	if logger == nil {
		t.Fatal("Discard returned nil")
	}
	logger.Info("dropped")
	logger.Debug("dropped")
	logger.Error("dropped")
}
