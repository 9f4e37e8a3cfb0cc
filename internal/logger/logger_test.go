package logger

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInit(t *testing.T) {
	// Create a temporary directory for logs
	tempDir := t.TempDir()
	configDir := filepath.Join(tempDir, "config")

	// Test normal mode (non-debug)
	err := Init(Config{
		Debug:     false,
		ConfigDir: configDir,
	})
	if err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	// Verify log directory was created
	logDir := filepath.Join(configDir, "logs")
	if _, err := os.Stat(logDir); os.IsNotExist(err) {
		t.Errorf("Log directory was not created: %s", logDir)
	}

	// Verify logger is not nil
	if Logger == nil {
		t.Error("Logger is nil after initialization")
	}

	// Test that we can log without errors
	Debug("Test debug message")
	Info("Test info message")
	Warn("Test warning message")
	Error("Test error message")
}

func TestInitDebugMode(t *testing.T) {
	tempDir := t.TempDir()
	configDir := filepath.Join(tempDir, "config")

	err := Init(Config{
		Debug:     true,
		ConfigDir: configDir,
	})
	if err != nil {
		t.Fatalf("Failed to initialize logger in debug mode: %v", err)
	}

	if Logger == nil {
		t.Fatal("Logger is nil after initialization")
	}

	Debug("Debug message should be visible in debug mode")
}

func TestLoggingBeforeInit(t *testing.T) {
	// Package-level helpers must be safe to call before Init
	saved := Logger
	Logger = nil
	defer func() { Logger = saved }()

	Debug("no-op")
	Info("no-op")
	Warn("no-op")
	Error("no-op")
}
