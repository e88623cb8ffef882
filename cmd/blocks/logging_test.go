package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		in, expected string
	}{
		{"~/.blocks/blocks.log", filepath.Join(home, ".blocks", "blocks.log")},
		{"~", home},
		{"/var/log/blocks.log", "/var/log/blocks.log"},
		{"relative/blocks.log", "relative/blocks.log"},
		{"~other/blocks.log", "~other/blocks.log"},
	}

	for _, tc := range tests {
		got, err := expandHome(tc.in)
		if err != nil {
			t.Fatalf("expandHome(%q): %v", tc.in, err)
		}
		if got != tc.expected {
			t.Errorf("expandHome(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}

func TestOpenLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "blocks.log")

	logger, closer, err := openLogger(path, "debug")
	if err != nil {
		t.Fatalf("openLogger: %v", err)
	}
	logger.Info("session started", "seed", 7)
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "session started") || !strings.Contains(string(data), "blocks") {
		t.Errorf("log content = %q", string(data))
	}
}

func TestOpenLoggerDisabledAndInvalid(t *testing.T) {
	logger, closer, err := openLogger("", "warn")
	if err != nil || logger == nil || closer == nil {
		t.Fatalf("openLogger(\"\") = %v, %v, %v", logger, closer, err)
	}

	if _, _, err := openLogger("", "loud"); err == nil {
		t.Error("unknown level should fail")
	}
}
