package config

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func missingEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "absent.env")
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(EnvWorkers, "")
	t.Setenv(EnvMaxExpansions, "")
	t.Setenv(EnvLogLevel, "")

	cfg, err := LoadFrom(missingEnvFile(t), nil, io.Discard)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.InputPath != "-" || cfg.Workers != 1 || cfg.MaxExpansions != 0 || cfg.LogLevel != zerolog.InfoLevel {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.Unfold || cfg.Trace || cfg.JSON || cfg.CheckInvariants {
		t.Errorf("expected switches off by default: %+v", cfg)
	}
}

func TestLoad_FlagsOverrideEnvironment(t *testing.T) {
	t.Setenv(EnvWorkers, "3")
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvMaxExpansions, "")

	cfg, err := LoadFrom(missingEnvFile(t), []string{"-workers", "2", "-f", "input.txt", "-unfold", "-json"}, io.Discard)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.Workers != 2 {
		t.Errorf("expected -workers to win, got %d", cfg.Workers)
	}
	if cfg.LogLevel != zerolog.WarnLevel {
		t.Errorf("expected warn level from the environment, got %v", cfg.LogLevel)
	}
	if cfg.InputPath != "input.txt" || !cfg.Unfold || !cfg.JSON {
		t.Errorf("flags not applied: %+v", cfg)
	}
}

func TestLoad_EnvFile(t *testing.T) {
	// godotenv never overrides variables that are already set.
	os.Unsetenv(EnvMaxExpansions)
	t.Cleanup(func() { os.Unsetenv(EnvMaxExpansions) })
	t.Setenv(EnvWorkers, "")
	t.Setenv(EnvLogLevel, "")

	envFile := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(envFile, []byte(EnvMaxExpansions+"=500\n"), 0o600); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}

	cfg, err := LoadFrom(envFile, nil, io.Discard)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.MaxExpansions != 500 {
		t.Errorf("expected 500 from the env file, got %d", cfg.MaxExpansions)
	}
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv(EnvMaxExpansions, "")
	t.Setenv(EnvLogLevel, "")

	t.Setenv(EnvWorkers, "many")
	if _, err := LoadFrom(missingEnvFile(t), nil, io.Discard); err == nil {
		t.Errorf("expected an error for a non-integer %s", EnvWorkers)
	}

	t.Setenv(EnvWorkers, "")
	cases := [][]string{
		{"-workers", "0"},
		{"-max-expansions", "-1"},
		{"-log-level", "loud"},
		{"-no-such-flag"},
	}
	for _, args := range cases {
		if _, err := LoadFrom(missingEnvFile(t), args, io.Discard); err == nil {
			t.Errorf("expected an error for %v", args)
		}
	}
}
