package handlers

import (
	"testing"
	"time"
)

func TestLoadConfig_DefaultsToCurrentYear(t *testing.T) {
	t.Setenv("WBSO_PROGRAM_YEAR", "")

	cfg := LoadConfig()
	if cfg.ProgramYear != time.Now().Year() {
		t.Errorf("expected current year, got %d", cfg.ProgramYear)
	}
}

func TestLoadConfig_ReadsEnvironment(t *testing.T) {
	t.Setenv("WBSO_PROGRAM_YEAR", "2027")

	cfg := LoadConfig()
	if cfg.ProgramYear != 2027 {
		t.Errorf("expected year 2027, got %d", cfg.ProgramYear)
	}
}

func TestLoadConfig_IgnoresInvalidYear(t *testing.T) {
	t.Setenv("WBSO_PROGRAM_YEAR", "volgend jaar")

	cfg := LoadConfig()
	if cfg.ProgramYear != time.Now().Year() {
		t.Errorf("expected fallback to current year, got %d", cfg.ProgramYear)
	}
}

func TestConfigNow_DefaultsToWallClock(t *testing.T) {
	before := time.Now()
	got := Config{}.now()
	after := time.Now()

	if got.Before(before) || got.After(after) {
		t.Errorf("expected wall clock time, got %v", got)
	}
}
