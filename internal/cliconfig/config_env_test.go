package cliconfig

import (
	"testing"
	"time"
)

func TestApplyEnvConfig(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		changed  map[string]bool
		initial  Config
		expected Config
		wantErr  bool
	}{
		{
			name: "applies all valid env vars",
			envVars: map[string]string{
				"ADVENTCALC_INPUT":          "/env/input.txt",
				"ADVENTCALC_LOG_LEVEL":      "error",
				"ADVENTCALC_JSON":           "true",
				"ADVENTCALC_TIMINGS":        "false",
				"ADVENTCALC_WATCH":          "1",
				"ADVENTCALC_WATCH_DEBOUNCE": "2s",
			},
			changed: map[string]bool{},
			initial: DefaultConfig(),
			expected: Config{
				InputPath:     "/env/input.txt",
				LogLevel:      "error",
				JSON:          true,
				Timings:       false,
				Watch:         true,
				WatchDebounce: 2 * time.Second,
			},
		},
		{
			name: "respects changed flags",
			envVars: map[string]string{
				"ADVENTCALC_INPUT": "/env/input.txt",
				"ADVENTCALC_JSON":  "true",
			},
			changed: map[string]bool{"input": true},
			initial: Config{InputPath: "/flag/input.txt"},
			expected: Config{
				InputPath: "/flag/input.txt",
				JSON:      true,
			},
		},
		{
			name: "returns error for invalid duration",
			envVars: map[string]string{
				"ADVENTCALC_WATCH_DEBOUNCE": "not-a-duration",
			},
			changed: map[string]bool{},
			initial: Config{},
			wantErr: true,
		},
		{
			name: "handles bool 'false' as false",
			envVars: map[string]string{
				"ADVENTCALC_TIMINGS": "false",
			},
			changed:  map[string]bool{},
			initial:  Config{Timings: true},
			expected: Config{Timings: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg := tt.initial
			err := ApplyEnvConfig(&cfg, tt.changed)

			if tt.wantErr && err == nil {
				t.Error("ApplyEnvConfig() expected error but got nil")
				return
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ApplyEnvConfig() unexpected error: %v", err)
				return
			}

			if !tt.wantErr && cfg != tt.expected {
				t.Errorf("config = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}

// Integration test: precedence order (CLI > Env > File)
func TestConfigPrecedence(t *testing.T) {
	trueVal := true

	fileConf := FileConfig{
		Input:    "/file/input.txt",
		LogLevel: "debug",
		JSON:     &trueVal,
	}

	t.Setenv("ADVENTCALC_INPUT", "/env/input.txt")
	t.Setenv("ADVENTCALC_LOG_LEVEL", "warn")

	changed := map[string]bool{
		"input": true,
	}

	cfg := DefaultConfig()
	cfg.InputPath = "/cli/input.txt"

	if err := ApplyFileConfig(&cfg, fileConf, changed); err != nil {
		t.Fatalf("ApplyFileConfig failed: %v", err)
	}
	if err := ApplyEnvConfig(&cfg, changed); err != nil {
		t.Fatalf("ApplyEnvConfig failed: %v", err)
	}

	if cfg.InputPath != "/cli/input.txt" {
		t.Errorf("InputPath = %v, want /cli/input.txt (CLI should win)", cfg.InputPath)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %v, want warn (env should override file)", cfg.LogLevel)
	}
	if !cfg.JSON {
		t.Errorf("JSON = %v, want true (file should set)", cfg.JSON)
	}
}
