package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (ADVENTCALC_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("input", os.Getenv(EnvPrefix+"INPUT"), &cfg.InputPath)
	s.setString("log-level", os.Getenv(EnvPrefix+"LOG_LEVEL"), &cfg.LogLevel)

	if err := s.setDuration("watch-debounce", os.Getenv(EnvPrefix+"WATCH_DEBOUNCE"), &cfg.WatchDebounce); err != nil {
		return err
	}

	s.setBoolFromString("json", os.Getenv(EnvPrefix+"JSON"), &cfg.JSON)
	s.setBoolFromString("timings", os.Getenv(EnvPrefix+"TIMINGS"), &cfg.Timings)
	s.setBoolFromString("watch", os.Getenv(EnvPrefix+"WATCH"), &cfg.Watch)

	return nil
}
