package config

import (
	"fmt"
	"time"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

var validSeedTypes = map[string]bool{
	"movie": true, "series": true, "anime": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if c.Server.Port != 0 && (c.Server.Port < 1 || c.Server.Port > 65535) {
		errs = append(errs, fmt.Sprintf("server.port: must be between 1 and 65535, got %d", c.Server.Port))
	}
	if !validLogLevels[c.Server.LogLevel] {
		errs = append(errs, fmt.Sprintf("server.log_level: must be one of debug, info, warn, error; got %q", c.Server.LogLevel))
	}

	if c.RateLimit.RPS < 0 {
		errs = append(errs, fmt.Sprintf("ratelimit.rps: must not be negative, got %g", c.RateLimit.RPS))
	}
	if c.RateLimit.RPS > 0 && c.RateLimit.Burst < 1 {
		errs = append(errs, fmt.Sprintf("ratelimit.burst: must be at least 1 when rps is set, got %d", c.RateLimit.Burst))
	}

	if c.Events.Retention != "" {
		if d, err := time.ParseDuration(c.Events.Retention); err != nil {
			errs = append(errs, fmt.Sprintf("events.retention: invalid duration %q", c.Events.Retention))
		} else if d < 0 {
			errs = append(errs, fmt.Sprintf("events.retention: must not be negative, got %s", c.Events.Retention))
		}
	}

	for i, s := range c.Catalog.Seed {
		prefix := fmt.Sprintf("catalog.seed[%d]", i)
		if s.Title == "" {
			errs = append(errs, prefix+".title: required")
		}
		if !validSeedTypes[s.Type] {
			errs = append(errs, fmt.Sprintf("%s.type: must be one of movie, series, anime; got %q", prefix, s.Type))
		}
		if s.EpisodeCount < 0 {
			errs = append(errs, fmt.Sprintf("%s.episodes: must not be negative, got %d", prefix, s.EpisodeCount))
		}
	}

	return errs
}
