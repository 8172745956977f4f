package config

import "log/slog"

// Config holds runtime configuration for the server.
type Config struct {
	Port           string
	ProjectionsDir string
	League         League
	Metrics        MetricsConfig
	Snapshots      SnapshotConfig
	News           NewsConfig
}

// Load reads configuration from environment variables with sensible defaults.
// The league section may be overridden by a YAML file named in
// LEAGUE_CONFIG_PATH; a broken file falls back to defaults with a warning.
func Load(logger *slog.Logger) Config {
	league, err := LoadLeague(envOrDefault(envLeaguePath, ""))
	if err != nil && logger != nil {
		logger.Warn("league config file ignored", "error", err)
	}

	return Config{
		Port:           envOrDefault(envPort, defaultPort),
		ProjectionsDir: envOrDefault(envProjectionsDir, defaultProjectionsDir),
		League:         league,
		Metrics:        loadMetrics(),
		Snapshots:      loadSnapshots(),
		News:           loadNews(),
	}
}
