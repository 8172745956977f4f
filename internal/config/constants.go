package config

import "time"

const (
	envPort             = "PORT"
	envLeaguePath       = "LEAGUE_CONFIG_PATH"
	envProjectionsDir   = "PROJECTIONS_DIR"
	envMetricsPort      = "METRICS_PORT"
	envMetricsOn        = "METRICS_ENABLED"
	envOtelEndpoint     = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService      = "OTEL_SERVICE_NAME"
	envOtelInsecure     = "OTEL_EXPORTER_OTLP_INSECURE"
	envSnapshotDir      = "SNAPSHOT_DIR"
	envSnapshotDays     = "SNAPSHOT_RETENTION_DAYS"
	envAutosaveOn       = "DRAFT_AUTOSAVE_ENABLED"
	envAutosaveInterval = "DRAFT_AUTOSAVE_INTERVAL"
	envNewsOn           = "MLB_NEWS_ENABLED"
	envNewsBaseURL      = "MLB_STATS_BASE_URL"
	envNewsCacheTTL     = "MLB_NEWS_CACHE_TTL"

	defaultPort           = "4000"
	defaultMetricsPort    = "9090"
	defaultServiceName    = "roto-auction-service"
	defaultSnapshotDir    = "data/snapshots"
	defaultProjectionsDir = "data/projections"
	defaultSnapshotDays   = 14
	// Autosave cadence for the draft ledger; a pick every ~30s means at most
	// one pick is at risk between saves.
	defaultAutosaveInterval = 30 * time.Second
	// IL moves land between draft-room refreshes, not within them.
	defaultNewsCacheTTL = 10 * time.Minute
)
