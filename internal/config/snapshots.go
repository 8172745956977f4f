package config

import "time"

// SnapshotConfig controls draft-ledger persistence and autosave.
type SnapshotConfig struct {
	Dir              string
	RetentionDays    int
	AutosaveEnabled  bool
	AutosaveInterval time.Duration
}

func loadSnapshots() SnapshotConfig {
	return SnapshotConfig{
		Dir:              envOrDefault(envSnapshotDir, defaultSnapshotDir),
		RetentionDays:    intEnvOrDefault(envSnapshotDays, defaultSnapshotDays),
		AutosaveEnabled:  boolEnvOrDefault(envAutosaveOn, true),
		AutosaveInterval: durationEnvOrDefault(envAutosaveInterval, defaultAutosaveInterval),
	}
}
