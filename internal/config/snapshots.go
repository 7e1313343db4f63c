package config

// SnapshotConfig controls per-date snapshot persistence.
type SnapshotConfig struct {
	Enabled       bool
	Folder        string
	RetentionDays int
}

func loadSnapshots() SnapshotConfig {
	return SnapshotConfig{
		Enabled:       boolEnvOrDefault(envSnapshotOn, defaultSnapshotsOn),
		Folder:        envOrDefault(envSnapshotFolder, defaultSnapshotFolder),
		RetentionDays: intEnvOrDefault(envSnapshotDays, defaultSnapshotRetentionDays),
	}
}
