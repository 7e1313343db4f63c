package config

import "time"

const (
	envPort           = "PORT"
	envLiveInterval   = "LIVE_POLL_INTERVAL"
	envIdleInterval   = "IDLE_POLL_INTERVAL"
	envProvider       = "PROVIDER"
	envMetricsPort    = "METRICS_PORT"
	envMetricsOn      = "METRICS_ENABLED"
	envOtelEndpoint   = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService    = "OTEL_SERVICE_NAME"
	envOtelInsecure   = "OTEL_EXPORTER_OTLP_INSECURE"
	envSnapshotOn     = "SNAPSHOTS_ENABLED"
	envSnapshotFolder = "SNAPSHOT_FOLDER"
	envSnapshotDays   = "SNAPSHOT_RETENTION_DAYS"

	defaultPort     = "4000"
	defaultProvider = "espn"
	// Cadence mirrors the original scoreboard: near-real-time while any
	// game is live, throttled hard when nothing is.
	defaultLiveInterval = 5 * Duration(time.Second)
	defaultIdleInterval = 60 * Duration(time.Second)

	defaultMetricsPort           = "9090"
	defaultSnapshotsOn           = true
	defaultSnapshotFolder        = "data/snapshots"
	defaultSnapshotRetentionDays = 14
)
