package server

import "time"

const (
	readTimeout = 10 * time.Second
	// WebSocket upgrades hijack the connection before the write
	// timeout applies, so a short value is safe for the REST routes.
	writeTimeout = 15 * time.Second
	idleTimeout  = 60 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second
