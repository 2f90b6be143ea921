package providers

import "time"

const (
	// shutdownTimeout is the maximum time to wait for graceful shutdown of services.
	shutdownTimeout = 30 * time.Second

	// gcInterval is how often the session store reclaims value log space.
	gcInterval = 10 * time.Minute
)

// Version is reported by the API document and the startup log.
var Version = "dev"
