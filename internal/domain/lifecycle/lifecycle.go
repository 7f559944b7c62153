// Package lifecycle holds shared constants for application start/stop
// handling.
package lifecycle

import "time"

// DefaultTimeout bounds startup and shutdown steps such as the initial
// database ping and graceful HTTP server shutdown.
const DefaultTimeout = 10 * time.Second
