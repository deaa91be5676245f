// Package lifecycle defines shared timeouts for application start and
// shutdown hooks.
package lifecycle

import "time"

const (
	// DefaultTimeout bounds individual fx OnStart/OnStop hooks.
	DefaultTimeout = 30 * time.Second

	// ShutdownTimeout bounds draining the HTTP servers on exit.
	ShutdownTimeout = 10 * time.Second
)
