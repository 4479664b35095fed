// Package lifecycle holds shared values for application start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds a single start or stop hook (database ping, server shutdown, publisher flush).
const DefaultTimeout = 10 * time.Second
