// Package lifecycle holds process-wide lifecycle constants shared by infra and delivery.
package lifecycle

import "time"

// DefaultTimeout bounds OnStart/OnStop hooks such as DB pings and HTTP shutdown.
const DefaultTimeout = 15 * time.Second
