package redis

import "time"

// DefaultConnectTimeout bounds the initial connectivity check.
const DefaultConnectTimeout = 5 * time.Second
