// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthSessionTTL is the time-to-live for staff authorization sessions.
const AuthSessionTTL = 12 * time.Hour
