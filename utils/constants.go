// File: utils/constants.go
package utils

import "time"

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// MonthCachePrefix is the prefix used for Redis month-projection cache keys.
const MonthCachePrefix = "monthProjection:"

// MonthCacheTTL is the time-to-live for month-projection cache entries.
const MonthCacheTTL = 10 * time.Minute
