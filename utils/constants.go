// File: utils/constants.go
package utils

import "time"

// DeviceTokenCachePrefix is the prefix for FCM device token cache keys.
const DeviceTokenCachePrefix = "device-token:"

// AvailabilityCachePrefix is the prefix for cached availability results.
const AvailabilityCachePrefix = "availability:"

// AvailabilityCacheTTL bounds how stale a cached availability answer may be.
const AvailabilityCacheTTL = 30 * time.Second
