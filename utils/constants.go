// File: utils/constants.go
package utils

// CapacityCachePrefix is the prefix of the Redis hash holding a user's
// per-weekday study capacity.
const CapacityCachePrefix = "capacity:"

// MaxDailyCapacity is the largest capacity, in minutes, a single day accepts.
const MaxDailyCapacity = 480
