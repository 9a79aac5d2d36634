// Package ratelimit implements a fixed-window request limiter backed by Redis.
// Counters are shared across all processes using the same Redis instance.
package ratelimit

import (
	"time"
)

// RedisKeyPrefix is prepended to every counter key.
// Format: webkit:ratelimit:<client key>:<window start unix>
const RedisKeyPrefix = "webkit:ratelimit"

// Defaults for a Limiter created with DefaultConfig.
const (
	// DefaultLimit is the number of requests allowed per window.
	DefaultLimit = 60

	// DefaultWindow is the length of one counting window.
	DefaultWindow = time.Minute

	// NearLimitRatio marks a window as nearly exhausted once fewer than this
	// share of the limit remains.
	NearLimitRatio = 0.1
)

// State is the counter of one client in the current window.
type State struct {
	// Count is the number of requests seen in the window, including the
	// current one.
	Count int `json:"count"`

	// Limit is the number of requests allowed per window.
	Limit int `json:"limit"`

	// ResetAt is when the window ends and the counter starts over.
	ResetAt time.Time `json:"reset_at"`
}

// Exceeded returns true if the request that produced this state must be
// rejected.
func (s State) Exceeded() bool {
	return s.Count > s.Limit
}

// Remaining returns the number of requests still allowed in the window.
func (s State) Remaining() int {
	if s.Count >= s.Limit {
		return 0
	}
	return s.Limit - s.Count
}

// NearLimit returns true if the window is not exceeded but fewer than
// NearLimitRatio of the requests remain.
func (s State) NearLimit() bool {
	return !s.Exceeded() && float64(s.Remaining()) < float64(s.Limit)*NearLimitRatio
}

// TimeUntilReset returns the duration until the window resets.
// Returns 0 if the reset time has already passed.
func (s State) TimeUntilReset() time.Duration {
	duration := time.Until(s.ResetAt)
	if duration < 0 {
		return 0
	}
	return duration
}

// windowStart returns the start of the fixed window containing now.
func windowStart(now time.Time, window time.Duration) time.Time {
	return now.Truncate(window)
}
