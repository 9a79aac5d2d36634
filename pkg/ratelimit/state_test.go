package ratelimit

import (
	"testing"
	"time"
)

func TestState_Exceeded(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		limit    int
		expected bool
	}{
		{name: "first request", count: 1, limit: 10, expected: false},
		{name: "at limit", count: 10, limit: 10, expected: false},
		{name: "one over limit", count: 11, limit: 10, expected: true},
		{name: "far over limit", count: 100, limit: 10, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := State{Count: tt.count, Limit: tt.limit}
			if result := state.Exceeded(); result != tt.expected {
				t.Errorf("Exceeded() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestState_Remaining(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		limit    int
		expected int
	}{
		{name: "fresh window", count: 0, limit: 10, expected: 10},
		{name: "partially used", count: 4, limit: 10, expected: 6},
		{name: "exhausted", count: 10, limit: 10, expected: 0},
		{name: "over limit clamps to zero", count: 15, limit: 10, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := State{Count: tt.count, Limit: tt.limit}
			if result := state.Remaining(); result != tt.expected {
				t.Errorf("Remaining() = %d, want %d", result, tt.expected)
			}
		})
	}
}

func TestState_NearLimit(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		limit    int
		expected bool
	}{
		{name: "plenty left", count: 50, limit: 100, expected: false},
		{name: "exactly ten percent left", count: 90, limit: 100, expected: false},
		{name: "under ten percent left", count: 95, limit: 100, expected: true},
		{name: "last request", count: 100, limit: 100, expected: true},
		{name: "exceeded is not near", count: 101, limit: 100, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := State{Count: tt.count, Limit: tt.limit}
			if result := state.NearLimit(); result != tt.expected {
				t.Errorf("NearLimit() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestState_TimeUntilReset(t *testing.T) {
	tests := []struct {
		name     string
		resetAt  time.Time
		minWant  time.Duration
		maxWant  time.Duration
	}{
		{
			name:    "reset in future",
			resetAt: time.Now().Add(30 * time.Second),
			minWant: 29 * time.Second,
			maxWant: 30 * time.Second,
		},
		{
			name:    "reset in past",
			resetAt: time.Now().Add(-10 * time.Second),
			minWant: 0,
			maxWant: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := State{ResetAt: tt.resetAt}
			result := state.TimeUntilReset()
			if result < tt.minWant || result > tt.maxWant {
				t.Errorf("TimeUntilReset() = %v, want between %v and %v", result, tt.minWant, tt.maxWant)
			}
		})
	}
}

func TestWindowStart(t *testing.T) {
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		now      time.Time
		window   time.Duration
		expected time.Time
	}{
		{name: "window boundary", now: base, window: time.Minute, expected: base},
		{name: "inside window", now: base.Add(45 * time.Second), window: time.Minute, expected: base},
		{name: "next window", now: base.Add(61 * time.Second), window: time.Minute, expected: base.Add(time.Minute)},
		{name: "ten second windows", now: base.Add(25 * time.Second), window: 10 * time.Second, expected: base.Add(20 * time.Second)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := windowStart(tt.now, tt.window); !result.Equal(tt.expected) {
				t.Errorf("windowStart() = %v, want %v", result, tt.expected)
			}
		})
	}
}
