package domain

import "time"

// BreakerState is the state of one circuit.
type BreakerState string

const (
	BreakerClosed   BreakerState = "closed"
	BreakerOpen     BreakerState = "open"
	BreakerHalfOpen BreakerState = "half_open"
)

// BreakerSnapshot is a point-in-time view of a circuit.
type BreakerSnapshot struct {
	Key           string        `json:"key"`
	State         BreakerState  `json:"state"`
	Failures      int           `json:"failures"`
	LastFailureAt *time.Time    `json:"last_failure_at,omitempty"`
	Threshold     int           `json:"threshold"`
	ResetAfter    time.Duration `json:"reset_after"`
}
