package common

import (
	"errors"
	"time"
)

const (
	// DefaultTimeout is the default duration to wait for a subscription
	// event write before giving up
	DefaultTimeout = 2 * time.Second
	// DefaultSettleDuration is how long a light is given to settle after a
	// power transition before further commands are sent to it
	DefaultSettleDuration = 300 * time.Millisecond
)

var (
	// ErrNotFound not found
	ErrNotFound = errors.New(`not found`)
	// ErrClosed connection closed
	ErrClosed = errors.New(`closed`)
	// ErrTimeout timed out
	ErrTimeout = errors.New(`timed out`)
	// ErrInvalidPeriod effect period is not greater than zero
	ErrInvalidPeriod = errors.New(`period must be greater than zero`)
	// ErrInvalidCycles effect cycle count is less than one
	ErrInvalidCycles = errors.New(`cycles must be at least one`)
	// ErrInvalidChange colorloop hue change is negative
	ErrInvalidChange = errors.New(`change must not be negative`)
	// ErrInvalidSpread colorloop hue spread is negative
	ErrInvalidSpread = errors.New(`spread must not be negative`)
)
