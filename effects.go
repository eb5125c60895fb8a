// Package effects orchestrates temporary visual effects across a set of
// independently addressable lighting devices, guaranteeing that each
// device's prior state is restored exactly once the effect ends.
//
// Effects are started and stopped through a Conductor, which enforces
// at-most-one-active-effect-per-device and drives the per-device state
// capture and restore.  Devices are reached through the interfaces in the
// common package; the sim package provides in-memory implementations for
// use without hardware.
//
// Also included in cmd/lifx-effects is a small CLI utility that runs the
// bundled effects against simulated lights.
package effects

import (
	"github.com/amelchio/golifx-effects/common"
)

const (
	// VERSION of this library
	VERSION = `0.1.0`
)

// NewConductor returns a pointer to a new Conductor with no running
// effects.  Conductors are independent of each other, any number may
// coexist in a process.
func NewConductor() *Conductor {
	return &Conductor{
		running:       make(map[uint64]*RunningEffect),
		subscriptions: make(map[string]*common.Subscription),
		settle:        common.DefaultSettleDuration,
	}
}

// SetLogger allows assigning a custom levelled logger that conforms to the
// common.Logger interface.  Defaults to common.StubLogger, which does no
// logging at all.
func SetLogger(logger common.Logger) {
	common.SetLogger(logger)
}
