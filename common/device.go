package common

import "time"

// Device represents a generic addressable lighting endpoint
type Device interface {
	// ID returns the stable identifier for the device
	ID() uint64

	// GetLabel gets the label for the device
	GetLabel() (string, error)
	// GetPower requests the current power state of the device, true for on,
	// false for off
	GetPower() (bool, error)
	// CachedPower returns the last known power state of the device, true for
	// on, false for off
	CachedPower() bool
	// SetPower sets the power state of the device, true for on, false for off
	SetPower(state bool) error

	// Device is a SubscriptionTarget
	SubscriptionTarget
}

// Light represents a color-capable lighting device
type Light interface {
	// SetColor changes the color of the light, transitioning over the specified
	// duration
	SetColor(color Color, duration time.Duration) error
	// GetColor requests the current color of the light
	GetColor() (Color, error)
	// CachedColor returns the last known color of the light
	CachedColor() Color
	// SetWaveform runs a waveform on the light
	SetWaveform(waveform Waveform) error
	// ProductID returns the hardware product identifier, used to recognize
	// white-only fixtures
	ProductID() uint32

	// Light is a superset of the Device interface
	Device
}

// MultiZoneLight represents a light with independently addressable color
// zones, such as a strip or a beam
type MultiZoneLight interface {
	// GetColorZones requests the zone colors starting at the given zone
	// index.  At most ZoneBatchSize zones are returned per call.
	GetColorZones(start uint8) ([]Color, error)
	// CachedColorZones returns the last known zone colors.  The length of
	// the result is the zone count of the light.
	CachedColorZones() []Color
	// SetColorZones changes the color of the zones from start through end
	// inclusive.  The change only becomes visible once a call with apply
	// set to true is made.
	SetColorZones(start, end uint8, color Color, apply bool) error

	// MultiZoneLight is a superset of the Light interface
	Light
}
