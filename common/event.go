package common

// EventEffectStarted is emitted by a Conductor when an effect has claimed
// its participants and its play loop has been launched
type EventEffectStarted struct {
	Name string
}

// EventEffectStopped is emitted by a Conductor when an effect loses its
// last participant
type EventEffectStopped struct {
	Name string
}

// EventDeviceClaimed is emitted by a Conductor when a device's state has
// been captured for later restoration
type EventDeviceClaimed struct {
	Device Device
}

// EventDeviceReleased is emitted by a Conductor when a device's captured
// state has been restored
type EventDeviceReleased struct {
	Device Device
}

// EventUpdatePower is emitted by a Device when it's power state is updated
type EventUpdatePower struct {
	Power bool
}

// EventUpdateColor is emitted by a Light when it's Color is updated
type EventUpdateColor struct {
	Color Color
}
