package common

// NeutralWhite is the color temperature applied when an effect has no
// particular white point preference.
const NeutralWhite uint16 = 3500

// ZoneBatchSize is the maximum number of zone colors a multizone light
// reports per query.
const ZoneBatchSize = 8

// Color is used to represent the color and color temperature of a light.
// The color is represented as an HSB (Hue, Saturation, Brightness) value.
// The color temperature is represented in K (Kelvin) and is used to adjust the warmness / coolness of a white light, which is most obvious when saturation is close zero.
type Color struct {
	Hue        uint16 // range 0 to 65535
	Saturation uint16 // range 0 to 65535
	Brightness uint16 // range 0 to 65535
	Kelvin     uint16 // range 2500° (warm) to 9000° (cool)
}

// WaveformType selects the oscillation shape used by Light.SetWaveform.
// The values match the LIFX wire protocol.
type WaveformType uint8

const (
	WaveformSaw WaveformType = iota
	WaveformSine
	WaveformHalfSine
	WaveformTriangle
	WaveformPulse
)

// Waveform describes a single waveform command.  A transient waveform
// returns the light to its original color once the cycles complete.
type Waveform struct {
	Transient bool
	Color     Color
	Period    uint32 // milliseconds
	Cycles    float32
	SkewRatio int16
	Type      WaveformType
}
