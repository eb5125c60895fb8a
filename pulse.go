package effects

import (
	"fmt"
	"math"
	"time"

	"github.com/amelchio/golifx-effects/common"
)

// PulseMode selects the flavor of the pulse effect.
type PulseMode string

const (
	PulseBlink   PulseMode = `blink`
	PulseStrobe  PulseMode = `strobe`
	PulseBreathe PulseMode = `breathe`
	PulsePing    PulseMode = `ping`
	PulseSolid   PulseMode = `solid`
)

// strobePreflash is how long a strobing light is held dark before the
// waveform starts.
const strobePreflash = 100 * time.Millisecond

// PartialColor overrides individual channels of the pulse color.  Nil
// channels fall back to the light's captured pre-state.
type PartialColor struct {
	Hue        *uint16
	Saturation *uint16
	Brightness *uint16
	Kelvin     *uint16
}

// Pulse is a finite effect that flashes each participant with a single
// waveform command, then restores the participants that are still claimed
// when the cycles have run out.
type Pulse struct {
	baseEffect
	mode      PulseMode
	period    float64
	cycles    int
	hsbk      *PartialColor
	waveform  common.WaveformType
	skewRatio int16
}

// NewPulse returns a pulse effect.  The period is in seconds; a zero
// period or cycle count selects the mode's default (0.1s and 10 cycles for
// strobe, 1s and 1 cycle otherwise).  The optional hsbk overrides channels
// of the computed effect color.
func NewPulse(powerOn bool, mode PulseMode, period float64, cycles int, hsbk *PartialColor) (*Pulse, error) {
	if mode == `` {
		mode = PulseBlink
	}
	switch mode {
	case PulseBlink, PulseStrobe, PulseBreathe, PulsePing, PulseSolid:
	default:
		return nil, fmt.Errorf(`unknown pulse mode %q`, mode)
	}

	if period == 0 {
		period = 1.0
		if mode == PulseStrobe {
			period = 0.1
		}
	}
	if cycles == 0 {
		cycles = 1
		if mode == PulseStrobe {
			cycles = 10
		}
	}
	if period < 0 {
		return nil, common.ErrInvalidPeriod
	}
	if cycles < 1 {
		return nil, common.ErrInvalidCycles
	}

	p := &Pulse{
		baseEffect: baseEffect{powerOn: powerOn},
		mode:       mode,
		period:     period,
		cycles:     cycles,
		hsbk:       hsbk,
	}

	// Breathe has a special waveform
	if mode == PulseBreathe {
		p.waveform = common.WaveformSine
	} else {
		p.waveform = common.WaveformPulse
	}

	// Ping and solid have special duty cycles
	switch mode {
	case PulsePing:
		pingDuration := int(5000 - math.Min(2500, 300*period))
		p.skewRatio = int16(1<<15 - pingDuration)
	case PulseSolid:
		p.skewRatio = math.MinInt16
	}

	return p, nil
}

// Name identifies the effect variant
func (p *Pulse) Name() string {
	return `pulse`
}

// Mode returns the pulse mode
func (p *Pulse) Mode() PulseMode {
	return p.mode
}

// Period returns the pulse period in seconds
func (p *Pulse) Period() float64 {
	return p.period
}

// Cycles returns the pulse cycle count
func (p *Pulse) Cycles() int {
	return p.cycles
}

// Waveform returns the waveform type the pulse will run
func (p *Pulse) Waveform() common.WaveformType {
	return p.waveform
}

// SkewRatio returns the duty-cycle bias of the waveform
func (p *Pulse) SkewRatio() int16 {
	return p.skewRatio
}

// Perform does common setup and plays the effect
func (p *Pulse) Perform(participants []common.Light) {
	p.begin(p, participants)
	p.Play()
}

// Play flashes every participant, waits out the effect duration and then
// restores whatever participants remain claimed.
func (p *Pulse) Play() {
	for _, light := range p.participants() {
		go p.lightPlay(light)
	}

	time.Sleep(time.Duration(p.period * float64(p.cycles) * float64(time.Second)))

	if remaining := p.participants(); len(remaining) > 0 {
		if err := p.conductor.Stop(remaining); err != nil {
			common.Log.Warnf("failed stopping pulse: %v\n", err)
		}
	}
}

// lightPlay runs the effect on a single light.
func (p *Pulse) lightPlay(light common.Light) {
	// Strobe must flash from a dark color
	if p.mode == PulseStrobe {
		dark := common.Color{Kelvin: common.NeutralWhite}
		if err := light.SetColor(dark, 0); err != nil {
			common.Log.Warnf("failed darkening %v: %v\n", light.ID(), err)
		}
		time.Sleep(strobePreflash)
	}

	waveform := common.Waveform{
		Transient: true,
		Color:     p.effectColor(light),
		Period:    uint32(p.period * 1000),
		Cycles:    float32(p.cycles),
		SkewRatio: p.skewRatio,
		Type:      p.waveform,
	}
	if err := light.SetWaveform(waveform); err != nil {
		common.Log.Warnf("failed setting waveform on %v: %v\n", light.ID(), err)
	}
}

// CanInheritFrom reports whether this effect can take over another
// effect's claimed lights; a pulse never inherits.
func (p *Pulse) CanInheritFrom(other Effect) bool {
	return false
}

// ColorForPoweredOffStart starts with the effect color at zero brightness,
// so the power-on ramp begins dark.
func (p *Pulse) ColorForPoweredOffStart(light common.Light) common.Color {
	color := p.effectColor(light)
	color.Brightness = 0
	return color
}

// effectColor computes the color the light will flash with, based on the
// light's captured pre-state.
func (p *Pulse) effectColor(light common.Light) common.Color {
	pre := p.preState(light)
	if pre == nil {
		// Released while the effect was starting up
		return light.CachedColor()
	}
	base := pre.Color

	if p.hsbk != nil {
		// Use the values provided in hsbk, fall back to the pre-state
		// for the rest
		if p.hsbk.Hue != nil {
			base.Hue = *p.hsbk.Hue
		}
		if p.hsbk.Saturation != nil {
			base.Saturation = *p.hsbk.Saturation
		}
		if p.hsbk.Brightness != nil {
			base.Brightness = *p.hsbk.Brightness
		}
		if p.hsbk.Kelvin != nil {
			base.Kelvin = *p.hsbk.Kelvin
		}
		return base
	}

	switch {
	case p.mode == PulseStrobe:
		// Strobe: cold white
		return common.Color{Hue: base.Hue, Saturation: 0, Brightness: 0xffff, Kelvin: 5600}
	case lifxWhite(light) || base.Saturation < 0x8000:
		// White: toggle brightness
		if base.Brightness > 0x8000 && pre.Power {
			base.Brightness = 0
		} else {
			base.Brightness = 0xffff
		}
		return base
	default:
		// Color: fully desaturate with full brightness
		return common.Color{Hue: base.Hue, Saturation: 0, Brightness: 0xffff, Kelvin: 4000}
	}
}
