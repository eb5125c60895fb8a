package effects

import (
	"math"
	"math/rand"
	"time"

	"github.com/amelchio/golifx-effects/common"
)

// Colorloop is a potentially infinite effect that sweeps its participants
// through hues, spreading the participants across a slice of the color
// wheel.  It runs until its participant set is emptied by the conductor.
type Colorloop struct {
	baseEffect
	period     float64
	change     float64
	spread     float64
	brightness *uint16
	transition *time.Duration
}

// NewColorloop returns a colorloop effect.  The period is in seconds, the
// hue change per step and the hue spread across participants are in
// degrees; zero values select the defaults (60s, 20° and 30°).  The
// optional brightness overrides each light's pre-state brightness, and the
// optional transition replaces the randomized per-light transition
// durations.
func NewColorloop(powerOn bool, period, change, spread float64, brightness *uint16, transition *time.Duration) (*Colorloop, error) {
	if period == 0 {
		period = 60
	}
	if change == 0 {
		change = 20
	}
	if spread == 0 {
		spread = 30
	}
	if period < 0 {
		return nil, common.ErrInvalidPeriod
	}
	if change < 0 {
		return nil, common.ErrInvalidChange
	}
	if spread < 0 {
		return nil, common.ErrInvalidSpread
	}

	return &Colorloop{
		baseEffect: baseEffect{powerOn: powerOn},
		period:     period,
		change:     change,
		spread:     spread,
		brightness: brightness,
		transition: transition,
	}, nil
}

// Name identifies the effect variant
func (c *Colorloop) Name() string {
	return `colorloop`
}

// Period returns the loop period in seconds
func (c *Colorloop) Period() float64 {
	return c.period
}

// Perform does common setup and plays the effect
func (c *Colorloop) Perform(participants []common.Light) {
	c.begin(c, participants)
	c.Play()
}

// Play advances the base hue each iteration and walks the shuffled
// participants along the configured spread, de-synchronizing their
// transition durations so the sweep is non-uniform.  The loop only exits
// when the participant set becomes empty.
func (c *Colorloop) Play() {
	// Random start
	hue := rand.Float64() * 360
	direction := 1.0
	if rand.Intn(2) == 0 {
		direction = -1.0
	}

	for {
		members := c.participants()
		if len(members) == 0 {
			return
		}

		hue = wrapHue(hue + direction*c.change)
		lhue := hue

		rand.Shuffle(len(members), func(i, j int) {
			members[i], members[j] = members[j], members[i]
		})

		var transition time.Duration
		for i, light := range members {
			if c.transition != nil {
				transition = *c.transition
			} else if i == 0 || c.spread > 0 {
				transition = time.Duration(randBetween(c.period/2, c.period) * float64(time.Second))
			}

			brightness := uint16(0xffff)
			if c.brightness != nil {
				brightness = *c.brightness
			} else if pre := c.preState(light); pre != nil {
				brightness = pre.Color.Brightness
			}

			color := common.Color{
				Hue:        uint16(65535.0 / 360.0 * lhue),
				Saturation: uint16(randBetween(0.8, 1.0) * 65535),
				Brightness: brightness,
				Kelvin:     common.NeutralWhite,
			}
			if err := light.SetColor(color, transition); err != nil {
				common.Log.Warnf("failed setting color on %v: %v\n", light.ID(), err)
			}

			// Walk the next light along so the full spread is used
			if len(members) > 1 {
				lhue = wrapHue(lhue + c.spread/float64(len(members)-1))
			}
		}

		time.Sleep(time.Duration(c.period * float64(time.Second)))
	}
}

// CanInheritFrom allows a new colorloop to take over a running one without
// restoring and re-capturing light state, avoiding a visible flicker when
// the parameters are merely being updated.
func (c *Colorloop) CanInheritFrom(other Effect) bool {
	_, ok := other.(*Colorloop)
	return ok
}

// ColorForPoweredOffStart returns the color a powered-off light starts
// from: a random hue at zero brightness.
func (c *Colorloop) ColorForPoweredOffStart(light common.Light) common.Color {
	return randomHueDark()
}

func wrapHue(hue float64) float64 {
	hue = math.Mod(hue, 360)
	if hue < 0 {
		hue += 360
	}
	return hue
}

func randBetween(min, max float64) float64 {
	return min + rand.Float64()*(max-min)
}
