package effects

import (
	"math/rand"
	"sync"
	"time"

	"github.com/amelchio/golifx-effects/common"
)

// powerOnSettle is how long a light is given to ramp up after being
// powered on for an effect.
const powerOnSettle = 100 * time.Millisecond

// Effect drives time-varying color and power changes across a set of
// participant lights.  Concrete variants are started and stopped through a
// Conductor, which owns the participant membership; an effect's play loop
// observes membership shrinking cooperatively and stops acting on released
// lights.
type Effect interface {
	// Name identifies the effect variant
	Name() string
	// Perform powers on any powered-off participants in the effect's
	// starting color, then plays the effect.  It is launched by the
	// conductor as a background task.
	Perform(participants []common.Light)
	// Play runs the variant's algorithm.  Finite effects terminate
	// naturally; potentially infinite effects run until their participant
	// set is empty.
	Play()
	// CanInheritFrom reports whether this effect can take over another
	// effect's claimed lights without restoring and re-capturing their
	// state.  It must be free of side effects; it is evaluated under the
	// conductor lock.
	CanInheritFrom(other Effect) bool
	// ColorForPoweredOffStart returns the color a powered-off light is set
	// to before power-on, so the light's true pre-state color never
	// flashes.
	ColorForPoweredOffStart(light common.Light) common.Color

	setConductor(c *Conductor)
	setParticipants(lights []common.Light)
	removeParticipant(id uint64) int
	participants() []common.Light
}

// baseEffect carries the state shared by all effect variants.  The member
// slice is guarded by the owning conductor's lock.
type baseEffect struct {
	powerOn   bool
	conductor *Conductor
	members   []common.Light
}

func (b *baseEffect) setConductor(c *Conductor) {
	b.conductor = c
}

// setParticipants installs the membership.  Called with the conductor lock
// held.
func (b *baseEffect) setParticipants(lights []common.Light) {
	b.members = append([]common.Light(nil), lights...)
}

// removeParticipant drops a light from the membership and returns the
// number of participants left.  Called with the conductor lock held.
func (b *baseEffect) removeParticipant(id uint64) int {
	for i, light := range b.members {
		if light.ID() == id {
			b.members = append(b.members[:i], b.members[i+1:]...)
			break
		}
	}
	return len(b.members)
}

// participants returns a point-in-time copy of the membership.
func (b *baseEffect) participants() []common.Light {
	b.conductor.RLock()
	defer b.conductor.RUnlock()
	return append([]common.Light(nil), b.members...)
}

// preState returns the snapshot captured when the light was claimed, or
// nil when the light has since been released.
func (b *baseEffect) preState(light common.Light) *PreState {
	return b.conductor.preStateOf(light.ID())
}

// begin temporarily powers on any dark participants so the effect is
// visible, waiting until all of them have settled.
func (b *baseEffect) begin(self Effect, lights []common.Light) {
	var wg sync.WaitGroup
	for _, light := range lights {
		if !b.powerOn || light.CachedPower() {
			continue
		}
		wg.Add(1)
		go func(light common.Light) {
			defer wg.Done()
			b.powerUp(self, light)
		}(light)
	}
	wg.Wait()
}

// powerUp brings a powered-off light up in the effect's starting color.
func (b *baseEffect) powerUp(self Effect, light common.Light) {
	if err := light.SetColor(self.ColorForPoweredOffStart(light), 0); err != nil {
		common.Log.Warnf("failed setting start color on %v: %v\n", light.ID(), err)
	}
	if err := light.SetPower(true); err != nil {
		common.Log.Warnf("failed powering on %v: %v\n", light.ID(), err)
	}
	time.Sleep(powerOnSettle)
}

// randomHueDark is the default color for lights powering on into an
// effect: a random hue at full saturation with no brightness.
func randomHueDark() common.Color {
	return common.Color{
		Hue:        uint16(rand.Intn(0x10000)),
		Saturation: 0xffff,
		Brightness: 0,
		Kelvin:     common.NeutralWhite,
	}
}

// lifxWhite recognizes white-only fixtures by their product id.
func lifxWhite(light common.Light) bool {
	switch light.ProductID() {
	case 10, 11, 18:
		return true
	}
	return false
}
