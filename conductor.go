package effects

import (
	"sync"
	"time"

	"github.com/amelchio/golifx-effects/common"
)

// Conductor owns the mapping from device identity to its running effect
// and pre-state.  A single lock serializes all claim and release
// transitions, so a device can never be observed half-migrated between
// effects.  Conductor can not be instantiated manually - always use
// NewConductor() to obtain a Conductor instance.
type Conductor struct {
	running map[uint64]*RunningEffect
	settle  time.Duration

	subscriptions map[string]*common.Subscription
	subMu         sync.RWMutex

	sync.RWMutex
}

// EffectOf returns the effect currently bound to the device with the given
// id, or nil when the device is unclaimed.  It has no side effects.
func (c *Conductor) EffectOf(id uint64) Effect {
	c.RLock()
	defer c.RUnlock()
	if running, ok := c.running[id]; ok {
		return running.Effect
	}
	return nil
}

// SetSettleDuration overrides how long lights are given to settle after
// power transitions during state capture and restore.  Defaults to
// common.DefaultSettleDuration.
func (c *Conductor) SetSettleDuration(d time.Duration) {
	c.Lock()
	c.settle = d
	c.Unlock()
}

// Start stops any conflicting effects on the given lights, captures their
// state and launches the effect's play loop as a background task.  It
// returns once the effect is launched, not once it finishes.  Starting an
// effect on no lights is a no-op.
//
// When the new effect declares itself compatible with a light's current
// effect, the light hands over without a restore and keeps its original
// pre-state.
func (c *Conductor) Start(effect Effect, lights []common.Light) error {
	if len(lights) == 0 {
		return nil
	}

	c.Lock()
	defer c.Unlock()

	effect.setConductor(c)

	// Release conflicting effects, offering the new effect as successor
	c.stopLocked(lights, effect)

	// Remember the current state
	lights = c.capture(effect, lights)
	if len(lights) == 0 {
		return common.ErrNotFound
	}

	// Powered off zones report zero brightness.  Get the real values.
	c.fixupMultizone(lights)

	effect.setParticipants(lights)
	go effect.Perform(lights)

	c.publish(common.EventEffectStarted{Name: effect.Name()})
	return nil
}

// Stop releases each of the given lights from its running effect, if any,
// restoring the state captured when the light was claimed.  It returns
// once every given light has been restored.  Stopping no lights is a
// no-op.
func (c *Conductor) Stop(lights []common.Light) error {
	if len(lights) == 0 {
		return nil
	}

	c.Lock()
	defer c.Unlock()
	c.stopLocked(lights, nil)
	return nil
}

// stopLocked releases the given lights, restoring them concurrently, and
// waits for all restores to complete.  The conductor lock must be held.
func (c *Conductor) stopLocked(lights []common.Light, successor Effect) {
	var wg sync.WaitGroup
	for _, light := range lights {
		restore := c.releaseOne(light, successor)
		if restore == nil {
			continue
		}
		wg.Add(1)
		go func(restore func()) {
			defer wg.Done()
			restore()
		}(restore)
	}
	wg.Wait()
}

// releaseOne removes a light from its running effect.  When the light is
// unclaimed, or a compatible successor inherits its pre-state, nothing
// further happens and nil is returned.  Otherwise the running map entry is
// dropped and the returned func performs the state restore.
func (c *Conductor) releaseOne(light common.Light, successor Effect) func() {
	running, ok := c.running[light.ID()]
	if !ok {
		return nil
	}

	if running.Effect.removeParticipant(light.ID()) == 0 {
		c.publish(common.EventEffectStopped{Name: running.Effect.Name()})
	}

	if successor != nil && successor.CanInheritFrom(running.Effect) {
		// The successor claims the already-captured pre-state
		return nil
	}

	delete(c.running, light.ID())

	pre := running.PreState
	return func() {
		c.restore(light, pre)
		c.publish(common.EventDeviceReleased{Device: light})
	}
}

// restore puts a light back into its captured state.  Lights that were
// powered off are powered off first and given time to settle, so the color
// change is not visible.
func (c *Conductor) restore(light common.Light, pre *PreState) {
	if !pre.Power {
		if err := light.SetPower(false); err != nil {
			common.Log.Warnf("failed powering off %v: %v\n", light.ID(), err)
		}
		time.Sleep(c.settle)
	}

	if len(pre.ColorZones) > 0 {
		mz := light.(common.MultiZoneLight)
		for i, zone := range pre.ColorZones {
			apply := i == len(pre.ColorZones)-1
			if err := mz.SetColorZones(uint8(i), uint8(i), zone, apply); err != nil {
				common.Log.Warnf("failed restoring zone %d on %v: %v\n", i, light.ID(), err)
			}
		}
	} else {
		if err := light.SetColor(pre.Color, 0); err != nil {
			common.Log.Warnf("failed restoring color on %v: %v\n", light.ID(), err)
		}
	}

	time.Sleep(c.settle)
}

// capture snapshots the state of every light not already claimed through
// inheritance, querying lights concurrently.  Lights whose state query
// fails are excluded from the effect rather than blocking the batch.  The
// conductor lock must be held.  Returns the lights that were claimed, in
// their original order.
func (c *Conductor) capture(effect Effect, lights []common.Light) []common.Light {
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		excluded = make(map[uint64]bool)
	)

	for _, light := range lights {
		if running, ok := c.running[light.ID()]; ok {
			// Inherited from a compatible predecessor, keep its snapshot
			running.Effect = effect
			continue
		}

		wg.Add(1)
		go func(light common.Light) {
			defer wg.Done()
			pre, err := capturePreState(light)
			if err != nil {
				common.Log.Warnf("excluding %v from effect %s: %v\n", light.ID(), effect.Name(), err)
				mu.Lock()
				excluded[light.ID()] = true
				mu.Unlock()
				return
			}
			mu.Lock()
			c.running[light.ID()] = &RunningEffect{Effect: effect, PreState: pre}
			mu.Unlock()
			c.publish(common.EventDeviceClaimed{Device: light})
		}(light)
	}
	wg.Wait()

	claimed := make([]common.Light, 0, len(lights))
	for _, light := range lights {
		if !excluded[light.ID()] {
			claimed = append(claimed, light)
		}
	}
	return claimed
}

// fixupMultizone briefly powers on the powered-off multizone lights among
// the given participants, so that their true zone colors can replace the
// degenerate zero-brightness values captured while off.  The lights are
// powered off again before the conductor lock is released.
func (c *Conductor) fixupMultizone(lights []common.Light) {
	var fixup []common.MultiZoneLight
	for _, light := range lights {
		if mz, ok := light.(common.MultiZoneLight); ok && len(mz.CachedColorZones()) > 0 && !light.CachedPower() {
			fixup = append(fixup, mz)
		}
	}
	if len(fixup) == 0 {
		return
	}

	c.powerToggle(fixup, true)

	var wg sync.WaitGroup
	zones := make([][]common.Color, len(fixup))
	for i, mz := range fixup {
		wg.Add(1)
		go func(i int, mz common.MultiZoneLight) {
			defer wg.Done()
			result, err := queryColorZones(mz)
			if err != nil {
				common.Log.Warnf("failed re-querying zones on %v: %v\n", mz.ID(), err)
				return
			}
			zones[i] = result
		}(i, mz)
	}
	wg.Wait()

	for i, mz := range fixup {
		if zones[i] == nil {
			continue
		}
		if running, ok := c.running[mz.ID()]; ok {
			running.PreState.ColorZones = zones[i]
		}
	}

	c.powerToggle(fixup, false)
}

// powerToggle switches all given lights concurrently and waits for them to
// settle.
func (c *Conductor) powerToggle(lights []common.MultiZoneLight, state bool) {
	var wg sync.WaitGroup
	for _, light := range lights {
		wg.Add(1)
		go func(light common.MultiZoneLight) {
			defer wg.Done()
			if err := light.SetPower(state); err != nil {
				common.Log.Warnf("failed setting power on %v: %v\n", light.ID(), err)
			}
		}(light)
	}
	wg.Wait()
	time.Sleep(c.settle)
}

// preStateOf returns the pre-state stored for a claimed device, or nil.
func (c *Conductor) preStateOf(id uint64) *PreState {
	c.RLock()
	defer c.RUnlock()
	if running, ok := c.running[id]; ok {
		return running.PreState
	}
	return nil
}

// NewSubscription returns a new *common.Subscription for receiving events
// from this conductor.
func (c *Conductor) NewSubscription() (*common.Subscription, error) {
	sub := common.NewSubscription(c)
	c.subMu.Lock()
	c.subscriptions[sub.ID()] = sub
	c.subMu.Unlock()
	return sub, nil
}

// CloseSubscription is a callback for handling the closing of
// subscriptions.
func (c *Conductor) CloseSubscription(sub *common.Subscription) error {
	c.subMu.RLock()
	_, ok := c.subscriptions[sub.ID()]
	c.subMu.RUnlock()
	if !ok {
		return common.ErrNotFound
	}
	c.subMu.Lock()
	delete(c.subscriptions, sub.ID())
	c.subMu.Unlock()

	return nil
}

func (c *Conductor) publish(event interface{}) {
	c.subMu.RLock()
	subs := make([]*common.Subscription, 0, len(c.subscriptions))
	for _, sub := range c.subscriptions {
		subs = append(subs, sub)
	}
	c.subMu.RUnlock()

	for _, sub := range subs {
		if err := sub.Write(event); err != nil {
			common.Log.Warnf("failed publishing event: %v\n", err)
		}
	}
}
