// Package sim provides in-memory lights implementing the common device
// interfaces, for demos and tests that need stateful devices without
// hardware on the network.
package sim

import (
	"sync"
	"time"

	"github.com/amelchio/golifx-effects/common"
)

// CommandKind names a state-changing call issued to a simulated light.
type CommandKind string

const (
	CommandSetPower      CommandKind = `set_power`
	CommandSetColor      CommandKind = `set_color`
	CommandSetWaveform   CommandKind = `set_waveform`
	CommandSetColorZones CommandKind = `set_color_zones`
)

// Command records one state-changing call issued to a simulated light, in
// the order received.
type Command struct {
	Kind     CommandKind
	Power    bool
	Color    common.Color
	Duration time.Duration
	Waveform common.Waveform
	Start    uint8
	End      uint8
	Apply    bool
}

// Light is an in-memory common.Light.  All state is cached locally and
// every state-changing call is recorded, so tests can assert on the exact
// command sequence a light received.
type Light struct {
	id      uint64
	label   string
	product uint32
	power   bool
	color   common.Color

	latency       time.Duration
	history       []Command
	subscriptions map[string]*common.Subscription
	sync.RWMutex
}

// NewLight returns a simulated light with the given initial state.
func NewLight(id uint64, label string, product uint32, power bool, color common.Color) *Light {
	return &Light{
		id:            id,
		label:         label,
		product:       product,
		power:         power,
		color:         color,
		subscriptions: make(map[string]*common.Subscription),
	}
}

// SetLatency makes every query and command on the light sleep for d first,
// simulating network round trips.
func (l *Light) SetLatency(d time.Duration) {
	l.Lock()
	l.latency = d
	l.Unlock()
}

// ID returns the stable identifier for the light
func (l *Light) ID() uint64 {
	return l.id
}

// GetLabel gets the label for the light
func (l *Light) GetLabel() (string, error) {
	return l.label, nil
}

// ProductID returns the hardware product identifier
func (l *Light) ProductID() uint32 {
	return l.product
}

// GetPower requests the current power state of the light
func (l *Light) GetPower() (bool, error) {
	l.sleep()
	return l.CachedPower(), nil
}

// CachedPower returns the last known power state of the light
func (l *Light) CachedPower() bool {
	l.RLock()
	power := l.power
	l.RUnlock()
	return power
}

// SetPower sets the power state of the light
func (l *Light) SetPower(state bool) error {
	l.sleep()
	l.Lock()
	l.power = state
	l.record(Command{Kind: CommandSetPower, Power: state})
	l.Unlock()
	l.publish(common.EventUpdatePower{Power: state})
	return nil
}

// GetColor requests the current color of the light
func (l *Light) GetColor() (common.Color, error) {
	l.sleep()
	return l.CachedColor(), nil
}

// CachedColor returns the last known color of the light
func (l *Light) CachedColor() common.Color {
	l.RLock()
	color := l.color
	l.RUnlock()
	return color
}

// SetColor changes the color of the light
func (l *Light) SetColor(color common.Color, duration time.Duration) error {
	l.sleep()
	l.Lock()
	l.color = color
	l.record(Command{Kind: CommandSetColor, Color: color, Duration: duration})
	l.Unlock()
	l.publish(common.EventUpdateColor{Color: color})
	return nil
}

// SetWaveform runs a waveform on the light.  A transient waveform leaves
// the cached color untouched; a persistent one ends on the waveform color.
func (l *Light) SetWaveform(waveform common.Waveform) error {
	l.sleep()
	l.Lock()
	if !waveform.Transient {
		l.color = waveform.Color
	}
	l.record(Command{Kind: CommandSetWaveform, Waveform: waveform})
	l.Unlock()
	return nil
}

// Commands returns a copy of the commands the light has received so far.
func (l *Light) Commands() []Command {
	l.RLock()
	history := append([]Command(nil), l.history...)
	l.RUnlock()
	return history
}

// ClearCommands discards the recorded command history.
func (l *Light) ClearCommands() {
	l.Lock()
	l.history = nil
	l.Unlock()
}

// NewSubscription returns a new *common.Subscription for receiving events
// from this light.
func (l *Light) NewSubscription() (*common.Subscription, error) {
	sub := common.NewSubscription(l)
	l.Lock()
	l.subscriptions[sub.ID()] = sub
	l.Unlock()
	return sub, nil
}

// CloseSubscription is a callback for handling the closing of
// subscriptions.
func (l *Light) CloseSubscription(sub *common.Subscription) error {
	l.RLock()
	_, ok := l.subscriptions[sub.ID()]
	l.RUnlock()
	if !ok {
		return common.ErrNotFound
	}
	l.Lock()
	delete(l.subscriptions, sub.ID())
	l.Unlock()

	return nil
}

// record appends to the command history.  The lock must be held.
func (l *Light) record(cmd Command) {
	l.history = append(l.history, cmd)
}

func (l *Light) sleep() {
	l.RLock()
	latency := l.latency
	l.RUnlock()
	if latency > 0 {
		time.Sleep(latency)
	}
}

func (l *Light) publish(event interface{}) {
	l.RLock()
	subs := make([]*common.Subscription, 0, len(l.subscriptions))
	for _, sub := range l.subscriptions {
		subs = append(subs, sub)
	}
	l.RUnlock()

	for _, sub := range subs {
		if err := sub.Write(event); err != nil {
			common.Log.Warnf("failed publishing event: %v\n", err)
		}
	}
}
