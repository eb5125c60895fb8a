package sim

import (
	"github.com/amelchio/golifx-effects/common"
)

// MultiZoneLight is an in-memory common.MultiZoneLight.  While the light
// is powered off its zone queries report zero brightness, the way real
// multizone hardware does, so conductor fixup behavior is observable.
type MultiZoneLight struct {
	Light
	zones  []common.Color
	staged map[int]common.Color
}

// NewMultiZoneLight returns a simulated multizone light with the given
// initial state.  The zone count is fixed at construction.
func NewMultiZoneLight(id uint64, label string, product uint32, power bool, color common.Color, zones []common.Color) *MultiZoneLight {
	return &MultiZoneLight{
		Light:  *NewLight(id, label, product, power, color),
		zones:  append([]common.Color(nil), zones...),
		staged: make(map[int]common.Color),
	}
}

// GetColorZones requests the zone colors starting at the given zone index,
// at most common.ZoneBatchSize zones per call.
func (m *MultiZoneLight) GetColorZones(start uint8) ([]common.Color, error) {
	m.sleep()
	m.RLock()
	defer m.RUnlock()

	if int(start) >= len(m.zones) {
		return nil, common.ErrNotFound
	}
	end := int(start) + common.ZoneBatchSize
	if end > len(m.zones) {
		end = len(m.zones)
	}

	batch := append([]common.Color(nil), m.zones[start:end]...)
	if !m.power {
		for i := range batch {
			batch[i].Brightness = 0
		}
	}
	return batch, nil
}

// CachedColorZones returns the last known zone colors.
func (m *MultiZoneLight) CachedColorZones() []common.Color {
	m.RLock()
	zones := append([]common.Color(nil), m.zones...)
	m.RUnlock()
	return zones
}

// SetColorZones stages a color for the zones from start through end
// inclusive.  Staged changes become visible once a call with apply set to
// true is made.
func (m *MultiZoneLight) SetColorZones(start, end uint8, color common.Color, apply bool) error {
	m.sleep()
	m.Lock()
	defer m.Unlock()

	for i := int(start); i <= int(end) && i < len(m.zones); i++ {
		m.staged[i] = color
	}
	m.record(Command{Kind: CommandSetColorZones, Color: color, Start: start, End: end, Apply: apply})

	if apply {
		for i, zone := range m.staged {
			m.zones[i] = zone
		}
		m.staged = make(map[int]common.Color)
	}
	return nil
}
