package effects

import (
	"github.com/amelchio/golifx-effects/common"
)

// PreState is a snapshot of a device's power and color state, captured at
// the moment an effect claims the device and restored when the device is
// released.  It is immutable once captured, except for the multizone fixup
// performed while the conductor lock is still held.
type PreState struct {
	Power      bool
	Color      common.Color
	ColorZones []common.Color
}

// RunningEffect binds one active effect to the PreState a device will be
// restored to when it stops participating.  Entries are owned exclusively
// by the conductor's running map.
type RunningEffect struct {
	Effect   Effect
	PreState *PreState
}

// capturePreState queries a light for its current state and returns the
// snapshot to restore it to later.  The power level rides along with the
// color reply, so the cached value is current after GetColor.
func capturePreState(light common.Light) (*PreState, error) {
	color, err := light.GetColor()
	if err != nil {
		return nil, err
	}

	pre := &PreState{
		Power: light.CachedPower(),
		Color: color,
	}

	if mz, ok := light.(common.MultiZoneLight); ok && len(mz.CachedColorZones()) > 0 {
		zones, err := queryColorZones(mz)
		if err != nil {
			return nil, err
		}
		pre.ColorZones = zones
	}

	return pre, nil
}

// queryColorZones reads all zone colors of a light, batching requests per
// the zone query limit.
func queryColorZones(light common.MultiZoneLight) ([]common.Color, error) {
	count := len(light.CachedColorZones())
	zones := make([]common.Color, 0, count)
	for start := 0; start < count; start += common.ZoneBatchSize {
		batch, err := light.GetColorZones(uint8(start))
		if err != nil {
			return nil, err
		}
		zones = append(zones, batch...)
	}
	if len(zones) > count {
		zones = zones[:count]
	}
	return zones, nil
}
