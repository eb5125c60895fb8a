package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/amelchio/golifx-effects/common"
)

type MultiZoneLight struct {
	Light
	mock.Mock
}

func (_m *MultiZoneLight) GetColorZones(start uint8) ([]common.Color, error) {
	ret := _m.Called(start)

	var r0 []common.Color
	if rf, ok := ret.Get(0).(func(uint8) []common.Color); ok {
		r0 = rf(start)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]common.Color)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(uint8) error); ok {
		r1 = rf(start)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}
func (_m *MultiZoneLight) CachedColorZones() []common.Color {
	ret := _m.Called()

	var r0 []common.Color
	if rf, ok := ret.Get(0).(func() []common.Color); ok {
		r0 = rf()
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]common.Color)
	}

	return r0
}
func (_m *MultiZoneLight) SetColorZones(start uint8, end uint8, color common.Color, apply bool) error {
	ret := _m.Called(start, end, color, apply)

	var r0 error
	if rf, ok := ret.Get(0).(func(uint8, uint8, common.Color, bool) error); ok {
		r0 = rf(start, end, color, apply)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}
