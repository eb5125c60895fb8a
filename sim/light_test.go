package sim_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/amelchio/golifx-effects/common"
	"github.com/amelchio/golifx-effects/sim"
)

var _ = Describe("Light", func() {
	var (
		light   *sim.Light
		initial = common.Color{Hue: 1000, Saturation: 2000, Brightness: 3000, Kelvin: 3500}
	)

	BeforeEach(func() {
		light = sim.NewLight(1, `bulb`, 22, true, initial)
	})

	It("reports its identity", func() {
		Expect(light.ID()).To(Equal(uint64(1)))
		label, err := light.GetLabel()
		Expect(err).NotTo(HaveOccurred())
		Expect(label).To(Equal(`bulb`))
		Expect(light.ProductID()).To(Equal(uint32(22)))
	})

	It("tracks power changes", func() {
		Expect(light.CachedPower()).To(BeTrue())
		Expect(light.SetPower(false)).To(Succeed())
		power, err := light.GetPower()
		Expect(err).NotTo(HaveOccurred())
		Expect(power).To(BeFalse())
	})

	It("tracks color changes", func() {
		color := common.Color{Hue: 9, Saturation: 9, Brightness: 9, Kelvin: 9}
		Expect(light.SetColor(color, 0)).To(Succeed())
		Expect(light.CachedColor()).To(Equal(color))
	})

	It("records commands in order", func() {
		color := common.Color{Hue: 9, Saturation: 9, Brightness: 9, Kelvin: 9}
		Expect(light.SetPower(false)).To(Succeed())
		Expect(light.SetColor(color, 0)).To(Succeed())

		commands := light.Commands()
		Expect(len(commands)).To(Equal(2))
		Expect(commands[0].Kind).To(Equal(sim.CommandSetPower))
		Expect(commands[0].Power).To(BeFalse())
		Expect(commands[1].Kind).To(Equal(sim.CommandSetColor))
		Expect(commands[1].Color).To(Equal(color))

		light.ClearCommands()
		Expect(light.Commands()).To(BeEmpty())
	})

	It("keeps the cached color through a transient waveform", func() {
		waveform := common.Waveform{
			Transient: true,
			Color:     common.Color{Hue: 9, Saturation: 9, Brightness: 9, Kelvin: 9},
		}
		Expect(light.SetWaveform(waveform)).To(Succeed())
		Expect(light.CachedColor()).To(Equal(initial))

		waveform.Transient = false
		Expect(light.SetWaveform(waveform)).To(Succeed())
		Expect(light.CachedColor()).To(Equal(waveform.Color))
	})

	It("publishes power and color events", func() {
		sub, err := light.NewSubscription()
		Expect(err).NotTo(HaveOccurred())
		defer func() { _ = sub.Close() }()

		Expect(light.SetPower(false)).To(Succeed())
		var event interface{}
		Eventually(sub.Events()).Should(Receive(&event))
		Expect(event).To(Equal(common.EventUpdatePower{Power: false}))

		color := common.Color{Hue: 9, Saturation: 9, Brightness: 9, Kelvin: 9}
		Expect(light.SetColor(color, 0)).To(Succeed())
		Eventually(sub.Events()).Should(Receive(&event))
		Expect(event).To(Equal(common.EventUpdateColor{Color: color}))
	})
})

var _ = Describe("MultiZoneLight", func() {
	var (
		strip *sim.MultiZoneLight
		zones []common.Color
	)

	BeforeEach(func() {
		zones = make([]common.Color, 12)
		for i := range zones {
			zones[i] = common.Color{
				Hue:        uint16(i * 1000),
				Saturation: 0xffff,
				Brightness: 40000,
				Kelvin:     3500,
			}
		}
		strip = sim.NewMultiZoneLight(3, `strip`, 32, true, zones[0], zones)
	})

	It("serves zone queries in batches", func() {
		batch, err := strip.GetColorZones(0)
		Expect(err).NotTo(HaveOccurred())
		Expect(batch).To(Equal(zones[:common.ZoneBatchSize]))

		batch, err = strip.GetColorZones(common.ZoneBatchSize)
		Expect(err).NotTo(HaveOccurred())
		Expect(batch).To(Equal(zones[common.ZoneBatchSize:]))

		_, err = strip.GetColorZones(uint8(len(zones)))
		Expect(err).To(MatchError(common.ErrNotFound))
	})

	It("reports zero brightness while powered off", func() {
		Expect(strip.SetPower(false)).To(Succeed())

		batch, err := strip.GetColorZones(0)
		Expect(err).NotTo(HaveOccurred())
		for _, zone := range batch {
			Expect(zone.Brightness).To(Equal(uint16(0)))
		}

		// The true values survive underneath
		Expect(strip.CachedColorZones()).To(Equal(zones))
	})

	It("stages zone changes until one is applied", func() {
		color := common.Color{Hue: 9, Saturation: 9, Brightness: 9, Kelvin: 9}
		Expect(strip.SetColorZones(0, 3, color, false)).To(Succeed())
		Expect(strip.CachedColorZones()).To(Equal(zones))

		Expect(strip.SetColorZones(4, 7, color, true)).To(Succeed())
		current := strip.CachedColorZones()
		for i := 0; i <= 7; i++ {
			Expect(current[i]).To(Equal(color))
		}
		Expect(current[8]).To(Equal(zones[8]))
	})
})
