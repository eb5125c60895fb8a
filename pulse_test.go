package effects_test

import (
	"time"

	. "github.com/amelchio/golifx-effects"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/amelchio/golifx-effects/common"
	"github.com/amelchio/golifx-effects/sim"
)

var _ = Describe("Pulse", func() {
	Context("construction", func() {
		It("defaults to blink", func() {
			pulse, err := NewPulse(true, ``, 0, 0, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(pulse.Mode()).To(Equal(PulseBlink))
			Expect(pulse.Period()).To(Equal(1.0))
			Expect(pulse.Cycles()).To(Equal(1))
		})

		It("applies strobe defaults", func() {
			pulse, err := NewPulse(true, PulseStrobe, 0, 0, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(pulse.Period()).To(Equal(0.1))
			Expect(pulse.Cycles()).To(Equal(10))
		})

		It("rejects an unknown mode", func() {
			_, err := NewPulse(true, PulseMode(`flicker`), 0, 0, nil)
			Expect(err).To(HaveOccurred())
		})

		It("rejects a negative period", func() {
			_, err := NewPulse(true, PulseBlink, -1, 1, nil)
			Expect(err).To(MatchError(common.ErrInvalidPeriod))
		})

		It("rejects a negative cycle count", func() {
			_, err := NewPulse(true, PulseBlink, 1, -1, nil)
			Expect(err).To(MatchError(common.ErrInvalidCycles))
		})

		It("uses a sine waveform for breathe", func() {
			pulse, err := NewPulse(true, PulseBreathe, 0, 0, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(pulse.Waveform()).To(Equal(common.WaveformSine))
			Expect(pulse.SkewRatio()).To(Equal(int16(0)))
		})

		It("uses a pulse waveform for everything else", func() {
			pulse, err := NewPulse(true, PulseBlink, 0, 0, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(pulse.Waveform()).To(Equal(common.WaveformPulse))
			Expect(pulse.SkewRatio()).To(Equal(int16(0)))
		})

		It("derives the ping duty cycle from the period", func() {
			pulse, err := NewPulse(true, PulsePing, 1.0, 1, nil)
			Expect(err).NotTo(HaveOccurred())
			// 2^15 minus the 4700ms ping duration at a 1s period
			Expect(pulse.SkewRatio()).To(Equal(int16(28068)))
		})

		It("pegs the solid duty cycle at the minimum", func() {
			pulse, err := NewPulse(true, PulseSolid, 1.0, 1, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(pulse.SkewRatio()).To(Equal(int16(-32768)))
		})
	})

	Context("playing", func() {
		var (
			conductor *Conductor
			initial   = common.Color{Hue: 5000, Saturation: 60000, Brightness: 27000, Kelvin: 9000}
		)

		BeforeEach(func() {
			conductor = NewConductor()
			conductor.SetSettleDuration(time.Millisecond)
		})

		waveformsOf := func(light *sim.Light) []common.Waveform {
			var waveforms []common.Waveform
			for _, cmd := range light.Commands() {
				if cmd.Kind == sim.CommandSetWaveform {
					waveforms = append(waveforms, cmd.Waveform)
				}
			}
			return waveforms
		}

		waitForStop := func(light common.Light) {
			EventuallyWithOffset(1, func() Effect {
				return conductor.EffectOf(light.ID())
			}, 2*time.Second, 10*time.Millisecond).Should(BeNil())
		}

		It("flashes a saturated light desaturated and restores it", func() {
			light := sim.NewLight(1, `bulb`, 22, true, initial)
			pulse, err := NewPulse(true, PulseBlink, 0.05, 1, nil)
			Expect(err).NotTo(HaveOccurred())

			Expect(conductor.Start(pulse, []common.Light{light})).To(Succeed())
			waitForStop(light)

			waveforms := waveformsOf(light)
			Expect(len(waveforms)).To(Equal(1))
			Expect(waveforms[0].Transient).To(BeTrue())
			Expect(waveforms[0].Color).To(Equal(common.Color{Hue: 5000, Saturation: 0, Brightness: 0xffff, Kelvin: 4000}))
			Expect(waveforms[0].Period).To(Equal(uint32(50)))
			Expect(waveforms[0].Cycles).To(Equal(float32(1)))
			Expect(waveforms[0].Type).To(Equal(common.WaveformPulse))

			Expect(light.CachedColor()).To(Equal(initial))
			Expect(light.CachedPower()).To(BeTrue())
		})

		It("toggles brightness on a white product", func() {
			bright := common.Color{Hue: 0, Saturation: 0, Brightness: 60000, Kelvin: 3000}
			light := sim.NewLight(1, `white800`, 10, true, bright)
			pulse, err := NewPulse(true, PulseBlink, 0.05, 1, nil)
			Expect(err).NotTo(HaveOccurred())

			Expect(conductor.Start(pulse, []common.Light{light})).To(Succeed())
			waitForStop(light)

			waveforms := waveformsOf(light)
			Expect(len(waveforms)).To(Equal(1))
			// A bright powered-on light flashes dark
			Expect(waveforms[0].Color).To(Equal(common.Color{Hue: 0, Saturation: 0, Brightness: 0, Kelvin: 3000}))
		})

		It("darkens before strobing in cold white", func() {
			light := sim.NewLight(1, `bulb`, 22, true, initial)
			pulse, err := NewPulse(true, PulseStrobe, 0.1, 2, nil)
			Expect(err).NotTo(HaveOccurred())

			Expect(conductor.Start(pulse, []common.Light{light})).To(Succeed())
			waitForStop(light)

			var sawDark bool
			for _, cmd := range light.Commands() {
				if cmd.Kind == sim.CommandSetWaveform {
					// The preflash precedes the waveform
					Expect(sawDark).To(BeTrue())
					Expect(cmd.Waveform.Color.Saturation).To(Equal(uint16(0)))
					Expect(cmd.Waveform.Color.Brightness).To(Equal(uint16(0xffff)))
					Expect(cmd.Waveform.Color.Kelvin).To(Equal(uint16(5600)))
				}
				if cmd.Kind == sim.CommandSetColor && cmd.Color == (common.Color{Kelvin: common.NeutralWhite}) {
					sawDark = true
				}
			}
			Expect(light.CachedColor()).To(Equal(initial))
		})

		It("overlays the provided color channels on the pre-state", func() {
			light := sim.NewLight(1, `bulb`, 22, true, initial)
			hue := uint16(30000)
			brightness := uint16(0xffff)
			pulse, err := NewPulse(true, PulseBlink, 0.05, 1, &PartialColor{Hue: &hue, Brightness: &brightness})
			Expect(err).NotTo(HaveOccurred())

			Expect(conductor.Start(pulse, []common.Light{light})).To(Succeed())
			waitForStop(light)

			waveforms := waveformsOf(light)
			Expect(len(waveforms)).To(Equal(1))
			Expect(waveforms[0].Color).To(Equal(common.Color{Hue: 30000, Saturation: 60000, Brightness: 0xffff, Kelvin: 9000}))
		})

		It("brings a powered-off light up dark before flashing", func() {
			light := sim.NewLight(1, `bulb`, 22, false, initial)
			pulse, err := NewPulse(true, PulseBlink, 0.05, 1, nil)
			Expect(err).NotTo(HaveOccurred())

			Expect(conductor.Start(pulse, []common.Light{light})).To(Succeed())
			waitForStop(light)

			commands := light.Commands()
			Expect(len(commands) >= 2).To(BeTrue())
			Expect(commands[0].Kind).To(Equal(sim.CommandSetColor))
			Expect(commands[0].Color.Brightness).To(Equal(uint16(0)))
			Expect(commands[1].Kind).To(Equal(sim.CommandSetPower))
			Expect(commands[1].Power).To(BeTrue())

			// The restore powers the light back off
			Expect(light.CachedPower()).To(BeFalse())
			Expect(light.CachedColor()).To(Equal(initial))
		})

		It("never inherits claimed lights", func() {
			pulse, err := NewPulse(true, PulseBlink, 0.05, 1, nil)
			Expect(err).NotTo(HaveOccurred())
			other, err := NewPulse(true, PulseBlink, 0.05, 1, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(pulse.CanInheritFrom(other)).To(BeFalse())
		})
	})
})
