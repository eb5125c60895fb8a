package main

import (
	"time"

	"github.com/spf13/cobra"

	effects "github.com/amelchio/golifx-effects"
)

var (
	flagPulseMode    string
	flagPulsePeriod  float64
	flagPulseCycles  int
	flagPulsePowerOn bool

	cmdPulse = &cobra.Command{
		Use:    `pulse`,
		Short:  "run the pulse effect on the simulated lights",
		PreRun: setupConductor,
		Run:    runPulse,
	}
)

func init() {
	cmdPulse.Flags().StringVarP(&flagPulseMode, `mode`, `m`, `blink`, `pulse mode, one of: [blink,strobe,breathe,ping,solid]`)
	cmdPulse.Flags().Float64VarP(&flagPulsePeriod, `period`, `p`, 0, `pulse period in seconds, 0 for the mode default`)
	cmdPulse.Flags().IntVarP(&flagPulseCycles, `cycles`, `c`, 0, `pulse cycle count, 0 for the mode default`)
	cmdPulse.Flags().BoolVar(&flagPulsePowerOn, `power-on`, true, `power on lights that are off`)
}

func runPulse(c *cobra.Command, args []string) {
	pulse, err := effects.NewPulse(flagPulsePowerOn, effects.PulseMode(flagPulseMode), flagPulsePeriod, flagPulseCycles, nil)
	if err != nil {
		logger.WithField(`error`, err).Fatalln(`Failed creating pulse effect`)
	}

	if err := conductor.Start(pulse, lights); err != nil {
		logger.WithField(`error`, err).Fatalln(`Failed starting pulse effect`)
	}

	// The pulse stops itself once the cycles have run out; leave some room
	// for the restore
	duration := time.Duration(pulse.Period() * float64(pulse.Cycles()) * float64(time.Second))
	time.Sleep(duration + 2*time.Second)
}
