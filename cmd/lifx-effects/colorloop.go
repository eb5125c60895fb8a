package main

import (
	"time"

	"github.com/spf13/cobra"

	effects "github.com/amelchio/golifx-effects"
)

var (
	flagLoopPeriod     float64
	flagLoopChange     float64
	flagLoopSpread     float64
	flagLoopBrightness int
	flagLoopTransition time.Duration
	flagLoopDuration   time.Duration
	flagLoopPowerOn    bool

	cmdColorloop = &cobra.Command{
		Use:    `colorloop`,
		Short:  "run the colorloop effect on the simulated lights",
		PreRun: setupConductor,
		Run:    runColorloop,
	}
)

func init() {
	cmdColorloop.Flags().Float64VarP(&flagLoopPeriod, `period`, `p`, 0, `seconds per iteration, 0 for the default`)
	cmdColorloop.Flags().Float64Var(&flagLoopChange, `change`, 0, `hue change per iteration in degrees, 0 for the default`)
	cmdColorloop.Flags().Float64Var(&flagLoopSpread, `spread`, 0, `hue spread across lights in degrees, 0 for the default`)
	cmdColorloop.Flags().IntVarP(&flagLoopBrightness, `brightness`, `b`, -1, `fixed brightness 0-65535, -1 to keep each light's own`)
	cmdColorloop.Flags().DurationVar(&flagLoopTransition, `transition`, 0, `fixed transition duration, 0 for randomized transitions`)
	cmdColorloop.Flags().DurationVarP(&flagLoopDuration, `duration`, `d`, 30*time.Second, `how long to run before restoring the lights`)
	cmdColorloop.Flags().BoolVar(&flagLoopPowerOn, `power-on`, true, `power on lights that are off`)
}

func runColorloop(c *cobra.Command, args []string) {
	var brightness *uint16
	if flagLoopBrightness >= 0 {
		b := uint16(flagLoopBrightness)
		brightness = &b
	}
	var transition *time.Duration
	if flagLoopTransition > 0 {
		transition = &flagLoopTransition
	}

	loop, err := effects.NewColorloop(flagLoopPowerOn, flagLoopPeriod, flagLoopChange, flagLoopSpread, brightness, transition)
	if err != nil {
		logger.WithField(`error`, err).Fatalln(`Failed creating colorloop effect`)
	}

	if err := conductor.Start(loop, lights); err != nil {
		logger.WithField(`error`, err).Fatalln(`Failed starting colorloop effect`)
	}

	time.Sleep(flagLoopDuration)

	if err := conductor.Stop(lights); err != nil {
		logger.WithField(`error`, err).Fatalln(`Failed stopping colorloop effect`)
	}
}
