// Command lifx-effects runs the bundled lighting effects against a bank of
// simulated lights
package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	effects "github.com/amelchio/golifx-effects"
	"github.com/amelchio/golifx-effects/common"
	"github.com/amelchio/golifx-effects/sim"
)

var (
	conductor *effects.Conductor
	lights    []common.Light

	flagLogLevel string
	flagCount    int
	flagZones    int
	flagLatency  time.Duration

	logger = logrus.New()
	app    = &cobra.Command{
		Use: `lifx-effects`,
		PersistentPreRun: func(c *cobra.Command, args []string) {
			setLogger()
		},
	}

	cmdGenerateBashComp = &cobra.Command{
		Use:   `bashcomp <filename>`,
		Short: "generate bash completion at <file>",
		Run:   generateBashComp,
	}

	cmdGenerateDocs = &cobra.Command{
		Use:   `docs <path>`,
		Short: "generate markdown documentation at <path>",
		Run:   generateDocs,
	}
)

func init() {
	runtime.GOMAXPROCS(runtime.NumCPU())
	effects.SetLogger(logger)

	app.PersistentFlags().StringVarP(&flagLogLevel, `log-level`, `L`, `info`, `log level, one of: [debug,info,warn,error]`)
	app.PersistentFlags().IntVarP(&flagCount, `lights`, `n`, 3, `number of simulated lights`)
	app.PersistentFlags().IntVarP(&flagZones, `zones`, `z`, 0, `zone count for one additional multizone light, 0 for none`)
	app.PersistentFlags().DurationVar(&flagLatency, `latency`, 10*time.Millisecond, `simulated round-trip latency per device call`)

	app.AddCommand(cmdPulse)
	app.AddCommand(cmdColorloop)
	app.AddCommand(cmdGenerateBashComp)
	app.AddCommand(cmdGenerateDocs)
}

func main() {
	_ = app.Execute()
}

// setupConductor builds the simulated lights and a conductor, and logs the
// conductor's events as they arrive.
func setupConductor(c *cobra.Command, args []string) {
	conductor = effects.NewConductor()

	lights = nil
	for i := 0; i < flagCount; i++ {
		color := common.Color{
			Hue:        uint16(i * 0x10000 / flagCount),
			Saturation: 0xffff,
			Brightness: 0xc000,
			Kelvin:     common.NeutralWhite,
		}
		light := sim.NewLight(uint64(i+1), fmt.Sprintf(`sim%02d`, i+1), 22, i%2 == 0, color)
		light.SetLatency(flagLatency)
		lights = append(lights, light)
	}
	if flagZones > 0 {
		zones := make([]common.Color, flagZones)
		for i := range zones {
			zones[i] = common.Color{
				Hue:        uint16(i * 0x10000 / flagZones),
				Saturation: 0xffff,
				Brightness: 0x8000,
				Kelvin:     common.NeutralWhite,
			}
		}
		strip := sim.NewMultiZoneLight(uint64(flagCount+1), `simstrip`, 32, false, zones[0], zones)
		strip.SetLatency(flagLatency)
		lights = append(lights, strip)
	}

	sub, err := conductor.NewSubscription()
	if err != nil {
		logger.WithField(`error`, err).Fatalln(`Failed subscribing to conductor events`)
	}
	go func() {
		for event := range sub.Events() {
			switch e := event.(type) {
			case common.EventEffectStarted:
				logger.WithField(`effect`, e.Name).Infoln(`Effect started`)
			case common.EventEffectStopped:
				logger.WithField(`effect`, e.Name).Infoln(`Effect stopped`)
			case common.EventDeviceClaimed:
				logger.WithField(`device`, e.Device.ID()).Debugln(`Device claimed`)
			case common.EventDeviceReleased:
				logger.WithField(`device`, e.Device.ID()).Debugln(`Device released`)
			}
		}
	}()
}

func generateBashComp(c *cobra.Command, args []string) {
	if len(args) != 1 {
		_ = c.Usage()
		fmt.Println()
		logger.Fatalln(`Missing filename`)
	}

	if err := app.GenBashCompletionFile(args[0]); err != nil {
		logger.WithFields(logrus.Fields{
			`filename`: args[0],
			`error`:    err,
		}).Fatalln(`Could not write completion file`)
	}
}

func generateDocs(c *cobra.Command, args []string) {
	if len(args) != 1 {
		_ = c.Usage()
		fmt.Println()
		logger.Fatalln(`Missing output path`)
	}

	path := args[0]
	if path[len(path)-1] != os.PathSeparator {
		path += string(os.PathSeparator)
	}
	if err := doc.GenMarkdownTree(app, path); err != nil {
		logger.WithField(`error`, err).Fatalln(`Could not write documentation`)
	}
}

func setLogger() {
	switch flagLogLevel {
	case `debug`:
		logger.Level = logrus.DebugLevel
	case `info`:
		logger.Level = logrus.InfoLevel
	case `warn`:
		logger.Level = logrus.WarnLevel
	case `error`:
		logger.Level = logrus.ErrorLevel
	default:
		logger.Level = logrus.InfoLevel
	}
}
