package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/hwprofile/internal/capability"
	"github.com/thoreinstein/hwprofile/internal/device"
	"github.com/thoreinstein/hwprofile/internal/errors"
	"github.com/thoreinstein/hwprofile/internal/logging"
)

var (
	sensorsCount    int
	sensorsInterval time.Duration
	sensorsTimeout  time.Duration
)

func init() {
	sensorsCmd.Flags().IntVarP(&sensorsCount, "count", "n", 5,
		"readings to print per sensor")
	sensorsCmd.Flags().DurationVar(&sensorsInterval, "interval", 0,
		"polling interval (default: sensor_interval from config)")
	sensorsCmd.Flags().DurationVar(&sensorsTimeout, "timeout", 10*time.Second,
		"give up after this long")
	rootCmd.AddCommand(sensorsCmd)
}

var sensorsCmd = &cobra.Command{
	Use:   "sensors",
	Short: "Stream accelerometer and gyroscope readings",
	Long: `Start the device's motion sensors and print readings until each sensor
has produced --count samples.

The gyroscope is only read on devices that have one. Hosts without sensor
data report the sensor as unsupported.

Examples:
  hwprofile sensors --profile iphone
  hwprofile sensors --profile iphone -n 20 --interval 50ms`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if sensorsCount < 1 {
			return errors.NewUserError(errors.New("--count must be at least 1"), "")
		}
		interval := sensorsInterval
		if interval == 0 {
			interval = cfg.SensorInterval
		}

		cache, err := newCache(cmd, hardwareOverride())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), sensorsTimeout)
		defer cancel()
		return runSensorsWithWriter(ctx, os.Stdout, cache.Current(), interval, sensorsCount)
	},
}

type sensorLine struct {
	name    string
	reading capability.Reading
}

// motionSensors returns the polling sensors d carries.
func motionSensors(d *device.Device) []*capability.Sensor {
	var sensors []*capability.Sensor
	if a, ok := d.Accelerometer().Get(); ok {
		sensors = append(sensors, a.Sensor)
	}
	if g, ok := d.Gyroscope().Get(); ok {
		sensors = append(sensors, g.Sensor)
	}
	return sensors
}

// runSensorsWithWriter starts d's motion sensors and writes count readings
// per running sensor to w. Sensors are stopped before it returns.
func runSensorsWithWriter(ctx context.Context, w io.Writer, d *device.Device, interval time.Duration, count int) error {
	logger := logging.FromContext(ctx)
	lines := make(chan sensorLine, 16)

	var running []string
	for _, s := range motionSensors(d) {
		name := s.Name()
		unsubscribe := s.Subscribe(func(r capability.Reading) {
			select {
			case lines <- sensorLine{name: name, reading: r}:
			default:
			}
		})
		defer unsubscribe()

		if err := s.Start(ctx, interval); err != nil {
			if errors.Is(err, errors.ErrUnsupported) {
				fmt.Fprintf(w, "%s: unsupported\n", name)
				continue
			}
			return errors.Wrapf(err, "starting %s", name)
		}
		defer s.Stop()
		running = append(running, name)
		logger.Debug("sensor started", "sensor", name, "interval", interval)
	}

	if len(running) == 0 {
		return errors.NewUserError(
			errors.Unsupported("sensors.start"),
			"Use --profile with a host profile that describes accelerometer or rotation data",
		)
	}

	seen := make(map[string]int, len(running))
	remaining := count * len(running)
	for remaining > 0 {
		select {
		case l := <-lines:
			if seen[l.name] >= count {
				continue
			}
			seen[l.name]++
			remaining--
			fmt.Fprintf(w, "%-13s x=%+.4f y=%+.4f z=%+.4f\n", l.name, l.reading.X, l.reading.Y, l.reading.Z)
		case <-ctx.Done():
			return errors.NewSystemError(
				errors.Wrap(ctx.Err(), "waiting for sensor readings"),
				"Try a longer --timeout or a shorter --interval",
			)
		}
	}
	return nil
}
