// Package capability provides the hardware capability objects a resolved
// device may carry: battery, accelerometer, gyroscope, phone dialer,
// display and media picker.
//
// Each capability is an independent object backed by a narrow collaborator
// interface supplied by the host ([BatterySource], [SensorReader],
// [PhoneService]). Optional capabilities are carried in a [Handle], so a
// missing sensor is reported as absent rather than as a zero reading.
//
// # Sensors
//
// [Accelerometer] and [Gyroscope] share the [Sensor] engine. Construction
// never starts background work. Start and Stop may be called from any
// goroutine; a second Start while running is a no-op and Stop on a sensor
// that was never started is a no-op.
//
//	acc.Subscribe(func(r capability.Reading) { fmt.Println(r) })
//	if err := acc.Start(ctx, 100*time.Millisecond); err != nil {
//	    return err
//	}
//	defer acc.Stop()
package capability
