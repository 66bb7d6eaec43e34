// Package device resolves the current device from a host-reported hardware
// identifier and caches it for the life of the process.
//
// # Resolution
//
// [Resolve] maps a parsed [hardware.Identifier] to a [Device]: phone, pod
// and pad identifiers become the matching [Kind] seeded with the major and
// minor numbers; anything unrecognized becomes [KindSimulator]. Every device
// carries a Battery and an Accelerometer. A Gyroscope is attached only when
// the host reports gyroscope hardware. Resolution never fails.
//
// # Current Device
//
// A [Cache] resolves the device on the first call to [Cache.Current] and
// returns the same *Device forever after. Concurrent first callers block
// until the single resolution finishes; the host is queried at most once.
//
//	cache := device.NewCache(host)
//	dev := cache.Current()
//	if gyro, ok := dev.Gyroscope().Get(); ok {
//	    _ = gyro.Start(ctx, 50*time.Millisecond)
//	}
//
// # Thread Safety
//
// Devices are immutable after construction and safe for concurrent use.
package device
