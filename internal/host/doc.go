// Package host provides device.Host implementations.
//
// [System] queries the running operating system for its hardware
// identifier and firmware version. Desktop systems have no battery,
// motion sensors or dialer, so those collaborators are absent.
//
// [Static] answers from a host profile file, which makes it possible to
// reproduce a particular device on any machine:
//
//	hardware: iPhone6,1
//	firmware: 9.3.5
//	gyroscope: true
//	device_id: 6f9619ff-8b86-d011-b42d-00c04fc964ff
//	phone: true
//	battery:
//	  level: 80
//	  charging: true
//	accelerometer: {x: 0.01, y: -0.02, z: -1.0}
//
// Profiles may be YAML (.yaml, .yml) or TOML (.toml).
package host
