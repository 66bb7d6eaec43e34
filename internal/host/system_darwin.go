//go:build darwin

package host

import "golang.org/x/sys/unix"

func machine() (string, error) {
	return unix.Sysctl("hw.machine")
}

func osRelease() (string, error) {
	return unix.Sysctl("kern.osproductversion")
}
