//go:build !darwin && !linux

package host

import "github.com/thoreinstein/hwprofile/internal/errors"

func machine() (string, error) {
	return "", errors.ErrUnsupported
}

func osRelease() (string, error) {
	return "", errors.ErrUnsupported
}
