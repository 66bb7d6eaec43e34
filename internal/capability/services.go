package capability

import (
	"context"
	"io"
)

// PhoneService places calls. It does not validate numbers; callers guard
// invocation with a command predicate.
type PhoneService interface {
	DialNumber(number string) error
}

// Display describes the screen.
type Display struct {
	Width  int     `json:"width" yaml:"width" toml:"width" cbor:"width"`
	Height int     `json:"height" yaml:"height" toml:"height" cbor:"height"`
	Scale  float64 `json:"scale" yaml:"scale" toml:"scale" cbor:"scale"`
	PPI    int     `json:"ppi,omitempty" yaml:"ppi,omitempty" toml:"ppi,omitempty" cbor:"ppi,omitempty"`
}

// MediaPicker lets the user choose photos or video. Implementations live
// in the host.
type MediaPicker interface {
	IsCameraAvailable() bool
	SelectPhoto(ctx context.Context) (io.ReadCloser, error)
}

// TextToSpeech speaks text aloud. Implementations live in the host.
type TextToSpeech interface {
	Speak(text string)
}
