// Package sample contains the main view model of the sample app. It shows
// how a presentation layer binds to the current device and its
// capabilities through commands.
package sample

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/thoreinstein/hwprofile/internal/capability"
	"github.com/thoreinstein/hwprofile/internal/device"
	"github.com/thoreinstein/hwprofile/internal/logging"
	"github.com/thoreinstein/hwprofile/internal/mvvm"
)

// Defaults shown when the view model is created.
const (
	DefaultNumberToCall = "+1 (855) 926-2746"
	DefaultTextToSpeak  = "Hello from hwprofile"
)

// MainViewModel backs the sample app's main page.
type MainViewModel struct {
	device *device.Device
	tts    capability.TextToSpeech
	logger *slog.Logger

	NumberToCall *mvvm.Property[string]
	TextToSpeak  *mvvm.Property[string]

	CallCommand   *mvvm.Command[struct{}]
	SpeakCommand  *mvvm.Command[struct{}]
	SearchCommand *mvvm.Command[string]

	// DialErrors receives failures from the phone service; nil drops them.
	DialErrors func(error)
}

// NewMainViewModel binds to the cache's current device. tts may be nil.
func NewMainViewModel(cache *device.Cache, tts capability.TextToSpeech, logger *slog.Logger) *MainViewModel {
	if logger == nil {
		logger = logging.NewDiscard()
	}
	vm := &MainViewModel{
		device:       cache.Current(),
		tts:          tts,
		logger:       logger,
		NumberToCall: mvvm.NewProperty(DefaultNumberToCall),
		TextToSpeak:  mvvm.NewProperty(DefaultTextToSpeak),
	}

	vm.CallCommand = mvvm.NewCommand(vm.call, vm.canCall)
	vm.SpeakCommand = mvvm.NewCommand(vm.speak, func() bool { return vm.tts != nil })
	vm.SearchCommand = mvvm.NewCommandOf(
		func(q string) { vm.logger.Info("search", "query", q) },
		func(q string) bool { return q != "" },
	)

	vm.NumberToCall.OnChanged(func(_, _ string) { vm.CallCommand.RaiseCanExecuteChanged() })
	return vm
}

// DeviceManufacturer describes who built the device.
func (vm *MainViewModel) DeviceManufacturer() string {
	return fmt.Sprintf("Device was manufactured by %s", vm.device.Manufacturer())
}

// DeviceName describes the device.
func (vm *MainViewModel) DeviceName() string {
	return fmt.Sprintf("Device is called %s", vm.device.Name())
}

func (vm *MainViewModel) canCall() bool {
	return vm.device.PhoneService().IsPresent() && strings.TrimSpace(vm.NumberToCall.Get()) != ""
}

func (vm *MainViewModel) call() {
	phone, ok := vm.device.PhoneService().Get()
	if !ok {
		return
	}
	number := vm.NumberToCall.Get()
	vm.logger.Info("dialing", "number", number)
	if err := phone.DialNumber(number); err != nil {
		vm.logger.Warn("dial failed", "error", err)
		if vm.DialErrors != nil {
			vm.DialErrors(err)
		}
	}
}

func (vm *MainViewModel) speak() {
	vm.tts.Speak(vm.TextToSpeak.Get())
}
