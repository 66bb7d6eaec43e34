package device

import (
	"github.com/stretchr/testify/mock"

	"github.com/thoreinstein/hwprofile/internal/capability"
)

// mockHost is a testify mock of Host.
type mockHost struct {
	mock.Mock
}

func (m *mockHost) HardwareIdentifier() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *mockHost) GyroscopeSupported() bool {
	return m.Called().Bool(0)
}

func (m *mockHost) FirmwareVersion() string {
	return m.Called().String(0)
}

func (m *mockHost) DeviceID() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *mockHost) BatterySource() capability.BatterySource {
	src, _ := m.Called().Get(0).(capability.BatterySource)
	return src
}

func (m *mockHost) AccelerometerReader() capability.SensorReader {
	r, _ := m.Called().Get(0).(capability.SensorReader)
	return r
}

func (m *mockHost) GyroscopeReader() capability.SensorReader {
	r, _ := m.Called().Get(0).(capability.SensorReader)
	return r
}

func (m *mockHost) Dialer() capability.PhoneService {
	d, _ := m.Called().Get(0).(capability.PhoneService)
	return d
}

func (m *mockHost) Display() (capability.Display, bool) {
	args := m.Called()
	d, _ := args.Get(0).(capability.Display)
	return d, args.Bool(1)
}

func (m *mockHost) MediaPicker() capability.MediaPicker {
	p, _ := m.Called().Get(0).(capability.MediaPicker)
	return p
}

// hostSpec describes what a mockHost answers.
type hostSpec struct {
	raw     string
	rawErr  error
	gyro    bool
	dialer  capability.PhoneService
	display *capability.Display
	battery capability.BatterySource
	reader  capability.SensorReader

	// id and idErr answer DeviceID; both zero means unsupported.
	id    string
	idErr error
}

func (s hostSpec) mock() *mockHost {
	m := &mockHost{}
	m.On("HardwareIdentifier").Return(s.raw, s.rawErr)
	m.On("GyroscopeSupported").Return(s.gyro)
	m.On("FirmwareVersion").Return("9.3.5")
	if s.id == "" && s.idErr == nil {
		m.On("DeviceID").Return("", capabilityUnsupported())
	} else {
		m.On("DeviceID").Return(s.id, s.idErr)
	}
	m.On("BatterySource").Return(s.battery)
	m.On("AccelerometerReader").Return(s.reader)
	m.On("GyroscopeReader").Return(s.reader)
	m.On("Dialer").Return(s.dialer)
	if s.display != nil {
		m.On("Display").Return(*s.display, true)
	} else {
		m.On("Display").Return(capability.Display{}, false)
	}
	m.On("MediaPicker").Return(nil)
	return m
}

// newMockHost returns a mock reporting raw and the gyroscope flag, with
// every collaborator absent.
func newMockHost(raw string, gyro bool) *mockHost {
	return hostSpec{raw: raw, gyro: gyro}.mock()
}
