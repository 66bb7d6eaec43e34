package device

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/hwprofile/internal/capability"
	"github.com/thoreinstein/hwprofile/internal/errors"
	"github.com/thoreinstein/hwprofile/internal/hardware"
)

type fixedBattery struct{}

func (fixedBattery) Level(context.Context) (int, error)     { return 64, nil }
func (fixedBattery) Charging(context.Context) (bool, error) { return false, nil }

func TestSnapshot(t *testing.T) {
	host := hostSpec{
		raw:     "iPad2,5",
		gyro:    true,
		battery: fixedBattery{},
		display: &capability.Display{Width: 768, Height: 1024, Scale: 1, PPI: 163},
	}.mock()
	d := Resolve(hardware.Parse("iPad2,5"), host)

	p, err := Snapshot(context.Background(), d)
	require.NoError(t, err)

	assert.Equal(t, "pad", p.Kind)
	assert.Equal(t, "iPad mini", p.Name)
	assert.Equal(t, "Apple", p.Manufacturer)
	assert.Equal(t, "iPad2,5", p.HardwareVersion)
	require.NotNil(t, p.Major)
	require.NotNil(t, p.Minor)
	assert.Equal(t, 2, *p.Major)
	assert.Equal(t, 5, *p.Minor)
	assert.Empty(t, p.ID, "unsupported id is omitted")
	assert.Equal(t, &capability.BatteryStatus{Level: 64}, p.Battery)
	assert.Equal(t, 163, p.Display.PPI)
	assert.Equal(t, []string{"battery", "accelerometer", "gyroscope", "display"}, p.Capabilities)
}

func TestSnapshot_Simulator(t *testing.T) {
	d := Resolve(hardware.Parse("arm64"), newMockHost("arm64", false))

	p, err := Snapshot(context.Background(), d)
	require.NoError(t, err)

	assert.Equal(t, "simulator", p.Kind)
	assert.Nil(t, p.Major)
	assert.Nil(t, p.Battery, "battery without a source is omitted")
	assert.Equal(t, []string{"battery", "accelerometer"}, p.Capabilities)
}

type failingBattery struct{ err error }

func (b failingBattery) Level(context.Context) (int, error)     { return 0, b.err }
func (b failingBattery) Charging(context.Context) (bool, error) { return false, b.err }

func TestSnapshot_ID(t *testing.T) {
	host := hostSpec{raw: "iPhone8,1", id: "6F9619FF-8B86-D011-B42D-00C04FC964FF"}.mock()
	d := Resolve(hardware.Parse("iPhone8,1"), host)

	p, err := Snapshot(context.Background(), d)
	require.NoError(t, err)
	assert.Equal(t, "6F9619FF-8B86-D011-B42D-00C04FC964FF", p.ID)
}

func TestSnapshot_HostFailures(t *testing.T) {
	tests := []struct {
		name    string
		spec    hostSpec
		wantErr error
		wantOp  string
	}{
		{
			name:    "device id lookup fails",
			spec:    hostSpec{raw: "iPhone8,1", idErr: errors.ErrNotFound},
			wantErr: errors.ErrNotFound,
			wantOp:  "device.id",
		},
		{
			name:    "battery read fails",
			spec:    hostSpec{raw: "iPhone8,1", battery: failingBattery{err: errors.ErrNotFound}},
			wantErr: errors.ErrNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Resolve(hardware.Parse("iPhone8,1"), tt.spec.mock())

			p, err := Snapshot(context.Background(), d)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.NotErrorIs(t, err, errors.ErrUnsupported)
			assert.Equal(t, Profile{}, p)

			if tt.wantOp != "" {
				var opErr *errors.OpError
				require.True(t, errors.As(err, &opErr))
				assert.Equal(t, tt.wantOp, opErr.Op)
			}
		})
	}
}

func TestSnapshot_UnsupportedBatteryIsOmitted(t *testing.T) {
	host := hostSpec{raw: "iPhone8,1", battery: failingBattery{err: errors.Unsupported("battery.level")}}.mock()
	d := Resolve(hardware.Parse("iPhone8,1"), host)

	p, err := Snapshot(context.Background(), d)
	require.NoError(t, err)
	assert.Nil(t, p.Battery)
}
