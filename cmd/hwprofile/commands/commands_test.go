package commands

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/hwprofile/internal/capability"
	"github.com/thoreinstein/hwprofile/internal/config"
	"github.com/thoreinstein/hwprofile/internal/device"
	"github.com/thoreinstein/hwprofile/internal/errors"
	"github.com/thoreinstein/hwprofile/internal/host"
	"github.com/thoreinstein/hwprofile/internal/logging"
)

func iphoneSpec() host.Spec {
	return host.Spec{
		Hardware:      "iPhone6,1",
		Firmware:      "9.3.5",
		Gyroscope:     true,
		DeviceID:      "6f9619ff-8b86-d011-b42d-00c04fc964ff",
		Phone:         true,
		Battery:       &host.BatterySpec{Level: 80, Charging: true},
		Accelerometer: &host.AxisSpec{Z: -1},
		Rotation:      &host.AxisSpec{Z: 0.5},
		Display:       &capability.Display{Width: 640, Height: 1136, Scale: 2, PPI: 326},
	}
}

func staticCache(t *testing.T, spec host.Spec) *device.Cache {
	t.Helper()
	h, err := host.NewStatic(spec, host.WithStaticLogger(logging.ForTest(t)))
	require.NoError(t, err)
	return device.NewCache(h, device.WithLogger(logging.ForTest(t)))
}

func TestRunParseWithWriter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runParseWithWriter(&buf, []string{"iPhone6,1", "iPad2,5", "x86_64"}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "FAMILY")
	assert.Regexp(t, `^iPhone6,1\s+phone\s+6\s+1\s+iPhone 5s$`, lines[1])
	assert.Regexp(t, `^iPad2,5\s+pad\s+2\s+5\s+iPad mini$`, lines[2])
	assert.Regexp(t, `^x86_64\s+unknown\s+-\s+-\s+-$`, lines[3])
}

func TestRunCatalogWithWriter(t *testing.T) {
	t.Run("all families", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, runCatalogWithWriter(&buf, ""))
		out := buf.String()
		assert.Contains(t, out, "iPhone6,1")
		assert.Contains(t, out, "iPod4,1")
		assert.Contains(t, out, "iPad2,1")
	})

	t.Run("filtered", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, runCatalogWithWriter(&buf, "Pod"))
		out := buf.String()
		assert.Contains(t, out, "iPod4,1")
		assert.NotContains(t, out, "iPhone6,1")
		assert.NotContains(t, out, "iPad2,1")
	})

	t.Run("unknown family", func(t *testing.T) {
		err := runCatalogWithWriter(&bytes.Buffer{}, "watch")
		require.Error(t, err)
		assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
	})
}

func TestRunIdentifyWithWriter(t *testing.T) {
	tests := []struct {
		name    string
		spec    host.Spec
		want    []string
		wantNot []string
	}{
		{
			name: "phone",
			spec: iphoneSpec(),
			want: []string{"phone", "iPhone 5s", "Apple", "iPhone6,1", "6.1", "9.3.5", "6f9619ff-8b86-d011-b42d-00c04fc964ff", "+ gyroscope", "+ phone", "+ display"},
		},
		{
			name:    "pod without gyroscope",
			spec:    host.Spec{Hardware: "iPod4,1"},
			want:    []string{"pod", "ID:", "unsupported", "- gyroscope", "- phone", "+ battery", "+ accelerometer"},
			wantNot: []string{"+ gyroscope"},
		},
		{
			name:    "unknown hardware",
			spec:    host.Spec{Hardware: "x86_64"},
			want:    []string{"simulator", "Firmware:", "-"},
			wantNot: []string{"Model:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, runIdentifyWithWriter(&buf, staticCache(t, tt.spec).Current()))
			out := buf.String()
			for _, s := range tt.want {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.wantNot {
				assert.NotContains(t, out, s)
			}
		})
	}
}

// failingIDHost is a static host whose device ID lookup fails.
type failingIDHost struct {
	*host.Static
}

func (failingIDHost) DeviceID() (string, error) {
	return "", errors.ErrNotFound
}

func TestRunIdentifyWithWriter_DeviceIDFailure(t *testing.T) {
	h, err := host.NewStatic(iphoneSpec())
	require.NoError(t, err)
	d := device.NewCache(failingIDHost{Static: h}).Current()

	var buf bytes.Buffer
	err = runIdentifyWithWriter(&buf, d)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrNotFound)
	assert.Equal(t, errors.ExitSystem, errors.ExitCode(err))
	assert.Empty(t, buf.String())
}

func TestRunDialWithWriter(t *testing.T) {
	t.Run("phone dials", func(t *testing.T) {
		h, err := host.NewStatic(iphoneSpec())
		require.NoError(t, err)
		cache := device.NewCache(h)

		var buf bytes.Buffer
		require.NoError(t, runDialWithWriter(&buf, cache, "555 0100", logging.NewDiscard()))
		assert.Contains(t, buf.String(), "Dialed 555 0100")
		assert.Equal(t, []string{"555 0100"}, h.Dialed())
	})

	t.Run("default number", func(t *testing.T) {
		h, err := host.NewStatic(iphoneSpec())
		require.NoError(t, err)

		require.NoError(t, runDialWithWriter(&bytes.Buffer{}, device.NewCache(h), "", logging.NewDiscard()))
		assert.Len(t, h.Dialed(), 1)
	})

	t.Run("pad cannot dial", func(t *testing.T) {
		cache := staticCache(t, host.Spec{Hardware: "iPad2,1", Phone: true})
		err := runDialWithWriter(&bytes.Buffer{}, cache, "555 0100", logging.NewDiscard())
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrUnsupported))
		assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
	})

	t.Run("blank number", func(t *testing.T) {
		cache := staticCache(t, iphoneSpec())
		err := runDialWithWriter(&bytes.Buffer{}, cache, "   ", logging.NewDiscard())
		require.Error(t, err)
		assert.False(t, errors.Is(err, errors.ErrUnsupported))
		assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
	})
}

func TestRunSensorsWithWriter(t *testing.T) {
	t.Run("phone streams both sensors", func(t *testing.T) {
		d := staticCache(t, iphoneSpec()).Current()
		ctx := logging.NewContext(t.Context(), logging.ForTest(t))

		var buf bytes.Buffer
		require.NoError(t, runSensorsWithWriter(ctx, &buf, d, time.Millisecond, 3))
		out := buf.String()
		assert.Equal(t, 3, strings.Count(out, "accelerometer"))
		assert.Equal(t, 3, strings.Count(out, "gyroscope"))
		assert.Contains(t, out, "z=-1.0000")

		a, _ := d.Accelerometer().Get()
		assert.False(t, a.Running())
	})

	t.Run("pod has no gyroscope", func(t *testing.T) {
		spec := host.Spec{Hardware: "iPod4,1", Accelerometer: &host.AxisSpec{Z: -1}, Rotation: &host.AxisSpec{Z: 1}}
		d := staticCache(t, spec).Current()

		var buf bytes.Buffer
		require.NoError(t, runSensorsWithWriter(t.Context(), &buf, d, time.Millisecond, 2))
		assert.Equal(t, 2, strings.Count(buf.String(), "accelerometer"))
		assert.NotContains(t, buf.String(), "gyroscope")
	})

	t.Run("no sensor data", func(t *testing.T) {
		d := staticCache(t, host.Spec{Hardware: "iPhone6,1", Gyroscope: true}).Current()

		var buf bytes.Buffer
		err := runSensorsWithWriter(t.Context(), &buf, d, time.Millisecond, 1)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrUnsupported))
		assert.Contains(t, buf.String(), "accelerometer: unsupported")
		assert.Contains(t, buf.String(), "gyroscope: unsupported")
	})
}

func TestRunExportWithWriter(t *testing.T) {
	d := staticCache(t, iphoneSpec()).Current()

	t.Run("json to writer", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, runExportWithWriter(t.Context(), &buf, d, "", ""))
		out := buf.String()
		assert.Contains(t, out, `"kind": "phone"`)
		assert.Contains(t, out, `"hardware_version": "iPhone6,1"`)
		assert.Contains(t, out, `"level": 80`)
	})

	t.Run("format from extension", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "device.yaml")
		var buf bytes.Buffer
		require.NoError(t, runExportWithWriter(t.Context(), &buf, d, "", out))
		assert.Contains(t, buf.String(), "Wrote "+out)

		data, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Contains(t, string(data), "kind: phone")
	})

	t.Run("explicit format wins", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "device.out")
		require.NoError(t, runExportWithWriter(t.Context(), &bytes.Buffer{}, d, "toml", out))

		data, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Contains(t, string(data), "kind = 'phone'")
	})

	t.Run("unknown format", func(t *testing.T) {
		err := runExportWithWriter(t.Context(), &bytes.Buffer{}, d, "xml", "")
		require.Error(t, err)
		assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
	})

	t.Run("device id failure", func(t *testing.T) {
		h, err := host.NewStatic(iphoneSpec())
		require.NoError(t, err)
		broken := device.NewCache(failingIDHost{Static: h}).Current()

		var buf bytes.Buffer
		err = runExportWithWriter(t.Context(), &buf, broken, "", "")
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrNotFound)
		assert.Equal(t, errors.ExitSystem, errors.ExitCode(err))
		assert.Empty(t, buf.String())
	})
}

func TestSetupLogging_VerbosityFlags(t *testing.T) {
	origVerbosity, origQuiet := verbosity, quiet
	defer func() { verbosity, quiet = origVerbosity, origQuiet }()
	defer slog.SetDefault(slog.Default())

	tests := []struct {
		name      string
		verbosity int
		wantLevel slog.Level
	}{
		{"default (0)", 0, slog.LevelWarn},
		{"verbose (1)", 1, slog.LevelInfo},
		{"debug (2)", 2, slog.LevelDebug},
		{"trace (3)", 3, logging.LevelTrace},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verbosity = tt.verbosity
			require.NoError(t, setupLogging(rootCmd))

			logger := logging.FromContext(rootCmd.Context())
			assert.True(t, logger.Enabled(t.Context(), tt.wantLevel))
			if tt.wantLevel > logging.LevelTrace {
				assert.False(t, logger.Enabled(t.Context(), tt.wantLevel-4))
			}
		})
	}
}

func TestSetupLogging_QuietAndVerbose(t *testing.T) {
	origVerbosity, origQuiet := verbosity, quiet
	defer func() { verbosity, quiet = origVerbosity, origQuiet }()

	verbosity, quiet = 1, true
	err := setupLogging(rootCmd)
	require.Error(t, err)
	assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
}

func TestBuildHost(t *testing.T) {
	origProfile, origCfg := profileRef, cfg
	defer func() { profileRef, cfg = origProfile, origCfg }()

	t.Run("system by default", func(t *testing.T) {
		profileRef = ""
		h, err := buildHost(logging.NewDiscard())
		require.NoError(t, err)
		assert.IsType(t, &host.System{}, h)
	})

	t.Run("profile path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "pod.yaml")
		require.NoError(t, os.WriteFile(path, []byte("hardware: iPod4,1\n"), 0o600))
		profileRef = path

		h, err := buildHost(logging.NewDiscard())
		require.NoError(t, err)
		raw, err := h.HardwareIdentifier()
		require.NoError(t, err)
		assert.Equal(t, "iPod4,1", raw)
	})

	t.Run("missing profile", func(t *testing.T) {
		profileRef = filepath.Join(t.TempDir(), "missing.yaml")
		_, err := buildHost(logging.NewDiscard())
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrNotFound))
	})
}

func TestHardwareOverride(t *testing.T) {
	origFlag, origCfg := hardwareFlag, cfg
	defer func() { hardwareFlag, cfg = origFlag, origCfg }()

	cfg = config.Default()
	cfg.HardwareOverride = "iPad2,1"
	hardwareFlag = ""
	assert.Equal(t, "iPad2,1", hardwareOverride())

	hardwareFlag = "iPhone6,1"
	assert.Equal(t, "iPhone6,1", hardwareOverride())
}

func TestPrintVersion(t *testing.T) {
	var buf bytes.Buffer
	printVersion(&buf)
	assert.True(t, strings.HasPrefix(buf.String(), "hwprofile version "))
}
