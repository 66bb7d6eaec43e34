package capability

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/hwprofile/internal/errors"
	"github.com/thoreinstein/hwprofile/internal/logging"
)

type countingReader struct {
	calls atomic.Int64
}

func (c *countingReader) Read(context.Context) (Reading, error) {
	n := c.calls.Add(1)
	return Reading{X: float64(n), Y: 0, Z: 1}, nil
}

func TestSensor_StopNeverStarted(t *testing.T) {
	acc := NewAccelerometer(&countingReader{})
	acc.Stop()
	acc.Stop()
	assert.False(t, acc.Running())
}

func TestSensor_ConstructionDoesNotPoll(t *testing.T) {
	r := &countingReader{}
	_ = NewAccelerometer(r)
	_ = NewGyroscope(r)

	time.Sleep(20 * time.Millisecond)
	assert.Zero(t, r.calls.Load())
}

func TestSensor_StartDeliversReadings(t *testing.T) {
	acc := NewAccelerometer(&countingReader{}, WithLogger(logging.ForTest(t)))

	got := make(chan Reading, 16)
	unsubscribe := acc.Subscribe(func(r Reading) {
		select {
		case got <- r:
		default:
		}
	})
	defer unsubscribe()

	require.NoError(t, acc.Start(context.Background(), time.Millisecond))
	defer acc.Stop()

	select {
	case r := <-got:
		assert.False(t, r.At.IsZero(), "reading should be timestamped")
		assert.Equal(t, 1.0, r.Z)
	case <-time.After(2 * time.Second):
		t.Fatal("no reading delivered")
	}

	latest, ok := acc.Latest()
	assert.True(t, ok)
	assert.Equal(t, 1.0, latest.Z)
}

func TestSensor_StartIsIdempotent(t *testing.T) {
	gyro := NewGyroscope(&countingReader{})

	require.NoError(t, gyro.Start(context.Background(), time.Hour))
	done := gyro.done
	require.NoError(t, gyro.Start(context.Background(), time.Millisecond))

	assert.True(t, gyro.Running())
	assert.Equal(t, done, gyro.done, "second Start must not replace the running loop")

	gyro.Stop()
	assert.False(t, gyro.Running())
}

func TestSensor_ConcurrentStartStop(t *testing.T) {
	acc := NewAccelerometer(&countingReader{})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = acc.Start(context.Background(), time.Millisecond)
		}()
		go func() {
			defer wg.Done()
			acc.Stop()
		}()
	}
	wg.Wait()

	acc.Stop()
	assert.False(t, acc.Running())
}

func TestSensor_ParentContextEndsPolling(t *testing.T) {
	acc := NewAccelerometer(&countingReader{})
	ctx, cancel := context.WithCancel(context.Background())

	require.NoError(t, acc.Start(ctx, time.Millisecond))
	cancel()

	require.Eventually(t, func() bool { return !acc.Running() }, 2*time.Second, time.Millisecond)

	// restartable after the parent context ended
	require.NoError(t, acc.Start(context.Background(), time.Millisecond))
	assert.True(t, acc.Running())
	acc.Stop()
}

func TestSensor_Unsubscribe(t *testing.T) {
	acc := NewAccelerometer(&countingReader{})
	var n atomic.Int64
	unsubscribe := acc.Subscribe(func(Reading) { n.Add(1) })
	unsubscribe()
	unsubscribe()

	require.NoError(t, acc.Start(context.Background(), time.Millisecond))
	require.Eventually(t, func() bool { _, ok := acc.Latest(); return ok }, 2*time.Second, time.Millisecond)
	acc.Stop()

	assert.Zero(t, n.Load())
}

func TestSensor_Errors(t *testing.T) {
	err := NewGyroscope(nil).Start(context.Background(), time.Second)
	assert.ErrorIs(t, err, errors.ErrUnsupported)
	assert.Contains(t, err.Error(), "gyroscope.start")

	err = NewAccelerometer(&countingReader{}).Start(context.Background(), 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accelerometer.start")
}

func TestSensor_ReadFailureKeepsPolling(t *testing.T) {
	var calls atomic.Int64
	reader := SensorReaderFunc(func(context.Context) (Reading, error) {
		if calls.Add(1) == 1 {
			return Reading{}, errors.New("transient")
		}
		return Reading{X: 2}, nil
	})
	acc := NewAccelerometer(reader, WithLogger(logging.ForTest(t)))

	require.NoError(t, acc.Start(context.Background(), time.Millisecond))
	defer acc.Stop()

	require.Eventually(t, func() bool {
		r, ok := acc.Latest()
		return ok && r.X == 2
	}, 2*time.Second, time.Millisecond)
}

func TestSensor_StopWhileSubscriberQueriesState(t *testing.T) {
	acc := NewAccelerometer(&countingReader{})

	entered := make(chan struct{}, 1)
	unsubscribe := acc.Subscribe(func(Reading) {
		_ = acc.Running()
		select {
		case entered <- struct{}{}:
		default:
		}
		time.Sleep(20 * time.Millisecond)
		_ = acc.Running()
	})
	defer unsubscribe()

	require.NoError(t, acc.Start(context.Background(), time.Millisecond))
	<-entered

	stopped := make(chan struct{})
	go func() {
		acc.Stop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return while a subscriber called Running")
	}
	assert.False(t, acc.Running())
}
