package capability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/thoreinstein/hwprofile/internal/errors"
	"github.com/thoreinstein/hwprofile/internal/logging"
)

// Reading is a three-axis sample. Accelerometer readings are in g,
// gyroscope readings in radians per second.
type Reading struct {
	X  float64   `json:"x" yaml:"x" toml:"x" cbor:"x"`
	Y  float64   `json:"y" yaml:"y" toml:"y" cbor:"y"`
	Z  float64   `json:"z" yaml:"z" toml:"z" cbor:"z"`
	At time.Time `json:"at" yaml:"at" toml:"at" cbor:"at"`
}

// SensorReader returns the current sample from a hardware sensor.
type SensorReader interface {
	Read(ctx context.Context) (Reading, error)
}

// SensorReaderFunc adapts a function to SensorReader.
type SensorReaderFunc func(ctx context.Context) (Reading, error)

// Read calls f(ctx).
func (f SensorReaderFunc) Read(ctx context.Context) (Reading, error) {
	return f(ctx)
}

// SensorOption configures a Sensor.
type SensorOption func(*Sensor)

// WithLogger sets the logger used for read failures and per-reading traces.
func WithLogger(l *slog.Logger) SensorOption {
	return func(s *Sensor) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock overrides time.Now for reading timestamps.
func WithClock(now func() time.Time) SensorOption {
	return func(s *Sensor) {
		if now != nil {
			s.now = now
		}
	}
}

// Sensor polls a SensorReader on an interval and fans readings out to
// subscribers. It is safe for concurrent use.
type Sensor struct {
	name   string
	reader SensorReader
	logger *slog.Logger
	now    func() time.Time

	// mu guards the polling state.
	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}

	subMu  sync.RWMutex
	subs   map[uint64]func(Reading)
	nextID uint64
	last   Reading
	seen   bool
}

func newSensor(name string, reader SensorReader, opts ...SensorOption) *Sensor {
	s := &Sensor{
		name:   name,
		reader: reader,
		logger: logging.NewDiscard(),
		now:    time.Now,
		subs:   make(map[uint64]func(Reading)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("sensor", name)
	return s
}

// Name returns the sensor name ("accelerometer" or "gyroscope").
func (s *Sensor) Name() string {
	return s.name
}

// Start begins polling every interval until Stop is called or ctx ends.
// Calling Start on a running sensor does nothing.
func (s *Sensor) Start(ctx context.Context, interval time.Duration) error {
	op := s.name + ".start"
	if s.reader == nil {
		return errors.Unsupported(op)
	}
	if interval <= 0 {
		return errors.Op(op, errors.Newf("invalid interval %s", interval))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.runningLocked() {
		return nil
	}
	if s.cancel != nil {
		// previous run ended with its parent context
		s.cancel()
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	s.cancel = cancel
	s.done = done

	go s.poll(ctx, interval, done)
	s.logger.Debug("sensor started", "interval", interval)
	return nil
}

// Stop halts polling and waits for the polling goroutine to exit. The
// lock is released before waiting, so subscribers may call Running or
// Start while Stop is in progress. Stop must not be called from a
// subscriber callback.
func (s *Sensor) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
	s.logger.Debug("sensor stopped")
}

// Running reports whether the sensor is polling.
func (s *Sensor) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.runningLocked()
}

func (s *Sensor) runningLocked() bool {
	if s.done == nil {
		return false
	}
	select {
	case <-s.done:
		return false
	default:
		return true
	}
}

// Subscribe registers fn for every reading and returns a function that
// removes it. Callbacks run on the polling goroutine.
func (s *Sensor) Subscribe(fn func(Reading)) (unsubscribe func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	id := s.nextID
	s.nextID++
	s.subs[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subMu.Lock()
			delete(s.subs, id)
			s.subMu.Unlock()
		})
	}
}

// Latest returns the most recent reading, if any.
func (s *Sensor) Latest() (Reading, bool) {
	s.subMu.RLock()
	defer s.subMu.RUnlock()
	return s.last, s.seen
}

func (s *Sensor) poll(ctx context.Context, interval time.Duration, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sample(ctx)
		}
	}
}

func (s *Sensor) sample(ctx context.Context) {
	r, err := s.reader.Read(ctx)
	if err != nil {
		if ctx.Err() == nil {
			s.logger.Warn("sensor read failed", "error", err)
		}
		return
	}
	if r.At.IsZero() {
		r.At = s.now()
	}
	s.logger.Log(ctx, logging.LevelTrace, "reading", "x", r.X, "y", r.Y, "z", r.Z)

	s.subMu.Lock()
	s.last, s.seen = r, true
	subs := make([]func(Reading), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.subMu.Unlock()

	for _, fn := range subs {
		fn(r)
	}
}

// Accelerometer measures linear acceleration.
type Accelerometer struct {
	*Sensor
}

// NewAccelerometer returns an Accelerometer polling reader. A nil reader
// yields an Accelerometer whose Start reports ErrUnsupported.
func NewAccelerometer(reader SensorReader, opts ...SensorOption) *Accelerometer {
	return &Accelerometer{Sensor: newSensor("accelerometer", reader, opts...)}
}

// Gyroscope measures rotation rate. Devices without gyroscope hardware
// carry no Gyroscope at all.
type Gyroscope struct {
	*Sensor
}

// NewGyroscope returns a Gyroscope polling reader.
func NewGyroscope(reader SensorReader, opts ...SensorOption) *Gyroscope {
	return &Gyroscope{Sensor: newSensor("gyroscope", reader, opts...)}
}
