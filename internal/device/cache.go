package device

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/thoreinstein/hwprofile/internal/hardware"
)

// Cache holds the process-lifetime current device. The zero value is not
// usable; create one with NewCache.
type Cache struct {
	host Host
	opts options

	once     sync.Once
	device   *Device
	resolved atomic.Bool
}

// NewCache returns a Cache that resolves from host on first use.
func NewCache(host Host, opts ...Option) *Cache {
	return &Cache{
		host: host,
		opts: newOptions(opts),
	}
}

// Current returns the current device, resolving it on the first call.
// Every call returns the same pointer.
func (c *Cache) Current() *Device {
	c.once.Do(c.resolve)
	return c.device
}

// Resolved reports whether Current has completed resolution.
func (c *Cache) Resolved() bool {
	return c.resolved.Load()
}

func (c *Cache) resolve() {
	logger := c.opts.logger
	raw := c.opts.override

	if raw == "" && c.host != nil {
		var err error
		raw, err = c.host.HardwareIdentifier()
		if err != nil {
			logger.Warn("hardware identifier unavailable, using simulator", "error", err)
			raw = ""
		}
	}

	id := hardware.Parse(raw)
	if !id.Valid() {
		logger.Info("unrecognized hardware, using simulator", slog.String("hardware", raw))
	}

	c.device = Resolve(id, c.host, WithLogger(logger))
	c.resolved.Store(true)
}
