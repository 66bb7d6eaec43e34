package logging

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/fatih/color"
)

// timeFormat has millisecond resolution so sensor polling stays readable.
const timeFormat = "15:04:05.000"

// palette colors the parts of a text log line. A nil palette prints plain.
type palette struct {
	time  *color.Color
	key   *color.Color
	level map[slog.Level]*color.Color
}

func newPalette() *palette {
	return &palette{
		time: color.New(color.FgHiBlack),
		key:  color.New(color.FgCyan),
		level: map[slog.Level]*color.Color{
			LevelTrace:      color.New(color.FgHiBlack),
			slog.LevelDebug: color.New(color.FgMagenta),
			slog.LevelInfo:  color.New(color.FgGreen),
			slog.LevelWarn:  color.New(color.FgYellow),
			slog.LevelError: color.New(color.FgRed, color.Bold),
		},
	}
}

// levelColor returns the color of the highest named level at or below l.
func (p *palette) levelColor(l slog.Level) *color.Color {
	for _, named := range []slog.Level{slog.LevelError, slog.LevelWarn, slog.LevelInfo, slog.LevelDebug} {
		if l >= named {
			return p.level[named]
		}
	}
	return p.level[LevelTrace]
}

// Handler is a slog.Handler writing one human-readable line per record:
//
//	15:04:05.000 INFO  message key=value group.key=value
//
// Values of sensitive keys are masked. Colors are used only when the
// writer is a color-capable terminal.
type Handler struct {
	level   slog.Leveler
	out     io.Writer
	mu      *sync.Mutex
	colors  *palette
	prefix  string
	preattr []byte
}

// NewHandler creates a text handler writing to out.
func NewHandler(out io.Writer, opts *slog.HandlerOptions) *Handler {
	h := &Handler{out: out, mu: &sync.Mutex{}, level: slog.LevelInfo}
	if opts != nil && opts.Level != nil {
		h.level = opts.Level
	}
	if SupportsColor(out) {
		h.colors = newPalette()
	}
	return h
}

// Enabled reports whether the handler handles records at the given level.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats r into a single line and writes it.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var buf bytes.Buffer

	if !r.Time.IsZero() {
		h.paint(&buf, h.timeColor(), r.Time.Format(timeFormat))
		buf.WriteByte(' ')
	}

	name := fmt.Sprintf("%-5s", levelName(r.Level))
	if h.colors != nil {
		name = h.colors.levelColor(r.Level).Sprint(name)
	}
	buf.WriteString(name)
	buf.WriteByte(' ')
	buf.WriteString(r.Message)

	buf.Write(h.preattr)
	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(&buf, h.prefix, a)
		return true
	})
	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.out.Write(buf.Bytes())
	return err
}

func levelName(l slog.Level) string {
	if l <= LevelTrace {
		return "TRACE"
	}
	return l.String()
}

func (h *Handler) timeColor() *color.Color {
	if h.colors == nil {
		return nil
	}
	return h.colors.time
}

func (h *Handler) paint(buf *bytes.Buffer, c *color.Color, s string) {
	if c != nil {
		s = c.Sprint(s)
	}
	buf.WriteString(s)
}

// writeAttr renders a as " key=value", flattening groups into dotted keys.
func (h *Handler) writeAttr(buf *bytes.Buffer, prefix string, a slog.Attr) {
	v := a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if v.Kind() == slog.KindGroup {
		inner := prefix
		if a.Key != "" {
			inner += a.Key + "."
		}
		for _, ga := range v.Group() {
			h.writeAttr(buf, inner, ga)
		}
		return
	}

	buf.WriteByte(' ')
	var keyColor *color.Color
	if h.colors != nil {
		keyColor = h.colors.key
	}
	h.paint(buf, keyColor, prefix+a.Key)
	buf.WriteByte('=')

	s := v.String()
	if ShouldMask(a.Key) {
		s = MaskValue(s)
	}
	buf.WriteString(s)
}

// WithAttrs returns a Handler that renders attrs on every record.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	var buf bytes.Buffer
	buf.Write(h.preattr)
	for _, a := range attrs {
		h.writeAttr(&buf, h.prefix, a)
	}
	h2 := *h
	h2.preattr = buf.Bytes()
	return &h2
}

// WithGroup returns a Handler that prefixes later keys with name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := *h
	h2.prefix = h.prefix + name + "."
	return &h2
}
