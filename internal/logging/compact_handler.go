// SPDX-License-Identifier: MIT
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"sync"
	"time"
)

// CompactHandler formats records for a terminal:
//
//	[LEVEL] HH:MM:SS message | key=value key=value
type CompactHandler struct {
	opts  slog.HandlerOptions
	mu    *sync.Mutex
	out   io.Writer
	attrs []slog.Attr // accumulated by WithAttrs
	group string      // prefix from WithGroup
}

// NewCompactHandler creates a handler writing to w. A nil opts logs at Info.
func NewCompactHandler(w io.Writer, opts *slog.HandlerOptions) *CompactHandler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}

	return &CompactHandler{
		opts: *opts,
		mu:   &sync.Mutex{},
		out:  w,
	}
}

func (h *CompactHandler) Enabled(_ context.Context, level slog.Level) bool {
	minLevel := slog.LevelInfo
	if h.opts.Level != nil {
		minLevel = h.opts.Level.Level()
	}

	return level >= minLevel
}

func (h *CompactHandler) Handle(_ context.Context, r slog.Record) error {
	buf := make([]byte, 0, 256)

	switch r.Level {
	case slog.LevelDebug:
		buf = append(buf, "[DEBUG] "...)
	case slog.LevelInfo:
		buf = append(buf, "[INFO]  "...)
	case slog.LevelWarn:
		buf = append(buf, "[WARN]  "...)
	case slog.LevelError:
		buf = append(buf, "[ERROR] "...)
	default:
		buf = append(buf, fmt.Sprintf("[%-5s] ", r.Level.String())...)
	}

	if !r.Time.IsZero() {
		buf = r.Time.AppendFormat(buf, time.TimeOnly)
		buf = append(buf, ' ')
	}
	buf = append(buf, r.Message...)

	sep := false
	emit := func(a slog.Attr) bool {
		if a.Equal(slog.Attr{}) {
			return true
		}
		if !sep {
			buf = append(buf, " |"...)
			sep = true
		}
		buf = append(buf, ' ')
		buf = h.appendAttr(buf, a)

		return true
	}
	for _, a := range h.attrs {
		emit(a)
	}
	r.Attrs(emit)
	buf = append(buf, '\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.out.Write(buf)

	return err
}

func (h *CompactHandler) appendAttr(buf []byte, a slog.Attr) []byte {
	a.Value = a.Value.Resolve()
	key := a.Key
	if h.group != "" {
		key = h.group + "." + key
	}

	switch a.Key {
	case "error", "err":
		buf = append(buf, key...)
		buf = append(buf, '=')
		return strconv.AppendQuote(buf, fmt.Sprint(a.Value.Any()))
	}

	buf = append(buf, key...)
	buf = append(buf, '=')

	v := a.Value
	switch v.Kind() {
	case slog.KindString:
		if s := v.String(); needsQuoting(s) {
			buf = strconv.AppendQuote(buf, s)
		} else {
			buf = append(buf, s...)
		}
	case slog.KindInt64:
		buf = strconv.AppendInt(buf, v.Int64(), 10)
	case slog.KindUint64:
		buf = strconv.AppendUint(buf, v.Uint64(), 10)
	case slog.KindFloat64:
		buf = strconv.AppendFloat(buf, v.Float64(), 'g', -1, 64)
	case slog.KindBool:
		buf = strconv.AppendBool(buf, v.Bool())
	case slog.KindDuration:
		buf = append(buf, v.Duration().String()...)
	case slog.KindTime:
		buf = v.Time().AppendFormat(buf, time.RFC3339)
	default:
		buf = append(buf, fmt.Sprintf("%v", v.Any())...)
	}

	return buf
}

func needsQuoting(s string) bool {
	if s == "" {
		return true
	}
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '"' || r == '=' {
			return true
		}
	}

	return false
}

func (h *CompactHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)

	return &CompactHandler{opts: h.opts, mu: h.mu, out: h.out, attrs: merged, group: h.group}
}

func (h *CompactHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	group := name
	if h.group != "" {
		group = h.group + "." + name
	}

	return &CompactHandler{opts: h.opts, mu: h.mu, out: h.out, attrs: h.attrs, group: group}
}
