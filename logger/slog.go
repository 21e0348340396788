package logger

import (
	"context"
	"log/slog"
	"strings"

	"github.com/treelog/treelog/core"
)

// slogHandler adapts a Logger to slog.Handler so the hierarchy can back
// log/slog call sites. Enabled rides the cached enablement mask, so a
// disabled slog call costs one atomic load. Attrs and groups are rendered
// into the message text: this engine deliberately owns no structured
// format.
type slogHandler struct {
	logger *Logger
	attrs  []slog.Attr
	group  string
}

// SlogHandler returns a slog.Handler backed by this logger.
func (l *Logger) SlogHandler() slog.Handler {
	return &slogHandler{logger: l}
}

// Enabled reports whether the mapped level is live for the logger.
func (s *slogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return s.logger.IsEnabled(slogLevel(level))
}

// Handle emits the record through the hierarchy's ancestor walk.
func (s *slogHandler) Handle(_ context.Context, record slog.Record) error {
	lvl := slogLevel(record.Level)
	slot := s.logger.owner.CurrentContext()
	if !s.logger.IsEnabledIn(slot, lvl) {
		return nil
	}
	return s.logger.emit(slot, lvl, func() string {
		var b strings.Builder
		b.WriteString(record.Message)
		for _, a := range s.attrs {
			writeAttr(&b, "", a)
		}
		record.Attrs(func(a slog.Attr) bool {
			writeAttr(&b, s.group, a)
			return true
		})
		return b.String()
	})
}

// WithAttrs returns a handler with additional attributes, pre-prefixed
// with the current group.
func (s *slogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := make([]slog.Attr, len(s.attrs), len(s.attrs)+len(attrs))
	copy(next, s.attrs)
	for _, a := range attrs {
		if s.group != "" {
			a.Key = s.group + "." + a.Key
		}
		next = append(next, a)
	}
	return &slogHandler{logger: s.logger, attrs: next, group: s.group}
}

// WithGroup returns a handler with the given group name appended to the
// prefix applied to later attributes.
func (s *slogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	group := name
	if s.group != "" {
		group = s.group + "." + name
	}
	return &slogHandler{logger: s.logger, attrs: s.attrs, group: group}
}

func writeAttr(b *strings.Builder, group string, a slog.Attr) {
	b.WriteByte(' ')
	if group != "" {
		b.WriteString(group)
		b.WriteByte('.')
	}
	b.WriteString(a.Key)
	b.WriteByte('=')
	b.WriteString(a.Value.Resolve().String())
}

// slogLevel maps a slog.Level onto the engine's scale.
func slogLevel(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	case level >= slog.LevelDebug:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}
