package layout

import (
	"bytes"
	"io"
	"time"

	"github.com/treelog/treelog/core"
)

// TextLayout renders records as human-readable text:
//
//	TIMESTAMP [LEVEL] category: message\n
type TextLayout struct {
	Config
}

// NewTextLayout creates a new text layout
func NewTextLayout(cfg Config) *TextLayout {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339
	}
	return &TextLayout{Config: cfg}
}

// pre-formatted level strings to avoid multiple WriteString calls
var levelBrackets = [...]string{
	core.TraceLevel: " [TRACE] ",
	core.DebugLevel: " [DEBUG] ",
	core.InfoLevel:  " [INFO] ",
	core.WarnLevel:  " [WARN] ",
	core.ErrorLevel: " [ERROR] ",
	core.FatalLevel: " [FATAL] ",
}

// ANSI-colored variants of levelBrackets
var levelBracketsColor = [...]string{
	core.TraceLevel: " \x1b[90m[TRACE]\x1b[0m ",
	core.DebugLevel: " \x1b[36m[DEBUG]\x1b[0m ",
	core.InfoLevel:  " \x1b[32m[INFO]\x1b[0m ",
	core.WarnLevel:  " \x1b[33m[WARN]\x1b[0m ",
	core.ErrorLevel: " \x1b[31m[ERROR]\x1b[0m ",
	core.FatalLevel: " \x1b[35m[FATAL]\x1b[0m ",
}

// Format renders a record as text
func (f *TextLayout) Format(rec *core.Record) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatToBuffer(rec, buf)

	// Copy buffer content to return
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo renders a record and writes it directly to the writer
func (f *TextLayout) FormatTo(rec *core.Record, w io.Writer) error {
	buf := getBuffer()

	f.formatToBuffer(rec, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// formatToBuffer writes the formatted record into the given buffer
func (f *TextLayout) formatToBuffer(rec *core.Record, buf *bytes.Buffer) {
	// Timestamp - use AppendFormat to avoid string allocation
	buf.Write(rec.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))

	// Level - use pre-formatted string
	brackets := levelBrackets[:]
	if f.Color {
		brackets = levelBracketsColor[:]
	}
	if int(rec.Level) < len(brackets) && rec.Level >= 0 {
		buf.WriteString(brackets[rec.Level])
	} else {
		buf.WriteString(" [UNKNOWN] ")
	}

	// Originating category, empty for the root logger
	if rec.Category != "" {
		buf.WriteString(rec.Category)
		buf.WriteString(": ")
	}

	buf.WriteString(rec.Message())
	buf.WriteByte('\n')
}
