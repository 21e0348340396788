package appender

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/treelog/treelog/core"
	"github.com/treelog/treelog/layout"
)

func newRecord(level core.Level, category, msg string) *core.Record {
	return core.GetRecord(level, category, func() string { return msg })
}

func TestConsole_Append(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(ConsoleConfig{Writer: &buf})

	rec := newRecord(core.InfoLevel, "svc", "hello")
	if err := c.Append(rec); err != nil {
		t.Fatalf("Append returned error: %v", err)
	}
	core.PutRecord(rec)

	out := buf.String()
	if !strings.Contains(out, "[INFO] svc: hello") {
		t.Errorf("unexpected output: %q", out)
	}
	// A plain buffer is not a terminal, so auto color stays off.
	if strings.Contains(out, "\x1b[") {
		t.Errorf("output contains ANSI codes for a non-terminal writer: %q", out)
	}

	if got := c.Stats(); got.Processed != 1 || got.Failed != 0 {
		t.Errorf("Stats() = %+v, want 1 processed, 0 failed", got)
	}
}

func TestConsole_ColorAlways(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(ConsoleConfig{Writer: &buf, Color: ColorAlways})

	rec := newRecord(core.ErrorLevel, "svc", "boom")
	if err := c.Append(rec); err != nil {
		t.Fatalf("Append returned error: %v", err)
	}
	core.PutRecord(rec)

	if !strings.Contains(buf.String(), "\x1b[31m[ERROR]\x1b[0m") {
		t.Errorf("ColorAlways output missing ANSI codes: %q", buf.String())
	}
}

func TestConsole_ConcurrentAppendsDoNotInterleave(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(ConsoleConfig{Writer: &buf, Layout: layout.NewTextLayout(layout.Config{})})

	var wg sync.WaitGroup
	const n = 50
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec := newRecord(core.InfoLevel, "svc", strings.Repeat("x", 64))
			if err := c.Append(rec); err != nil {
				t.Errorf("Append returned error: %v", err)
			}
			core.PutRecord(rec)
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != n {
		t.Fatalf("got %d lines, want %d", len(lines), n)
	}
	for _, line := range lines {
		if !strings.HasSuffix(line, strings.Repeat("x", 64)) {
			t.Errorf("interleaved line: %q", line)
		}
	}
}
