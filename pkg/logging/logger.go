// Package logging provides structured logging.
// Logging details can travel with the context through the call stack.
package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"sync"
	"time"

	"go.llib.dev/testcase/clock"
)

type Logger struct {
	// Out is where the entries are written, os.Stdout by default.
	Out io.Writer
	// Level is the logging level.
	// The default Level is LevelInfo.
	Level Level
	// Hijack takes over the logging, and the entry is not written to Out.
	Hijack HijackFunc
	// TestingTB marks the logging methods as test helpers.
	TestingTB testingTB

	outLock sync.Mutex
}

type HijackFunc func(ctx context.Context, level Level, msg string, fields Fields)

func (l *Logger) Debug(ctx context.Context, msg string, ds ...Detail) {
	l.tb().Helper()
	l.Log(ctx, LevelDebug, msg, ds...)
}

func (l *Logger) Info(ctx context.Context, msg string, ds ...Detail) {
	l.tb().Helper()
	l.Log(ctx, LevelInfo, msg, ds...)
}

func (l *Logger) Warn(ctx context.Context, msg string, ds ...Detail) {
	l.tb().Helper()
	l.Log(ctx, LevelWarn, msg, ds...)
}

func (l *Logger) Error(ctx context.Context, msg string, ds ...Detail) {
	l.tb().Helper()
	l.Log(ctx, LevelError, msg, ds...)
}

// Enabled reports whether an entry on the given level would be logged.
// Use it to skip the construction of expensive details.
func (l *Logger) Enabled(level Level) bool {
	return l.Hijack != nil || isLevelEnabled(l.getLevel(), level)
}

func (l *Logger) Log(ctx context.Context, level Level, msg string, ds ...Detail) {
	l.tb().Helper()
	if l.isHijacked(ctx, level, msg, ds) {
		return
	}
	if !isLevelEnabled(l.getLevel(), level) {
		return
	}
	e := l.toEntry(ctx, ds)
	e["level"] = level
	e["message"] = msg
	e["timestamp"] = clock.Now().Format(time.RFC3339)
	bs, err := json.Marshal(e)
	if err != nil {
		return
	}
	l.outLock.Lock()
	defer l.outLock.Unlock()
	_, _ = l.writer().Write(append(bs, '\n'))
}

func (l *Logger) isHijacked(ctx context.Context, level Level, msg string, ds []Detail) bool {
	if l.Hijack == nil {
		return false
	}
	l.Hijack(ctx, level, msg, Fields(l.toEntry(ctx, ds)))
	return true
}

func (l *Logger) toEntry(ctx context.Context, ds []Detail) entry {
	e := make(entry)
	for _, d := range detailsOf(ctx) {
		d.addTo(l, e)
	}
	for _, d := range ds {
		if d == nil {
			continue
		}
		d.addTo(l, e)
	}
	return e
}

func (l *Logger) writer() io.Writer {
	if l.Out != nil {
		return l.Out
	}
	return os.Stdout
}

func (l *Logger) getLevel() Level {
	if len(l.Level) == 0 {
		return defaultLevel
	}
	return l.Level
}

type testingTB interface {
	Helper()
	Cleanup(func())
}

var fallbackTestingTB = (*nullTestingTB)(nil)

func (l *Logger) tb() testingTB {
	if l.TestingTB != nil {
		return l.TestingTB
	}
	return fallbackTestingTB
}

type nullTestingTB struct{}

func (*nullTestingTB) Helper() {}

func (*nullTestingTB) Cleanup(func()) {}

// Stub replaces Default with a debug level Logger that records into the returned output.
// Default is restored at the end of the test.
func Stub(tb testingTB) (*Logger, StubOutput) {
	tb.Helper()
	og := Default
	tb.Cleanup(func() { Default = og })
	buf := &stubOutput{}
	l := &Logger{
		TestingTB: tb,
		Level:     LevelDebug,
		Out:       buf,
	}
	Default = l
	return l, buf
}

// StubOutput is the recording of a stubbed Logger.
type StubOutput interface {
	String() string
}

type stubOutput struct {
	m   sync.Mutex
	buf bytes.Buffer
}

func (o *stubOutput) Write(p []byte) (n int, err error) {
	o.m.Lock()
	defer o.m.Unlock()
	return o.buf.Write(p)
}

func (o *stubOutput) String() string {
	o.m.Lock()
	defer o.m.Unlock()
	return o.buf.String()
}
