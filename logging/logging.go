// Package logging contains the structured, zap backed logger used by the octree and its tests.
package logging

import (
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

// DefaultTimeFormatStr is the time format of console output. Times are always rendered in UTC.
const DefaultTimeFormatStr = "2006-01-02T15:04:05.000Z0700"

// Logger is what an octree reports to: splits at debug level and broken invariants at error
// level, each with key/value context.
type Logger interface {
	Debugw(msg string, keysAndValues ...interface{})
	Errorw(msg string, keysAndValues ...interface{})

	// Sublogger returns a logger whose name is the receiver's name suffixed with `subname`. It
	// writes to the same outputs as the receiver.
	Sublogger(subname string) Logger
	Sync() error
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

func (l zapLogger) Debugw(msg string, keysAndValues ...interface{}) {
	l.sugar.Debugw(msg, keysAndValues...)
}

func (l zapLogger) Errorw(msg string, keysAndValues ...interface{}) {
	l.sugar.Errorw(msg, keysAndValues...)
}

func (l zapLogger) Sublogger(subname string) Logger {
	return zapLogger{l.sugar.Named(subname)}
}

func (l zapLogger) Sync() error {
	return l.sugar.Sync()
}

// wrap skips one caller frame so entries point at the code calling the Logger methods.
func wrap(name string, core zapcore.Core) Logger {
	return zapLogger{zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)).Named(name).Sugar()}
}

// NewLogger returns a logger writing tab delimited console lines at or above level to out.
func NewLogger(name string, out zapcore.WriteSyncer, level zapcore.LevelEnabler) Logger {
	return wrap(name, zapcore.NewCore(newConsoleEncoder(), out, level))
}

// NewBlankLogger returns a logger that discards everything.
func NewBlankLogger(name string) Logger {
	return wrap(name, zapcore.NewNopCore())
}

// NewTestLogger returns a logger that writes Debug+ logs to the test object.
func NewTestLogger(tb testing.TB) Logger {
	logger, _ := NewObservedTestLogger(tb)
	return logger
}

// NewObservedTestLogger is like NewTestLogger but also saves logs to an in memory observer.
func NewObservedTestLogger(tb testing.TB) (Logger, *observer.ObservedLogs) {
	testCore := zaptest.NewLogger(tb, zaptest.Level(zapcore.DebugLevel)).Core()
	observerCore, observedLogs := observer.New(zapcore.DebugLevel)
	return wrap("", zapcore.NewTee(testCore, observerCore)), observedLogs
}

func newConsoleEncoder() zapcore.Encoder {
	return zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     encodeUTC,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	})
}

func encodeUTC(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.UTC().Format(DefaultTimeFormatStr))
}
