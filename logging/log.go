// Copyright 2015 The Prometheus Authors
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Changes from original
// - Levels carried as a local type mapped onto logrus levels
// - Caller file, line and function recorded on every entry
// - Error and worse also dump a goroutine stack trace
// - Shared base logger plus per-caller loggers behind one interface
// - Added a testing.TB-backed logger for tests
// - No kingpin, no error log writer

/*
Package logging is a thin veneer over logrus.

To log through the shared base logger:

	logging.Base().Infof("minted key %v", k)

Or through a dedicated one:

	log := logging.NewLogger()
	log.SetLevel(logging.Debug)
	log.Warn("renumbering keys")
*/
package logging

import (
	"io"
	"runtime"
	"runtime/debug"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

// Level selects how much a Logger emits. The numeric order matters: a
// logger set to some level emits that level and everything more severe.
type Level uint32

const (
	// Panic logs and then panics with the formatted message.
	Panic Level = iota
	// Fatal logs and then calls os.Exit(1), whatever the configured level.
	Fatal
	// Error marks failures that someone should look at. Entries at this
	// level and above carry a stack trace.
	Error
	// Warn marks conditions worth eyes but not action.
	Warn
	// Info narrates normal operation.
	Info
	// Debug is for development noise.
	Debug
)

const stackPrefix = "[Stack]"

// Fields names the extra key/value pairs attached to an entry.
type Fields = logrus.Fields

// A Logger emits leveled, structured log entries. The unexported method
// keeps implementations confined to this package.
type Logger interface {
	Debug(...interface{})
	Debugln(...interface{})
	Debugf(string, ...interface{})

	Info(...interface{})
	Infoln(...interface{})
	Infof(string, ...interface{})

	Warn(...interface{})
	Warnln(...interface{})
	Warnf(string, ...interface{})

	Error(...interface{})
	Errorln(...interface{})
	Errorf(string, ...interface{})

	Fatal(...interface{})
	Fatalln(...interface{})
	Fatalf(string, ...interface{})

	Panic(...interface{})
	Panicln(...interface{})
	Panicf(string, ...interface{})

	// With returns a Logger that attaches key=value to every entry.
	With(key string, value interface{}) Logger

	// WithFields returns a Logger that attaches all the given fields.
	WithFields(Fields) Logger

	SetLevel(Level)
	GetLevel() Level

	// SetOutput redirects entries, stderr being the starting point.
	SetOutput(io.Writer)

	// SetJSONFormatter switches entries from text lines to JSON.
	SetJSONFormatter()

	// source stamps an entry with the caller's file, line and function.
	source() *logrus.Entry
}

var baseLogger Logger

func init() {
	base := NewLogger()
	base.SetLevel(Warn)
	baseLogger = base
}

// Base returns the logger shared by code that was not handed its own.
func Base() Logger {
	return baseLogger
}

// NewLogger returns an independent Logger writing text lines to stderr at
// Info level.
func NewLogger() Logger {
	l := logrus.New()
	if tf, ok := l.Formatter.(*logrus.TextFormatter); ok {
		tf.TimestampFormat = "2006-01-02T15:04:05.000000 -0700"
	}
	return logger{logrus.NewEntry(l)}
}

// TestingLog returns a Logger that routes entries into the test harness,
// so only a failing test shows them.
func TestingLog(t testing.TB) Logger {
	l := NewLogger()
	l.SetLevel(Warn)
	l.SetOutput(testLogWriter{t})
	return l
}

type testLogWriter struct {
	t testing.TB
}

func (w testLogWriter) Write(p []byte) (n int, err error) {
	w.t.Log(strings.TrimSuffix(string(p), "\n"))
	return len(p), nil
}

type logger struct {
	entry *logrus.Entry
}

func (l logger) Debug(args ...interface{}) {
	l.source().Debug(args...)
}

func (l logger) Debugln(args ...interface{}) {
	l.source().Debugln(args...)
}

func (l logger) Debugf(format string, args ...interface{}) {
	l.source().Debugf(format, args...)
}

func (l logger) Info(args ...interface{}) {
	l.source().Info(args...)
}

func (l logger) Infoln(args ...interface{}) {
	l.source().Infoln(args...)
}

func (l logger) Infof(format string, args ...interface{}) {
	l.source().Infof(format, args...)
}

func (l logger) Warn(args ...interface{}) {
	l.source().Warn(args...)
}

func (l logger) Warnln(args ...interface{}) {
	l.source().Warnln(args...)
}

func (l logger) Warnf(format string, args ...interface{}) {
	l.source().Warnf(format, args...)
}

func (l logger) Error(args ...interface{}) {
	l.source().Errorln(stackPrefix, string(debug.Stack()))
	l.source().Error(args...)
}

func (l logger) Errorln(args ...interface{}) {
	l.source().Errorln(stackPrefix, string(debug.Stack()))
	l.source().Errorln(args...)
}

func (l logger) Errorf(format string, args ...interface{}) {
	l.source().Errorln(stackPrefix, string(debug.Stack()))
	l.source().Errorf(format, args...)
}

func (l logger) Fatal(args ...interface{}) {
	l.source().Errorln(stackPrefix, string(debug.Stack()))
	l.source().Fatal(args...)
}

func (l logger) Fatalln(args ...interface{}) {
	l.source().Errorln(stackPrefix, string(debug.Stack()))
	l.source().Fatalln(args...)
}

func (l logger) Fatalf(format string, args ...interface{}) {
	l.source().Errorln(stackPrefix, string(debug.Stack()))
	l.source().Fatalf(format, args...)
}

func (l logger) Panic(args ...interface{}) {
	l.source().Errorln(stackPrefix, string(debug.Stack()))
	l.source().Panic(args...)
}

func (l logger) Panicln(args ...interface{}) {
	l.source().Errorln(stackPrefix, string(debug.Stack()))
	l.source().Panicln(args...)
}

func (l logger) Panicf(format string, args ...interface{}) {
	l.source().Errorln(stackPrefix, string(debug.Stack()))
	l.source().Panicf(format, args...)
}

func (l logger) With(key string, value interface{}) Logger {
	return logger{l.entry.WithField(key, value)}
}

func (l logger) WithFields(fields Fields) Logger {
	return logger{l.source().WithFields(fields)}
}

func (l logger) SetLevel(lvl Level) {
	l.entry.Logger.Level = logrus.Level(lvl)
}

func (l logger) GetLevel() Level {
	return Level(l.entry.Logger.Level)
}

func (l logger) SetOutput(w io.Writer) {
	l.entry.Logger.Out = w
}

func (l logger) SetJSONFormatter() {
	l.entry.Logger.Formatter = &logrus.JSONFormatter{TimestampFormat: "2006-01-02T15:04:05.000000Z07:00"}
}

func (l logger) source() *logrus.Entry {
	event := l.entry

	// two frames up: past source itself and the Logger method calling it
	pc, file, line, ok := runtime.Caller(2)
	if !ok {
		return event
	}
	event = event.WithFields(logrus.Fields{
		"file": file[strings.LastIndex(file, "/")+1:],
		"line": line,
	})
	if fn := runtime.FuncForPC(pc); fn != nil {
		event = event.WithField("function", fn.Name())
	}
	return event
}
