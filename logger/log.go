// Package logger is the process wide logger. Output is structured by zap and filtered at
// the display level.
package logger

import (
	"encoding/json"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu        sync.RWMutex
	atom      = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	zapLogger *zap.SugaredLogger
)

// SetDisplayLevel drops messages below lvl. Unknown levels are rejected.
func SetDisplayLevel(lvl string) error {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(lvl)); err != nil {
		return fmt.Errorf("invalid display level %q: %w", lvl, err)
	}
	atom.SetLevel(l)
	Infof("Set logger display level to %v", lvl)
	return nil
}

// InitLogger builds the zap logger writing JSON to stdout. It is a no-op once a logger
// exists unless force is set.
func InitLogger(force bool) {
	mu.Lock()
	defer mu.Unlock()
	if !force && zapLogger != nil {
		return
	}

	cfgString := `{
		"encoding": "json",
		"outputPaths": ["stdout"],
		"errorOutputPaths": ["stderr"],
		"initialFields": {},
		"encoderConfig": {
		  "messageKey": "message",
		  "levelKey": "level",
		  "timeKey": "time",
		  "levelEncoder": "lowercase",
		  "timeEncoder": "iso8601"
		}
	  }`
	var cfg zap.Config
	if err := json.Unmarshal([]byte(cfgString), &cfg); err != nil {
		panic(err)
	}
	cfg.Level = atom

	l, err := cfg.Build()
	if err != nil {
		fmt.Printf("Error instantiating logger with config %v: %v\n", cfgString, err)
		l = zap.NewNop()
	}
	zapLogger = l.Sugar()
}

// UseLogger replaces the zap logger, typically with one writing to a test observer.
func UseLogger(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	zapLogger = l.Sugar()
}

// Sync flushes buffered log entries.
func Sync() error {
	return sugar().Sync()
}

func sugar() *zap.SugaredLogger {
	InitLogger(false)
	mu.RLock()
	defer mu.RUnlock()
	return zapLogger
}

func Debugf(template string, args ...interface{}) {
	sugar().Debugf(template, args...)
}

func Infof(template string, args ...interface{}) {
	sugar().Infof(template, args...)
}

func Warnf(template string, args ...interface{}) {
	sugar().Warnf(template, args...)
}

func Errorf(template string, args ...interface{}) {
	sugar().Errorf(template, args...)
}

// With returns a logger that adds key value pairs to every entry.
func With(keysAndValues ...interface{}) *zap.SugaredLogger {
	return sugar().With(keysAndValues...)
}
