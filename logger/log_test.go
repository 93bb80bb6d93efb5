package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observe(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(atom)
	UseLogger(zap.New(core))
	t.Cleanup(func() {
		atom.SetLevel(zapcore.InfoLevel)
		InitLogger(true)
	})
	return logs
}

func TestDisplayLevelFilters(t *testing.T) {
	logs := observe(t)
	if err := SetDisplayLevel("warn"); err != nil {
		t.Fatal(err)
	}
	Infof("hidden")
	Debugf("hidden %d", 1)
	Warnf("shown %d", 2)
	Errorf("shown")

	if logs.Len() != 2 {
		t.Fatalf("got %d entries, expected 2: %v", logs.Len(), logs.All())
	}
	if logs.FilterMessage("shown 2").Len() != 1 {
		t.Errorf("missing formatted warning: %v", logs.All())
	}
}

func TestSetDisplayLevelRejectsUnknown(t *testing.T) {
	observe(t)
	if err := SetDisplayLevel("loud"); err == nil {
		t.Error("expected an error for an unknown level")
	}
}

func TestWithAddsFields(t *testing.T) {
	logs := observe(t)
	With("ticker", "AAPL").Infof("cached %d bars", 3)
	entries := logs.FilterField(zap.String("ticker", "AAPL")).All()
	if len(entries) != 1 {
		t.Errorf("expected one entry with the ticker field, got %v", logs.All())
	}
}
