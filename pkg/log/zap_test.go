package log

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestFacadeWritesThroughReplacedLogger(t *testing.T) {
	previous := logger
	t.Cleanup(func() { Replace(previous) })

	core, logs := observer.New(zapcore.DebugLevel)
	Replace(zap.New(core))

	Debug("debug line", zap.Int("days", 3))
	Info("info line")
	Warn("warn line")
	Error("error line")

	entries := logs.All()
	if len(entries) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(entries))
	}
	if entries[0].Message != "debug line" || entries[0].ContextMap()["days"] != int64(3) {
		t.Errorf("unexpected first entry %+v", entries[0])
	}
	if entries[3].Level != zapcore.ErrorLevel {
		t.Errorf("expected error level, got %s", entries[3].Level)
	}
}
