package log

import (
	"context"
	"testing"
)

func TestTestLoggerCapture(t *testing.T) {
	logger, buffer := NewTestLogger(LevelDebug)

	logger.Info("fit started", SamplesKey, 100, FeaturesKey, 5)

	entries, err := logger.GetLogEntries()
	if err != nil {
		t.Fatalf("failed to parse log entries: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0]["message"] != "fit started" {
		t.Errorf("unexpected message: %v", entries[0]["message"])
	}
	if !logger.ContainsField(SamplesKey, 100) {
		t.Errorf("samples field missing from %s", buffer.String())
	}
}

func TestTestLoggerLevelFiltering(t *testing.T) {
	logger, buffer := NewTestLogger(LevelWarn)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")

	if logger.ContainsMessage("debug message") || logger.ContainsMessage("info message") {
		t.Errorf("messages below LevelWarn must be dropped: %s", buffer.String())
	}
	if !logger.ContainsMessage("warn message") {
		t.Errorf("warn message missing: %s", buffer.String())
	}
}

func TestTestLoggerWith(t *testing.T) {
	logger, _ := NewTestLogger(LevelInfo)

	contextLogger := logger.With(ModelNameKey, "SR3")
	contextLogger.Info("iteration done")

	tl := contextLogger.(*TestLogger)
	if !tl.ContainsField(ModelNameKey, "SR3") {
		t.Error("pre-populated field missing from log entry")
	}
}

func TestTestLoggerEnabled(t *testing.T) {
	logger, _ := NewTestLogger(LevelInfo)

	if logger.Enabled(context.Background(), LevelDebug) {
		t.Error("debug should be disabled at info level")
	}
	if !logger.Enabled(context.Background(), LevelError) {
		t.Error("error should be enabled at info level")
	}
}

func TestLevelString(t *testing.T) {
	cases := map[Level]string{
		LevelDebug: "DEBUG",
		LevelInfo:  "INFO",
		LevelWarn:  "WARN",
		LevelError: "ERROR",
		Level(42):  "UNKNOWN",
	}
	for level, want := range cases {
		if got := level.String(); got != want {
			t.Errorf("Level(%d).String() = %q, want %q", level, got, want)
		}
	}
}

func TestToLogLevel(t *testing.T) {
	if ToLogLevel("debug") != LevelDebug || ToLogLevel("error") != LevelError {
		t.Error("level name mapping is wrong")
	}

	defer func() {
		if recover() == nil {
			t.Error("unknown level name should panic")
		}
	}()
	ToLogLevel("nope")
}

func TestProviderSwap(t *testing.T) {
	provider, testLogger := NewTestLoggerProvider(LevelDebug)
	SetLoggerProvider(provider)
	defer SetLoggerProvider(nil)

	GetLoggerWithName("optimizers.sr3").Info("hello")

	if !testLogger.ContainsMessage("hello") {
		t.Error("log did not reach the swapped provider")
	}
	if !testLogger.ContainsField(ComponentKey, "optimizers.sr3") {
		t.Error("component name missing")
	}
}
