package log

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/linreg/pkg/errors"
)

func TestTestLogger(t *testing.T) {
	testLogger, buffer := NewTestLogger(LevelDebug)

	testLogger.Debug("debug message", "key1", "value1", "number", 42)
	testLogger.Info("info message", OperationKey, OperationFit)
	testLogger.Warn("warning message")
	testLogger.Error("error message", fmt.Errorf("boom"), FoldKey, 2)

	require.NotEmpty(t, buffer.String())
	assert.True(t, testLogger.ContainsMessage("debug message"))
	assert.True(t, testLogger.ContainsMessage("warning message"))
	assert.True(t, testLogger.ContainsField("key1", "value1"))
	assert.True(t, testLogger.ContainsField("number", 42.0))
	assert.True(t, testLogger.ContainsField(ErrAttrKey, "boom"))
	assert.True(t, testLogger.ContainsField(FoldKey, 2.0))
	assert.Equal(t, 1, testLogger.CountMessage("info message"))

	testLogger.Clear()
	assert.Empty(t, buffer.String())
}

func TestTestLoggerWithAndLevels(t *testing.T) {
	testLogger, _ := NewTestLogger(LevelInfo)
	ctx := context.Background()

	assert.True(t, testLogger.Enabled(ctx, LevelInfo))
	assert.True(t, testLogger.Enabled(ctx, LevelError))
	assert.False(t, testLogger.Enabled(ctx, LevelDebug))

	contextLogger := testLogger.With(ModelNameKey, "SGDRegressor")
	contextLogger.Debug("hidden")
	contextLogger.Info("visible", EpochKey, 3)

	assert.False(t, testLogger.ContainsMessage("hidden"))
	assert.True(t, testLogger.ContainsField(ModelNameKey, "SGDRegressor"))
	assert.True(t, testLogger.ContainsField(EpochKey, 3.0))
}

func TestZerologLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologLogger(&buf, LevelInfo)

	logger.Debug("dropped")
	logger.With(ComponentKey, "model_selection").Info("fold scored",
		FoldKey, 1,
		ScoreKey, 0.25,
		"label", "wine",
	)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "fold scored", entry["message"])
	assert.Equal(t, "model_selection", entry[ComponentKey])
	assert.Equal(t, 1.0, entry[FoldKey])
	assert.Equal(t, 0.25, entry[ScoreKey])
	assert.Equal(t, "wine", entry["label"])

	ctx := context.Background()
	assert.False(t, logger.Enabled(ctx, LevelDebug))
	assert.True(t, logger.Enabled(ctx, LevelWarn))
	assert.True(t, logger.withLevel(LevelDebug).Enabled(ctx, LevelDebug))
}

func TestZerologLoggerErrorStacktrace(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologLogger(&buf, LevelDebug)

	logger.Error("fit failed", errors.NewEmptyInputError("stats.Mean"), OperationKey, OperationFit)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "linreg: stats.Mean: empty input", entry[ErrAttrKey])
	assert.Equal(t, OperationFit, entry[OperationKey])
	assert.NotEmpty(t, entry[StacktraceKey])
}

func TestRouteWarnings(t *testing.T) {
	testLogger, _ := NewTestLogger(LevelDebug)
	RouteWarnings(testLogger)
	defer RouteWarnings(nil)

	errors.Warn(errors.NewNumericalInstabilityError("sgd_fit", []float64{1}, 7))

	assert.True(t, testLogger.ContainsMessage("numerical instability detected in sgd_fit"))
	assert.True(t, testLogger.ContainsField(ErrorTypeKey, "*errors.NumericalInstabilityError"))
}

func TestProvider(t *testing.T) {
	testLogger, _ := NewTestLogger(LevelDebug)
	SetProvider(&stubProvider{logger: testLogger})
	defer SetProvider(NewZerologProvider(LevelWarn))

	GetLoggerWithName("preprocessing").Info("scaled")
	assert.True(t, testLogger.ContainsField(ComponentKey, "preprocessing"))

	p := NewZerologProvider(LevelError)
	ctx := context.Background()
	assert.False(t, p.GetLogger().Enabled(ctx, LevelInfo))
	p.SetLevel(LevelInfo)
	assert.True(t, p.GetLogger().Enabled(ctx, LevelInfo))
}

type stubProvider struct {
	logger Logger
}

func (s *stubProvider) GetLogger() Logger { return s.logger }

func (s *stubProvider) GetLoggerWithName(name string) Logger {
	return s.logger.With(ComponentKey, name)
}

func (s *stubProvider) SetLevel(Level) {}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"info", LevelInfo, false},
		{"warn", LevelWarn, false},
		{"error", LevelError, false},
		{"verbose", LevelInfo, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, strings.ToUpper(tt.in), got.String())
		})
	}
}

func TestSetupLoggerTo(t *testing.T) {
	previous := slog.Default()
	defer slog.SetDefault(previous)

	var buf bytes.Buffer
	require.NoError(t, SetupLoggerTo(&buf, "info"))
	slog.Error("load failed", ErrAttr(errors.NewValueError("dataset.LoadFile", "no rows")))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ERROR", entry["severity"])
	assert.Equal(t, "load failed", entry["message"])
	assert.NotEmpty(t, entry[StacktraceAttrKey])

	assert.Error(t, SetupLoggerTo(&buf, "loud"))
}
