package log

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{input: "debug", want: LevelDebug},
		{input: "INFO", want: LevelInfo},
		{input: "warn", want: LevelWarn},
		{input: "warning", want: LevelWarn},
		{input: "error", want: LevelError},
		{input: "verbose", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			level, err := ParseLevel(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, level)
				assert.Equal(t, tt.want.String(), level.String())
			}
		})
	}
}

func TestNopLogger(t *testing.T) {
	t.Parallel()

	logger := NewNop()

	// Safe to call; never enabled.
	logger.Log(LevelError, "dropped", String("k", "v"))
	assert.False(t, logger.Enabled(LevelError))
	assert.Same(t, logger, logger.With(Int("n", 1)))
}

func TestZapLogger(t *testing.T) {
	t.Parallel()

	t.Run("emits fields at the mapped level", func(t *testing.T) {
		t.Parallel()

		core, observed := observer.New(zapcore.InfoLevel)
		logger := NewZap(zap.New(core))

		logger.With(String("component", "fund")).Log(LevelInfo, "distributed", Int("claims", 3))

		entries := observed.All()
		require.Len(t, entries, 1)
		assert.Equal(t, "distributed", entries[0].Message)
		assert.Equal(t, zapcore.InfoLevel, entries[0].Level)

		fields := entries[0].ContextMap()
		assert.Equal(t, "fund", fields["component"])
		assert.EqualValues(t, 3, fields["claims"])
	})

	t.Run("respects the level ceiling", func(t *testing.T) {
		t.Parallel()

		core, observed := observer.New(zapcore.WarnLevel)
		logger := NewZap(zap.New(core))

		logger.Log(LevelDebug, "hidden")
		logger.Log(LevelError, "shown", Err(errors.New("boom")))

		entries := observed.All()
		require.Len(t, entries, 1)
		assert.Equal(t, "shown", entries[0].Message)

		assert.False(t, logger.Enabled(LevelInfo))
		assert.True(t, logger.Enabled(LevelError))
	})

	t.Run("nil receiver falls back to a nop core", func(t *testing.T) {
		t.Parallel()

		var logger *ZapLogger

		logger.Log(LevelInfo, "no panic")
		assert.False(t, logger.Enabled(LevelDebug))
	})
}
