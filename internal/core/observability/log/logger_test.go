package log

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"", LevelInfo},
		{"INFO", LevelInfo},
		{" warning ", LevelWarn},
		{"error", LevelError},
		{"fatal", LevelFatal},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestLogger_SetLevelPropagatesToChildren(t *testing.T) {
	l := NewNop()
	child := l.With(String("node", "floor"))

	l.SetLevel(LevelError)
	assert.Equal(t, LevelError, l.GetLevel())
	assert.Equal(t, LevelError, child.GetLevel())
}

func TestToZapFields(t *testing.T) {
	fields := toZapFields(
		String("name", "floor"),
		Float32("min_width", 0.5),
		Uint64("ref", 7),
		Err(errors.New("boom")),
		Any("extra", []int{1}),
	)
	require.Len(t, fields, 5)
	assert.Equal(t, "name", fields[0].Key)
	assert.Equal(t, "min_width", fields[1].Key)
	assert.Equal(t, "error", fields[3].Key)
	assert.Equal(t, zap.Any("extra", []int{1}).Type, fields[4].Type)
}
