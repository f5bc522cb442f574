package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/ThatOtherAndrew/unistroke/pkg/unistroke"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func writeSettings(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadSettings_CreatesDefaultFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	s, err := LoadSettings("", zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, Default(), s)

	created := filepath.Join(home, ".config", "unistroke", "settings.json")
	assert.FileExists(t, created)

	again, err := LoadSettings("", zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, Default(), again, "the written defaults read back unchanged")
}

func TestLoadSettings_MissingExplicitFile(t *testing.T) {
	_, err := LoadSettings(filepath.Join(t.TempDir(), "nope.json"), zap.NewNop())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadSettings_PartialFileKeepsDefaults(t *testing.T) {
	path := writeSettings(t, `{"sample_count": 32, "orientation": "sensitive"}`)

	s, err := LoadSettings(path, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 32, s.SampleCount)
	assert.Equal(t, "sensitive", s.Orientation)
	assert.Equal(t, Default().SquareSize, s.SquareSize)
	assert.Equal(t, Default().MatchThreshold, s.MatchThreshold)
}

func TestLoadSettings_UnknownKeyWarns(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	path := writeSettings(t, `{"square_size": 100, "overlay_alpha": 0.5}`)

	s, err := LoadSettings(path, zap.New(core))
	require.NoError(t, err)
	assert.Equal(t, 100.0, s.SquareSize)

	warned := logs.FilterMessage("Unrecognised setting key in settings file").All()
	require.Len(t, warned, 1)
	assert.Equal(t, "overlay_alpha", warned[0].ContextMap()["key"])
}

func TestLoadSettings_InvalidValuesReset(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	path := writeSettings(t, `{
		"sample_count": 1,
		"square_size": -5,
		"one_d_threshold": 1.5,
		"orientation": "sideways",
		"angle_range_degrees": 0,
		"angle_precision_degrees": 90,
		"match_threshold": 2
	}`)

	s, err := LoadSettings(path, zap.New(core))
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
	assert.Equal(t, 7, logs.Len(), "one warning per invalid field")

	core, logs = observer.New(zapcore.WarnLevel)
	path = writeSettings(t, `{"sample_count": 4000000000000000000}`)

	s, err = LoadSettings(path, zap.New(core))
	require.NoError(t, err)
	assert.Equal(t, Default(), s, "oversized sample_count")
	require.Equal(t, 1, logs.Len())
	assert.Contains(t, logs.All()[0].Message, "sample_count")
}

func TestLoadSettings_InvalidJSON(t *testing.T) {
	path := writeSettings(t, `{"sample_count": `)

	s, err := LoadSettings(path, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestSettings_Options(t *testing.T) {
	s := Default()
	s.SampleCount = 48
	s.Orientation = "sensitive"
	s.AngleRangeDegrees = 30
	s.AnglePrecisionDegrees = 1

	log := zap.NewNop()
	opts := s.Options(log)
	assert.Equal(t, 48, opts.Normalizer.N)
	assert.Equal(t, unistroke.OrientationSensitive, opts.Normalizer.Orientation)
	assert.InDelta(t, math.Pi/6, opts.AngleRange, 1e-12)
	assert.InDelta(t, math.Pi/180, opts.AnglePrecision, 1e-12)
	assert.Same(t, log, opts.Logger)

	def := Default().Options(nil)
	assert.Equal(t, unistroke.DefaultOptions().Normalizer, def.Normalizer)
	assert.InDelta(t, unistroke.DefaultAngleRange, def.AngleRange, 1e-12)
	assert.NotNil(t, def.Logger)
}
