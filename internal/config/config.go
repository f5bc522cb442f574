package config

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/ThatOtherAndrew/unistroke/pkg/unistroke"
	"go.uber.org/zap"
)

type Settings struct {
	SampleCount           int     `json:"sample_count"`
	SquareSize            float64 `json:"square_size"`
	OneDThreshold         float64 `json:"one_d_threshold"`
	Orientation           string  `json:"orientation"`
	AngleRangeDegrees     float64 `json:"angle_range_degrees"`
	AnglePrecisionDegrees float64 `json:"angle_precision_degrees"`
	MatchThreshold        float64 `json:"match_threshold"`
}

func Default() *Settings {
	return &Settings{
		SampleCount:           unistroke.DefaultSampleCount,
		SquareSize:            unistroke.DefaultSquareSize,
		OneDThreshold:         unistroke.DefaultOneDThreshold,
		Orientation:           unistroke.RotationInvariant.String(),
		AngleRangeDegrees:     45,
		AnglePrecisionDegrees: 2,
		MatchThreshold:        0.6,
	}
}

func GetDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	configDir := filepath.Join(homeDir, ".config", "unistroke")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", err
	}
	return configDir, nil
}

func GetSettingsPath() (string, error) {
	configDir, err := GetDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "settings.json"), nil
}

// LoadSettings reads the settings file at path, or the default location when
// path is empty. A missing default file is created; a missing explicit file
// is an error.
func LoadSettings(path string, log *zap.Logger) (*Settings, error) {
	explicit := path != ""
	if !explicit {
		p, err := GetSettingsPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	defaultSettings := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			log.Info("Creating default settings file", zap.String("path", path))
			if err := createDefaultSettings(path, defaultSettings); err != nil {
				log.Warn("Failed to create default settings file", zap.Error(err))
			}
			return defaultSettings, nil
		}
		return nil, err
	}

	// Check for unrecognised keys
	var rawSettings map[string]interface{}
	if err := json.Unmarshal(data, &rawSettings); err != nil {
		log.Warn("Invalid settings file, using defaults", zap.String("path", path), zap.Error(err))
		return defaultSettings, nil
	}

	knownKeys := getKnownKeys(Settings{})
	for key := range rawSettings {
		if !knownKeys[key] {
			log.Warn("Unrecognised setting key in settings file", zap.String("key", key))
		}
	}

	settings := Default()
	if err := json.Unmarshal(data, settings); err != nil {
		log.Warn("Invalid settings file, using defaults", zap.String("path", path), zap.Error(err))
		return defaultSettings, nil
	}

	settings.validate(defaultSettings, log)
	return settings, nil
}

// validate resets every out-of-range field to its default.
func (s *Settings) validate(def *Settings, log *zap.Logger) {
	if s.SampleCount < 2 || s.SampleCount > unistroke.MaxSampleCount {
		log.Warn("Invalid sample_count, must be between 2 and 4096, using default",
			zap.Int("value", s.SampleCount), zap.Int("default", def.SampleCount))
		s.SampleCount = def.SampleCount
	}
	if s.SquareSize <= 0 {
		log.Warn("Invalid square_size, must be positive, using default",
			zap.Float64("value", s.SquareSize), zap.Float64("default", def.SquareSize))
		s.SquareSize = def.SquareSize
	}
	if s.OneDThreshold < 0 || s.OneDThreshold > 1 {
		log.Warn("Invalid one_d_threshold, must be between 0.0 and 1.0, using default",
			zap.Float64("value", s.OneDThreshold), zap.Float64("default", def.OneDThreshold))
		s.OneDThreshold = def.OneDThreshold
	}
	if _, err := unistroke.ParseOrientation(s.Orientation); err != nil {
		log.Warn("Invalid orientation, must be \"invariant\" or \"sensitive\", using default",
			zap.String("value", s.Orientation), zap.String("default", def.Orientation))
		s.Orientation = def.Orientation
	}
	if s.AngleRangeDegrees <= 0 || s.AngleRangeDegrees > 180 {
		log.Warn("Invalid angle_range_degrees, must be in (0, 180], using default",
			zap.Float64("value", s.AngleRangeDegrees), zap.Float64("default", def.AngleRangeDegrees))
		s.AngleRangeDegrees = def.AngleRangeDegrees
	}
	if s.AnglePrecisionDegrees <= 0 || s.AnglePrecisionDegrees > s.AngleRangeDegrees {
		log.Warn("Invalid angle_precision_degrees, must be in (0, angle_range_degrees], using default",
			zap.Float64("value", s.AnglePrecisionDegrees), zap.Float64("default", def.AnglePrecisionDegrees))
		s.AnglePrecisionDegrees = def.AnglePrecisionDegrees
	}
	// Validate and clamp match_threshold to [0, 1]
	if s.MatchThreshold < 0.0 || s.MatchThreshold > 1.0 {
		log.Warn("Invalid match_threshold, must be between 0.0 and 1.0, using default",
			zap.Float64("value", s.MatchThreshold), zap.Float64("default", def.MatchThreshold))
		s.MatchThreshold = def.MatchThreshold
	}
}

// Options converts the settings into recognizer options.
func (s *Settings) Options(log *zap.Logger) unistroke.Options {
	orientation, _ := unistroke.ParseOrientation(s.Orientation)
	opts := unistroke.DefaultOptions()
	opts.Normalizer.N = s.SampleCount
	opts.Normalizer.Size = s.SquareSize
	opts.Normalizer.OneDThreshold = s.OneDThreshold
	opts.Normalizer.Orientation = orientation
	opts.AngleRange = s.AngleRangeDegrees * math.Pi / 180
	opts.AnglePrecision = s.AnglePrecisionDegrees * math.Pi / 180
	if log != nil {
		opts.Logger = log
	}
	return opts
}

func createDefaultSettings(path string, settings *Settings) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func getKnownKeys(v interface{}) map[string]bool {
	keys := make(map[string]bool)
	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if jsonTag := field.Tag.Get("json"); jsonTag != "" {
			// Handle json tags like "field,omitempty"
			tagName := strings.Split(jsonTag, ",")[0]
			if tagName != "-" {
				keys[tagName] = true
			}
		}
	}
	return keys
}
