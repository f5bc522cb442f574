package gesture

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ThatOtherAndrew/unistroke/internal/models"
	"github.com/ThatOtherAndrew/unistroke/pkg/unistroke"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a templates or stroke file.
type Format int

const (
	JSON Format = iota
	YAML
)

// FormatOf picks the format from the file extension.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	}
	return JSON
}

func unmarshal(data []byte, format Format, v interface{}) error {
	if format == YAML {
		return yaml.Unmarshal(data, v)
	}
	return json.Unmarshal(data, v)
}

func readFile(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func LoadTemplates(path string) ([]models.GestureConfig, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return DecodeTemplates(data, FormatOf(path))
}

func DecodeTemplates(data []byte, format Format) ([]models.GestureConfig, error) {
	var gestures []models.GestureConfig
	if err := unmarshal(data, format, &gestures); err != nil {
		return nil, err
	}
	return gestures, nil
}

// LoadStroke reads a stroke file, or standard input when path is "-".
func LoadStroke(path string) (unistroke.Path, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return DecodeStroke(data, FormatOf(path))
}

// DecodeStroke accepts either {"points": [...]} or a bare list of points.
func DecodeStroke(data []byte, format Format) (unistroke.Path, error) {
	var stroke models.Stroke
	objErr := unmarshal(data, format, &stroke)
	if objErr == nil {
		return stroke.Points, nil
	}
	var points []unistroke.Point
	if err := unmarshal(data, format, &points); err != nil {
		return nil, fmt.Errorf("decode stroke: %w", objErr)
	}
	return points, nil
}

// AddTemplates filters every gesture through a Capture and adds it to r.
// Gestures that fail to normalize are skipped and reported together.
func AddTemplates(r *unistroke.Recognizer, gestures []models.GestureConfig, minDistance float64, log *zap.Logger) (int, error) {
	var errs []error
	added := 0
	for _, g := range gestures {
		points := Filter(g.Points, minDistance)
		if err := r.AddTemplate(g.Name, points); err != nil {
			log.Warn("Skipping template", zap.String("name", g.Name), zap.Error(err))
			errs = append(errs, err)
			continue
		}
		added++
	}
	return added, errors.Join(errs...)
}
