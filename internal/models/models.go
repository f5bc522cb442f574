package models

import (
	"github.com/ThatOtherAndrew/unistroke/pkg/unistroke"
)

// GestureConfig is one entry of a templates file.
type GestureConfig struct {
	Name    string            `json:"name" yaml:"name"`
	Command string            `json:"command,omitempty" yaml:"command,omitempty"`
	Points  []unistroke.Point `json:"points" yaml:"points"`
}

// Stroke is a captured stroke as stored in a stroke file.
type Stroke struct {
	Points []unistroke.Point `json:"points" yaml:"points"`
}
