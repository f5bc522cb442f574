package unistroke

import (
	"cmp"
	"fmt"
	"maps"
	"math"
	"slices"
	"sync"

	"go.uber.org/zap"
)

// Options configures a Recognizer. A sample count outside [2, MaxSampleCount],
// a non-positive size or a non-positive angle is replaced by its
// DefaultOptions value.
type Options struct {
	Normalizer Normalizer

	// AngleRange bounds the best-angle search to ±AngleRange radians.
	AngleRange float64
	// AnglePrecision is the bracket width at which the search stops.
	AnglePrecision float64

	Logger *zap.Logger
}

func DefaultOptions() Options {
	return Options{
		Normalizer:     DefaultNormalizer(),
		AngleRange:     DefaultAngleRange,
		AnglePrecision: DefaultAnglePrecision,
		Logger:         zap.NewNop(),
	}
}

// Result is the outcome of scoring a stroke against one template.
type Result struct {
	Name     string  `json:"name"`
	Score    float64 `json:"score"`
	Distance float64 `json:"distance"`
}

// Recognizer stores named templates and classifies strokes against them.
// All methods are safe for concurrent use; they are serialized by a single
// lock.
type Recognizer struct {
	mu         sync.Mutex
	normalizer Normalizer
	angleRange float64
	precision  float64
	templates  map[string]Path
	log        *zap.Logger
}

func New(opts *Options) *Recognizer {
	o := DefaultOptions()
	if opts != nil {
		o = sanitize(*opts)
	}
	return &Recognizer{
		normalizer: o.Normalizer,
		angleRange: o.AngleRange,
		precision:  o.AnglePrecision,
		templates:  make(map[string]Path),
		log:        o.Logger,
	}
}

func sanitize(o Options) Options {
	def := DefaultOptions()
	if o.Logger == nil {
		o.Logger = def.Logger
	}
	if o.Normalizer.N < 2 || o.Normalizer.N > MaxSampleCount {
		o.Logger.Warn("Invalid sample count, using default",
			zap.Int("got", o.Normalizer.N), zap.Int("default", def.Normalizer.N))
		o.Normalizer.N = def.Normalizer.N
	}
	if !(o.Normalizer.Size > 0) || math.IsInf(o.Normalizer.Size, 0) {
		o.Logger.Warn("Invalid square size, using default",
			zap.Float64("got", o.Normalizer.Size), zap.Float64("default", def.Normalizer.Size))
		o.Normalizer.Size = def.Normalizer.Size
	}
	if !(o.AngleRange > 0) {
		o.Logger.Warn("Invalid angle range, using default", zap.Float64("got", o.AngleRange))
		o.AngleRange = def.AngleRange
	}
	if !(o.AnglePrecision > 0) {
		o.Logger.Warn("Invalid angle precision, using default", zap.Float64("got", o.AnglePrecision))
		o.AnglePrecision = def.AnglePrecision
	}
	return o
}

// Normalizer returns the normalizer every template and stroke goes through.
func (r *Recognizer) Normalizer() Normalizer {
	return r.normalizer
}

// AddTemplate normalizes points and stores them under name, replacing any
// template with the same name. On error the store is unchanged.
func (r *Recognizer) AddTemplate(name string, points Path) error {
	if name == "" {
		return ErrEmptyName
	}
	normalized, err := r.normalizer.Normalize(points)
	if err != nil {
		return fmt.Errorf("template %q: %w", name, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	_, replaced := r.templates[name]
	r.templates[name] = normalized
	r.log.Debug("Template stored",
		zap.String("name", name),
		zap.Int("raw_points", len(points)),
		zap.Bool("replaced", replaced))
	return nil
}

func (r *Recognizer) RemoveTemplate(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.templates[name]; !ok {
		return false
	}
	delete(r.templates, name)
	return true
}

func (r *Recognizer) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.templates)
}

// Names returns the template names in lexicographic order.
func (r *Recognizer) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Sorted(maps.Keys(r.templates))
}

// Templates returns a copy of every stored normalized template.
func (r *Recognizer) Templates() map[string]Path {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]Path, len(r.templates))
	for name, t := range r.templates {
		out[name] = t.Clone()
	}
	return out
}

// Classify returns the template closest to points. Templates are visited in
// name order and the first minimum wins, so ties resolve to the smallest
// name. An empty recognizer fails with ErrNoTemplates before points are
// validated.
func (r *Recognizer) Classify(points Path) (Result, error) {
	results, err := r.Rank(points)
	if err != nil {
		return Result{}, err
	}
	best := results[0]
	r.log.Debug("Matched gesture",
		zap.String("name", best.Name),
		zap.Float64("score", best.Score))
	return best, nil
}

// Rank scores points against every template, best first. The empty store is
// checked before points are normalized.
func (r *Recognizer) Rank(points Path) ([]Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.templates) == 0 {
		return nil, ErrNoTemplates
	}

	normalized, err := r.normalizer.Normalize(points)
	if err != nil {
		return nil, err
	}

	halfDiagonal := math.Sqrt(0.5) * r.normalizer.Size
	results := make([]Result, 0, len(r.templates))
	for _, name := range slices.Sorted(maps.Keys(r.templates)) {
		d, err := DistanceAtBestAngle(normalized, r.templates[name], -r.angleRange, r.angleRange, r.precision)
		if err != nil {
			return nil, fmt.Errorf("template %q: %w", name, err)
		}
		r.log.Debug("Scored template",
			zap.String("name", name),
			zap.Float64("distance", d))
		results = append(results, Result{
			Name:     name,
			Score:    1 - d/halfDiagonal,
			Distance: d,
		})
	}
	// Stable keeps name order among equal distances.
	slices.SortStableFunc(results, func(a, b Result) int {
		return cmp.Compare(a.Distance, b.Distance)
	})
	return results, nil
}
