package splitter

import "fmt"

const (
	DefaultMinRecursiveLength  = 70
	DefaultMaxDepth            = 8
	DefaultMaxDegradationRound = 5
	DefaultLengthThreshold     = 80
)

// Options tunes the recursive splitter. Lengths are counted in runes.
type Options struct {
	// MinRecursiveLength is the shortest fragment that is split again.
	MinRecursiveLength int
	// MaxDepth caps the number of nested splits along any path.
	MaxDepth int
	// MaxDegradationRound is the last round tried before giving up (1-5).
	MaxDegradationRound int
	// LengthThreshold is the longest input line left untouched.
	LengthThreshold int
}

// DefaultOptions returns the options used by the subtitle pipeline.
func DefaultOptions() Options {
	return Options{
		MinRecursiveLength:  DefaultMinRecursiveLength,
		MaxDepth:            DefaultMaxDepth,
		MaxDegradationRound: DefaultMaxDegradationRound,
		LengthThreshold:     DefaultLengthThreshold,
	}
}

// Validate reports the first out-of-range field wrapped in ErrInvalidConfig.
func (o Options) Validate() error {
	if o.MaxDepth <= 0 {
		return fmt.Errorf("%w: max_depth must be > 0, got %d", ErrInvalidConfig, o.MaxDepth)
	}
	if o.MinRecursiveLength <= 0 {
		return fmt.Errorf("%w: min_recursive_length must be > 0, got %d", ErrInvalidConfig, o.MinRecursiveLength)
	}
	if o.LengthThreshold <= 0 {
		return fmt.Errorf("%w: length_threshold must be > 0, got %d", ErrInvalidConfig, o.LengthThreshold)
	}
	if o.MaxDegradationRound < int(RoundStrict) || o.MaxDegradationRound > int(RoundLastResort) {
		return fmt.Errorf("%w: max_degradation_round must be in [%d, %d], got %d",
			ErrInvalidConfig, RoundStrict, RoundLastResort, o.MaxDegradationRound)
	}
	return nil
}
