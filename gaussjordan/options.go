// Package gaussjordan: engine configuration.
package gaussjordan

import (
	"errors"
	"math"
)

// DefaultTolerance is the near-zero threshold used when Options.Tolerance
// is left at its zero value. A pivot candidate whose magnitude falls
// below it is treated as zero (singularity); an elimination entry below
// it is skipped as already zero.
const DefaultTolerance = 1e-10

// ErrBadTolerance indicates a negative or non-finite Options.Tolerance.
var ErrBadTolerance = errors.New("gaussjordan: tolerance must be positive and finite")

// Options configures the elimination engine.
//
// Fields:
//   - Tolerance     — near-zero threshold for singularity detection and
//     elimination skips. Zero means DefaultTolerance; negative, NaN or
//     ±Inf values are rejected with ErrBadTolerance.
//   - SkipUnitScale — when true, a pivot already within Tolerance of 1
//     produces no SCALE application or record; when false (default) the
//     SCALE is always applied and recorded, so every pivot column shows
//     its normalization explicitly. Either way the inverse is identical;
//     only the log contents differ.
//
// Example:
//
//	opts := DefaultOptions()
//	opts.SkipUnitScale = true // omit Eᵢ(1) entries
//	res, err := Invert(m, &opts)
type Options struct {
	Tolerance     float64
	SkipUnitScale bool
}

// DefaultOptions returns the engine defaults: DefaultTolerance and
// explicit unit-scale logging.
func DefaultOptions() Options {
	return Options{Tolerance: DefaultTolerance}
}

// resolveOptions applies defaults and validates. A nil pointer selects
// DefaultOptions; a zero Tolerance selects DefaultTolerance.
func resolveOptions(opts *Options) (Options, error) {
	if opts == nil {
		return DefaultOptions(), nil
	}
	o := *opts
	if o.Tolerance == 0 {
		o.Tolerance = DefaultTolerance
	}
	if o.Tolerance < 0 || math.IsNaN(o.Tolerance) || math.IsInf(o.Tolerance, 0) {
		return Options{}, ErrBadTolerance
	}

	return o, nil
}
