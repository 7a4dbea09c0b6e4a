// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distfunc

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidBounds        = errors.New("invalid bounds")
	ErrInvalidNormalization = errors.New("invalid normalization")
)

// A BoundsError reports a domain that is inverted or not finite.
type BoundsError struct {
	Min, Max float64
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("distfunc: invalid bounds [%v, %v]", e.Min, e.Max)
}

func (e *BoundsError) Is(target error) bool {
	return target == ErrInvalidBounds
}

// A NormalizationError reports a normalization constant that is not
// finite and positive.
type NormalizationError struct {
	Min, Max float64
	Norm     float64
}

func (e *NormalizationError) Error() string {
	return fmt.Sprintf("distfunc: normalization %v over [%v, %v] is not finite and positive", e.Norm, e.Min, e.Max)
}

func (e *NormalizationError) Is(target error) bool {
	return target == ErrInvalidNormalization
}

// Validate reports whether d is a proper distribution: its bounds
// must be finite with min <= max and, if d is normalized, its
// normalization constant must be finite and positive.
func (d *Dist) Validate() error {
	if math.IsNaN(d.min) || math.IsNaN(d.max) || math.IsInf(d.min, 0) || math.IsInf(d.max, 0) || d.min > d.max {
		return &BoundsError{d.min, d.max}
	}
	if d.normalized && !(d.norm > 0 && !math.IsInf(d.norm, 1)) {
		return &NormalizationError{d.min, d.max, d.norm}
	}
	return nil
}

// NewChecked is like New, but returns an error if the resulting
// distribution fails Validate. A returned Dist evaluates exactly as
// one returned by New.
func NewChecked(shape Shape, min, max float64, normalized bool) (*Dist, error) {
	d := New(shape, min, max, normalized)
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}
