// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distfunc

import "fmt"

// A Shape is the unnormalized form of a continuous distribution.
type Shape interface {
	// RawDensity returns a value proportional to the probability
	// density at each xs[i]. The result must have the same length
	// as xs. RawDensity must not consider the bounds of the Dist
	// it is used in; values outside the domain are discarded by
	// the caller.
	RawDensity(xs []float64) []float64

	// Normalization returns the integral of RawDensity from min
	// to max.
	Normalization(min, max float64) float64
}

// Uniform is the constant density 1 over the real line.
type Uniform struct{}

// RawDensity returns 1 for every xs[i].
func (Uniform) RawDensity(xs []float64) []float64 {
	ys := make([]float64, len(xs))
	for i := range ys {
		ys[i] = 1
	}
	return ys
}

// Normalization returns max - min.
func (Uniform) Normalization(min, max float64) float64 {
	return max - min
}

// A Dist is a Shape restricted to the closed interval [min, max].
//
// A Dist is immutable once constructed and may be evaluated
// concurrently.
type Dist struct {
	shape      Shape
	min, max   float64
	normalized bool

	// norm is the constant every density is divided by. It is 1
	// for unnormalized distributions and is never recomputed.
	norm float64
}

// New returns the distribution with the given shape over [min, max].
// If shape is nil, it is Uniform.
//
// If normalized is true, New computes shape.Normalization(min, max)
// once and PDFEach divides by it thereafter. New does not validate
// its arguments: if min > max the distribution is zero everywhere,
// and a zero normalization makes every density non-finite. Use
// NewChecked to reject such distributions.
func New(shape Shape, min, max float64, normalized bool) *Dist {
	if shape == nil {
		shape = Uniform{}
	}
	d := &Dist{shape: shape, min: min, max: max, normalized: normalized, norm: 1}
	if normalized {
		d.norm = shape.Normalization(min, max)
	}
	return d
}

// NewUniform returns the uniform distribution over [min, max].
func NewUniform(min, max float64, normalized bool) *Dist {
	return New(Uniform{}, min, max, normalized)
}

// PDF returns the density of d at x.
func (d *Dist) PDF(x float64) float64 {
	return d.PDFEach([]float64{x})[0]
}

// PDFEach returns the density of d at each xs[i]. The density is 0
// for xs[i] < min or xs[i] > max, whatever the shape's raw density
// there; both bounds are inside the domain. xs is not modified.
func (d *Dist) PDFEach(xs []float64) []float64 {
	ps := d.shape.RawDensity(xs)
	if len(ps) != len(xs) {
		panic(fmt.Sprintf("distfunc: RawDensity returned %d values for %d inputs", len(ps), len(xs)))
	}
	out := make([]float64, len(xs))
	for i, x := range xs {
		p := ps[i]
		if x < d.min || x > d.max {
			p = 0
		}
		out[i] = p / d.norm
	}
	return out
}

// Bounds returns the domain of d.
func (d *Dist) Bounds() (min, max float64) {
	return d.min, d.max
}

// Normalized reports whether d divides by its shape's normalization.
func (d *Dist) Normalized() bool {
	return d.normalized
}

// Norm returns the constant d divides every density by.
func (d *Dist) Norm() float64 {
	return d.norm
}

// Shape returns the shape d was constructed with.
func (d *Dist) Shape() Shape {
	return d.shape
}
