// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distfunc

import (
	"fmt"
	"math"
	"sync/atomic"
	"testing"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

// spike has a large raw density everywhere and counts calls to
// Normalization.
type spike struct {
	norm  float64
	calls *int32
}

func (s spike) RawDensity(xs []float64) []float64 {
	ys := make([]float64, len(xs))
	for i := range ys {
		ys[i] = 1e6
	}
	return ys
}

func (s spike) Normalization(min, max float64) float64 {
	if s.calls != nil {
		atomic.AddInt32(s.calls, 1)
	}
	return s.norm
}

// linear is the density x, which is negative for x < 0.
type linear struct{}

func (linear) RawDensity(xs []float64) []float64 {
	return append([]float64(nil), xs...)
}

func (linear) Normalization(min, max float64) float64 {
	return (max*max - min*min) / 2
}

func TestUniform(t *testing.T) {
	xs := []float64{0.5, 1.0, 1.5, 2.5}

	d := NewUniform(0, 2, true)
	if got, want := d.PDFEach(xs), []float64{0.5, 0.5, 0.5, 0}; !floats.Same(got, want) {
		t.Errorf("normalized PDFEach(%v) = %v, want %v", xs, got, want)
	}
	if d.Norm() != 2 {
		t.Errorf("Norm() = %v, want 2", d.Norm())
	}

	d = NewUniform(0, 2, false)
	if got, want := d.PDFEach(xs), []float64{1, 1, 1, 0}; !floats.Same(got, want) {
		t.Errorf("unnormalized PDFEach(%v) = %v, want %v", xs, got, want)
	}
	if d.Norm() != 1 {
		t.Errorf("Norm() = %v, want 1", d.Norm())
	}

	testFunc(t, "NewUniform(-1, 3, true).PDF", NewUniform(-1, 3, true).PDF,
		map[float64]float64{
			math.Inf(-1): 0,
			-1.0001:      0,
			-1:           0.25,
			0:            0.25,
			3:            0.25,
			3.0001:       0,
			math.Inf(1):  0,
		})
}

func TestNilShapeIsUniform(t *testing.T) {
	d := New(nil, 0, 4, true)
	if _, ok := d.Shape().(Uniform); !ok {
		t.Fatalf("Shape() = %T, want Uniform", d.Shape())
	}
	if got := d.PDF(1); got != 0.25 {
		t.Errorf("PDF(1) = %v, want 0.25", got)
	}
}

func TestMasking(t *testing.T) {
	for _, normalized := range []bool{false, true} {
		d := New(spike{norm: 4}, -1, 1, normalized)
		xs := []float64{-1e300, -2, -1.000001, 1.000001, 2, 1e300}
		for i, p := range d.PDFEach(xs) {
			if p != 0 {
				t.Errorf("normalized=%v: PDF(%v) = %v, want 0", normalized, xs[i], p)
			}
		}
	}

	// Raw density is negative below 0 but only [2, 3] is kept.
	d := New(linear{}, 2, 3, true)
	testFunc(t, "linear[2,3].PDF", d.PDF, map[float64]float64{
		-3:  0,
		1.9: 0,
		2:   2 / 2.5,
		3:   3 / 2.5,
		3.1: 0,
	})
}

func TestInclusiveBounds(t *testing.T) {
	d := New(spike{norm: 1}, 0.25, 0.75, true)
	got := d.PDFEach([]float64{0.25, 0.75})
	if want := []float64{1e6, 1e6}; !floats.Same(got, want) {
		t.Errorf("PDFEach at bounds = %v, want %v", got, want)
	}
}

func TestLength(t *testing.T) {
	d := NewUniform(0, 1, true)
	for _, n := range []int{0, 1, 7, 1000} {
		xs := make([]float64, n)
		if n > 1 {
			floats.Span(xs, -1, 2)
		}
		if got := d.PDFEach(xs); len(got) != n {
			t.Errorf("len(PDFEach(%d values)) = %d", n, len(got))
		}
	}
	if got := d.PDFEach(nil); len(got) != 0 {
		t.Errorf("PDFEach(nil) = %v, want empty", got)
	}
}

func TestIdempotent(t *testing.T) {
	d := New(linear{}, 0, 10, true)
	xs := make([]float64, 64)
	floats.Span(xs, -5, 15)
	orig := append([]float64(nil), xs...)

	first := d.PDFEach(xs)
	second := d.PDFEach(xs)
	if !floats.Same(first, second) {
		t.Errorf("PDFEach not idempotent: %v then %v", first, second)
	}
	if !floats.Same(xs, orig) {
		t.Errorf("PDFEach modified its input")
	}
}

func TestNormalizationCachedAtConstruction(t *testing.T) {
	var calls int32
	d := New(spike{norm: 8, calls: &calls}, 0, 1, true)
	if calls != 1 {
		t.Fatalf("Normalization called %d times during construction, want 1", calls)
	}
	for i := 0; i < 10; i++ {
		d.PDFEach([]float64{0, 0.5, 1})
		d.PDF(0.5)
	}
	if calls != 1 {
		t.Errorf("Normalization called %d times after evaluation, want 1", calls)
	}
	if d.Norm() != 8 {
		t.Errorf("Norm() = %v, want 8", d.Norm())
	}

	calls = 0
	New(spike{norm: 8, calls: &calls}, 0, 1, false)
	if calls != 0 {
		t.Errorf("unnormalized construction called Normalization %d times", calls)
	}
}

func TestPermissive(t *testing.T) {
	// Inverted bounds exclude every x.
	d := NewUniform(2, 0, false)
	for _, p := range d.PDFEach([]float64{-1, 0, 1, 2, 3}) {
		if p != 0 {
			t.Errorf("inverted bounds: got %v, want 0", p)
		}
	}

	// A zero normalization divides by zero.
	d = New(spike{norm: 0}, 0, 1, true)
	ps := d.PDFEach([]float64{0.5, 2})
	if !math.IsInf(ps[0], 1) {
		t.Errorf("zero norm inside domain: got %v, want +Inf", ps[0])
	}
	if !math.IsNaN(ps[1]) {
		t.Errorf("zero norm outside domain: got %v, want NaN", ps[1])
	}

	// A negative normalization gives negative densities.
	d = New(spike{norm: -1e6}, 0, 1, true)
	if got := d.PDF(0.5); got != -1 {
		t.Errorf("negative norm: got %v, want -1", got)
	}
}

type short struct{ Uniform }

func (short) RawDensity(xs []float64) []float64 { return nil }

func TestShapeMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("PDFEach with short RawDensity did not panic")
		}
	}()
	New(short{}, 0, 1, false).PDFEach([]float64{0.5})
}

func TestConcurrentEvaluation(t *testing.T) {
	d := New(linear{}, 0, 4, true)
	xs := make([]float64, 256)
	floats.Span(xs, -1, 5)
	want := d.PDFEach(xs)

	var g errgroup.Group
	for i := 0; i < 16; i++ {
		g.Go(func() error {
			for j := 0; j < 100; j++ {
				if got := d.PDFEach(xs); !floats.Same(got, want) {
					return fmt.Errorf("concurrent PDFEach = %v, want %v", got, want)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Error(err)
	}
}

func BenchmarkPDFEach(b *testing.B) {
	d := NewUniform(0, 1, true)
	for _, n := range []int{1, 100, 10000} {
		xs := []float64{0.5}
		if n > 1 {
			xs = floats.Span(make([]float64, n), -0.5, 1.5)
		}
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				d.PDFEach(xs)
			}
		})
	}
}
