// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package imf provides stellar initial mass functions as
// distfunc shapes. Masses are in units of solar masses and densities
// are dN/dm.
package imf // import "github.com/arsenal-gear/arsenal/imf"

import (
	"fmt"
	"math"
	"sort"

	"github.com/arsenal-gear/arsenal/distfunc"
)

// PowerLaw is the density m^-Alpha for m > 0 and 0 otherwise.
type PowerLaw struct {
	Alpha float64
}

// RawDensity returns ms[i]^-Alpha, or 0 where ms[i] <= 0.
func (s PowerLaw) RawDensity(ms []float64) []float64 {
	ys := make([]float64, len(ms))
	for i, m := range ms {
		if m > 0 {
			ys[i] = math.Pow(m, -s.Alpha)
		}
	}
	return ys
}

// Normalization returns the integral of RawDensity from min to max.
// Masses below 0 contribute nothing.
func (s PowerLaw) Normalization(min, max float64) float64 {
	if min > max {
		return -s.Normalization(max, min)
	}
	lo := math.Max(min, 0)
	if lo >= max {
		return 0
	}
	return powerLawIntegral(s.Alpha, lo, max)
}

// powerLawIntegral returns the integral of m^-alpha from lo to hi,
// where 0 <= lo < hi.
func powerLawIntegral(alpha, lo, hi float64) float64 {
	if alpha == 1 {
		return math.Log(hi / lo)
	}
	return (math.Pow(hi, 1-alpha) - math.Pow(lo, 1-alpha)) / (1 - alpha)
}

// Salpeter returns the Salpeter (1955) IMF, dN/dm ∝ m^-2.35, over
// [min, max].
func Salpeter(min, max float64, normalized bool) *distfunc.Dist {
	return distfunc.New(PowerLaw{Alpha: 2.35}, min, max, normalized)
}

// BrokenPowerLaw is a continuous, piecewise power law. Segment i has
// slope Alphas[i] and spans masses from Breaks[i-1] to Breaks[i],
// where the first segment extends down to 0 and the last up to
// infinity. Breaks must be positive and increasing and
// len(Alphas) must be len(Breaks)+1.
type BrokenPowerLaw struct {
	Breaks []float64
	Alphas []float64
}

// coeffs returns the scale of each segment such that the density is
// continuous at every break and the first segment has scale 1.
func (s BrokenPowerLaw) coeffs() []float64 {
	if len(s.Alphas) != len(s.Breaks)+1 {
		panic(fmt.Sprintf("imf: %d slopes for %d breaks", len(s.Alphas), len(s.Breaks)))
	}
	cs := make([]float64, len(s.Alphas))
	cs[0] = 1
	for i, b := range s.Breaks {
		cs[i+1] = cs[i] * math.Pow(b, s.Alphas[i+1]-s.Alphas[i])
	}
	return cs
}

// RawDensity returns the density of the segment containing each
// ms[i], or 0 where ms[i] <= 0.
func (s BrokenPowerLaw) RawDensity(ms []float64) []float64 {
	cs := s.coeffs()
	ys := make([]float64, len(ms))
	for i, m := range ms {
		if m <= 0 {
			continue
		}
		seg := sort.SearchFloat64s(s.Breaks, m)
		ys[i] = cs[seg] * math.Pow(m, -s.Alphas[seg])
	}
	return ys
}

// Normalization returns the integral of RawDensity from min to max,
// summed segment by segment. Masses below 0 contribute nothing.
func (s BrokenPowerLaw) Normalization(min, max float64) float64 {
	if min > max {
		return -s.Normalization(max, min)
	}
	cs := s.coeffs()
	total := 0.0
	for i, alpha := range s.Alphas {
		lo, hi := math.Max(min, 0), max
		if i > 0 {
			lo = math.Max(lo, s.Breaks[i-1])
		}
		if i < len(s.Breaks) {
			hi = math.Min(hi, s.Breaks[i])
		}
		if lo >= hi {
			continue
		}
		total += cs[i] * powerLawIntegral(alpha, lo, hi)
	}
	return total
}

// Kroupa returns the Kroupa (2001) IMF over [min, max]: slopes 0.3
// below 0.08, 1.3 up to 0.5 and 2.3 above.
func Kroupa(min, max float64, normalized bool) *distfunc.Dist {
	s := BrokenPowerLaw{
		Breaks: []float64{0.08, 0.5},
		Alphas: []float64{0.3, 1.3, 2.3},
	}
	return distfunc.New(s, min, max, normalized)
}
