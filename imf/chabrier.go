// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imf

import (
	"math"

	"github.com/arsenal-gear/arsenal/distfunc"
	"gonum.org/v1/gonum/stat/distuv"
)

// chabrierPanels is the number of quadrature panels used to
// integrate the lognormal part of a ChabrierShape.
const chabrierPanels = 32

// ChabrierShape is a lognormal in log10(m) with characteristic mass
// Mc and width Sigma below Knee, joined continuously to the power law
// m^-Alpha above it. The density is 0 for m <= 0.
type ChabrierShape struct {
	Mc, Sigma float64
	Knee      float64
	Alpha     float64
}

// Chabrier2003 returns the Chabrier (2003) single-star IMF.
func Chabrier2003() ChabrierShape {
	return ChabrierShape{Mc: 0.079, Sigma: 0.69, Knee: 1, Alpha: 2.3}
}

func (s ChabrierShape) lognormal(m float64) float64 {
	n := distuv.Normal{Mu: math.Log10(s.Mc), Sigma: s.Sigma}
	return n.Prob(math.Log10(m)) / (m * math.Ln10)
}

// tail returns the scale of the power law above the knee.
func (s ChabrierShape) tail() float64 {
	return s.lognormal(s.Knee) * math.Pow(s.Knee, s.Alpha)
}

// RawDensity returns the lognormal density at each ms[i] up to the
// knee and the power-law tail above it.
func (s ChabrierShape) RawDensity(ms []float64) []float64 {
	a := s.tail()
	ys := make([]float64, len(ms))
	for i, m := range ms {
		switch {
		case m <= 0:
		case m <= s.Knee:
			ys[i] = s.lognormal(m)
		default:
			ys[i] = a * math.Pow(m, -s.Alpha)
		}
	}
	return ys
}

// Normalization integrates the lognormal part numerically and the
// power-law part in closed form.
func (s ChabrierShape) Normalization(min, max float64) float64 {
	if min > max {
		return -s.Normalization(max, min)
	}
	total := 0.0
	if lo, hi := math.Max(min, 0), math.Min(max, s.Knee); lo < hi {
		total += distfunc.Integrate(s, lo, hi, chabrierPanels)
	}
	if lo := math.Max(min, s.Knee); lo < max {
		total += s.tail() * powerLawIntegral(s.Alpha, lo, max)
	}
	return total
}

// Chabrier returns the Chabrier (2003) IMF over [min, max].
func Chabrier(min, max float64, normalized bool) *distfunc.Dist {
	return distfunc.New(Chabrier2003(), min, max, normalized)
}
