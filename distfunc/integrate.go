// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distfunc

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate/quad"
)

// legendreNodes is the order of the Gauss-Legendre rule applied to
// each panel by Integrate.
const legendreNodes = 16

// Integrate returns the integral of s.RawDensity from min to max.
//
// It applies a 16-point Gauss-Legendre rule to each of panels equal
// sub-intervals of [min, max] and evaluates RawDensity once on all
// nodes. If panels <= 0, a single panel is used. As with an ordinary
// integral, swapping min and max negates the result.
//
// Integrate is meant for implementing Shape.Normalization when no
// closed form is available.
func Integrate(s Shape, min, max float64, panels int) float64 {
	if min == max {
		return 0
	} else if min > max {
		return -Integrate(s, max, min, panels)
	}
	if panels <= 0 {
		panels = 1
	}

	var rule quad.Legendre
	xs := make([]float64, panels*legendreNodes)
	ws := make([]float64, panels*legendreNodes)
	width := (max - min) / float64(panels)
	for p := 0; p < panels; p++ {
		lo, hi := min+float64(p)*width, min+float64(p+1)*width
		if p == panels-1 {
			hi = max
		}
		i := p * legendreNodes
		rule.FixedLocations(xs[i:i+legendreNodes], ws[i:i+legendreNodes], lo, hi)
	}
	return floats.Dot(ws, s.RawDensity(xs))
}
