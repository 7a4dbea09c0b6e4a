// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distfunc

import (
	"math"
	"sort"
	"testing"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

// testFunc checks f against each x => y pair in vals, visiting them
// in increasing order of x.
func testFunc(t *testing.T, name string, f func(float64) float64, vals map[float64]float64) {
	t.Helper()
	xs := make([]float64, 0, len(vals))
	for x := range vals {
		xs = append(xs, x)
	}
	sort.Float64s(xs)
	for _, x := range xs {
		want, got := vals[x], f(x)
		if !aeq(want, got) {
			t.Errorf("%s(%v) = %v, want %v", name, x, got, want)
		}
	}
}
