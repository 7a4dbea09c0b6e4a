// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package distfunc provides bounded, optionally normalized probability
// density functions over the reals.
//
// A distribution is described by a Shape, which supplies an
// unnormalized density and its integral, and is evaluated through a
// Dist, which restricts the shape to a closed domain [min, max] and
// divides by a normalization constant fixed at construction time.
//
// Values carrying physical units must be converted to plain float64
// by the caller before evaluation.
package distfunc // import "github.com/arsenal-gear/arsenal/distfunc"
