// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imf

import "github.com/arsenal-gear/arsenal/distfunc"

// Register adds the IMFs in this package to r as "salpeter",
// "kroupa" and "chabrier".
func Register(r *distfunc.Registry) error {
	for _, e := range []struct {
		name string
		c    distfunc.Constructor
	}{
		{"salpeter", Salpeter},
		{"kroupa", Kroupa},
		{"chabrier", Chabrier},
	} {
		if err := r.Register(e.name, e.c); err != nil {
			return err
		}
	}
	return nil
}
