// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distfunc

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	ErrUnknown   = errors.New("unknown distribution")
	ErrDuplicate = errors.New("distribution already registered")
)

// A Constructor builds a named distribution over [min, max].
type Constructor func(min, max float64, normalized bool) *Dist

// A Registry maps names to distribution constructors. It is safe
// for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	ctors map[string]Constructor
}

// NewRegistry returns a Registry holding only "uniform".
func NewRegistry() *Registry {
	r := &Registry{ctors: make(map[string]Constructor)}
	r.ctors["uniform"] = NewUniform
	return r
}

// Register adds c under name.
func (r *Registry) Register(name string, c Constructor) error {
	if name == "" {
		return errors.New("distfunc: empty distribution name")
	}
	if c == nil {
		return fmt.Errorf("distfunc: nil constructor for %q", name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.ctors[name]; ok {
		return fmt.Errorf("distfunc: %q: %w", name, ErrDuplicate)
	}
	r.ctors[name] = c
	return nil
}

// Lookup returns the constructor registered under name.
func (r *Registry) Lookup(name string) (Constructor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.ctors[name]
	return c, ok
}

// New constructs the distribution registered under name.
func (r *Registry) New(name string, min, max float64, normalized bool) (*Dist, error) {
	c, ok := r.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("distfunc: %q: %w", name, ErrUnknown)
	}
	return c(min, max, normalized), nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.ctors))
	for name := range r.ctors {
		names = append(names, name)
	}
	r.mu.RUnlock()
	sort.Strings(names)
	return names
}
