// Courtside - Tennis Rankings Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courtside

package database

import (
	"context"
	"sync"
)

type traceKey struct{}

// LoadTrace counts the successful loads made under one context and how many
// of them were served from the result cache. It is safe for concurrent use.
type LoadTrace struct {
	mu    sync.Mutex
	loads int
	hits  int
}

// WithLoadTrace returns a context whose loads are recorded in the returned trace.
func WithLoadTrace(ctx context.Context) (context.Context, *LoadTrace) {
	t := &LoadTrace{}
	return context.WithValue(ctx, traceKey{}, t), t
}

func traceFrom(ctx context.Context) *LoadTrace {
	t, _ := ctx.Value(traceKey{}).(*LoadTrace)
	return t
}

func (t *LoadTrace) record(hit bool) {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.loads++
	if hit {
		t.hits++
	}
}

// Cached reports whether at least one load ran and every load was a cache hit.
func (t *LoadTrace) Cached() bool {
	if t == nil {
		return false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.loads > 0 && t.hits == t.loads
}

// Loads returns the number of recorded loads.
func (t *LoadTrace) Loads() int {
	if t == nil {
		return 0
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.loads
}
