// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package graph

// SystemFunc is the per-frame logic of a system node.
type SystemFunc func(f *Frame) error

// Frame carries values published by system nodes during one frame.
// Keys are chosen by the publishing node; consumers that run later in the
// schedule read them back.
type Frame struct {
	Index  uint64
	values map[string]any
}

// NewFrame returns an empty frame.
func NewFrame(index uint64) *Frame {
	return &Frame{Index: index, values: make(map[string]any)}
}

// Set publishes v under key, replacing any earlier value.
func (f *Frame) Set(key string, v any) {
	f.values[key] = v
}

// Get returns the value published under key.
func (f *Frame) Get(key string) (any, bool) {
	v, ok := f.values[key]
	return v, ok
}

// Len returns the number of published values.
func (f *Frame) Len() int { return len(f.values) }

// Value returns the value under key converted to T.
func Value[T any](f *Frame, key string) (T, bool) {
	v, ok := f.values[key]
	if !ok {
		var zero T
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}
