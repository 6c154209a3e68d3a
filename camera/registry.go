// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package camera

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/gogpu/multiview/internal/logging"
	"github.com/gogpu/multiview/window"
)

var (
	// ErrAlreadyBound is returned when a camera name is spawned for a
	// second window.
	ErrAlreadyBound = errors.New("camera: name already bound to another window")

	// ErrEmptyName is returned when a camera has no name.
	ErrEmptyName = errors.New("camera: empty name")
)

// Registry is the set of active camera names and the spawned cameras.
// It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	active  []string
	cameras map[string]Camera
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{cameras: make(map[string]Camera)}
}

// Add marks name active. Adding an active name again has no effect.
func (r *Registry) Add(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if slices.Contains(r.active, name) {
		return
	}
	r.active = append(r.active, name)
	logging.Logger().Debug("camera: active", "name", name)
}

// Active returns the active names in the order they were added.
func (r *Registry) Active() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.active)
}

// IsActive reports whether name was added.
func (r *Registry) IsActive(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Contains(r.active, name)
}

// Len returns the number of active names.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.active)
}

// Spawn records c and binds its name to c.Window. Spawning the same name
// for the same window replaces the camera's transform and lens; spawning it
// for a different window fails with ErrAlreadyBound.
func (r *Registry) Spawn(c Camera) error {
	if c.Name == "" {
		return ErrEmptyName
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if prev, ok := r.cameras[c.Name]; ok && prev.Window != c.Window {
		return fmt.Errorf("%w: %q is bound to %v, not %v", ErrAlreadyBound, c.Name, prev.Window, c.Window)
	}
	r.cameras[c.Name] = c
	logging.Logger().Debug("camera: spawned", "name", c.Name, "window", c.Window.String())
	return nil
}

// Get returns the spawned camera named name.
func (r *Registry) Get(name string) (Camera, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.cameras[name]
	return c, ok
}

// Binding returns the window the named camera renders into.
func (r *Registry) Binding(name string) (window.ID, bool) {
	c, ok := r.Get(name)
	return c.Window, ok
}

// ForWindow returns the cameras bound to id, sorted by name.
func (r *Registry) ForWindow(id window.ID) []Camera {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Camera
	for _, c := range r.cameras {
		if c.Window == id {
			out = append(out, c)
		}
	}
	slices.SortFunc(out, func(a, b Camera) int { return strings.Compare(a.Name, b.Name) })
	return out
}
