// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package window

import (
	"math"

	"github.com/gogpu/gpucontext"
)

// Backend is the windowing layer seen from the core.
//
// Implementations are driven from the scheduler thread only: Pump is called
// once at the start of every tick and the other methods between pumps.
type Backend interface {
	// Request enqueues a window-creation request. The window becomes visible
	// through Windows on some later Pump.
	Request(req CreateRequest)

	// Pump processes pending platform work, including outstanding requests.
	Pump()

	// Windows returns the ids of all windows with a live surface, primary
	// window first.
	Windows() []ID

	// Provider returns geometry access for a live window.
	Provider(id ID) (gpucontext.WindowProvider, bool)
}

// backends holds the registered windowing backends. Platform backends are
// preferred over the headless one.
var backends = gpucontext.NewRegistry[Backend](
	gpucontext.WithPriority("native", "headless"),
)

// RegisterBackend makes a backend factory available under name.
// Registering an existing name replaces it.
func RegisterBackend(name string, factory func() Backend) {
	backends.Register(name, factory)
}

// BackendByName creates the backend registered under name.
func BackendByName(name string) (Backend, error) {
	if !backends.Has(name) {
		return nil, &BackendNotFoundError{Name: name}
	}
	return backends.Get(name), nil
}

// BestBackend creates the highest-priority registered backend.
func BestBackend() Backend {
	return backends.Best()
}

// BackendNames lists every registered backend name.
func BackendNames() []string {
	return backends.Available()
}

// BackendNotFoundError indicates a named backend is not registered.
type BackendNotFoundError struct {
	Name string
}

func (e *BackendNotFoundError) Error() string {
	return "window: backend not found: " + e.Name
}

// SurfaceSize returns the physical pixel size of a window surface.
// Dimensions are never smaller than one pixel.
func SurfaceSize(p gpucontext.WindowProvider) (width, height uint32) {
	w, h := p.Size()
	scale := p.ScaleFactor()
	return physical(w, scale), physical(h, scale)
}

func physical(v int, scale float64) uint32 {
	px := math.Round(float64(v) * scale)
	if px < 1 {
		return 1
	}
	return uint32(px)
}

func init() {
	RegisterBackend("headless", func() Backend {
		d := DefaultDescriptor()
		return NewHeadless(d.Width, d.Height)
	})
}
