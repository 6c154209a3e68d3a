// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/multiview/graph"
	"github.com/gogpu/multiview/internal/logging"
	"github.com/gogpu/multiview/window"
)

// ErrNoSurface is returned when a swapchain view is requested for a window
// whose surface has not been attached.
var ErrNoSurface = errors.New("render: window has no surface")

// ViewResolver turns texture source nodes into attachment views.
//
// A ViewResolver is an abstraction over different destinations:
//   - swapchain sources resolve to the window's current surface view
//   - other sources resolve to a texture the resolver allocates once per
//     node and reuses across frames
type ViewResolver interface {
	// View returns the view handle for the texture source node name.
	View(name string, src graph.TextureSource) (uintptr, error)
}

// Allocation records a texture allocated for a node.
type Allocation struct {
	Name       string
	Window     window.ID
	Descriptor gputypes.TextureDescriptor
	View       uintptr
}

type surface struct {
	config gputypes.SurfaceConfiguration
	view   uintptr
}

// HeadlessViews is a ViewResolver that hands out opaque, stable view handles
// without touching a device. It is safe for concurrent use.
type HeadlessViews struct {
	mu       sync.Mutex
	device   DeviceHandle
	next     uintptr
	surfaces map[window.ID]*surface
	textures map[string]*Allocation
}

// NewHeadlessViews creates a resolver for the given device. A nil device
// behaves like NullDeviceHandle.
func NewHeadlessViews(device DeviceHandle) *HeadlessViews {
	if device == nil {
		device = NullDeviceHandle{}
	}
	return &HeadlessViews{
		device:   device,
		surfaces: make(map[window.ID]*surface),
		textures: make(map[string]*Allocation),
	}
}

func (v *HeadlessViews) handle() uintptr {
	v.next++
	return v.next
}

// AttachSurface configures the surface of window id. Attaching again
// reconfigures the surface and replaces its view.
func (v *HeadlessViews) AttachSurface(id window.ID, desc window.Descriptor, width, height uint32) {
	v.mu.Lock()
	defer v.mu.Unlock()

	cfg := desc.SurfaceConfiguration(SurfaceFormat(v.device))
	cfg.Width, cfg.Height = max(width, 1), max(height, 1)
	v.surfaces[id] = &surface{config: cfg, view: v.handle()}

	logging.Logger().Info("render: surface attached",
		"window", id.String(),
		"width", cfg.Width,
		"height", cfg.Height,
		"present_mode", cfg.PresentMode.String())
}

// Surface returns the configuration of window id's surface.
func (v *HeadlessViews) Surface(id window.ID) (gputypes.SurfaceConfiguration, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	s, ok := v.surfaces[id]
	if !ok {
		return gputypes.SurfaceConfiguration{}, false
	}
	return s.config, true
}

// View implements ViewResolver.
func (v *HeadlessViews) View(name string, src graph.TextureSource) (uintptr, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if src.Swapchain {
		s, ok := v.surfaces[src.Window]
		if !ok {
			return 0, fmt.Errorf("%w: %v (node %q)", ErrNoSurface, src.Window, name)
		}
		return s.view, nil
	}

	if a, ok := v.textures[name]; ok && sameTexture(a.Descriptor, src.Descriptor) {
		return a.View, nil
	}
	a := &Allocation{Name: name, Window: src.Window, Descriptor: src.Descriptor, View: v.handle()}
	v.textures[name] = a
	logging.Logger().Debug("render: texture allocated",
		"node", name,
		"format", src.Descriptor.Format.String(),
		"width", src.Descriptor.Size.Width,
		"height", src.Descriptor.Size.Height,
		"samples", src.Descriptor.SampleCount)
	return a.View, nil
}

func sameTexture(a, b gputypes.TextureDescriptor) bool {
	return a.Size == b.Size &&
		a.Format == b.Format &&
		a.SampleCount == b.SampleCount &&
		a.MipLevelCount == b.MipLevelCount &&
		a.Dimension == b.Dimension &&
		a.Usage == b.Usage &&
		slices.Equal(a.ViewFormats, b.ViewFormats)
}

// Allocations returns the textures allocated so far, sorted by node name.
func (v *HeadlessViews) Allocations() []Allocation {
	v.mu.Lock()
	out := make([]Allocation, 0, len(v.textures))
	for _, a := range v.textures {
		out = append(out, *a)
	}
	v.mu.Unlock()
	slices.SortFunc(out, func(a, b Allocation) int { return strings.Compare(a.Name, b.Name) })
	return out
}

var _ ViewResolver = (*HeadlessViews)(nil)
