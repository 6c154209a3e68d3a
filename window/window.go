// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package window

import (
	"fmt"
	"sync/atomic"

	"github.com/gogpu/gputypes"
)

// ID identifies a window for the lifetime of the process.
// The zero value is the primary window.
type ID uint64

// PrimaryID is the id of the window the application starts with.
const PrimaryID ID = 0

var lastID atomic.Uint64

// NewID returns a fresh, process-unique window id.
func NewID() ID {
	return ID(lastID.Add(1))
}

// IsPrimary reports whether id names the primary window.
func (id ID) IsPrimary() bool { return id == PrimaryID }

func (id ID) String() string {
	if id.IsPrimary() {
		return "window(primary)"
	}
	return fmt.Sprintf("window(%d)", uint64(id))
}

// Descriptor describes a window to create.
type Descriptor struct {
	// Width and Height are the client area size in logical points.
	Width  int
	Height int

	// VSync selects FIFO presentation when true, immediate otherwise.
	VSync bool

	Title string
}

// DefaultDescriptor returns the descriptor used when none is configured.
func DefaultDescriptor() Descriptor {
	return Descriptor{
		Width:  1280,
		Height: 720,
		VSync:  true,
		Title:  "multiview",
	}
}

// PresentMode returns the presentation mode implied by the vsync flag.
func (d Descriptor) PresentMode() gputypes.PresentMode {
	if d.VSync {
		return gputypes.PresentModeFifo
	}
	return gputypes.PresentModeImmediate
}

// SurfaceConfiguration returns the swapchain configuration for a surface
// created from d. Sizes below one pixel are clamped to one.
func (d Descriptor) SurfaceConfiguration(format gputypes.TextureFormat) gputypes.SurfaceConfiguration {
	return gputypes.SurfaceConfiguration{
		Usage:                      gputypes.TextureUsageRenderAttachment,
		Format:                     format,
		Width:                      clampDim(d.Width),
		Height:                     clampDim(d.Height),
		PresentMode:                d.PresentMode(),
		DesiredMaximumFrameLatency: 2,
		AlphaMode:                  gputypes.CompositeAlphaModeAuto,
	}
}

func clampDim(v int) uint32 {
	if v < 1 {
		return 1
	}
	return uint32(v) //nolint:gosec // G115: v is positive
}

// CreateRequest asks the windowing backend to open a window.
// There is no in-band response; readiness is discovered by polling.
type CreateRequest struct {
	ID         ID
	Descriptor Descriptor
}
