// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package viewport assembles the render graph nodes that draw one camera
// into one window.
//
// A viewport is a swapchain source bound to the window, a depth texture
// sized to the window surface, a camera source, the main pass, and an
// overlay pass that draws UI over the same attachments. When the sample
// count is above one, an extra multisampled color node renders the scene
// and the swapchain becomes the resolve target.
//
// Node names come from a Names set, so several viewports can share one
// graph:
//
//	g := graph.New()
//	cameras := camera.NewRegistry()
//	vp, err := viewport.Assemble(g, cameras, viewport.Config{
//		Window:      id,
//		Camera:      camera.Secondary,
//		SampleCount: 4,
//		Names:       viewport.SecondaryNames(),
//		Width:       800,
//		Height:      600,
//	})
package viewport
