// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render executes a finalized render graph one frame at a time.
//
// The host application owns the GPU device and the window surfaces; this
// package receives them through DeviceHandle and a ViewResolver and never
// creates either. For each frame the Executor walks the schedule in order,
// runs the per-frame logic of system nodes, and turns every pass node into
// a gputypes.RenderPassDescriptor whose attachments point at the views the
// resolver returned for the pass's input slots.
//
// # Headless execution
//
// HeadlessViews hands out stable opaque view handles without a device. It
// is used by tests and by the demo:
//
//	views := render.NewHeadlessViews(render.NullDeviceHandle{})
//	views.AttachSurface(window.PrimaryID, 1280, 720)
//	exec := render.NewExecutor(views)
//	rec, err := exec.Execute(schedule, frameIndex)
//
// A swapchain view exists only for windows whose surface was attached, so
// a pass that targets a window the backend has not yet created fails with
// ErrNoSurface instead of drawing into nothing.
package render
