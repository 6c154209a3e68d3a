// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package camera tracks which named cameras are active and which window
// each camera renders into.
//
// A camera name becomes active through Registry.Add, usually while a
// viewport is assembled. The camera itself is spawned separately with
// Registry.Spawn, which binds its name to exactly one window for the
// lifetime of the registry:
//
//	reg := camera.NewRegistry()
//	reg.Add("Secondary")
//	err := reg.Spawn(camera.Camera{
//		Name:      "Secondary",
//		Window:    id,
//		Transform: camera.LookAt(mgl32.Vec3{6, 0, 0}, mgl32.Vec3{}),
//	})
package camera
