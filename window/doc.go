// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package window models application windows and the readiness sequence a
// secondary window goes through before anything renders into it.
//
// A window is requested with a Descriptor. The windowing backend turns the
// request into an OS surface asynchronously; the core only learns that the
// surface exists by polling the backend's live-window set once per tick.
// Lifecycle tracks that sequence:
//
//	Requesting ──(window observed live)──▶ BackendReady ──(viewport assembled)──▶ Active
//
// No transition moves backward and each state is left at most once. Waiting
// for the backend is a series of no-op ticks, never a blocking call.
//
// # Backends
//
// Backend is the contract consumed from the windowing layer. Headless is an
// in-process implementation that acknowledges requests after a configurable
// number of pumps; it backs the tests and the demo command. Backends are
// looked up by name through a gpucontext.Registry:
//
//	window.RegisterBackend("headless", func() window.Backend { return window.NewHeadless(800, 600) })
//	b := window.BestBackend()
package window
