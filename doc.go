// Package multiview renders one scene into two windows, each with its own
// camera and an overlay UI that shares part of its state across windows.
//
// # Overview
//
// The primary window exists when the application starts. The secondary
// window is requested from the windowing backend on the first tick and
// appears asynchronously. Its render graph nodes are added only after the
// backend reports it live, so pipeline and camera setup never race surface
// creation.
//
// # Quick Start
//
//	app, err := multiview.New(
//	    multiview.WithSampleCount(4),
//	    multiview.WithSecondWindow(window.Descriptor{
//	        Width: 800, Height: 600, Title: "second window",
//	    }),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = app.Run(ctx, 60)
//
// # Scheduling
//
// Every tick runs these systems in order:
//
//	pumpBackend → setupWindow → setup → observeWindows →
//	uiFirstWindow → uiSecondWindow → renderFrame
//
// The secondary window moves through Requesting, BackendReady and Active:
//
//   - setupWindow sends the creation request once
//   - observeWindows moves to BackendReady when the window is live
//   - setup, on the following tick, assembles the secondary viewport,
//     spawns the scene and moves to Active
//
// Ticks whose preconditions are not met do nothing; waiting for the backend
// is a sequence of no-op ticks. WithMaxWaitTicks turns an endless wait into
// window.ErrBackendTimeout.
//
// # Overlay
//
// Both windows draw a private text field, a text field bound to
// SharedUIState, and the icon bound to IconTexture. Text typed into the
// shared field in one window shows up in the other on the next tick.
//
// # Logging
//
// multiview uses log/slog and is silent by default. See SetLogger.
//
// # Sub-packages
//
//   - graph: render graph nodes, edges and scheduling
//   - viewport: per-window node sets
//   - window: window model, backends and the lifecycle state machine
//   - camera: active cameras and camera-window bindings
//   - overlay: per-window UI contexts and the texture table
//   - render: frame execution against a device
//   - config: HCL configuration files
package multiview
