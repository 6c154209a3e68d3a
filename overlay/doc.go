// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package overlay binds an immediate-mode UI to the windows of a
// multi-window application.
//
// Each window owns one Context, obtained from a Manager. A frame is built
// between Begin and End and produces a draw list whose order depends only
// on the calls made:
//
//	ctx := mgr.Context(id)
//	ctx.Begin()
//	ctx.Window("Second Window", func(ui *overlay.UI) {
//		ui.Horizontal(func(ui *overlay.UI) {
//			ui.Label("Write something else: ")
//			ui.TextEditSingleline(&state.Input)
//		})
//		ui.Image(iconID, 256, 256)
//	})
//	cmds := ctx.End()
//
// Images are referenced by TextureID. The Table mapping ids to texture
// handles is shared by every context, so an id bound once is visible from
// all windows.
package overlay
