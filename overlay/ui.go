// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package overlay

import (
	"fmt"
	"image"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/multiview/internal/logging"
)

// Layout metrics in pixels.
const (
	padding        = 4
	spacing        = 4
	textEditWidth  = 200
	textEditMargin = 2
)

// CommandKind tags a draw-list entry.
type CommandKind int

const (
	CmdWindow CommandKind = iota
	CmdLabel
	CmdTextEdit
	CmdImage
)

func (k CommandKind) String() string {
	switch k {
	case CmdWindow:
		return "Window"
	case CmdLabel:
		return "Label"
	case CmdTextEdit:
		return "TextEdit"
	case CmdImage:
		return "Image"
	default:
		return fmt.Sprintf("CommandKind(%d)", int(k))
	}
}

// Command is one entry of a frame's draw list.
type Command struct {
	Kind CommandKind

	// Window is the title of the overlay window holding the entry.
	Window string

	// Text is the window title, label text or text-edit contents.
	Text string

	// ID identifies a text edit across frames.
	ID      string
	Focused bool

	Texture TextureID
	// Handle is the texture bound to Texture when the frame was built,
	// nil if the id was unbound.
	Handle gpucontext.Texture

	Bounds image.Rectangle
}

// Response describes the widget just added.
type Response struct {
	ID      string
	Bounds  image.Rectangle
	Changed bool
}

// UI lays out the widgets of one overlay window.
type UI struct {
	ctx        *Context
	title      string
	lineHeight int
	seq        int

	cursor    image.Point
	extent    image.Rectangle
	row       bool
	rowHeight int
}

// Horizontal lays out the widgets added by fn left to right.
func (ui *UI) Horizontal(fn func(ui *UI)) {
	if ui.row {
		fn(ui)
		return
	}
	startX := ui.cursor.X
	ui.row = true
	ui.rowHeight = 0
	fn(ui)
	ui.row = false

	ui.cursor.X = startX
	if ui.rowHeight > 0 {
		ui.cursor.Y += ui.rowHeight + spacing
	}
}

// place reserves a w×h rectangle at the cursor.
func (ui *UI) place(w, h int) image.Rectangle {
	r := image.Rectangle{Min: ui.cursor, Max: ui.cursor.Add(image.Pt(w, h))}
	if ui.row {
		ui.cursor.X += w + spacing
		ui.rowHeight = max(ui.rowHeight, h)
	} else {
		ui.cursor.Y += h + spacing
	}
	ui.extent = ui.extent.Union(r)
	return r
}

func (ui *UI) emit(cmd Command) {
	cmd.Window = ui.title
	ui.ctx.cmds = append(ui.ctx.cmds, cmd)
}

// Label adds a line of text.
func (ui *UI) Label(text string) Response {
	w := ui.ctx.shaper.Advance(text)
	r := ui.place(w, ui.lineHeight)
	ui.emit(Command{Kind: CmdLabel, Text: text, Bounds: r})
	return Response{Bounds: r}
}

// TextEditSingleline adds a one-line text field editing *text. Queued input
// is applied when the field has focus. Field ids are derived from the
// window title and the field's position among the window's fields, so they
// are stable across frames.
func (ui *UI) TextEditSingleline(text *string) Response {
	id := fmt.Sprintf("%s#%d", ui.title, ui.seq)
	ui.seq++

	changed := ui.ctx.consume(id, text)
	w := max(textEditWidth, ui.ctx.shaper.Advance(*text)+2*textEditMargin)
	r := ui.place(w, ui.lineHeight+2*textEditMargin)
	ui.emit(Command{
		Kind:    CmdTextEdit,
		Text:    *text,
		ID:      id,
		Focused: ui.ctx.Focused() == id,
		Bounds:  r,
	})
	return Response{ID: id, Bounds: r, Changed: changed}
}

// Image adds the texture bound to id at the given size.
func (ui *UI) Image(id TextureID, width, height int) Response {
	tex, ok := ui.ctx.table.Lookup(id)
	if !ok {
		logging.Logger().Warn("overlay: image id not bound", "id", uint64(id), "window", ui.title)
	}
	r := ui.place(width, height)
	ui.emit(Command{Kind: CmdImage, Texture: id, Handle: tex, Bounds: r})
	return Response{Bounds: r}
}
