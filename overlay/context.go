// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package overlay

import (
	"image"
	"slices"
	"sync"
	"unicode/utf8"

	"github.com/gogpu/gpucontext"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/multiview/internal/logging"
	"github.com/gogpu/multiview/window"
)

// Manager owns the per-window contexts and the shared texture table.
type Manager struct {
	mu       sync.Mutex
	table    *Table
	shaper   *shaper
	contexts map[window.ID]*Context
}

// NewManager creates a manager whose contexts resolve images through table.
// Text is measured by shaping it in the Go Regular font at FontSize.
func NewManager(table *Table) *Manager {
	return &Manager{
		table:    table,
		shaper:   defaultShaper(),
		contexts: make(map[window.ID]*Context),
	}
}

// Table returns the shared texture table.
func (m *Manager) Table() *Table { return m.table }

// Context returns the context of window id, creating it on first use.
func (m *Manager) Context(id window.ID) *Context {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.contexts[id]
	if !ok {
		c = &Context{window: id, table: m.table, shaper: m.shaper}
		m.contexts[id] = c
		logging.Logger().Debug("overlay: context created", "window", id.String())
	}
	return c
}

// Windows returns the ids that have a context, in ascending order.
func (m *Manager) Windows() []window.ID {
	m.mu.Lock()
	ids := make([]window.ID, 0, len(m.contexts))
	for id := range m.contexts {
		ids = append(ids, id)
	}
	m.mu.Unlock()
	slices.Sort(ids)
	return ids
}

type edit struct {
	text      string
	backspace bool
}

// Context is the overlay state of one window.
type Context struct {
	window window.ID
	table  *Table
	shaper *shaper

	// Frame state, touched only by the goroutine building frames.
	frame   uint64
	open    bool
	cmds    []Command
	last    []Command
	windowY int

	// Input state, fed by event callbacks.
	mu      sync.Mutex
	focus   string
	pending []edit
}

// WindowID returns the window this context draws into.
func (c *Context) WindowID() window.ID { return c.window }

// Frame returns the number of frames begun so far.
func (c *Context) Frame() uint64 { return c.frame }

// Begin starts a frame, discarding any unfinished one.
func (c *Context) Begin() {
	c.frame++
	c.open = true
	c.cmds = c.cmds[:0]
	c.windowY = 0
}

// End finishes the frame and returns its draw list. Input that no focused
// field consumed during the frame is dropped.
func (c *Context) End() []Command {
	c.open = false
	c.last = slices.Clone(c.cmds)

	c.mu.Lock()
	c.pending = nil
	c.mu.Unlock()
	return slices.Clone(c.last)
}

// Commands returns the draw list of the last finished frame.
func (c *Context) Commands() []Command { return slices.Clone(c.last) }

// Window draws a titled overlay window and lays out the widgets added by
// fn. Overlay windows stack vertically in call order. Calls outside Begin and End are
// ignored.
func (c *Context) Window(title string, fn func(ui *UI)) {
	if !c.open {
		logging.Logger().Warn("overlay: window drawn outside a frame", "window", c.window.String(), "title", title)
		return
	}
	lineHeight := c.shaper.LineHeight()
	origin := image.Pt(padding, c.windowY+padding)

	at := len(c.cmds)
	c.cmds = append(c.cmds, Command{Kind: CmdWindow, Window: title, Text: title})

	ui := &UI{
		ctx:        c,
		title:      title,
		lineHeight: lineHeight,
		cursor:     origin.Add(image.Pt(padding, lineHeight+spacing)),
	}
	ui.extent = image.Rectangle{Min: origin, Max: ui.cursor}
	titleWidth := c.shaper.Advance(title)
	ui.extent.Max.X = max(ui.extent.Max.X, origin.X+titleWidth+2*padding)
	if fn != nil {
		fn(ui)
	}

	bounds := ui.extent
	bounds.Max = bounds.Max.Add(image.Pt(padding, padding))
	c.cmds[at].Bounds = bounds
	c.windowY = bounds.Max.Y
}

// Focus directs text input to the field with the given id. An empty id
// removes focus.
func (c *Context) Focus(field string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.focus = field
}

// Focused returns the id of the focused field.
func (c *Context) Focused() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.focus
}

// Type queues text for the focused field.
func (c *Context) Type(text string) {
	if text == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = append(c.pending, edit{text: text})
}

// Backspace queues the deletion of the last character of the focused field.
func (c *Context) Backspace() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = append(c.pending, edit{backspace: true})
}

// Attach routes text input and editing keys from src to this context.
// Enter and Escape remove focus.
func (c *Context) Attach(src gpucontext.EventSource) {
	src.OnTextInput(c.Type)
	src.OnIMECompositionEnd(c.Type)
	src.OnKeyPress(func(key gpucontext.Key, _ gpucontext.Modifiers) {
		switch key {
		case gpucontext.KeyBackspace:
			c.Backspace()
		case gpucontext.KeyEnter, gpucontext.KeyEscape:
			c.Focus("")
		}
	})
}

// consume applies queued input to text if field has focus and reports
// whether text changed.
func (c *Context) consume(field string, text *string) bool {
	c.mu.Lock()
	if c.focus != field || len(c.pending) == 0 {
		c.mu.Unlock()
		return false
	}
	edits := c.pending
	c.pending = nil
	c.mu.Unlock()

	s := *text
	for _, e := range edits {
		if e.backspace {
			_, size := utf8.DecodeLastRuneInString(s)
			s = s[:len(s)-size]
			continue
		}
		s += e.text
	}
	s = norm.NFC.String(s)
	if s == *text {
		return false
	}
	*text = s
	return true
}
