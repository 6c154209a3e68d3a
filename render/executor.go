// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"
	"slices"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/multiview/graph"
	"github.com/gogpu/multiview/internal/logging"
	"github.com/gogpu/multiview/window"
)

// ErrNotTexture is returned when a pass attachment slot is bound to a node
// that is not a texture source.
var ErrNotTexture = errors.New("render: attachment source is not a texture")

// PassRecord is one pass recorded during a frame.
type PassRecord struct {
	Node        string
	Window      window.ID
	SampleCount uint32
	Cameras     []string
	Descriptor  gputypes.RenderPassDescriptor
}

// FrameRecord is the outcome of executing one frame.
type FrameRecord struct {
	Index  uint64
	Values *graph.Frame
	Passes []PassRecord
}

// Pass returns the record of the named pass node.
func (r *FrameRecord) Pass(node string) (PassRecord, bool) {
	i := slices.IndexFunc(r.Passes, func(p PassRecord) bool { return p.Node == node })
	if i < 0 {
		return PassRecord{}, false
	}
	return r.Passes[i], true
}

// Executor runs finalized schedules.
type Executor struct {
	views ViewResolver
}

// NewExecutor creates an executor resolving attachments through views.
func NewExecutor(views ViewResolver) *Executor {
	return &Executor{views: views}
}

// Execute runs one frame of s. System nodes run in schedule order and may
// publish values read by later nodes; each pass node is recorded with its
// attachments resolved. The first error stops the frame.
func (e *Executor) Execute(s *graph.Schedule, index uint64) (*FrameRecord, error) {
	rec := &FrameRecord{Index: index, Values: graph.NewFrame(index)}
	g := s.Graph()

	for _, n := range s.Order() {
		if n.IsSystem() {
			if err := n.System(rec.Values); err != nil {
				return nil, fmt.Errorf("render: node %q: %w", n.Name, err)
			}
		}
		p, ok := n.Config.(graph.Pass)
		if !ok {
			continue
		}
		pr, err := e.recordPass(g, n.Name, p.Descriptor)
		if err != nil {
			return nil, err
		}
		rec.Passes = append(rec.Passes, pr)
	}

	logging.Logger().Debug("render: frame executed", "frame", index, "passes", len(rec.Passes))
	return rec, nil
}

func (e *Executor) recordPass(g *graph.Graph, name string, d graph.PassDescriptor) (PassRecord, error) {
	pr := PassRecord{
		Node:        name,
		SampleCount: d.SampleCount,
		Cameras:     slices.Clone(d.Cameras),
		Descriptor:  gputypes.RenderPassDescriptor{Label: name},
	}

	for i, ca := range d.ColorAttachments {
		view, src, err := e.resolve(g, name, ca.Slot)
		if err != nil {
			return PassRecord{}, err
		}
		if i == 0 {
			pr.Window = src.Window
		}
		att := gputypes.RenderPassColorAttachment{
			View:       view,
			LoadOp:     ca.Ops.Load,
			StoreOp:    ca.Ops.Store,
			ClearValue: ca.Ops.Clear,
		}
		if ca.ResolveSlot != "" {
			resolve, rsrc, err := e.resolve(g, name, ca.ResolveSlot)
			if err != nil {
				return PassRecord{}, err
			}
			att.ResolveTarget = resolve
			// The resolve target is what reaches the window.
			if i == 0 {
				pr.Window = rsrc.Window
			}
		}
		pr.Descriptor.ColorAttachments = append(pr.Descriptor.ColorAttachments, att)
	}

	if ds := d.DepthStencil; ds != nil {
		view, _, err := e.resolve(g, name, ds.Slot)
		if err != nil {
			return PassRecord{}, err
		}
		pr.Descriptor.DepthStencilAttachment = &gputypes.RenderPassDepthStencilAttachment{
			View:            view,
			DepthLoadOp:     ds.Depth.Load,
			DepthStoreOp:    ds.Depth.Store,
			DepthClearValue: ds.Depth.Clear,
			DepthReadOnly:   ds.ReadOnly,
		}
	}
	return pr, nil
}

func (e *Executor) resolve(g *graph.Graph, pass, slot string) (uintptr, graph.TextureSource, error) {
	n, ok := g.InputOf(pass, slot)
	if !ok {
		return 0, graph.TextureSource{}, &graph.UnboundSlotError{Node: pass, Slot: slot}
	}
	src, ok := n.Config.(graph.TextureSource)
	if !ok {
		return 0, graph.TextureSource{}, fmt.Errorf("%w: %s.%s <- %q (%v)", ErrNotTexture, pass, slot, n.Name, n.Kind())
	}
	view, err := e.views.View(n.Name, src)
	if err != nil {
		return 0, graph.TextureSource{}, fmt.Errorf("render: pass %q slot %q: %w", pass, slot, err)
	}
	return view, src, nil
}
