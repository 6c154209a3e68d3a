// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package viewport

import "github.com/gogpu/multiview/graph"

// colorStrategy decides how a pass's color attachment is fed.
type colorStrategy struct {
	// extraNode adds a multisampled color texture ahead of the pass.
	extraNode bool

	attachment func(ops graph.ColorOps) graph.ColorAttachment
	wire       func(g *graph.Graph, n Names, pass string) error
}

// colorStrategies is keyed by whether the sample count is above one.
var colorStrategies = map[bool]colorStrategy{
	false: {
		attachment: func(ops graph.ColorOps) graph.ColorAttachment {
			return graph.ColorAttachment{Slot: SlotColorAttachment, Ops: ops}
		},
		wire: func(g *graph.Graph, n Names, pass string) error {
			return g.AddSlotEdge(n.Swapchain, graph.SlotTexture, pass, SlotColorAttachment)
		},
	},
	true: {
		extraNode: true,
		attachment: func(ops graph.ColorOps) graph.ColorAttachment {
			return graph.ColorAttachment{Slot: SlotColorAttachment, ResolveSlot: SlotColorResolveTarget, Ops: ops}
		},
		wire: func(g *graph.Graph, n Names, pass string) error {
			if err := g.AddSlotEdge(n.MSAA, graph.SlotTexture, pass, SlotColorAttachment); err != nil {
				return err
			}
			return g.AddSlotEdge(n.Swapchain, graph.SlotTexture, pass, SlotColorResolveTarget)
		},
	},
}
