// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package graph

import (
	"slices"

	"github.com/gogpu/multiview/internal/logging"
)

// Graph is a mutable render graph.
type Graph struct {
	ids       map[string]ID
	nodes     []*Node
	slotEdges []SlotEdge
	nodeEdges []NodeEdge
	ordered   map[NodeEdge]struct{}

	// inputs maps a destination node to its bound input slots.
	inputs map[ID]map[string]SlotEdge
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		ids:     make(map[string]ID),
		ordered: make(map[NodeEdge]struct{}),
		inputs:  make(map[ID]map[string]SlotEdge),
	}
}

// AddNode adds a node that only produces or consumes resources.
func (g *Graph) AddNode(name string, cfg Config) error {
	return g.add(name, cfg, nil)
}

// AddSystemNode adds a node whose fn runs once per frame, in graph order.
func (g *Graph) AddSystemNode(name string, cfg Config, fn SystemFunc) error {
	return g.add(name, cfg, fn)
}

func (g *Graph) add(name string, cfg Config, fn SystemFunc) error {
	if cfg == nil {
		return ErrNilConfig
	}
	if _, exists := g.ids[name]; exists {
		return &DuplicateNameError{Name: name}
	}
	inputs, outputs := cfg.InputSlots(), cfg.OutputSlots()
	if slot, ok := repeated(inputs); ok {
		return &DuplicateSlotError{Node: name, Slot: slot}
	}
	if slot, ok := repeated(outputs); ok {
		return &DuplicateSlotError{Node: name, Slot: slot, Output: true}
	}

	id := ID(len(g.nodes)) //nolint:gosec // G115: node count is far below 2^32
	n := &Node{
		ID:      id,
		Name:    name,
		Config:  cfg,
		System:  fn,
		inputs:  inputs,
		outputs: outputs,
	}
	g.ids[name] = id
	g.nodes = append(g.nodes, n)

	logging.Logger().Debug("graph: node added", "name", name, "kind", cfg.Kind().String(), "system", fn != nil)
	return nil
}

// repeated returns the first slot name that occurs twice in slots.
func repeated(slots []string) (string, bool) {
	for i, s := range slots {
		if slices.Contains(slots[i+1:], s) {
			return s, true
		}
	}
	return "", false
}

// AddSlotEdge connects src's output slot to dst's input slot.
func (g *Graph) AddSlotEdge(src, srcSlot, dst, dstSlot string) error {
	from, err := g.lookup(src)
	if err != nil {
		return err
	}
	to, err := g.lookup(dst)
	if err != nil {
		return err
	}
	if !from.HasOutput(srcSlot) {
		return &MissingSlotError{Node: src, Slot: srcSlot, Output: true}
	}
	if !to.HasInput(dstSlot) {
		return &MissingSlotError{Node: dst, Slot: dstSlot}
	}

	bound := g.inputs[to.ID]
	if prev, taken := bound[dstSlot]; taken {
		return &SlotBoundError{Node: dst, Slot: dstSlot, By: g.nodes[prev.From].Name}
	}
	if bound == nil {
		bound = make(map[string]SlotEdge)
		g.inputs[to.ID] = bound
	}

	e := SlotEdge{From: from.ID, FromSlot: srcSlot, To: to.ID, ToSlot: dstSlot}
	bound[dstSlot] = e
	g.slotEdges = append(g.slotEdges, e)

	logging.Logger().Debug("graph: slot edge added", "from", src, "from_slot", srcSlot, "to", dst, "to_slot", dstSlot)
	return nil
}

// AddNodeEdge orders src before dst. Adding the same edge twice is a no-op.
func (g *Graph) AddNodeEdge(src, dst string) error {
	from, err := g.lookup(src)
	if err != nil {
		return err
	}
	to, err := g.lookup(dst)
	if err != nil {
		return err
	}

	e := NodeEdge{From: from.ID, To: to.ID}
	if _, dup := g.ordered[e]; dup {
		return nil
	}
	g.ordered[e] = struct{}{}
	g.nodeEdges = append(g.nodeEdges, e)

	logging.Logger().Debug("graph: node edge added", "from", src, "to", dst)
	return nil
}

func (g *Graph) lookup(name string) (*Node, error) {
	id, ok := g.ids[name]
	if !ok {
		return nil, &MissingNodeError{Name: name}
	}
	return g.nodes[id], nil
}

// Node returns the node named name.
func (g *Graph) Node(name string) (*Node, bool) {
	id, ok := g.ids[name]
	if !ok {
		return nil, false
	}
	return g.nodes[id], true
}

// Has reports whether a node named name exists.
func (g *Graph) Has(name string) bool {
	_, ok := g.ids[name]
	return ok
}

// Nodes returns all nodes in insertion order.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// SlotEdges returns all slot edges in insertion order.
func (g *Graph) SlotEdges() []SlotEdge {
	out := make([]SlotEdge, len(g.slotEdges))
	copy(out, g.slotEdges)
	return out
}

// NodeEdges returns all node edges in insertion order.
func (g *Graph) NodeEdges() []NodeEdge {
	out := make([]NodeEdge, len(g.nodeEdges))
	copy(out, g.nodeEdges)
	return out
}

// InputOf returns the node bound to dst's input slot.
func (g *Graph) InputOf(dst, slot string) (*Node, bool) {
	id, ok := g.ids[dst]
	if !ok {
		return nil, false
	}
	e, ok := g.inputs[id][slot]
	if !ok {
		return nil, false
	}
	return g.nodes[e.From], true
}

// Dependencies returns the nodes dst must run after, through slot edges and
// node edges, without duplicates and in insertion order.
func (g *Graph) Dependencies(dst string) []*Node {
	id, ok := g.ids[dst]
	if !ok {
		return nil
	}
	seen := make(map[ID]bool)
	var deps []*Node
	add := func(from ID) {
		if !seen[from] {
			seen[from] = true
			deps = append(deps, g.nodes[from])
		}
	}
	for _, e := range g.slotEdges {
		if e.To == id {
			add(e.From)
		}
	}
	for _, e := range g.nodeEdges {
		if e.To == id {
			add(e.From)
		}
	}
	return deps
}
