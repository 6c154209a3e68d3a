// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package graph

import (
	"slices"

	"github.com/gogpu/multiview/internal/logging"
)

// Schedule is the execution order of a finalized graph.
type Schedule struct {
	graph    *Graph
	order    []*Node
	position map[string]int
}

// Finalize checks that every pass input is bound and resolves slot and node
// edges into an execution order. Among nodes that are ready at the same
// time, the one added first runs first, so the order is deterministic.
//
// Finalize may be called again after further mutation; each call returns a
// fresh Schedule.
func (g *Graph) Finalize() (*Schedule, error) {
	if err := g.checkInputs(); err != nil {
		return nil, err
	}

	n := len(g.nodes)
	succ := make([][]ID, n)
	indeg := make([]int, n)
	linked := make(map[NodeEdge]struct{}, len(g.slotEdges)+len(g.nodeEdges))
	link := func(from, to ID) {
		e := NodeEdge{From: from, To: to}
		if _, dup := linked[e]; dup {
			return
		}
		linked[e] = struct{}{}
		succ[from] = append(succ[from], to)
		indeg[to]++
	}
	for _, e := range g.slotEdges {
		link(e.From, e.To)
	}
	for _, e := range g.nodeEdges {
		link(e.From, e.To)
	}

	var ready []ID
	for id := range n {
		if indeg[id] == 0 {
			ready = append(ready, ID(id)) //nolint:gosec // G115: bounded by node count
		}
	}

	order := make([]*Node, 0, n)
	for len(ready) > 0 {
		id := ready[0]
		ready = ready[1:]
		order = append(order, g.nodes[id])
		for _, next := range succ[id] {
			indeg[next]--
			if indeg[next] == 0 {
				at, _ := slices.BinarySearch(ready, next)
				ready = slices.Insert(ready, at, next)
			}
		}
	}

	if len(order) < n {
		remaining := make([]bool, n)
		for id := range n {
			remaining[id] = indeg[id] > 0
		}
		return nil, &CycleError{Nodes: g.findCycle(remaining, succ)}
	}

	s := &Schedule{
		graph:    g,
		order:    order,
		position: make(map[string]int, n),
	}
	for i, node := range order {
		s.position[node.Name] = i
	}
	logging.Logger().Debug("graph: finalized", "nodes", n, "slot_edges", len(g.slotEdges), "node_edges", len(g.nodeEdges))
	return s, nil
}

func (g *Graph) checkInputs() error {
	for _, node := range g.nodes {
		if node.Kind() != KindPass {
			continue
		}
		for _, slot := range node.inputs {
			if _, ok := g.inputs[node.ID][slot]; !ok {
				return &UnboundSlotError{Node: node.Name, Slot: slot}
			}
		}
	}
	return nil
}

// findCycle returns the names along one cycle among the remaining nodes,
// with the first name repeated at the end.
func (g *Graph) findCycle(remaining []bool, succ [][]ID) []string {
	const (
		unvisited = iota
		onPath
		done
	)
	state := make([]int, len(g.nodes))
	var path, cycle []ID

	var visit func(id ID) bool
	visit = func(id ID) bool {
		state[id] = onPath
		path = append(path, id)
		for _, next := range succ[id] {
			if !remaining[next] {
				continue
			}
			switch state[next] {
			case onPath:
				start := slices.Index(path, next)
				cycle = append(slices.Clone(path[start:]), next)
				return true
			case unvisited:
				if visit(next) {
					return true
				}
			}
		}
		path = path[:len(path)-1]
		state[id] = done
		return false
	}

	for id := range g.nodes {
		if remaining[id] && state[id] == unvisited && visit(ID(id)) { //nolint:gosec // G115: bounded by node count
			break
		}
	}

	names := make([]string, len(cycle))
	for i, id := range cycle {
		names[i] = g.nodes[id].Name
	}
	return names
}

// Graph returns the graph the schedule was built from.
func (s *Schedule) Graph() *Graph { return s.graph }

// Order returns the nodes in execution order.
func (s *Schedule) Order() []*Node {
	return slices.Clone(s.order)
}

// Names returns node names in execution order.
func (s *Schedule) Names() []string {
	names := make([]string, len(s.order))
	for i, n := range s.order {
		names[i] = n.Name
	}
	return names
}

// Position returns the index of the named node in the order, or -1.
func (s *Schedule) Position(name string) int {
	if i, ok := s.position[name]; ok {
		return i
	}
	return -1
}

// Len returns the number of scheduled nodes.
func (s *Schedule) Len() int { return len(s.order) }
