// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package graph

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for errors.Is. The typed errors below carry the details.
var (
	ErrDuplicateName = errors.New("graph: duplicate node name")
	ErrMissingNode   = errors.New("graph: missing node")
	ErrMissingSlot   = errors.New("graph: missing slot")
	ErrSlotBound     = errors.New("graph: input slot already bound")
	ErrCycle         = errors.New("graph: cycle detected")
	ErrUnboundSlot   = errors.New("graph: input slot not bound")
	ErrNilConfig     = errors.New("graph: nil node config")
	ErrDuplicateSlot = errors.New("graph: duplicate slot name")
)

// DuplicateNameError indicates a node name is already taken.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return "graph: node already exists: " + e.Name
}

// Is reports whether target is ErrDuplicateName.
func (e *DuplicateNameError) Is(target error) bool { return target == ErrDuplicateName }

// MissingNodeError indicates an edge references a node that was never added.
type MissingNodeError struct {
	Name string
}

func (e *MissingNodeError) Error() string {
	return "graph: node not found: " + e.Name
}

// Is reports whether target is ErrMissingNode.
func (e *MissingNodeError) Is(target error) bool { return target == ErrMissingNode }

// MissingSlotError indicates a slot edge names a slot the node does not declare.
type MissingSlotError struct {
	Node   string
	Slot   string
	Output bool
}

func (e *MissingSlotError) Error() string {
	dir := "input"
	if e.Output {
		dir = "output"
	}
	return fmt.Sprintf("graph: node %q has no %s slot %q", e.Node, dir, e.Slot)
}

// Is reports whether target is ErrMissingSlot.
func (e *MissingSlotError) Is(target error) bool { return target == ErrMissingSlot }

// DuplicateSlotError indicates a node config declares the same slot name
// twice on one side, so one binding would feed two roles.
type DuplicateSlotError struct {
	Node   string
	Slot   string
	Output bool
}

func (e *DuplicateSlotError) Error() string {
	dir := "input"
	if e.Output {
		dir = "output"
	}
	return fmt.Sprintf("graph: node %q declares %s slot %q more than once", e.Node, dir, e.Slot)
}

// Is reports whether target is ErrDuplicateSlot.
func (e *DuplicateSlotError) Is(target error) bool { return target == ErrDuplicateSlot }

// SlotBoundError indicates an input slot already has an inbound edge.
type SlotBoundError struct {
	Node string
	Slot string
	By   string
}

func (e *SlotBoundError) Error() string {
	return fmt.Sprintf("graph: input slot %q of node %q already bound by %q", e.Slot, e.Node, e.By)
}

// Is reports whether target is ErrSlotBound.
func (e *SlotBoundError) Is(target error) bool { return target == ErrSlotBound }

// CycleError lists the nodes of one ordering cycle, first node repeated last.
type CycleError struct {
	Nodes []string
}

func (e *CycleError) Error() string {
	return "graph: cycle detected: " + strings.Join(e.Nodes, " -> ")
}

// Is reports whether target is ErrCycle.
func (e *CycleError) Is(target error) bool { return target == ErrCycle }

// UnboundSlotError indicates a pass input slot has no inbound edge at
// finalization.
type UnboundSlotError struct {
	Node string
	Slot string
}

func (e *UnboundSlotError) Error() string {
	return fmt.Sprintf("graph: input slot %q of node %q is not bound", e.Slot, e.Node)
}

// Is reports whether target is ErrUnboundSlot.
func (e *UnboundSlotError) Is(target error) bool { return target == ErrUnboundSlot }
