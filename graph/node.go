// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package graph

import (
	"fmt"
	"slices"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/multiview/window"
)

// ID is the interned identifier of a node within one Graph.
type ID uint32

// Kind tags what a node does.
type Kind int

const (
	// KindTextureSource nodes produce a texture on their SlotTexture output.
	KindTextureSource Kind = iota

	// KindCameraSource nodes publish per-frame camera data.
	KindCameraSource

	// KindPass nodes record a render pass over their input attachments.
	KindPass

	// KindUniformSource nodes publish per-frame uniforms that are not tied
	// to a camera, such as an overlay's screen transform.
	KindUniformSource
)

func (k Kind) String() string {
	switch k {
	case KindTextureSource:
		return "TextureSource"
	case KindCameraSource:
		return "CameraSource"
	case KindPass:
		return "Pass"
	case KindUniformSource:
		return "UniformSource"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// SlotTexture is the output slot of every texture source.
const SlotTexture = "texture"

// Config is the kind-specific configuration of a node. It also defines the
// node's slot schema.
type Config interface {
	Kind() Kind
	InputSlots() []string
	OutputSlots() []string
}

// TextureSource configures a node that provides a texture bound to a window.
//
// When Swapchain is set the texture is the window's current swapchain image
// and Descriptor only records its format; otherwise Descriptor describes a
// texture the backend allocates for the window.
type TextureSource struct {
	Window     window.ID
	Swapchain  bool
	Descriptor gputypes.TextureDescriptor
}

func (TextureSource) Kind() Kind            { return KindTextureSource }
func (TextureSource) InputSlots() []string  { return nil }
func (TextureSource) OutputSlots() []string { return []string{SlotTexture} }

// CameraSource configures a node that provides the named camera's data.
type CameraSource struct {
	Camera string
}

func (CameraSource) Kind() Kind            { return KindCameraSource }
func (CameraSource) InputSlots() []string  { return nil }
func (CameraSource) OutputSlots() []string { return nil }

// UniformSource configures a node that provides per-window uniforms.
type UniformSource struct {
	Window window.ID
	Label  string
}

func (UniformSource) Kind() Kind            { return KindUniformSource }
func (UniformSource) InputSlots() []string  { return nil }
func (UniformSource) OutputSlots() []string { return nil }

// ColorOps are the load and store operations of a color attachment.
type ColorOps struct {
	Load  gputypes.LoadOp
	Clear gputypes.Color
	Store gputypes.StoreOp
}

// DepthOps are the load and store operations of a depth attachment.
type DepthOps struct {
	Load  gputypes.LoadOp
	Clear float32
	Store gputypes.StoreOp
}

// ColorAttachment names the input slot a pass renders color into and,
// for multisampled passes, the slot it resolves into.
type ColorAttachment struct {
	Slot        string
	ResolveSlot string
	Ops         ColorOps
}

// DepthStencilAttachment names the input slot holding the depth buffer.
type DepthStencilAttachment struct {
	Slot     string
	Depth    DepthOps
	ReadOnly bool
}

// PassDescriptor describes a render pass node.
type PassDescriptor struct {
	ColorAttachments []ColorAttachment
	DepthStencil     *DepthStencilAttachment
	SampleCount      uint32

	// Cameras lists the cameras whose entities this pass draws.
	Cameras []string
}

// Pass configures a render pass node.
type Pass struct {
	Descriptor PassDescriptor
}

func (Pass) Kind() Kind            { return KindPass }
func (Pass) OutputSlots() []string { return nil }

// InputSlots returns the attachment slots in declaration order: each color
// slot followed by its resolve slot, then the depth slot.
func (p Pass) InputSlots() []string {
	var slots []string
	for _, ca := range p.Descriptor.ColorAttachments {
		slots = append(slots, ca.Slot)
		if ca.ResolveSlot != "" {
			slots = append(slots, ca.ResolveSlot)
		}
	}
	if ds := p.Descriptor.DepthStencil; ds != nil {
		slots = append(slots, ds.Slot)
	}
	return slots
}

// Node is a graph node record.
type Node struct {
	ID     ID
	Name   string
	Config Config

	// System is the per-frame logic of a system node, nil otherwise.
	System SystemFunc

	inputs  []string
	outputs []string
}

// Kind returns the node's kind.
func (n *Node) Kind() Kind { return n.Config.Kind() }

// IsSystem reports whether the node runs per-frame logic.
func (n *Node) IsSystem() bool { return n.System != nil }

// Inputs returns the node's declared input slots.
func (n *Node) Inputs() []string { return slices.Clone(n.inputs) }

// Outputs returns the node's declared output slots.
func (n *Node) Outputs() []string { return slices.Clone(n.outputs) }

// HasInput reports whether slot is a declared input.
func (n *Node) HasInput(slot string) bool { return slices.Contains(n.inputs, slot) }

// HasOutput reports whether slot is a declared output.
func (n *Node) HasOutput(slot string) bool { return slices.Contains(n.outputs, slot) }

// SlotEdge carries the resource on From's output slot into To's input slot.
type SlotEdge struct {
	From     ID
	FromSlot string
	To       ID
	ToSlot   string
}

// NodeEdge orders From before To without passing a resource.
type NodeEdge struct {
	From ID
	To   ID
}
