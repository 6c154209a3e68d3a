// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package graph implements the render graph: named nodes that produce
// textures, provide camera data or record passes, connected by slot edges
// (a resource handed from an output slot to an input slot) and node edges
// (pure execution ordering).
//
// Node names are interned to dense IDs when a node is added. Every mutation
// is validated immediately: duplicate names, unknown nodes and undeclared
// slots are reported by the call that introduced them. Cycles are the one
// exception; they are only detected by Finalize, which resolves all edges
// into an execution order before the first frame runs.
//
// # Slots
//
// A node's slot schema comes from its Config:
//
//   - TextureSource declares one output, SlotTexture.
//   - Pass declares one input per color attachment, one per resolve target
//     and one for the depth-stencil attachment.
//   - CameraSource and UniformSource declare no slots; they take part in
//     ordering only.
//
// An input slot accepts at most one inbound slot edge.
//
// # Thread Safety
//
// A Graph is not safe for concurrent use. It is owned by the scheduler and
// mutated only from scheduled systems.
package graph
