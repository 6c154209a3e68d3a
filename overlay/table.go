// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package overlay

import (
	"slices"
	"sync"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/multiview/internal/logging"
)

// TextureID identifies an image in the overlay's texture namespace.
type TextureID uint64

// Table maps texture ids to texture handles. It is safe for concurrent use.
type Table struct {
	mu       sync.RWMutex
	textures map[TextureID]gpucontext.Texture
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{textures: make(map[TextureID]gpucontext.Texture)}
}

// Bind associates id with tex. Binding an id again replaces the handle.
func (t *Table) Bind(id TextureID, tex gpucontext.Texture) {
	t.mu.Lock()
	_, replaced := t.textures[id]
	t.textures[id] = tex
	t.mu.Unlock()

	logging.Logger().Debug("overlay: texture bound", "id", uint64(id), "replaced", replaced)
}

// Lookup returns the handle bound to id.
func (t *Table) Lookup(id TextureID) (gpucontext.Texture, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	tex, ok := t.textures[id]
	return tex, ok
}

// IDs returns the bound ids in ascending order.
func (t *Table) IDs() []TextureID {
	t.mu.RLock()
	ids := make([]TextureID, 0, len(t.textures))
	for id := range t.textures {
		ids = append(ids, id)
	}
	t.mu.RUnlock()
	slices.Sort(ids)
	return ids
}

// Len returns the number of bound ids.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.textures)
}
