// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package window

import (
	"sync"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/multiview/internal/logging"
)

// Headless is a Backend without an OS. Windows are plain records and a
// request is acknowledged after a fixed number of pumps.
type Headless struct {
	mu      sync.Mutex
	latency int
	scale   float64
	pending []pendingRequest
	windows map[ID]*headlessWindow
	order   []ID
}

type pendingRequest struct {
	req       CreateRequest
	remaining int
}

type headlessWindow struct {
	desc     Descriptor
	provider gpucontext.NullWindowProvider
}

// HeadlessOption configures a Headless backend.
type HeadlessOption func(*Headless)

// WithLatency delays acknowledgment of each request by n extra pumps.
// With zero latency a request is live after the next Pump.
func WithLatency(n int) HeadlessOption {
	return func(h *Headless) {
		if n > 0 {
			h.latency = n
		}
	}
}

// WithScaleFactor sets the DPI scale reported for every window.
func WithScaleFactor(sf float64) HeadlessOption {
	return func(h *Headless) {
		h.scale = sf
	}
}

// NewHeadless creates a backend whose primary window is already live.
func NewHeadless(primaryWidth, primaryHeight int, opts ...HeadlessOption) *Headless {
	h := &Headless{
		scale:   1,
		windows: make(map[ID]*headlessWindow),
	}
	for _, opt := range opts {
		opt(h)
	}
	h.open(PrimaryID, Descriptor{Width: primaryWidth, Height: primaryHeight, VSync: true, Title: "primary"})
	return h
}

func (h *Headless) open(id ID, desc Descriptor) {
	h.windows[id] = &headlessWindow{
		desc:     desc,
		provider: gpucontext.NullWindowProvider{W: desc.Width, H: desc.Height, SF: h.scale},
	}
	h.order = append(h.order, id)
}

// Request queues req. Duplicate ids are ignored.
func (h *Headless) Request(req CreateRequest) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, live := h.windows[req.ID]; live {
		return
	}
	for _, p := range h.pending {
		if p.req.ID == req.ID {
			return
		}
	}
	h.pending = append(h.pending, pendingRequest{req: req, remaining: h.latency})
	logging.Logger().Debug("window: create request queued",
		"id", req.ID.String(), "title", req.Descriptor.Title,
		"width", req.Descriptor.Width, "height", req.Descriptor.Height)
}

// Pump opens every request whose latency has elapsed.
func (h *Headless) Pump() {
	h.mu.Lock()
	defer h.mu.Unlock()

	kept := h.pending[:0]
	for _, p := range h.pending {
		if p.remaining > 0 {
			p.remaining--
			kept = append(kept, p)
			continue
		}
		h.open(p.req.ID, p.req.Descriptor)
		logging.Logger().Debug("window: surface created", "id", p.req.ID.String())
	}
	h.pending = kept
}

// Windows returns live windows in creation order.
func (h *Headless) Windows() []ID {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]ID, len(h.order))
	copy(out, h.order)
	return out
}

// Provider returns the geometry of a live window.
func (h *Headless) Provider(id ID) (gpucontext.WindowProvider, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	w, ok := h.windows[id]
	if !ok {
		return nil, false
	}
	return w.provider, true
}

// Descriptor returns the descriptor a live window was created with.
func (h *Headless) Descriptor(id ID) (Descriptor, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	w, ok := h.windows[id]
	if !ok {
		return Descriptor{}, false
	}
	return w.desc, true
}

// Pending returns the number of requests not yet acknowledged.
func (h *Headless) Pending() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.pending)
}

// Ensure Headless implements Backend.
var _ Backend = (*Headless)(nil)
