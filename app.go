package multiview

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/multiview/camera"
	"github.com/gogpu/multiview/graph"
	"github.com/gogpu/multiview/internal/logging"
	"github.com/gogpu/multiview/overlay"
	"github.com/gogpu/multiview/render"
	"github.com/gogpu/multiview/viewport"
	"github.com/gogpu/multiview/window"
)

// ErrNoPrimaryWindow is returned by New when the backend does not report
// the primary window.
var ErrNoPrimaryWindow = errors.New("multiview: backend has no primary window")

// Clear colors of the two main passes.
var (
	PrimaryClearColor   = gputypes.Color{R: 0.4, G: 0.4, B: 0.4, A: 1}
	SecondaryClearColor = gputypes.Color{R: 0.5, G: 0.5, B: 0.8, A: 1}
)

type system struct {
	name string
	run  func() error
}

// App is the tick-driven scheduler. It owns the render graph, the camera
// registry, the overlay contexts and the UI state, and runs a fixed list of
// systems once per tick.
//
// App is not safe for concurrent use. Event callbacks attached to overlay
// contexts may run on other goroutines; they only queue input.
type App struct {
	opts     options
	backend  window.Backend
	device   render.DeviceHandle
	views    *render.HeadlessViews
	executor *render.Executor

	graph    *graph.Graph
	schedule *graph.Schedule
	cameras  *camera.Registry
	overlay  *overlay.Manager
	world    World

	lifecycle *window.Lifecycle
	second    window.ID
	primaryVP *viewport.Viewport
	secondVP  *viewport.Viewport
	setupRuns int

	firstUI  UIState
	secondUI UIState
	shared   SharedUIState

	tick    uint64
	last    *render.FrameRecord
	systems []system
}

// New creates an App with the primary viewport assembled and the icon
// bound. The secondary window is requested on the first Tick.
func New(opts ...Option) (*App, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger != nil {
		logging.Set(o.logger)
	}

	backend := o.backend
	if backend == nil && o.backendName != "" {
		b, err := window.BackendByName(o.backendName)
		if err != nil {
			return nil, err
		}
		backend = b
	}
	if backend == nil {
		backend = window.NewHeadless(o.primary.Width, o.primary.Height)
	}

	a := &App{
		opts:      o,
		backend:   backend,
		device:    o.device,
		views:     render.NewHeadlessViews(o.device),
		graph:     graph.New(),
		cameras:   camera.NewRegistry(),
		overlay:   overlay.NewManager(overlay.NewTable()),
		lifecycle: window.NewLifecycle(o.maxWaitTicks),
	}
	a.executor = render.NewExecutor(a.views)
	a.systems = []system{
		{"pumpBackend", a.pumpBackend},
		{"setupWindow", a.setupWindow},
		{"setup", a.setup},
		{"observeWindows", a.observeWindows},
		{"uiFirstWindow", a.uiFirstWindow},
		{"uiSecondWindow", a.uiSecondWindow},
		{"renderFrame", a.renderFrame},
	}

	if err := bindIcon(a.overlay.Table(), a.device); err != nil {
		return nil, fmt.Errorf("multiview: bind icon: %w", err)
	}
	if err := a.startPrimary(); err != nil {
		return nil, err
	}

	info := a.device.AdapterInfo()
	logging.Logger().Info("multiview: app created",
		"adapter", info.Name,
		"adapter_type", info.Type.String(),
		"sample_count", o.sampleCount)
	return a, nil
}

// startPrimary attaches the primary surface and assembles its viewport.
func (a *App) startPrimary() error {
	p, ok := a.backend.Provider(window.PrimaryID)
	if !ok {
		return ErrNoPrimaryWindow
	}
	w, h := window.SurfaceSize(p)
	a.views.AttachSurface(window.PrimaryID, a.opts.primary, w, h)

	vp, err := viewport.Assemble(a.graph, a.cameras, viewport.Config{
		Window:        window.PrimaryID,
		Camera:        camera.Main,
		SampleCount:   a.opts.sampleCount,
		Names:         viewport.PrimaryNames(),
		SurfaceFormat: render.SurfaceFormat(a.device),
		Width:         w,
		Height:        h,
		ClearColor:    PrimaryClearColor,
	})
	if err != nil {
		return fmt.Errorf("multiview: primary viewport: %w", err)
	}
	a.primaryVP = vp
	return a.finalize()
}

func (a *App) finalize() error {
	s, err := a.graph.Finalize()
	if err != nil {
		return fmt.Errorf("multiview: finalize graph: %w", err)
	}
	a.schedule = s
	return nil
}

// Tick runs every system once. A returned error is fatal: it reports a
// topology error, a readiness timeout or a failed frame.
func (a *App) Tick() error {
	a.tick++
	for _, s := range a.systems {
		if err := s.run(); err != nil {
			return fmt.Errorf("multiview: tick %d: %s: %w", a.tick, s.name, err)
		}
	}
	return nil
}

// Run calls Tick fps times per second until ctx is done or a tick fails.
// A non-positive fps means 60. Rates above one tick per nanosecond run at
// that limit.
func (a *App) Run(ctx context.Context, fps int) error {
	if fps <= 0 {
		fps = 60
	}
	ticker := time.NewTicker(max(time.Second/time.Duration(fps), time.Nanosecond))
	defer ticker.Stop()

	for {
		if err := a.Tick(); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if ctx.Err() != nil {
				return nil
			}
		}
	}
}

// SystemNames returns the systems in the order Tick runs them.
func (a *App) SystemNames() []string {
	names := make([]string, len(a.systems))
	for i, s := range a.systems {
		names[i] = s.name
	}
	return names
}

// Ticks returns the number of ticks run.
func (a *App) Ticks() uint64 { return a.tick }

// State returns the secondary window's lifecycle state.
func (a *App) State() window.State { return a.lifecycle.State() }

// SecondWindow returns the id of the secondary window once requested.
func (a *App) SecondWindow() (window.ID, bool) { return a.lifecycle.Window() }

// SetupRuns returns how many times the secondary setup ran.
func (a *App) SetupRuns() int { return a.setupRuns }

// Graph returns the render graph.
func (a *App) Graph() *graph.Graph { return a.graph }

// Schedule returns the current execution order.
func (a *App) Schedule() *graph.Schedule { return a.schedule }

// Cameras returns the camera registry.
func (a *App) Cameras() *camera.Registry { return a.cameras }

// Overlay returns the overlay manager.
func (a *App) Overlay() *overlay.Manager { return a.overlay }

// Views returns the view resolver the executor renders through.
func (a *App) Views() *render.HeadlessViews { return a.views }

// World returns the scene.
func (a *App) World() *World { return &a.world }

// Shared returns the overlay state shared by all windows.
func (a *App) Shared() *SharedUIState { return &a.shared }

// UI returns the private overlay state of window id, or nil for an
// unknown window.
func (a *App) UI(id window.ID) *UIState {
	switch {
	case id == window.PrimaryID:
		return &a.firstUI
	case a.lifecycle.Requested() && id == a.second:
		return &a.secondUI
	default:
		return nil
	}
}

// Viewport returns the assembled viewport of window id.
func (a *App) Viewport(id window.ID) (*viewport.Viewport, bool) {
	switch {
	case id == window.PrimaryID:
		return a.primaryVP, a.primaryVP != nil
	case a.secondVP != nil && id == a.second:
		return a.secondVP, true
	default:
		return nil, false
	}
}

// LastFrame returns the record of the most recent frame, or nil.
func (a *App) LastFrame() *render.FrameRecord { return a.last }
