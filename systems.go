package multiview

import (
	"fmt"

	"github.com/gogpu/multiview/camera"
	"github.com/gogpu/multiview/internal/logging"
	"github.com/gogpu/multiview/render"
	"github.com/gogpu/multiview/viewport"
	"github.com/gogpu/multiview/window"
)

// slowBackendTicks is the wait after which a pending window is logged.
const slowBackendTicks = 60

func (a *App) pumpBackend() error {
	a.backend.Pump()
	return nil
}

// setupWindow requests the secondary window once.
func (a *App) setupWindow() error {
	if a.lifecycle.Requested() {
		return nil
	}
	id := window.NewID()
	a.backend.Request(window.CreateRequest{ID: id, Descriptor: a.opts.second})
	a.lifecycle.MarkRequested(id)
	a.second = id
	return nil
}

// observeWindows advances Requesting to BackendReady once the backend
// reports the secondary window live.
func (a *App) observeWindows() error {
	_, err := a.lifecycle.Observe(a.backend.Windows())
	if err != nil {
		return err
	}
	if a.lifecycle.State() == window.Requesting && a.lifecycle.Waited() == slowBackendTicks {
		logging.Logger().Warn("multiview: secondary window not live yet",
			"window", a.second.String(), "ticks", a.lifecycle.Waited())
	}
	return nil
}

// setup assembles the secondary viewport and spawns the scene. It runs
// once, on the tick after the window was observed live. The lifecycle
// becomes Active whether or not assembly succeeded; an assembly error is
// returned and aborts the application.
func (a *App) setup() error {
	if a.lifecycle.State() != window.BackendReady {
		return nil
	}
	a.setupRuns++
	err := a.assembleSecondary()
	a.lifecycle.Complete()
	if err != nil {
		return err
	}
	return a.finalize()
}

func (a *App) assembleSecondary() error {
	p, ok := a.backend.Provider(a.second)
	if !ok {
		return fmt.Errorf("multiview: %v has no provider", a.second)
	}
	w, h := window.SurfaceSize(p)
	a.views.AttachSurface(a.second, a.opts.second, w, h)

	vp, err := viewport.Assemble(a.graph, a.cameras, viewport.Config{
		Window:        a.second,
		Camera:        camera.Secondary,
		SampleCount:   a.opts.sampleCount,
		Names:         viewport.SecondaryNames(),
		SurfaceFormat: render.SurfaceFormat(a.device),
		Width:         w,
		Height:        h,
		ClearColor:    SecondaryClearColor,
	})
	if err != nil {
		return fmt.Errorf("multiview: secondary viewport: %w", err)
	}
	a.secondVP = vp
	return spawnScene(&a.world, a.cameras, a.second)
}

func (a *App) renderFrame() error {
	rec, err := a.executor.Execute(a.schedule, a.tick)
	if err != nil {
		return err
	}
	a.last = rec
	return nil
}
