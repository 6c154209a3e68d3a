package multiview

import (
	"log/slog"

	"github.com/gogpu/multiview/render"
	"github.com/gogpu/multiview/window"
)

// DefaultSampleCount is the MSAA sample count used when none is configured.
const DefaultSampleCount = 4

// DefaultSecondWindow returns the descriptor of the secondary window used
// when none is configured.
func DefaultSecondWindow() window.Descriptor {
	return window.Descriptor{
		Width:  800,
		Height: 600,
		VSync:  false,
		Title:  "second window",
	}
}

// Option configures an App during creation.
//
// Example:
//
//	// Headless backend, no MSAA
//	app, err := multiview.New(multiview.WithSampleCount(1))
//
//	// Host-provided backend and device
//	app, err := multiview.New(
//	    multiview.WithBackend(backend),
//	    multiview.WithDevice(device),
//	)
type Option func(*options)

// options holds optional configuration for App creation.
type options struct {
	sampleCount  uint32
	backend      window.Backend
	backendName  string
	device       render.DeviceHandle
	maxWaitTicks int
	primary      window.Descriptor
	second       window.Descriptor
	logger       *slog.Logger
}

// defaultOptions returns the default app options.
func defaultOptions() options {
	return options{
		sampleCount: DefaultSampleCount,
		device:      render.NullDeviceHandle{},
		primary:     window.DefaultDescriptor(),
		second:      DefaultSecondWindow(),
	}
}

// WithSampleCount sets the MSAA sample count of both viewports.
// Zero is treated as 1.
func WithSampleCount(n uint32) Option {
	return func(o *options) {
		o.sampleCount = max(n, 1)
	}
}

// WithBackend sets the windowing backend. It takes precedence over
// WithBackendName.
func WithBackend(b window.Backend) Option {
	return func(o *options) {
		o.backend = b
	}
}

// WithBackendName selects a registered windowing backend by name.
func WithBackendName(name string) Option {
	return func(o *options) {
		o.backendName = name
	}
}

// WithDevice sets the GPU device provided by the host application.
func WithDevice(d render.DeviceHandle) Option {
	return func(o *options) {
		if d != nil {
			o.device = d
		}
	}
}

// WithMaxWaitTicks bounds how many ticks the secondary window may take to
// become live. Zero, the default, waits forever.
func WithMaxWaitTicks(n int) Option {
	return func(o *options) {
		o.maxWaitTicks = max(n, 0)
	}
}

// WithPrimaryWindow sets the descriptor of the primary window. It is used
// to size the default headless backend.
func WithPrimaryWindow(d window.Descriptor) Option {
	return func(o *options) {
		o.primary = d
	}
}

// WithSecondWindow sets the descriptor of the secondary window.
func WithSecondWindow(d window.Descriptor) Option {
	return func(o *options) {
		o.second = d
	}
}

// WithLogger sets the logger for multiview and its sub-packages, like
// SetLogger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
