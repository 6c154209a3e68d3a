// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package viewport

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/multiview/camera"
	"github.com/gogpu/multiview/graph"
	"github.com/gogpu/multiview/internal/logging"
	"github.com/gogpu/multiview/window"
)

// ErrNoCamera is returned when Config.Camera is empty.
var ErrNoCamera = errors.New("viewport: no camera name")

// DepthFormat is the format of every viewport depth texture.
const DepthFormat = gputypes.TextureFormatDepth32Float

// Config describes the viewport to assemble.
type Config struct {
	Window window.ID

	// Camera is the name registered active for this viewport.
	Camera string

	// SampleCount is the MSAA sample count. Zero means 1.
	SampleCount uint32

	Names Names

	// SurfaceFormat is the swapchain format. Undefined means BGRA8Unorm.
	SurfaceFormat gputypes.TextureFormat

	// Width and Height are the window's physical surface size. Zero
	// dimensions are raised to 1.
	Width  uint32
	Height uint32

	ClearColor gputypes.Color
}

func (c Config) normalized() Config {
	if c.SampleCount == 0 {
		c.SampleCount = 1
	}
	if c.SurfaceFormat == gputypes.TextureFormatUndefined {
		c.SurfaceFormat = gputypes.TextureFormatBGRA8Unorm
	}
	c.Width = max(c.Width, 1)
	c.Height = max(c.Height, 1)
	return c
}

// StepError reports the assembly step that failed. Nodes added by earlier
// steps stay in the graph.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("viewport: %s: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// Viewport is the result of a successful assembly.
type Viewport struct {
	Config Config

	// Nodes lists the added node names in insertion order.
	Nodes []string
}

// Multisampled reports whether the viewport renders through an MSAA node.
func (v *Viewport) Multisampled() bool { return v.Config.SampleCount > 1 }

// Aspect returns the surface width divided by its height.
func (v *Viewport) Aspect() float32 {
	return float32(v.Config.Width) / float32(v.Config.Height)
}

type assembler struct {
	g       *graph.Graph
	cameras *camera.Registry
	cfg     Config
	nodes   []string
}

// Assemble adds a viewport's nodes and edges to g and marks the viewport's
// camera active in cameras. It stops at the first failing step and does not
// remove nodes that were already added.
func Assemble(g *graph.Graph, cameras *camera.Registry, cfg Config) (*Viewport, error) {
	if cfg.Camera == "" {
		return nil, ErrNoCamera
	}
	a := &assembler{g: g, cameras: cameras, cfg: cfg.normalized()}

	steps := []struct {
		name string
		run  func() error
	}{
		{"swapchain", a.addSwapchain},
		{"depth", a.addDepth},
		{"camera", a.addCamera},
		{"main pass", a.addMainPass},
		{"edges", a.wireMainPass},
		{"overlay", a.addOverlay},
	}
	for _, s := range steps {
		if err := s.run(); err != nil {
			return nil, &StepError{Step: s.name, Err: err}
		}
	}

	logging.Logger().Info("viewport: assembled",
		"window", a.cfg.Window.String(),
		"camera", a.cfg.Camera,
		"samples", a.cfg.SampleCount,
		"nodes", len(a.nodes))
	return &Viewport{Config: a.cfg, Nodes: a.nodes}, nil
}

func (a *assembler) add(name string, cfg graph.Config) error {
	if err := a.g.AddNode(name, cfg); err != nil {
		return err
	}
	a.nodes = append(a.nodes, name)
	return nil
}

func (a *assembler) addSystem(name string, cfg graph.Config, fn graph.SystemFunc) error {
	if err := a.g.AddSystemNode(name, cfg, fn); err != nil {
		return err
	}
	a.nodes = append(a.nodes, name)
	return nil
}

func (a *assembler) texture(label string, format gputypes.TextureFormat, size gputypes.Extent3D, samples uint32) gputypes.TextureDescriptor {
	return gputypes.TextureDescriptor{
		Label:         label,
		Size:          size,
		MipLevelCount: 1,
		SampleCount:   samples,
		Dimension:     gputypes.TextureDimension2D,
		Format:        format,
		Usage:         gputypes.TextureUsageRenderAttachment,
	}
}

func (a *assembler) surfaceSize() gputypes.Extent3D {
	return gputypes.NewExtent2D(a.cfg.Width, a.cfg.Height)
}

func (a *assembler) addSwapchain() error {
	n := a.cfg.Names.Swapchain
	return a.add(n, graph.TextureSource{
		Window:     a.cfg.Window,
		Swapchain:  true,
		Descriptor: a.texture(n, a.cfg.SurfaceFormat, a.surfaceSize(), 1),
	})
}

func (a *assembler) addDepth() error {
	n := a.cfg.Names.Depth
	return a.add(n, graph.TextureSource{
		Window:     a.cfg.Window,
		Descriptor: a.texture(n, DepthFormat, a.surfaceSize(), a.cfg.SampleCount),
	})
}

func (a *assembler) addCamera() error {
	name := a.cfg.Camera
	aspect := float32(a.cfg.Width) / float32(a.cfg.Height)
	cameras := a.cameras
	return a.addSystem(a.cfg.Names.Camera, graph.CameraSource{Camera: name}, func(f *graph.Frame) error {
		c, ok := cameras.Get(name)
		if !ok {
			return nil
		}
		f.Set(CameraKey(name), c.ViewProjection(aspect))
		return nil
	})
}

func (a *assembler) strategy() colorStrategy {
	return colorStrategies[a.cfg.SampleCount > 1]
}

func (a *assembler) addMainPass() error {
	s := a.strategy()
	if s.extraNode {
		n := a.cfg.Names.MSAA
		err := a.add(n, graph.TextureSource{
			Window:     a.cfg.Window,
			Descriptor: a.texture(n, a.cfg.SurfaceFormat, gputypes.NewExtent2D(1, 1), a.cfg.SampleCount),
		})
		if err != nil {
			return err
		}
	}
	return a.add(a.cfg.Names.Pass, graph.Pass{Descriptor: graph.PassDescriptor{
		ColorAttachments: []graph.ColorAttachment{s.attachment(graph.ColorOps{
			Load:  gputypes.LoadOpClear,
			Clear: a.cfg.ClearColor,
			Store: gputypes.StoreOpStore,
		})},
		DepthStencil: &graph.DepthStencilAttachment{
			Slot: SlotDepth,
			Depth: graph.DepthOps{
				Load:  gputypes.LoadOpClear,
				Clear: 1.0,
				Store: gputypes.StoreOpStore,
			},
		},
		SampleCount: a.cfg.SampleCount,
		Cameras:     []string{a.cfg.Camera},
	}})
}

// wireAttachments binds the color, resolve and depth slots of pass.
func (a *assembler) wireAttachments(pass string) error {
	if err := a.strategy().wire(a.g, a.cfg.Names, pass); err != nil {
		return err
	}
	return a.g.AddSlotEdge(a.cfg.Names.Depth, graph.SlotTexture, pass, SlotDepth)
}

func (a *assembler) wireMainPass() error {
	if err := a.wireAttachments(a.cfg.Names.Pass); err != nil {
		return err
	}
	return a.g.AddNodeEdge(a.cfg.Names.Camera, a.cfg.Names.Pass)
}

func (a *assembler) addOverlay() error {
	a.cameras.Add(a.cfg.Camera)

	names := a.cfg.Names
	w, h := float32(a.cfg.Width), float32(a.cfg.Height)
	key := TransformKey(names.OverlayTransform)
	err := a.addSystem(names.OverlayTransform, graph.UniformSource{Window: a.cfg.Window, Label: names.OverlayTransform},
		func(f *graph.Frame) error {
			f.Set(key, mgl32.Ortho2D(0, w, h, 0))
			return nil
		})
	if err != nil {
		return err
	}

	err = a.add(names.OverlayPass, graph.Pass{Descriptor: graph.PassDescriptor{
		ColorAttachments: []graph.ColorAttachment{a.strategy().attachment(graph.ColorOps{
			Load:  gputypes.LoadOpLoad,
			Store: gputypes.StoreOpStore,
		})},
		DepthStencil: &graph.DepthStencilAttachment{
			Slot:     SlotDepth,
			Depth:    graph.DepthOps{Load: gputypes.LoadOpLoad, Clear: 1.0, Store: gputypes.StoreOpStore},
			ReadOnly: true,
		},
		SampleCount: a.cfg.SampleCount,
	}})
	if err != nil {
		return err
	}
	if err := a.wireAttachments(names.OverlayPass); err != nil {
		return err
	}
	if err := a.g.AddNodeEdge(names.Pass, names.OverlayPass); err != nil {
		return err
	}
	return a.g.AddNodeEdge(names.OverlayTransform, names.OverlayPass)
}
