// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package viewport

import (
	"errors"
	"slices"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/multiview/camera"
	"github.com/gogpu/multiview/graph"
	"github.com/gogpu/multiview/window"
)

const secondWindow = window.ID(9)

func secondaryConfig(samples uint32) Config {
	return Config{
		Window:      secondWindow,
		Camera:      camera.Secondary,
		SampleCount: samples,
		Names:       SecondaryNames(),
		Width:       800,
		Height:      600,
		ClearColor:  gputypes.Color{R: 0.5, G: 0.5, B: 0.8, A: 1},
	}
}

func assemble(t *testing.T, samples uint32) (*graph.Graph, *camera.Registry, *Viewport) {
	t.Helper()
	g := graph.New()
	cams := camera.NewRegistry()
	vp, err := Assemble(g, cams, secondaryConfig(samples))
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}
	return g, cams, vp
}

func inputOf(t *testing.T, g *graph.Graph, dst, slot string) string {
	t.Helper()
	n, ok := g.InputOf(dst, slot)
	if !ok {
		t.Fatalf("%s.%s is unbound", dst, slot)
	}
	return n.Name
}

func TestAssembleSingleSample(t *testing.T) {
	g, cams, vp := assemble(t, 1)
	n := SecondaryNames()

	want := []string{n.Swapchain, n.Depth, n.Camera, n.Pass, n.OverlayTransform, n.OverlayPass}
	if !slices.Equal(vp.Nodes, want) {
		t.Errorf("Nodes = %v, want %v", vp.Nodes, want)
	}
	if g.Has(n.MSAA) {
		t.Error("single-sample viewport must not add an MSAA node")
	}
	if vp.Multisampled() {
		t.Error("Multisampled() = true, want false")
	}

	for _, pass := range []string{n.Pass, n.OverlayPass} {
		if got := inputOf(t, g, pass, SlotColorAttachment); got != n.Swapchain {
			t.Errorf("%s color_attachment <- %s, want %s", pass, got, n.Swapchain)
		}
		if got := inputOf(t, g, pass, SlotDepth); got != n.Depth {
			t.Errorf("%s depth <- %s, want %s", pass, got, n.Depth)
		}
		node, _ := g.Node(pass)
		if node.HasInput(SlotColorResolveTarget) {
			t.Errorf("%s should have no resolve slot", pass)
		}
	}

	if !cams.IsActive(camera.Secondary) {
		t.Error("camera Secondary not registered active")
	}
}

func TestAssembleMultisampled(t *testing.T) {
	g, _, vp := assemble(t, 4)
	n := SecondaryNames()

	if !vp.Multisampled() {
		t.Fatal("Multisampled() = false, want true")
	}
	msaa, ok := g.Node(n.MSAA)
	if !ok {
		t.Fatalf("node %s missing", n.MSAA)
	}
	desc := msaa.Config.(graph.TextureSource).Descriptor
	if desc.SampleCount != 4 {
		t.Errorf("MSAA SampleCount = %d, want 4", desc.SampleCount)
	}
	if desc.Size.Width != 1 || desc.Size.Height != 1 {
		t.Errorf("MSAA size = %dx%d, want 1x1", desc.Size.Width, desc.Size.Height)
	}
	if desc.Format != gputypes.TextureFormatBGRA8Unorm {
		t.Errorf("MSAA format = %v, want surface format", desc.Format)
	}

	for _, pass := range []string{n.Pass, n.OverlayPass} {
		if got := inputOf(t, g, pass, SlotColorAttachment); got != n.MSAA {
			t.Errorf("%s color_attachment <- %s, want %s", pass, got, n.MSAA)
		}
		if got := inputOf(t, g, pass, SlotColorResolveTarget); got != n.Swapchain {
			t.Errorf("%s color_resolve_target <- %s, want %s", pass, got, n.Swapchain)
		}
	}

	depth, _ := g.Node(n.Depth)
	if got := depth.Config.(graph.TextureSource).Descriptor.SampleCount; got != 4 {
		t.Errorf("depth SampleCount = %d, want 4", got)
	}
}

func TestAssembleDescriptors(t *testing.T) {
	g, _, _ := assemble(t, 1)
	n := SecondaryNames()

	sc, _ := g.Node(n.Swapchain)
	src := sc.Config.(graph.TextureSource)
	if !src.Swapchain || src.Window != secondWindow {
		t.Errorf("swapchain source = %+v, want swapchain bound to %v", src, secondWindow)
	}

	depth, _ := g.Node(n.Depth)
	d := depth.Config.(graph.TextureSource).Descriptor
	if d.Format != DepthFormat {
		t.Errorf("depth format = %v, want %v", d.Format, DepthFormat)
	}
	if !d.Usage.Contains(gputypes.TextureUsageRenderAttachment) {
		t.Errorf("depth usage = %v, want RenderAttachment", d.Usage)
	}
	if d.Size.Width != 800 || d.Size.Height != 600 {
		t.Errorf("depth size = %dx%d, want 800x600", d.Size.Width, d.Size.Height)
	}

	pass, _ := g.Node(n.Pass)
	pd := pass.Config.(graph.Pass).Descriptor
	ops := pd.ColorAttachments[0].Ops
	if ops.Load != gputypes.LoadOpClear || ops.Clear != (gputypes.Color{R: 0.5, G: 0.5, B: 0.8, A: 1}) {
		t.Errorf("main pass color ops = %+v", ops)
	}
	if pd.DepthStencil == nil || pd.DepthStencil.Depth.Clear != 1.0 {
		t.Errorf("main pass depth = %+v, want clear 1.0", pd.DepthStencil)
	}
	if !slices.Equal(pd.Cameras, []string{camera.Secondary}) {
		t.Errorf("main pass cameras = %v", pd.Cameras)
	}

	overlay, _ := g.Node(n.OverlayPass)
	od := overlay.Config.(graph.Pass).Descriptor
	if od.ColorAttachments[0].Ops.Load != gputypes.LoadOpLoad {
		t.Error("overlay pass must load the main pass output")
	}
}

func TestAssembleOrdering(t *testing.T) {
	g, _, _ := assemble(t, 4)
	n := SecondaryNames()

	s, err := g.Finalize()
	if err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	before := [][2]string{
		{n.Camera, n.Pass},
		{n.MSAA, n.Pass},
		{n.Swapchain, n.Pass},
		{n.Depth, n.Pass},
		{n.Pass, n.OverlayPass},
		{n.OverlayTransform, n.OverlayPass},
	}
	for _, b := range before {
		if s.Position(b[0]) >= s.Position(b[1]) {
			t.Errorf("%s must run before %s; order %v", b[0], b[1], s.Names())
		}
	}
}

func TestAssembleBothWindowsShareGraph(t *testing.T) {
	g := graph.New()
	cams := camera.NewRegistry()

	primary := Config{Window: window.PrimaryID, Camera: camera.Main, SampleCount: 4, Names: PrimaryNames(), Width: 1280, Height: 720}
	if _, err := Assemble(g, cams, primary); err != nil {
		t.Fatalf("primary Assemble() error = %v", err)
	}
	before := g.Len()
	if _, err := Assemble(g, cams, secondaryConfig(4)); err != nil {
		t.Fatalf("secondary Assemble() error = %v", err)
	}
	if got := g.Len() - before; got != 7 {
		t.Errorf("secondary added %d nodes, want 7", got)
	}

	if got := len(g.Dependencies(PrimaryNames().Pass)); got != 4 {
		t.Errorf("primary pass has %d dependencies, want 4", got)
	}
	if _, err := g.Finalize(); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	if got := cams.Active(); !slices.Equal(got, []string{camera.Main, camera.Secondary}) {
		t.Errorf("Active() = %v", got)
	}
}

func TestAssembleDuplicateAborts(t *testing.T) {
	g := graph.New()
	cams := camera.NewRegistry()
	n := SecondaryNames()
	if err := g.AddNode(n.Depth, graph.CameraSource{}); err != nil {
		t.Fatal(err)
	}

	_, err := Assemble(g, cams, secondaryConfig(1))
	if !errors.Is(err, graph.ErrDuplicateName) {
		t.Fatalf("Assemble() error = %v, want ErrDuplicateName", err)
	}
	var se *StepError
	if !errors.As(err, &se) || se.Step != "depth" {
		t.Errorf("error = %v, want StepError at depth", err)
	}

	// No rollback: the swapchain from the first step stays.
	if !g.Has(n.Swapchain) {
		t.Error("swapchain node removed after failed assembly")
	}
	if g.Has(n.Pass) {
		t.Error("assembly continued past the failing step")
	}
	if cams.IsActive(camera.Secondary) {
		t.Error("camera registered although assembly failed")
	}
}

func TestAssembleNoCamera(t *testing.T) {
	cfg := secondaryConfig(1)
	cfg.Camera = ""
	if _, err := Assemble(graph.New(), camera.NewRegistry(), cfg); !errors.Is(err, ErrNoCamera) {
		t.Errorf("Assemble() error = %v, want ErrNoCamera", err)
	}
}

func TestConfigDefaults(t *testing.T) {
	c := Config{}.normalized()
	if c.SampleCount != 1 || c.Width != 1 || c.Height != 1 {
		t.Errorf("normalized() = %+v", c)
	}
	if c.SurfaceFormat != gputypes.TextureFormatBGRA8Unorm {
		t.Errorf("SurfaceFormat = %v, want BGRA8Unorm", c.SurfaceFormat)
	}
}

func TestSystemNodesPublish(t *testing.T) {
	g, cams, vp := assemble(t, 1)
	n := SecondaryNames()
	s, err := g.Finalize()
	if err != nil {
		t.Fatal(err)
	}

	run := func(f *graph.Frame) {
		for _, node := range s.Order() {
			if node.IsSystem() {
				if err := node.System(f); err != nil {
					t.Fatalf("%s: %v", node.Name, err)
				}
			}
		}
	}

	// Before the camera is spawned only the overlay transform publishes.
	f := graph.NewFrame(0)
	run(f)
	if _, ok := f.Get(CameraKey(camera.Secondary)); ok {
		t.Error("camera published before it was spawned")
	}
	tr, ok := graph.Value[mgl32.Mat4](f, TransformKey(n.OverlayTransform))
	if !ok {
		t.Fatal("overlay transform not published")
	}
	// Top-left pixel maps to clip (-1, 1).
	if p := tr.Mul4x1(mgl32.Vec4{0, 0, 0, 1}); !p.ApproxEqualThreshold(mgl32.Vec4{-1, 1, 0, 1}, 1e-5) {
		t.Errorf("transform(0,0) = %v, want (-1,1)", p)
	}

	c := camera.Camera{Name: camera.Secondary, Window: secondWindow, Transform: camera.LookAt(mgl32.Vec3{6, 0, 0}, mgl32.Vec3{})}
	if err := cams.Spawn(c); err != nil {
		t.Fatal(err)
	}
	f = graph.NewFrame(1)
	run(f)
	vpm, ok := graph.Value[mgl32.Mat4](f, CameraKey(camera.Secondary))
	if !ok {
		t.Fatal("camera view-projection not published")
	}
	if want := c.ViewProjection(vp.Aspect()); !vpm.ApproxEqual(want) {
		t.Errorf("view-projection = %v, want %v", vpm, want)
	}
}
