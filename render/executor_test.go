// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/multiview/camera"
	"github.com/gogpu/multiview/graph"
	"github.com/gogpu/multiview/render"
	"github.com/gogpu/multiview/viewport"
	"github.com/gogpu/multiview/window"
)

const second = window.ID(2)

func secondaryGraph(t *testing.T, samples uint32) (*graph.Schedule, *camera.Registry) {
	t.Helper()
	g := graph.New()
	cams := camera.NewRegistry()
	_, err := viewport.Assemble(g, cams, viewport.Config{
		Window:      second,
		Camera:      camera.Secondary,
		SampleCount: samples,
		Names:       viewport.SecondaryNames(),
		Width:       800,
		Height:      600,
		ClearColor:  gputypes.Color{R: 0.5, G: 0.5, B: 0.8, A: 1},
	})
	if err != nil {
		t.Fatal(err)
	}
	s, err := g.Finalize()
	if err != nil {
		t.Fatal(err)
	}
	return s, cams
}

func TestExecuteMultisampled(t *testing.T) {
	s, cams := secondaryGraph(t, 4)
	if err := cams.Spawn(camera.Camera{
		Name:      camera.Secondary,
		Window:    second,
		Transform: camera.LookAt(mgl32.Vec3{6, 0, 0}, mgl32.Vec3{}),
	}); err != nil {
		t.Fatal(err)
	}

	views := render.NewHeadlessViews(render.NullDeviceHandle{})
	views.AttachSurface(second, window.Descriptor{Width: 800, Height: 600}, 800, 600)
	exec := render.NewExecutor(views)

	rec, err := exec.Execute(s, 3)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if rec.Index != 3 || len(rec.Passes) != 2 {
		t.Fatalf("record = frame %d with %d passes, want frame 3 with 2", rec.Index, len(rec.Passes))
	}

	names := viewport.SecondaryNames()
	mainPass, ok := rec.Pass(names.Pass)
	if !ok {
		t.Fatalf("pass %s not recorded", names.Pass)
	}
	if mainPass.Window != second || mainPass.SampleCount != 4 {
		t.Errorf("main pass window/samples = %v/%d", mainPass.Window, mainPass.SampleCount)
	}
	if !slices.Equal(mainPass.Cameras, []string{camera.Secondary}) {
		t.Errorf("main pass cameras = %v", mainPass.Cameras)
	}

	ca := mainPass.Descriptor.ColorAttachments[0]
	if ca.View == 0 || ca.ResolveTarget == 0 || ca.View == ca.ResolveTarget {
		t.Errorf("color attachment views = %d/%d, want distinct MSAA and resolve views", ca.View, ca.ResolveTarget)
	}
	if ca.LoadOp != gputypes.LoadOpClear || ca.ClearValue.B != 0.8 {
		t.Errorf("color attachment ops = %+v", ca)
	}
	ds := mainPass.Descriptor.DepthStencilAttachment
	if ds == nil || ds.DepthClearValue != 1.0 || ds.DepthReadOnly {
		t.Errorf("depth attachment = %+v", ds)
	}

	overlay, _ := rec.Pass(names.OverlayPass)
	oca := overlay.Descriptor.ColorAttachments[0]
	if oca.View != ca.View || oca.ResolveTarget != ca.ResolveTarget {
		t.Error("overlay pass must draw into the main pass attachments")
	}
	if oca.LoadOp != gputypes.LoadOpLoad {
		t.Errorf("overlay LoadOp = %v, want Load", oca.LoadOp)
	}

	if _, ok := graph.Value[mgl32.Mat4](rec.Values, viewport.CameraKey(camera.Secondary)); !ok {
		t.Error("camera node did not publish its matrix")
	}

	// Depth and MSAA textures are allocated once and reused.
	again, err := exec.Execute(s, 4)
	if err != nil {
		t.Fatal(err)
	}
	mainPass2, _ := again.Pass(names.Pass)
	if mainPass2.Descriptor.ColorAttachments[0].View != ca.View {
		t.Error("MSAA view changed between frames")
	}
	if got := len(views.Allocations()); got != 2 {
		t.Errorf("Allocations() = %d, want depth and MSAA", got)
	}
}

func TestExecuteWithoutSurface(t *testing.T) {
	s, _ := secondaryGraph(t, 1)
	exec := render.NewExecutor(render.NewHeadlessViews(nil))

	_, err := exec.Execute(s, 0)
	if !errors.Is(err, render.ErrNoSurface) {
		t.Errorf("Execute() error = %v, want ErrNoSurface", err)
	}
}

func TestExecuteSystemError(t *testing.T) {
	g := graph.New()
	boom := errors.New("boom")
	if err := g.AddSystemNode("bad", graph.UniformSource{}, func(*graph.Frame) error { return boom }); err != nil {
		t.Fatal(err)
	}
	s, err := g.Finalize()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := render.NewExecutor(render.NewHeadlessViews(nil)).Execute(s, 0); !errors.Is(err, boom) {
		t.Errorf("Execute() error = %v, want wrapped boom", err)
	}
}

// fakeSource declares a texture output without being a texture source.
type fakeSource struct{}

func (fakeSource) Kind() graph.Kind      { return graph.KindUniformSource }
func (fakeSource) InputSlots() []string  { return nil }
func (fakeSource) OutputSlots() []string { return []string{graph.SlotTexture} }

func TestExecuteNonTextureSource(t *testing.T) {
	g := graph.New()
	pass := graph.Pass{Descriptor: graph.PassDescriptor{
		ColorAttachments: []graph.ColorAttachment{{Slot: viewport.SlotColorAttachment}},
	}}
	if err := g.AddNode("fake", fakeSource{}); err != nil {
		t.Fatal(err)
	}
	if err := g.AddNode("pass", pass); err != nil {
		t.Fatal(err)
	}
	if err := g.AddSlotEdge("fake", graph.SlotTexture, "pass", viewport.SlotColorAttachment); err != nil {
		t.Fatal(err)
	}
	s, err := g.Finalize()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := render.NewExecutor(render.NewHeadlessViews(nil)).Execute(s, 0); !errors.Is(err, render.ErrNotTexture) {
		t.Errorf("Execute() error = %v, want ErrNotTexture", err)
	}
}
