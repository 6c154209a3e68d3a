// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package camera

import (
	"errors"
	"slices"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/multiview/window"
)

func TestAddIdempotent(t *testing.T) {
	r := NewRegistry()
	r.Add(Main)
	r.Add(Secondary)
	r.Add(Secondary)

	if got := r.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}
	if got := r.Active(); !slices.Equal(got, []string{Main, Secondary}) {
		t.Errorf("Active() = %v, want [Main Secondary]", got)
	}
	if !r.IsActive(Secondary) {
		t.Error("IsActive(Secondary) = false, want true")
	}
	if r.IsActive("Third") {
		t.Error("IsActive(Third) = true, want false")
	}
}

func TestActiveReturnsCopy(t *testing.T) {
	r := NewRegistry()
	r.Add(Secondary)
	names := r.Active()
	names[0] = "mutated"
	if !r.IsActive(Secondary) {
		t.Error("mutating Active() result changed the registry")
	}
}

func TestSpawnBinding(t *testing.T) {
	r := NewRegistry()
	second := window.ID(7)

	c := Camera{Name: Secondary, Window: second, Transform: LookAt(mgl32.Vec3{6, 0, 0}, mgl32.Vec3{})}
	if err := r.Spawn(c); err != nil {
		t.Fatalf("Spawn() error = %v", err)
	}

	got, ok := r.Binding(Secondary)
	if !ok || got != second {
		t.Errorf("Binding(Secondary) = %v, %v, want %v, true", got, ok, second)
	}
	if _, ok := r.Binding("nope"); ok {
		t.Error("Binding(nope) should not exist")
	}

	// Same window: transform update is allowed.
	c.Transform = LookAt(mgl32.Vec3{0, 6, 0}, mgl32.Vec3{})
	if err := r.Spawn(c); err != nil {
		t.Fatalf("re-Spawn on same window error = %v", err)
	}
	stored, _ := r.Get(Secondary)
	if stored.Transform.Position != (mgl32.Vec3{0, 6, 0}) {
		t.Errorf("Position = %v, want updated", stored.Transform.Position)
	}

	// Other window: rejected, binding unchanged.
	c.Window = window.PrimaryID
	if err := r.Spawn(c); !errors.Is(err, ErrAlreadyBound) {
		t.Fatalf("re-bind error = %v, want ErrAlreadyBound", err)
	}
	if got, _ := r.Binding(Secondary); got != second {
		t.Errorf("Binding after rejected re-bind = %v, want %v", got, second)
	}
}

func TestSpawnEmptyName(t *testing.T) {
	if err := NewRegistry().Spawn(Camera{}); !errors.Is(err, ErrEmptyName) {
		t.Errorf("Spawn(empty) error = %v, want ErrEmptyName", err)
	}
}

func TestForWindow(t *testing.T) {
	r := NewRegistry()
	second := window.ID(3)
	for _, c := range []Camera{
		{Name: "Zeta", Window: second},
		{Name: Main, Window: window.PrimaryID},
		{Name: Secondary, Window: second},
	} {
		if err := r.Spawn(c); err != nil {
			t.Fatal(err)
		}
	}

	var names []string
	for _, c := range r.ForWindow(second) {
		names = append(names, c.Name)
	}
	if !slices.Equal(names, []string{Secondary, "Zeta"}) {
		t.Errorf("ForWindow(second) = %v, want [Secondary Zeta]", names)
	}
	if got := r.ForWindow(window.ID(99)); len(got) != 0 {
		t.Errorf("ForWindow(unknown) = %v, want empty", got)
	}
}

func TestViewLooksAtTarget(t *testing.T) {
	c := Camera{Name: Secondary, Transform: LookAt(mgl32.Vec3{6, 0, 0}, mgl32.Vec3{})}

	// The target lies on the view-space -Z axis at the eye distance.
	p := c.View().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	want := mgl32.Vec4{0, 0, -6, 1}
	if !p.ApproxEqualThreshold(want, 1e-5) {
		t.Errorf("origin in view space = %v, want %v", p, want)
	}

	// The eye maps to the view-space origin.
	e := c.View().Mul4x1(mgl32.Vec4{6, 0, 0, 1})
	if !e.ApproxEqualThreshold(mgl32.Vec4{0, 0, 0, 1}, 1e-5) {
		t.Errorf("eye in view space = %v, want origin", e)
	}
}

func TestZeroUpDefaultsToY(t *testing.T) {
	a := Camera{Transform: Transform{Position: mgl32.Vec3{0, 0, 6}}}
	b := Camera{Transform: LookAt(mgl32.Vec3{0, 0, 6}, mgl32.Vec3{})}
	if !a.View().ApproxEqual(b.View()) {
		t.Error("zero Up should behave as +Y")
	}
}

func TestProjectionDefaults(t *testing.T) {
	c := Camera{}
	want := mgl32.Perspective(mgl32.DegToRad(45), 1, 1, 1000)
	if got := c.Projection(0); !got.ApproxEqual(want) {
		t.Errorf("Projection(0) = %v, want %v", got, want)
	}

	c.Lens = Projection{FovY: mgl32.DegToRad(60), Near: 0.1, Far: 100}
	want = mgl32.Perspective(mgl32.DegToRad(60), 800.0/600.0, 0.1, 100)
	if got := c.Projection(800.0 / 600.0); !got.ApproxEqual(want) {
		t.Errorf("Projection(4/3) = %v, want %v", got, want)
	}
}

func TestViewProjection(t *testing.T) {
	c := Camera{Transform: LookAt(mgl32.Vec3{0, 0, 6}, mgl32.Vec3{})}
	want := c.Projection(1.5).Mul4(c.View())
	if got := c.ViewProjection(1.5); !got.ApproxEqual(want) {
		t.Errorf("ViewProjection() = %v, want %v", got, want)
	}
}
