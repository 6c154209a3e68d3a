package multiview

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/multiview/camera"
	"github.com/gogpu/multiview/window"
)

// EntityKind tags a scene entity.
type EntityKind int

const (
	EntityMesh EntityKind = iota
	EntityLight
	EntityCamera
)

func (k EntityKind) String() string {
	switch k {
	case EntityMesh:
		return "Mesh"
	case EntityLight:
		return "Light"
	case EntityCamera:
		return "Camera"
	default:
		return fmt.Sprintf("EntityKind(%d)", int(k))
	}
}

// Entity is a spawned scene object. Geometry and materials belong to the
// host renderer; the scene only records what was spawned and where.
type Entity struct {
	ID       int
	Kind     EntityKind
	Name     string
	Position mgl32.Vec3
}

// World holds the spawned scene entities.
type World struct {
	entities []Entity
}

// Spawn adds e and returns its id.
func (w *World) Spawn(e Entity) int {
	e.ID = len(w.entities)
	w.entities = append(w.entities, e)
	return e.ID
}

// Entities returns all entities in spawn order.
func (w *World) Entities() []Entity {
	out := make([]Entity, len(w.entities))
	copy(out, w.entities)
	return out
}

// Find returns the first entity with the given kind and name.
func (w *World) Find(kind EntityKind, name string) (Entity, bool) {
	for _, e := range w.entities {
		if e.Kind == kind && e.Name == name {
			return e, true
		}
	}
	return Entity{}, false
}

// Len returns the number of entities.
func (w *World) Len() int { return len(w.entities) }

// spawnScene adds the cube, the light and both cameras. The secondary
// camera renders into second.
func spawnScene(w *World, cams *camera.Registry, second window.ID) error {
	w.Spawn(Entity{Kind: EntityMesh, Name: "cube"})
	w.Spawn(Entity{Kind: EntityLight, Name: "light", Position: mgl32.Vec3{4, 5, 4}})

	for _, c := range []camera.Camera{
		{Name: camera.Main, Window: window.PrimaryID, Transform: camera.LookAt(mgl32.Vec3{0, 0, 6}, mgl32.Vec3{})},
		{Name: camera.Secondary, Window: second, Transform: camera.LookAt(mgl32.Vec3{6, 0, 0}, mgl32.Vec3{})},
	} {
		if err := cams.Spawn(c); err != nil {
			return err
		}
		w.Spawn(Entity{Kind: EntityCamera, Name: c.Name, Position: c.Transform.Position})
	}
	return nil
}
