package entity

import (
	"fmt"

	"github.com/milk9111/cartpole/ecs"
	"github.com/milk9111/cartpole/ecs/component"
	"github.com/milk9111/cartpole/prefabs"
)

// NewGround spawns the static floor. It collides with every category and
// is only visible through the physics debug overlay.
func NewGround(w *ecs.World, spec prefabs.GroundSpec) (ecs.Entity, error) {
	ground := ecs.CreateEntity(w)
	if err := tag(w, ground, component.GroundTagComponent); err != nil {
		return 0, fmt.Errorf("ground: add ground tag: %w", err)
	}
	if err := ecs.Add(w, ground, component.TransformComponent.Kind(), &component.Transform{
		X:        spec.Transform.X,
		Y:        spec.Transform.Y,
		Rotation: spec.Transform.Rotation,
	}); err != nil {
		return 0, fmt.Errorf("ground: add transform: %w", err)
	}
	if err := ecs.Add(w, ground, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Kind:       component.ShapeBox,
		Width:      spec.Width,
		Height:     spec.Height,
		Friction:   spec.Friction,
		Elasticity: spec.Restitution,
		Static:     true,
	}); err != nil {
		return 0, fmt.Errorf("ground: add physics body: %w", err)
	}
	if err := ecs.Add(w, ground, component.CollisionLayerComponent.Kind(), &component.CollisionLayer{
		Category: component.CollisionGroupGround,
		Mask:     component.CollisionGroupAll,
	}); err != nil {
		return 0, fmt.Errorf("ground: add collision layer: %w", err)
	}
	return ground, nil
}
