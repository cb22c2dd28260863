package entity

import (
	"fmt"

	"github.com/milk9111/cartpole/ecs"
	"github.com/milk9111/cartpole/ecs/component"
	"golang.org/x/image/colornames"
)

// BlockColor is used for every structural block.
var BlockColor = colornames.Purple

// BlockConfig parameterizes a dynamic box body. Length is the horizontal
// extent before rotation.
type BlockConfig struct {
	Length      float64
	Height      float64
	Transform   component.Transform
	Restitution float64
	Friction    float64
	Density     float64
}

// NewBlock spawns a dynamic box in the carriage collision category that
// only collides with the ground.
func NewBlock(w *ecs.World, cfg BlockConfig) (ecs.Entity, error) {
	layer := component.CollisionLayer{
		Category: component.CollisionGroupCarriage,
		Mask:     component.CollisionGroupGround,
	}
	body := component.PhysicsBody{
		Kind:       component.ShapeBox,
		Width:      cfg.Length,
		Height:     cfg.Height,
		Density:    cfg.Density,
		Friction:   cfg.Friction,
		Elasticity: cfg.Restitution,
	}
	render := component.ShapeRender{
		Kind:   component.ShapeBox,
		Width:  cfg.Length,
		Height: cfg.Height,
		Color:  BlockColor,
	}

	e, err := newDynamicBody(w, cfg.Transform, body, layer, render)
	if err != nil {
		return 0, fmt.Errorf("block: %w", err)
	}
	return e, nil
}

func newDynamicBody(w *ecs.World, t component.Transform, body component.PhysicsBody, layer component.CollisionLayer, render component.ShapeRender) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &t); err != nil {
		return 0, fmt.Errorf("add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &body); err != nil {
		return 0, fmt.Errorf("add physics body: %w", err)
	}
	if err := ecs.Add(w, e, component.CollisionLayerComponent.Kind(), &layer); err != nil {
		return 0, fmt.Errorf("add collision layer: %w", err)
	}
	if err := ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{}); err != nil {
		return 0, fmt.Errorf("add velocity: %w", err)
	}
	if err := ecs.Add(w, e, component.ExternalForceComponent.Kind(), &component.ExternalForce{}); err != nil {
		return 0, fmt.Errorf("add external force: %w", err)
	}
	if err := ecs.Add(w, e, component.ShapeRenderComponent.Kind(), &render); err != nil {
		return 0, fmt.Errorf("add shape render: %w", err)
	}
	return e, nil
}

func tag[T any](w *ecs.World, e ecs.Entity, handle component.ComponentHandle[T]) error {
	var zero T
	return ecs.Add(w, e, handle.Kind(), &zero)
}
