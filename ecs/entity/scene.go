package entity

import (
	"fmt"

	"github.com/milk9111/cartpole/ecs"
	"github.com/milk9111/cartpole/prefabs"
)

// Scene holds the entities spawned by BuildScene.
type Scene struct {
	Ground   ecs.Entity
	Camera   ecs.Entity
	Carriage *Carriage
}

// BuildScene spawns the ground, the carriage and the camera.
func BuildScene(w *ecs.World, specs *prefabs.Specs) (*Scene, error) {
	if w == nil || specs == nil {
		return nil, fmt.Errorf("build scene: world and specs are required")
	}

	ground, err := NewGround(w, specs.Ground)
	if err != nil {
		return nil, fmt.Errorf("build scene: %w", err)
	}
	carriage, err := NewCarriage(w, specs.Carriage, specs.World)
	if err != nil {
		return nil, fmt.Errorf("build scene: %w", err)
	}
	camera, err := NewCamera(w, specs.Camera)
	if err != nil {
		return nil, fmt.Errorf("build scene: %w", err)
	}

	return &Scene{Ground: ground, Camera: camera, Carriage: carriage}, nil
}
