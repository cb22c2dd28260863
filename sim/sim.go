// Package sim assembles a scene and its systems and steps it, with or
// without a window.
package sim

import (
	"fmt"

	"github.com/milk9111/cartpole/ecs"
	"github.com/milk9111/cartpole/ecs/component"
	"github.com/milk9111/cartpole/ecs/entity"
	"github.com/milk9111/cartpole/ecs/system"
	"github.com/milk9111/cartpole/prefabs"
)

// Sim is one assembled scene. Rebuilding replaces the world and the
// physics space wholesale.
type Sim struct {
	World     *ecs.World
	Scene     *entity.Scene
	Physics   *system.PhysicsSystem
	Scheduler *ecs.Scheduler
}

// New builds the scene described by specs. Systems run input, wheel
// control, physics and camera in that order, followed by extra.
func New(specs *prefabs.Specs, keys system.KeySource, extra ...ecs.System) (*Sim, error) {
	if specs == nil {
		return nil, fmt.Errorf("sim: specs are required")
	}

	w := ecs.NewWorld()
	scene, err := entity.BuildScene(w, specs)
	if err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}

	physics := system.NewPhysicsSystem(specs.World)
	scheduler := ecs.NewScheduler(
		system.NewInputSystem(keys),
		system.NewWheelControlSystem(),
		physics,
		system.NewCameraSystem(),
	)
	for _, s := range extra {
		scheduler.Add(s)
	}

	return &Sim{
		World:     w,
		Scene:     scene,
		Physics:   physics,
		Scheduler: scheduler,
	}, nil
}

// Step advances the simulation by one tick.
func (s *Sim) Step() {
	if s == nil {
		return
	}
	s.Scheduler.Update(s.World)
}

// ResetRequested reports whether the input system asked for a rebuild.
func (s *Sim) ResetRequested() bool {
	if s == nil {
		return false
	}
	_, ok := ecs.First(s.World, component.ResetRequestComponent.Kind())
	return ok
}
