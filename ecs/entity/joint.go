package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/cartpole/ecs"
	"github.com/milk9111/cartpole/ecs/component"
)

// NewJoint spawns a joint entity relating a and b through local anchors.
// The physics system turns it into constraints once both bodies exist.
func NewJoint(w *ecs.World, kind component.JointKind, a, b ecs.Entity, anchorA, anchorB cp.Vector) (ecs.Entity, error) {
	if !ecs.IsAlive(w, a) || !ecs.IsAlive(w, b) {
		return 0, fmt.Errorf("joint: %s: %w", kind, component.ErrEntityNotAlive)
	}
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.JointComponent.Kind(), &component.Joint{
		Kind:    kind,
		BodyA:   uint64(a),
		BodyB:   uint64(b),
		AnchorA: anchorA,
		AnchorB: anchorB,
	}); err != nil {
		return 0, fmt.Errorf("joint: add %s joint: %w", kind, err)
	}
	return e, nil
}
