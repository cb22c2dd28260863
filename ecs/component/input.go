package component

import "github.com/milk9111/cartpole/control"

// Input stores per-frame keyboard state for an entity.
type Input struct {
	Left  bool
	Right bool
	Down  bool
}

// Keys converts the input into the torque controller's key snapshot.
func (i Input) Keys() control.Keys {
	return control.Keys{Left: i.Left, Right: i.Right, Down: i.Down}
}

var InputComponent = NewComponent[Input]()

// ResetRequest is a marker component used to signal the game loop to
// rebuild the scene.
type ResetRequest struct{}

var ResetRequestComponent = NewComponent[ResetRequest]()
