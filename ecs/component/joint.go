package component

import "github.com/jakecoffman/cp"

// JointKind selects the constraint between two bodies.
type JointKind int

const (
	// JointFixed removes all relative motion.
	JointFixed JointKind = iota
	// JointRevolute permits rotation about a single pivot.
	JointRevolute
)

func (k JointKind) String() string {
	switch k {
	case JointFixed:
		return "fixed"
	case JointRevolute:
		return "revolute"
	default:
		return "unknown"
	}
}

// Joint relates two body entities through local anchor points. It lives on
// its own entity. BodyA and BodyB hold ecs.Entity values.
type Joint struct {
	Kind    JointKind
	BodyA   uint64
	BodyB   uint64
	AnchorA cp.Vector
	AnchorB cp.Vector

	// Constraints is filled by the physics system once both bodies exist.
	Constraints []*cp.Constraint
}

var JointComponent = NewComponent[Joint]()
