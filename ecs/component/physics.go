package component

import (
	"math"

	"github.com/jakecoffman/cp"
)

// ShapeKind selects the collider geometry.
type ShapeKind int

const (
	ShapeBox ShapeKind = iota
	ShapeCircle
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeBox:
		return "box"
	case ShapeCircle:
		return "circle"
	default:
		return "unknown"
	}
}

// PhysicsBody stores Chipmunk2D runtime data and collider configuration.
// Width and Height are full extents; Radius applies to circles. Mass is
// Density times the collider area.
type PhysicsBody struct {
	Body  *cp.Body
	Shape *cp.Shape

	Kind       ShapeKind
	Width      float64
	Height     float64
	Radius     float64
	Density    float64
	Friction   float64
	Elasticity float64
	Static     bool
}

// Area returns the collider area in square pixels.
func (pb PhysicsBody) Area() float64 {
	if pb.Kind == ShapeCircle {
		return math.Pi * pb.Radius * pb.Radius
	}
	return pb.Width * pb.Height
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()

// Velocity mirrors the body's velocity after each physics step.
type Velocity struct {
	X       float64
	Y       float64
	Angular float64
}

var VelocityComponent = NewComponent[Velocity]()

// ExternalForce is applied to the body before each physics step. The
// physics engine clears applied forces after stepping, so writers must
// refresh it every tick.
type ExternalForce struct {
	X      float64
	Y      float64
	Torque float64
}

var ExternalForceComponent = NewComponent[ExternalForce]()
