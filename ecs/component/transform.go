package component

// Transform is an entity's pose in world space. Y points up and Rotation
// is anticlockwise in radians.
type Transform struct {
	X        float64
	Y        float64
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()
