package component

// Camera centers the view. The camera entity's Transform is the world
// point drawn at the middle of the screen.
type Camera struct {
	Zoom       float64
	Smoothness float64
	// FollowX tracks the CameraTarget horizontally.
	FollowX bool
}

var CameraComponent = NewComponent[Camera]()
