package system

import (
	"github.com/milk9111/cartpole/common"
	"github.com/milk9111/cartpole/ecs"
	"github.com/milk9111/cartpole/ecs/component"
)

// CameraSystem eases the camera toward the camera target.
type CameraSystem struct{}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	target, ok := ecs.First(w, component.CameraTargetTagComponent.Kind())
	if !ok {
		return
	}
	targetTransform, ok := ecs.Get(w, target, component.TransformComponent.Kind())
	if !ok {
		return
	}

	ecs.ForEach2(w, component.CameraComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, cam *component.Camera, t *component.Transform) {
		if !cam.FollowX {
			return
		}
		t.X = common.Lerp(t.X, targetTransform.X, cam.Smoothness)
	})
}

// View maps y-up world coordinates onto a y-down screen whose center shows
// the camera position.
type View struct {
	CamX   float64
	CamY   float64
	Zoom   float64
	Width  float64
	Height float64
}

// CurrentView returns the view of the first camera in w, or an unzoomed
// view of the origin when there is none.
func CurrentView(w *ecs.World, width, height float64) View {
	v := View{Zoom: 1, Width: width, Height: height}
	camEntity, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok {
		return v
	}
	if t, ok := ecs.Get(w, camEntity, component.TransformComponent.Kind()); ok {
		v.CamX = t.X
		v.CamY = t.Y
	}
	if cam, ok := ecs.Get(w, camEntity, component.CameraComponent.Kind()); ok && cam.Zoom > 0 {
		v.Zoom = cam.Zoom
	}
	return v
}

func (v View) ToScreen(x, y float64) (float64, float64) {
	return (x-v.CamX)*v.Zoom + v.Width/2, v.Height/2 - (y-v.CamY)*v.Zoom
}

// ScreenRotation converts an anticlockwise world angle into the clockwise
// screen angle used by image transforms.
func (v View) ScreenRotation(angle float64) float64 {
	return -angle
}
