package render

import (
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/cartpole/ecs"
	"github.com/milk9111/cartpole/ecs/component"
	"github.com/milk9111/cartpole/ecs/system"
	"golang.org/x/image/colornames"
)

const spokeWidth = 2

// RenderSystem draws every entity carrying a ShapeRender at its Transform.
type RenderSystem struct{}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	bounds := screen.Bounds()
	view := system.CurrentView(w, float64(bounds.Dx()), float64(bounds.Dy()))

	entities := ecs.Query(w, component.TransformComponent.Kind().ID(), component.ShapeRenderComponent.Kind().ID())
	sort.SliceStable(entities, func(i, j int) bool {
		li, lj := 0, 0
		if s, ok := ecs.Get(w, entities[i], component.ShapeRenderComponent.Kind()); ok {
			li = s.Layer
		}
		if s, ok := ecs.Get(w, entities[j], component.ShapeRenderComponent.Kind()); ok {
			lj = s.Layer
		}
		if li != lj {
			return li < lj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	for _, e := range entities {
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		s, ok := ecs.Get(w, e, component.ShapeRenderComponent.Kind())
		if !ok {
			continue
		}

		switch s.Kind {
		case component.ShapeCircle:
			drawCircle(screen, view, *t, *s)
		default:
			drawBox(screen, view, *t, *s)
		}
	}
}

func drawBox(screen *ebiten.Image, view system.View, t component.Transform, s component.ShapeRender) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-0.5, -0.5)
	op.GeoM.Scale(s.Width, s.Height)
	op.GeoM.Rotate(view.ScreenRotation(t.Rotation))
	op.GeoM.Scale(view.Zoom, view.Zoom)
	x, y := view.ToScreen(t.X, t.Y)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(s.Color)
	screen.DrawImage(solidImage(), op)
}

func drawCircle(screen *ebiten.Image, view system.View, t component.Transform, s component.ShapeRender) {
	x, y := view.ToScreen(t.X, t.Y)
	r := s.Radius * view.Zoom
	vector.FillCircle(screen, float32(x), float32(y), float32(r), s.Color, true)
	if !s.Spoke {
		return
	}
	// Spoke follows the body angle, y flipped for the screen.
	ex := x + math.Cos(t.Rotation)*r
	ey := y - math.Sin(t.Rotation)*r
	vector.StrokeLine(screen, float32(x), float32(y), float32(ex), float32(ey), spokeWidth, colornames.White, true)
}
