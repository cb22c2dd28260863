package component

import "image/color"

// ShapeRender draws a solid shape at the entity's Transform.
type ShapeRender struct {
	Kind   ShapeKind
	Width  float64
	Height float64
	Radius float64
	Color  color.RGBA
	// Spoke draws a radius line on circles so rotation is visible.
	Spoke bool
	Layer int
}

var ShapeRenderComponent = NewComponent[ShapeRender]()
