package system

import (
	"log/slog"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/cartpole/ecs"
	"github.com/milk9111/cartpole/ecs/component"
	"github.com/milk9111/cartpole/prefabs"
)

const (
	// materialCollisionType tags every shape so its contacts reach bounce.
	materialCollisionType cp.CollisionType = 1

	// bounceThreshold is the approach speed in m/s below which a contact
	// does not bounce.
	bounceThreshold = 0.1
)

// fixedJointErrorBias corrects half of a fixed joint's error each 60 Hz
// tick. Chipmunk's default corrects a tenth.
var fixedJointErrorBias = math.Pow(1-0.5, 60)

// PhysicsSystem owns the Chipmunk space. Each tick it creates bodies and
// joints for newly spawned entities, applies external forces, steps the
// space and mirrors poses and velocities back into components.
type PhysicsSystem struct {
	space *cp.Space
	dt    float64

	entities map[ecs.Entity]*bodyInfo
	joints   map[ecs.Entity][]*cp.Constraint

	// restitution holds each shape's own coefficient. Chipmunk multiplies
	// elasticities, so shapes carry zero and bounces are applied here.
	restitution     map[*cp.Shape]float64
	moments         map[*cp.Body]float64
	bounceThreshold float64
}

type bodyInfo struct {
	body   *cp.Body
	shape  *cp.Shape
	static bool
}

func NewPhysicsSystem(spec prefabs.WorldSpec) *PhysicsSystem {
	space := cp.NewSpace()
	space.Iterations = uint(spec.Iterations)
	space.SetGravity(cp.Vector{X: 0, Y: spec.Units().Acceleration(spec.Gravity)})
	ps := &PhysicsSystem{
		space:           space,
		dt:              spec.TimeStep(),
		entities:        make(map[ecs.Entity]*bodyInfo),
		joints:          make(map[ecs.Entity][]*cp.Constraint),
		restitution:     make(map[*cp.Shape]float64),
		moments:         make(map[*cp.Body]float64),
		bounceThreshold: spec.Units().Length(bounceThreshold),
	}

	handler := space.NewCollisionHandler(materialCollisionType, materialCollisionType)
	handler.UserData = ps
	handler.PreSolveFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		sys, ok := userData.(*PhysicsSystem)
		if !ok || sys == nil {
			return true
		}
		sys.bounce(arb)
		return true
	}
	return ps
}

// Restitution returns the combined restitution of two shapes: the average
// of their own coefficients.
func (ps *PhysicsSystem) Restitution(a, b *cp.Shape) float64 {
	return (ps.restitution[a] + ps.restitution[b]) / 2
}

// bounce gives a freshly touching pair a separating normal velocity of
// restitution times their approach speed. The contact solver then sees a
// separating pair and adds no normal impulse of its own.
func (ps *PhysicsSystem) bounce(arb *cp.Arbiter) {
	if !arb.IsFirstContact() {
		return
	}
	shapeA, shapeB := arb.Shapes()
	e := ps.Restitution(shapeA, shapeB)
	if e <= 0 {
		return
	}

	set := arb.ContactPointSet()
	if set.Count == 0 {
		return
	}
	var point cp.Vector
	for i := 0; i < set.Count; i++ {
		point = point.Add(set.Points[i].PointA.Add(set.Points[i].PointB).Mult(0.5))
	}
	point = point.Mult(1 / float64(set.Count))

	a, b := arb.Bodies()
	n := arb.Normal()
	vrn := b.VelocityAtWorldPoint(point).Sub(a.VelocityAtWorldPoint(point)).Dot(n)
	if vrn > -ps.bounceThreshold {
		return
	}

	ra := point.Sub(a.Position()).Cross(n)
	rb := point.Sub(b.Position()).Cross(n)
	k := inverseMass(a) + inverseMass(b) + ps.inverseMoment(a)*ra*ra + ps.inverseMoment(b)*rb*rb
	if k <= 0 {
		return
	}
	j := n.Mult(-(1 + e) * vrn / k)
	if a.GetType() == cp.BODY_DYNAMIC {
		a.ApplyImpulseAtWorldPoint(j.Neg(), point)
	}
	if b.GetType() == cp.BODY_DYNAMIC {
		b.ApplyImpulseAtWorldPoint(j, point)
	}
}

func inverseMass(body *cp.Body) float64 {
	if body.GetType() != cp.BODY_DYNAMIC || body.Mass() <= 0 {
		return 0
	}
	return 1 / body.Mass()
}

func (ps *PhysicsSystem) inverseMoment(body *cp.Body) float64 {
	moment, ok := ps.moments[body]
	if !ok || body.GetType() != cp.BODY_DYNAMIC || moment <= 0 {
		return 0
	}
	return 1 / moment
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

// Body returns the Chipmunk body backing e, if it has been created.
func (ps *PhysicsSystem) Body(e ecs.Entity) (*cp.Body, bool) {
	if ps == nil {
		return nil, false
	}
	info, ok := ps.entities[e]
	if !ok {
		return nil, false
	}
	return info.body, true
}

// Constraints returns the constraints created for joint entity e.
func (ps *PhysicsSystem) Constraints(e ecs.Entity) []*cp.Constraint {
	if ps == nil {
		return nil
	}
	return ps.joints[e]
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || ps.space == nil || w == nil {
		return
	}

	ps.syncEntities(w)
	ps.syncJoints(w)
	ps.applyForces(w)

	ps.space.Step(ps.dt)

	ps.syncTransforms(w)
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, bodyComp *component.PhysicsBody, transform *component.Transform) {
		if _, exists := ps.entities[e]; exists {
			return
		}

		layer := component.CollisionLayer{}
		if l, ok := ecs.Get(w, e, component.CollisionLayerComponent.Kind()); ok {
			layer = *l
		}

		info := ps.createBodyInfo(*transform, *bodyComp, layer)
		ps.entities[e] = info
		bodyComp.Body = info.body
		bodyComp.Shape = info.shape
		slog.Debug("physics body created",
			"entity", e,
			"shape", bodyComp.Kind,
			"static", bodyComp.Static,
			"mass", info.body.Mass(),
		)
	})
}

func shapeFilter(layer component.CollisionLayer) cp.ShapeFilter {
	category := layer.Category
	if category == 0 {
		category = 1
	}
	mask := uint(layer.Mask)
	if layer.Mask == 0 {
		mask = cp.ALL_CATEGORIES
	}
	return cp.NewShapeFilter(cp.NO_GROUP, uint(category), mask)
}

func (ps *PhysicsSystem) createBodyInfo(transform component.Transform, bodyComp component.PhysicsBody, layer component.CollisionLayer) *bodyInfo {
	info := &bodyInfo{static: bodyComp.Static}

	var shape *cp.Shape
	if bodyComp.Static {
		body := ps.space.StaticBody
		switch bodyComp.Kind {
		case component.ShapeCircle:
			shape = cp.NewCircle(body, bodyComp.Radius, cp.Vector{X: transform.X, Y: transform.Y})
		default:
			verts := staticBoxVerts(transform, bodyComp.Width, bodyComp.Height)
			shape = cp.NewPolyShapeRaw(body, len(verts), verts, 0)
		}
		info.body = body
	} else {
		mass := bodyComp.Density * bodyComp.Area()
		if mass <= 0 {
			mass = 1
		}

		var moment float64
		switch bodyComp.Kind {
		case component.ShapeCircle:
			moment = cp.MomentForCircle(mass, 0, bodyComp.Radius, cp.Vector{})
		default:
			moment = cp.MomentForBox(mass, bodyComp.Width, bodyComp.Height)
		}

		body := cp.NewBody(mass, moment)
		ps.moments[body] = moment
		body.SetPosition(cp.Vector{X: transform.X, Y: transform.Y})
		body.SetAngle(transform.Rotation)
		ps.space.AddBody(body)

		switch bodyComp.Kind {
		case component.ShapeCircle:
			shape = cp.NewCircle(body, bodyComp.Radius, cp.Vector{})
		default:
			shape = cp.NewBox(body, bodyComp.Width, bodyComp.Height, 0)
		}
		info.body = body
	}

	shape.SetFriction(bodyComp.Friction)
	shape.SetElasticity(0)
	shape.SetCollisionType(materialCollisionType)
	shape.SetFilter(shapeFilter(layer))
	ps.space.AddShape(shape)
	ps.restitution[shape] = bodyComp.Elasticity

	info.shape = shape
	return info
}

// staticBoxVerts returns the counter-clockwise corners of a width x height
// box centred on the transform and turned by its rotation.
func staticBoxVerts(transform component.Transform, width, height float64) []cp.Vector {
	rot := cp.ForAngle(transform.Rotation)
	center := cp.Vector{X: transform.X, Y: transform.Y}
	local := []cp.Vector{
		{X: -width / 2, Y: -height / 2},
		{X: width / 2, Y: -height / 2},
		{X: width / 2, Y: height / 2},
		{X: -width / 2, Y: height / 2},
	}
	verts := make([]cp.Vector, len(local))
	for i, v := range local {
		verts[i] = center.Add(v.Rotate(rot))
	}
	return verts
}

func (ps *PhysicsSystem) syncJoints(w *ecs.World) {
	ecs.ForEach(w, component.JointComponent.Kind(), func(e ecs.Entity, joint *component.Joint) {
		if _, exists := ps.joints[e]; exists {
			return
		}
		a, okA := ps.entities[ecs.Entity(joint.BodyA)]
		b, okB := ps.entities[ecs.Entity(joint.BodyB)]
		if !okA || !okB {
			return
		}

		constraints := []*cp.Constraint{cp.NewPivotJoint2(a.body, b.body, joint.AnchorA, joint.AnchorB)}
		if joint.Kind == component.JointFixed {
			// Ratio 1 locks the relative angle at its spawn value.
			phase := b.body.Angle() - a.body.Angle()
			constraints = append(constraints, cp.NewGearJoint(a.body, b.body, phase, 1))
			for _, c := range constraints {
				c.SetErrorBias(fixedJointErrorBias)
			}
		}
		for _, c := range constraints {
			ps.space.AddConstraint(c)
		}

		ps.joints[e] = constraints
		joint.Constraints = constraints
	})
}

func (ps *PhysicsSystem) applyForces(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.ExternalForceComponent.Kind(), func(e ecs.Entity, bodyComp *component.PhysicsBody, force *component.ExternalForce) {
		if bodyComp.Body == nil || bodyComp.Static {
			return
		}
		bodyComp.Body.SetForce(cp.Vector{X: force.X, Y: force.Y})
		bodyComp.Body.SetTorque(force.Torque)
	})
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, bodyComp *component.PhysicsBody, transform *component.Transform) {
		if bodyComp.Body == nil || bodyComp.Static {
			return
		}
		pos := bodyComp.Body.Position()
		transform.X = pos.X
		transform.Y = pos.Y
		transform.Rotation = bodyComp.Body.Angle()

		if vel, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
			v := bodyComp.Body.Velocity()
			vel.X = v.X
			vel.Y = v.Y
			vel.Angular = bodyComp.Body.AngularVelocity()
		}
	})
}
