package entity

import (
	"errors"
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/cartpole/ecs"
	"github.com/milk9111/cartpole/ecs/component"
	"github.com/milk9111/cartpole/prefabs"
)

func buildDefaultScene(t *testing.T) (*ecs.World, *Scene, *prefabs.Specs) {
	t.Helper()
	specs, err := prefabs.LoadSpecs()
	if err != nil {
		t.Fatalf("LoadSpecs: %v", err)
	}
	w := ecs.NewWorld()
	scene, err := BuildScene(w, specs)
	if err != nil {
		t.Fatalf("BuildScene: %v", err)
	}
	return w, scene, specs
}

func TestBuildSceneEntityCounts(t *testing.T) {
	w, scene, _ := buildDefaultScene(t)

	cases := []struct {
		name string
		id   component.ComponentID
		want int
	}{
		{"physics_bodies", component.PhysicsBodyComponent.Kind().ID(), 6},
		{"joints", component.JointComponent.Kind().ID(), 4},
		{"wheels", component.WheelDriveComponent.Kind().ID(), 2},
		{"rendered", component.ShapeRenderComponent.Kind().ID(), 5},
		{"inputs", component.InputComponent.Kind().ID(), 1},
		{"cameras", component.CameraComponent.Kind().ID(), 1},
		{"ground", component.GroundTagComponent.Kind().ID(), 1},
		{"carriage", component.CarriageTagComponent.Kind().ID(), 1},
		{"joiner", component.JoinerTagComponent.Kind().ID(), 1},
		{"pendulum", component.PendulumTagComponent.Kind().ID(), 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := len(ecs.Query(w, c.id)); got != c.want {
				t.Fatalf("expected %d, got %d", c.want, got)
			}
		})
	}

	if len(scene.Carriage.Wheels) != 2 || len(scene.Carriage.Joints) != 4 {
		t.Fatalf("carriage has %d wheels and %d joints", len(scene.Carriage.Wheels), len(scene.Carriage.Joints))
	}
}

func TestCollisionLayers(t *testing.T) {
	w, scene, _ := buildDefaultScene(t)
	c := scene.Carriage

	layer := func(e ecs.Entity) component.CollisionLayer {
		l, ok := ecs.Get(w, e, component.CollisionLayerComponent.Kind())
		if !ok {
			t.Fatalf("entity %s has no collision layer", e)
		}
		return *l
	}

	cases := []struct {
		name         string
		entity       ecs.Entity
		wantCategory uint32
		wantMask     uint32
	}{
		{"ground", scene.Ground, component.CollisionGroupGround, component.CollisionGroupAll},
		{"carriage", c.Body, component.CollisionGroupCarriage, component.CollisionGroupGround},
		{"left_wheel", c.Wheels[0], component.CollisionGroupWheel, component.CollisionGroupGround},
		{"right_wheel", c.Wheels[1], component.CollisionGroupWheel, component.CollisionGroupGround},
		{"joiner", c.Joiner, component.CollisionGroupCarriage, component.CollisionGroupGround},
		{"pendulum", c.Pendulum, component.CollisionGroupCarriage, component.CollisionGroupGround},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := layer(tc.entity)
			if !l.SingleCategory() {
				t.Fatalf("category %b is not a single bit", l.Category)
			}
			if l.Category != tc.wantCategory || l.Mask != tc.wantMask {
				t.Fatalf("layer = %+v, want category %b mask %b", l, tc.wantCategory, tc.wantMask)
			}
		})
	}

	ground := layer(scene.Ground)
	wheel := layer(c.Wheels[0])
	body := layer(c.Body)
	pendulum := layer(c.Pendulum)
	if !ground.Collides(wheel) || !ground.Collides(body) {
		t.Fatalf("ground must collide with wheels and carriage blocks")
	}
	if wheel.Collides(body) || body.Collides(pendulum) || wheel.Collides(layer(c.Wheels[1])) {
		t.Fatalf("only the ground may collide with anything")
	}
}

func TestJoints(t *testing.T) {
	w, scene, specs := buildDefaultScene(t)
	c := scene.Carriage
	jh := specs.Carriage.Pendulum.Length * 2
	half := specs.Carriage.WheelBase / 2

	cases := []struct {
		name    string
		joint   ecs.Entity
		kind    component.JointKind
		a, b    ecs.Entity
		anchorA cp.Vector
		anchorB cp.Vector
	}{
		{"carriage_joiner", c.Joints[0], component.JointFixed, c.Body, c.Joiner, cp.Vector{}, cp.Vector{X: 0, Y: -jh / 2}},
		{"joiner_pendulum", c.Joints[1], component.JointRevolute, c.Joiner, c.Pendulum, cp.Vector{X: 0, Y: jh / 2}, cp.Vector{X: 0, Y: -specs.Carriage.Pendulum.Height / 2}},
		{"left_wheel", c.Joints[2], component.JointRevolute, c.Body, c.Wheels[0], cp.Vector{X: -half, Y: 0}, cp.Vector{}},
		{"right_wheel", c.Joints[3], component.JointRevolute, c.Body, c.Wheels[1], cp.Vector{X: half, Y: 0}, cp.Vector{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			j, ok := ecs.Get(w, tc.joint, component.JointComponent.Kind())
			if !ok {
				t.Fatalf("joint entity has no joint component")
			}
			if j.Kind != tc.kind {
				t.Fatalf("kind = %s, want %s", j.Kind, tc.kind)
			}
			if ecs.Entity(j.BodyA) != tc.a || ecs.Entity(j.BodyB) != tc.b {
				t.Fatalf("joint links %d and %d", j.BodyA, j.BodyB)
			}
			if j.AnchorA != tc.anchorA || j.AnchorB != tc.anchorB {
				t.Fatalf("anchors = %v %v, want %v %v", j.AnchorA, j.AnchorB, tc.anchorA, tc.anchorB)
			}
		})
	}
}

func TestInitialPosesSatisfyJoints(t *testing.T) {
	w, scene, _ := buildDefaultScene(t)

	ecs.ForEach(w, component.JointComponent.Kind(), func(e ecs.Entity, j *component.Joint) {
		ta, _ := ecs.Get(w, ecs.Entity(j.BodyA), component.TransformComponent.Kind())
		tb, _ := ecs.Get(w, ecs.Entity(j.BodyB), component.TransformComponent.Kind())
		ax, ay := worldPoint(*ta, j.AnchorA)
		bx, by := worldPoint(*tb, j.AnchorB)
		if math.Hypot(ax-bx, ay-by) > 1e-9 {
			t.Fatalf("joint %s starts stretched: (%v,%v) vs (%v,%v)", e, ax, ay, bx, by)
		}
	})

	wheel, _ := ecs.Get(w, scene.Carriage.Wheels[0], component.TransformComponent.Kind())
	body, _ := ecs.Get(w, scene.Carriage.Body, component.TransformComponent.Kind())
	if wheel.Y != body.Y {
		t.Fatalf("wheel axle should sit on the carriage center line")
	}
}

func worldPoint(t component.Transform, local cp.Vector) (float64, float64) {
	sin, cos := math.Sincos(t.Rotation)
	return t.X + local.X*cos - local.Y*sin, t.Y + local.X*sin + local.Y*cos
}

func TestPendulumPoses(t *testing.T) {
	carriage := component.Transform{X: 5, Y: 50}
	cases := []struct {
		name         string
		tilt         float64
		wantPendulum component.Transform
	}{
		{"upright", 0, component.Transform{X: 5, Y: 50 + 20 + 55}},
		{"quarter_turn", math.Pi / 2, component.Transform{X: 5 - 55, Y: 50 + 20, Rotation: math.Pi / 2}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			joiner, pendulum := PendulumPoses(carriage, PendulumConfig{Length: 10, Height: 110, Tilt: c.tilt})
			if joiner.X != 5 || joiner.Y != 60 || joiner.Rotation != 0 {
				t.Fatalf("joiner = %+v", joiner)
			}
			if math.Abs(pendulum.X-c.wantPendulum.X) > 1e-9 ||
				math.Abs(pendulum.Y-c.wantPendulum.Y) > 1e-9 ||
				pendulum.Rotation != c.wantPendulum.Rotation {
				t.Fatalf("pendulum = %+v, want %+v", pendulum, c.wantPendulum)
			}
		})
	}
}

func TestWheelDriveConvertedToPixelUnits(t *testing.T) {
	w, scene, specs := buildDefaultScene(t)
	drive, ok := ecs.Get(w, scene.Carriage.Wheels[0], component.WheelDriveComponent.Kind())
	if !ok {
		t.Fatalf("wheel has no drive")
	}
	want := specs.World.Units().Torque(specs.World.Control.MaxTorque)
	if drive.MaxTorque != want || drive.MaxAngularVelocity != specs.World.Control.MaxAngularVelocity {
		t.Fatalf("drive = %+v, want torque %v", drive, want)
	}
}

func TestNewJointRequiresLiveBodies(t *testing.T) {
	w := ecs.NewWorld()
	a := ecs.CreateEntity(w)
	b := ecs.CreateEntity(w)
	ecs.DestroyEntity(w, b)

	_, err := NewJoint(w, component.JointRevolute, a, b, cp.Vector{}, cp.Vector{})
	if !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}
}

func TestNewWheelRequiresCarriageTransform(t *testing.T) {
	w := ecs.NewWorld()
	carriage := ecs.CreateEntity(w)
	if _, _, err := NewWheel(w, WheelConfig{Radius: 10}, carriage); err == nil {
		t.Fatalf("expected an error for a carriage without transform")
	}
}

func TestBuildSceneRequiresSpecs(t *testing.T) {
	if _, err := BuildScene(ecs.NewWorld(), nil); err == nil {
		t.Fatalf("expected error for nil specs")
	}
}
