package prefabs

import (
	"errors"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

const (
	WorldFile    = "world.yaml"
	GroundFile   = "ground.yaml"
	CarriageFile = "carriage.yaml"
	CameraFile   = "camera.yaml"
)

// Files lists every spec the scene is built from.
var Files = []string{WorldFile, GroundFile, CarriageFile, CameraFile}

// LoadSpec decodes the embedded copy of filename and then overlays the
// on-disk copy, if one exists. Fields missing on disk keep their embedded
// values.
func LoadSpec[T any](filename string) (T, error) {
	var spec T
	data, err := LoadEmbedded(filename)
	if err != nil {
		return spec, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return spec, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	data, err = LoadDisk(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return spec, nil
	}
	if err != nil {
		return spec, fmt.Errorf("prefabs: read %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return spec, fmt.Errorf("prefabs: unmarshal %s: %w", diskPrefabPath(filename), err)
	}
	return spec, nil
}

type TransformSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Rotation float64 `yaml:"rotation"`
}

type ScreenSpec struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type ControlSpec struct {
	// MaxTorque is in newton metres.
	MaxTorque float64 `yaml:"max_torque"`
	// MaxAngularVelocity is in radians per second.
	MaxAngularVelocity float64 `yaml:"max_angular_velocity"`
}

// WorldSpec configures the physics space and the torque controller.
type WorldSpec struct {
	PixelsPerMeter float64     `yaml:"pixels_per_meter"`
	Gravity        float64     `yaml:"gravity"`
	TicksPerSecond int         `yaml:"ticks_per_second"`
	Iterations     int         `yaml:"iterations"`
	Density        float64     `yaml:"density"`
	Debug          bool        `yaml:"debug"`
	Screen         ScreenSpec  `yaml:"screen"`
	Control        ControlSpec `yaml:"control"`
}

func (s *WorldSpec) applyDefaults() {
	if s.PixelsPerMeter <= 0 {
		s.PixelsPerMeter = 100
	}
	if s.TicksPerSecond <= 0 {
		s.TicksPerSecond = 60
	}
	if s.Iterations <= 0 {
		s.Iterations = 20
	}
	if s.Density <= 0 {
		s.Density = 1
	}
	if s.Screen.Width <= 0 {
		s.Screen.Width = 1280
	}
	if s.Screen.Height <= 0 {
		s.Screen.Height = 720
	}
	if s.Screen.Title == "" {
		s.Screen.Title = "cartpole"
	}
	if s.Control.MaxAngularVelocity <= 0 {
		s.Control.MaxAngularVelocity = 10
	}
}

// Units converts SI quantities into the pixel space the physics runs in.
func (s WorldSpec) Units() Units {
	return Units{PixelsPerMeter: s.PixelsPerMeter}
}

// TimeStep is the fixed simulation step in seconds.
func (s WorldSpec) TimeStep() float64 {
	return 1.0 / float64(s.TicksPerSecond)
}

// GroundSpec describes the static floor. Lengths are in pixels.
type GroundSpec struct {
	Name        string        `yaml:"name"`
	Width       float64       `yaml:"width"`
	Height      float64       `yaml:"height"`
	Transform   TransformSpec `yaml:"transform"`
	Friction    float64       `yaml:"friction"`
	Restitution float64       `yaml:"restitution"`
}

type WheelSpec struct {
	Radius      float64 `yaml:"radius"`
	Restitution float64 `yaml:"restitution"`
	Friction    float64 `yaml:"friction"`
}

type BlockSpec struct {
	Length      float64 `yaml:"length"`
	Height      float64 `yaml:"height"`
	Restitution float64 `yaml:"restitution"`
	Friction    float64 `yaml:"friction"`
}

type PendulumSpec struct {
	BlockSpec `yaml:",inline"`
	// InitialTilt rotates the pendulum about its pivot at spawn, in radians.
	InitialTilt float64 `yaml:"initial_tilt"`
}

// CarriageSpec describes the carriage, its wheels and the pendulum.
// Lengths are in pixels.
type CarriageSpec struct {
	Name      string       `yaml:"name"`
	X         float64      `yaml:"x"`
	YZero     float64      `yaml:"y_zero"`
	WheelBase float64      `yaml:"wheel_base"`
	Wheel     WheelSpec    `yaml:"wheel"`
	Body      BlockSpec    `yaml:"body"`
	Pendulum  PendulumSpec `yaml:"pendulum"`
}

type CameraSpec struct {
	Name       string        `yaml:"name"`
	Transform  TransformSpec `yaml:"transform"`
	Zoom       float64       `yaml:"zoom"`
	Smoothness float64       `yaml:"smoothness"`
	FollowX    bool          `yaml:"follow_x"`
}

func (s *CameraSpec) applyDefaults() {
	if s.Zoom <= 0 {
		s.Zoom = 1
	}
	if s.Smoothness <= 0 || s.Smoothness > 1 {
		s.Smoothness = 0.1
	}
}

// Specs bundles everything needed to build a scene.
type Specs struct {
	World    WorldSpec
	Ground   GroundSpec
	Carriage CarriageSpec
	Camera   CameraSpec
}

// LoadSpecs loads every scene spec and fills zero values with defaults.
func LoadSpecs() (*Specs, error) {
	world, err := LoadSpec[WorldSpec](WorldFile)
	if err != nil {
		return nil, err
	}
	world.applyDefaults()

	ground, err := LoadSpec[GroundSpec](GroundFile)
	if err != nil {
		return nil, err
	}

	carriage, err := LoadSpec[CarriageSpec](CarriageFile)
	if err != nil {
		return nil, err
	}

	camera, err := LoadSpec[CameraSpec](CameraFile)
	if err != nil {
		return nil, err
	}
	camera.applyDefaults()

	return &Specs{
		World:    world,
		Ground:   ground,
		Carriage: carriage,
		Camera:   camera,
	}, nil
}
