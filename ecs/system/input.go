package system

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/milk9111/cartpole/ecs"
	"github.com/milk9111/cartpole/ecs/component"
)

// Key names an input the simulation reacts to.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyDown
	KeyReset
)

var keyNames = map[string]Key{
	"left":  KeyLeft,
	"right": KeyRight,
	"down":  KeyDown,
	"reset": KeyReset,
}

// KeySource reports key state for the current tick.
type KeySource interface {
	Pressed(k Key) bool
	JustPressed(k Key) bool
}

type InputSystem struct {
	keys KeySource
}

func NewInputSystem(keys KeySource) *InputSystem {
	return &InputSystem{keys: keys}
}

func (i *InputSystem) Update(w *ecs.World) {
	if i == nil || i.keys == nil || w == nil {
		return
	}

	left := i.keys.Pressed(KeyLeft)
	right := i.keys.Pressed(KeyRight)
	down := i.keys.Pressed(KeyDown)

	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, input *component.Input) {
		input.Left = left
		input.Right = right
		input.Down = down
	})

	if !i.keys.JustPressed(KeyReset) {
		return
	}
	if _, pending := ecs.First(w, component.ResetRequestComponent.Kind()); pending {
		return
	}
	req := ecs.CreateEntity(w)
	if err := ecs.Add(w, req, component.ResetRequestComponent.Kind(), &component.ResetRequest{}); err != nil {
		panic("input system: add reset request: " + err.Error())
	}
}

type keyWindow struct {
	key        Key
	start, end int
}

// ScriptedKeys replays a fixed key timeline. A key is held on ticks in
// [start, end).
type ScriptedKeys struct {
	Tick    int
	windows []keyWindow
}

// ParseKeyScript parses a comma separated list of key:start-end windows,
// for example "left:0-120,down:120-240".
func ParseKeyScript(script string) (*ScriptedKeys, error) {
	keys := &ScriptedKeys{}
	for _, part := range strings.Split(script, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, span, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("key script: %q: missing ':'", part)
		}
		key, ok := keyNames[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, fmt.Errorf("key script: %q: unknown key %q", part, name)
		}
		from, to, ok := strings.Cut(span, "-")
		if !ok {
			return nil, fmt.Errorf("key script: %q: missing '-'", part)
		}
		start, err := strconv.Atoi(strings.TrimSpace(from))
		if err != nil {
			return nil, fmt.Errorf("key script: %q: start: %w", part, err)
		}
		end, err := strconv.Atoi(strings.TrimSpace(to))
		if err != nil {
			return nil, fmt.Errorf("key script: %q: end: %w", part, err)
		}
		if start < 0 || end < start {
			return nil, fmt.Errorf("key script: %q: bad range", part)
		}
		keys.windows = append(keys.windows, keyWindow{key: key, start: start, end: end})
	}
	return keys, nil
}

func (s *ScriptedKeys) pressedAt(k Key, tick int) bool {
	for _, win := range s.windows {
		if win.key == k && tick >= win.start && tick < win.end {
			return true
		}
	}
	return false
}

func (s *ScriptedKeys) Pressed(k Key) bool {
	return s.pressedAt(k, s.Tick)
}

func (s *ScriptedKeys) JustPressed(k Key) bool {
	return s.pressedAt(k, s.Tick) && !s.pressedAt(k, s.Tick-1)
}
