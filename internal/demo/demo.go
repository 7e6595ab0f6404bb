package demo

import (
	"container/list"
	"fmt"
	"reflect"

	"github.com/dop251/goja"
	"github.com/viant/inspector"
	"github.com/viant/inspector/enum"
	"github.com/viant/inspector/hint"
	"github.com/viant/inspector/script"
	"github.com/viant/inspector/script/js"
	"github.com/viant/inspector/variant"
)

// Mode represents movement mode
type Mode int

const (
	ModeIdle Mode = iota
	ModeWalk
	ModeRun
)

// EnumEntries implements enum.Enumerator
func (m Mode) EnumEntries() []enum.Entry {
	return []enum.Entry{enum.Of("Idle", ModeIdle), enum.Of("Walk", ModeWalk), enum.Of("Run", ModeRun)}
}

// Layer represents collision layers
type Layer uint8

const (
	LayerGround Layer = 1 << iota
	LayerWater
	LayerAir
)

// FlagEntries implements enum.Flagger
func (l Layer) FlagEntries() []enum.Entry {
	return []enum.Entry{enum.Of("Ground", LayerGround), enum.Of("Water", LayerWater), enum.Of("Air", LayerAir)}
}

type (
	// Vector3 represents a position, rotation or scale
	Vector3 struct {
		X, Y, Z float32
	}

	// Transform represents object placement
	Transform struct {
		Position Vector3
		Rotation Vector3
		Scale    Vector3
	}

	// GameObject represents a scene node
	GameObject struct {
		Transform Transform
		Mode      Mode
		Layers    Layer
		Tags      []string
		Active    bool
		Parent    *GameObject `inspect:"-"`
		name      string
		health    int
		children  []*GameObject
		script    script.Object
	}

	// Inventory represents a bag of items with a shared history
	Inventory struct {
		Items   map[string]int
		History *list.List
		Owner   *GameObject
	}

	// Marker represents an editor only object, omitted from the object tree
	Marker struct {
		_     struct{} `inspect:"hideInTree"`
		Label string
	}
)

// Name implements inspector.SceneNode
func (g *GameObject) Name() string {
	return g.name
}

// Children implements inspector.SceneNode
func (g *GameObject) Children() []inspector.SceneNode {
	var result = make([]inspector.SceneNode, 0, len(g.children))
	for _, child := range g.children {
		result = append(result, child)
	}
	return result
}

// Script implements inspector.Scripted
func (g *GameObject) Script() script.Object {
	return g.script
}

// SetScript attaches a script
func (g *GameObject) SetScript(object script.Object) {
	g.script = object
}

// Add appends child
func (g *GameObject) Add(child *GameObject) *GameObject {
	child.Parent = g
	g.children = append(g.children, child)
	return child
}

// Health returns hit points
func (g *GameObject) Health() int {
	return g.health
}

// SetHealth sets hit points
func (g *GameObject) SetHealth(health int) error {
	if health < 0 {
		return fmt.Errorf("invalid health: %v", health)
	}
	g.health = health
	return nil
}

// Jump moves object up and returns its new position
func (g *GameObject) Jump(height float32) Vector3 {
	g.Transform.Position.Y += height
	return g.Transform.Position
}

// String returns "(x, y, z)"
func (v Vector3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}

// NewGameObject creates an active object with unit scale
func NewGameObject(name string) *GameObject {
	return &GameObject{name: name, Active: true, health: 100, Transform: Transform{Scale: Vector3{X: 1, Y: 1, Z: 1}}}
}

const enemySource = `({
	__class: "EnemyAI",
	__hints: {state: "2/2:Patrol,Chase,Flee", senses: "2/6:Sight,Hearing,Smell"},
	state: 1,
	senses: 3,
	aggression: 0.75,
	target: "Player",
	waypoints: [1, 2, 3],
	taunt: function(name) { return "come here " + name; }
})`

// Register registers demo enums so that script enum classes resolve by name
func Register(registry *enum.Registry) {
	registry.Lookup(reflect.TypeOf(ModeIdle))
	registry.Lookup(reflect.TypeOf(LayerGround))
}

// Scene builds a demo world with native, scripted and hidden nodes
func Scene(vm *goja.Runtime) (*GameObject, error) {
	world := NewGameObject("World")
	world.Tags = []string{"root"}

	player := world.Add(NewGameObject("Player"))
	player.Mode, player.Layers = ModeWalk, LayerGround|LayerWater
	player.SetScript(playerController())

	enemy := world.Add(NewGameObject("Enemy"))
	enemy.Transform.Position = Vector3{X: 10, Z: -4}
	ai, err := js.Eval(vm, enemySource, "")
	if err != nil {
		return nil, fmt.Errorf("failed to create enemy script: %w", err)
	}
	enemy.SetScript(ai)

	debug := world.Add(NewGameObject("Debug"))
	debug.SetScript(script.NewInstance("DebugDraw").WithSource(script.HideInTreeDirective + "\nextends Node").Var("enabled", true))
	debug.Add(NewGameObject("Gizmo"))
	return world, nil
}

func playerController() *script.Instance {
	inventory := &Inventory{Items: map[string]int{"potion": 3, "arrow": 20}, History: list.New()}
	inventory.History.PushBack("potion")
	inventory.History.PushBack(&Marker{Label: "checkpoint"})
	return script.NewInstance("PlayerController").
		Section("Movement", script.UsageCategory).
		Var("speed", 4.5).
		Define(script.Property{Name: "gait", Type: script.TypeInt, ClassName: "demo.Mode", Usage: script.UsageVariable | script.UsageClassIsEnum}, int64(ModeRun)).
		Define(script.Property{Name: "stance", Type: script.TypeInt, Hint: hint.HintEnum, HintString: "Stand,Crouch,Prone", Usage: script.UsageVariable}, 1).
		Section("State", script.UsageGroup).
		Var("nickname", "hero").
		Var("spawn", variant.NewPath("/root/World/Spawn")).
		Var("inventory", inventory).
		Var("nothing", nil).
		Method("greet", []string{"name"}, func(instance *script.Instance, args ...variant.Variant) (variant.Variant, error) {
			nickname, _ := instance.Get("nickname")
			return variant.FromText("hi " + args[0].String() + " from " + nickname.String()), nil
		})
}
