package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/dop251/goja"
	"github.com/viant/inspector"
	"github.com/viant/inspector/coerce"
	"github.com/viant/inspector/config"
	"github.com/viant/inspector/console"
	"github.com/viant/inspector/enum"
	"github.com/viant/inspector/internal/demo"
	"github.com/viant/inspector/member"
	"github.com/viant/inspector/panel"
	"github.com/viant/inspector/provider"
	"github.com/viant/inspector/settings"
	"github.com/viant/inspector/variant"
)

// App wires the inspector, navigator and console over the demo scene
type App struct {
	Config    *config.Config
	Inspector *inspector.Inspector
	Navigator *panel.Navigator
	Console   *console.Console
	Windows   settings.Windows
	//VM runs demo scripts, it exposes changeInspectorSettings(enumName, scriptProperties)
	VM        *goja.Runtime
}

// New creates an app, output receives console lines
func New(cfg *config.Config, output io.Writer) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	enums := enum.NewRegistry()
	demo.Register(enums)
	members := member.NewRegistry(enums)
	members.CaseFormat = cfg.LabelCaseFormat()
	converter := coerce.NewConverter(coerce.Options{TimeLayout: cfg.ValueTimeLayout()})

	vm := goja.New()
	world, err := demo.Scene(vm)
	if err != nil {
		return nil, err
	}
	ret := &App{Config: cfg, VM: vm}
	ret.Inspector = inspector.New(
		inspector.WithRegistry(members),
		inspector.WithConverter(converter),
		inspector.WithScene(world),
		inspector.WithScriptProperties(cfg.ShowScriptProperties),
		inspector.WithScriptEnumName(cfg.ShowScriptEnumName),
	)
	ret.Console = console.New(
		console.WithOutput(output),
		console.WithTimeLayout(cfg.LogTimeLayout),
		console.WithHistoryLimit(cfg.HistoryLimit),
	)
	ctx := provider.NewContext(members, converter, ret.Console)
	ctx.ShowScriptEnumName = cfg.ShowScriptEnumName
	ctx.ShowScriptProperties = cfg.ShowScriptProperties
	ctx.PinReturnValue = cfg.PinReturnValue
	ret.Navigator = panel.New(ctx)
	if err = ret.Console.Attach(&console.Session{Inspector: ret.Inspector, Navigator: ret.Navigator}); err != nil {
		return nil, err
	}
	if ret.Windows, err = settings.Load(cfg.SettingsFile, defaultWindows(cfg)); err != nil {
		return nil, err
	}
	registry := ret.Console.Registry()
	if err = registry.Register("windows", "windows", ret.listWindows); err != nil {
		return nil, err
	}
	if err = registry.Register("window", "window <key> <on|off>", ret.toggleWindow); err != nil {
		return nil, err
	}
	if err = registry.Register("inspector", "inspector settings [<enumName on|off> <scriptProperties on|off>]", ret.inspectorSettings); err != nil {
		return nil, err
	}
	if err = vm.Set("changeInspectorSettings", ret.ChangeInspectorSettings); err != nil {
		return nil, err
	}
	return ret, nil
}

func defaultWindows(cfg *config.Config) settings.Windows {
	if len(cfg.Windows) == 0 {
		return settings.Defaults()
	}
	var result = make(settings.Windows, 0, len(cfg.Windows))
	for _, window := range cfg.Windows {
		result = append(result, &settings.Window{Key: window.Key, Scene: window.Scene, Enabled: window.Enabled})
	}
	return result
}

func (a *App) listWindows(args []variant.Variant) error {
	for _, window := range a.Windows {
		state := "off"
		if window.Enabled {
			state = "on"
		}
		a.Console.PrintRaw(window.Key + " -> " + window.Scene + " [" + state + "]")
	}
	return nil
}

// toggleWindow enables or disables a window, keys may contain spaces
func (a *App) toggleWindow(args []variant.Variant) error {
	if len(args) < 2 {
		return fmt.Errorf("expected window key and state")
	}
	var keys []string
	for _, arg := range args[:len(args)-1] {
		keys = append(keys, arg.String())
	}
	key := strings.Join(keys, " ")
	enabled, err := state(args[len(args)-1])
	if err != nil {
		return err
	}
	if a.Windows.Lookup(key) == nil {
		return fmt.Errorf("unknown window: %v", key)
	}
	a.Windows.Set(key, "", enabled)
	if err = settings.Save(a.Config.SettingsFile, a.Windows); err != nil {
		return err
	}
	a.Console.Print(fmt.Sprintf("window %v enabled: %v", key, enabled))
	return nil
}

// ChangeInspectorSettings switches script enum names and script properties of the tree and the panels
func (a *App) ChangeInspectorSettings(showEnumName, showScriptProperties bool) {
	a.Config.ShowScriptEnumName, a.Config.ShowScriptProperties = showEnumName, showScriptProperties
	ctx := a.Navigator.Context()
	ctx.ShowScriptEnumName, ctx.ShowScriptProperties = showEnumName, showScriptProperties
	a.Inspector.SetScriptSettings(showEnumName, showScriptProperties)
	a.Navigator.Refresh()
}

func (a *App) inspectorSettings(args []variant.Variant) error {
	if len(args) == 0 || args[0].String() != "settings" {
		return fmt.Errorf("unknown inspector action")
	}
	switch len(args) {
	case 1:
	case 3:
		showEnumName, err := state(args[1])
		if err != nil {
			return err
		}
		showScriptProperties, err := state(args[2])
		if err != nil {
			return err
		}
		a.ChangeInspectorSettings(showEnumName, showScriptProperties)
	default:
		return fmt.Errorf("expected enum name and script properties states")
	}
	a.Console.Print(fmt.Sprintf("inspector settings: enum names %v, script properties %v", a.Config.ShowScriptEnumName, a.Config.ShowScriptProperties))
	return nil
}

// state parses on/off or a boolean literal
func state(arg variant.Variant) (bool, error) {
	if enabled, err := arg.AsBool(); err == nil {
		return enabled, nil
	}
	switch strings.ToLower(arg.String()) {
	case "on":
		return true, nil
	case "off":
		return false, nil
	}
	return false, fmt.Errorf("invalid state: %v", arg)
}
