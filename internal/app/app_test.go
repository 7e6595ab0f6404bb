package app

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/inspector"
	"github.com/viant/inspector/config"
	"github.com/viant/inspector/settings"
)

func newApp(t *testing.T, cfg *config.Config) (*App, *bytes.Buffer) {
	output := &bytes.Buffer{}
	cfg.SettingsFile = filepath.Join(t.TempDir(), config.DefaultSettingsFile)
	app, err := New(cfg, output)
	if !assert.Nil(t, err) {
		t.FailNow()
	}
	return app, output
}

func TestNew(t *testing.T) {
	app, output := newApp(t, config.Default())
	assert.Equal(t, settings.Defaults(), app.Windows)

	assert.Nil(t, app.Console.Execute("tree"))
	assert.Contains(t, output.String(), "Player")
	assert.Contains(t, output.String(), "Enemy")
	assert.NotContains(t, output.String(), "Debug")

	assert.Nil(t, app.Console.Execute("find Player"))
	assert.Contains(t, output.String(), "match 1/")
}

func TestApp_Windows(t *testing.T) {
	var testCases = []struct {
		description string
		line        string
		expect      bool
		hasError    bool
	}{
		{description: "disable", line: "window Object Inspector off", expect: false},
		{description: "enable", line: "window Object Inspector on", expect: true},
		{description: "bool literal", line: "window Object Inspector false", expect: false},
		{description: "invalid state", line: "window Object Inspector maybe", hasError: true, expect: true},
		{description: "unknown window", line: "window Graph on", hasError: true, expect: true},
		{description: "missing state", line: "window", hasError: true, expect: true},
	}
	for _, testCase := range testCases {
		app, _ := newApp(t, config.Default())
		err := app.Console.Execute(testCase.line)
		if testCase.hasError {
			assert.NotNil(t, err, testCase.description)
		} else if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.Equal(t, testCase.expect, app.Windows.Lookup("Object Inspector").Enabled, testCase.description)
		if testCase.hasError {
			_, err = os.Stat(app.Config.SettingsFile)
			assert.True(t, os.IsNotExist(err), testCase.description)
			continue
		}
		saved, err := settings.Load(app.Config.SettingsFile, nil)
		assert.Nil(t, err, testCase.description)
		assert.Equal(t, testCase.expect, saved.Lookup("Object Inspector").Enabled, testCase.description)
	}
}

func TestApp_ConfiguredWindows(t *testing.T) {
	cfg := config.Default()
	cfg.Windows = []config.Window{{Key: "Log and Command", Scene: "console"}}
	app, output := newApp(t, cfg)
	assert.Nil(t, app.Console.Execute("windows"))
	assert.Contains(t, output.String(), "Log and Command -> console [off]")
	assert.Nil(t, app.Windows.Lookup("Object Inspector"))
}

func TestApp_InspectorSettings(t *testing.T) {
	var testCases = []struct {
		description       string
		line              string
		script            string
		expectEnumName    bool
		expectScriptProps bool
		hasError          bool
	}{
		{description: "defaults", line: "inspector settings", expectScriptProps: true},
		{description: "disable script properties", line: "inspector settings off off"},
		{description: "enable both", line: "inspector settings on true", expectEnumName: true, expectScriptProps: true},
		{description: "script call", script: "changeInspectorSettings(true, false)", expectEnumName: true},
		{description: "invalid state", line: "inspector settings maybe off", hasError: true, expectScriptProps: true},
		{description: "missing state", line: "inspector settings on", hasError: true, expectScriptProps: true},
		{description: "unknown action", line: "inspector reset", hasError: true, expectScriptProps: true},
	}
	for _, testCase := range testCases {
		app, _ := newApp(t, config.Default())
		var err error
		if testCase.script != "" {
			_, err = app.VM.RunString(testCase.script)
		} else {
			err = app.Console.Execute(testCase.line)
		}
		if testCase.hasError {
			assert.NotNil(t, err, testCase.description)
		} else {
			assert.Nil(t, err, testCase.description)
		}
		assert.Equal(t, testCase.expectEnumName, app.Inspector.Builder().ShowScriptEnumName, testCase.description)
		assert.Equal(t, testCase.expectScriptProps, app.Inspector.Builder().ShowScriptProperties, testCase.description)
		ctx := app.Navigator.Context()
		assert.Equal(t, testCase.expectEnumName, ctx.ShowScriptEnumName, testCase.description)
		assert.Equal(t, testCase.expectScriptProps, ctx.ShowScriptProperties, testCase.description)
	}
}

func TestApp_InspectorSettings_Refresh(t *testing.T) {
	app, _ := newApp(t, config.Default())
	player := app.Inspector.BuildTree().Child("Player")
	if !assert.NotNil(t, player) {
		return
	}
	assert.NotNil(t, player.Lookup("self/nickname"))
	scripted, ok := player.Value.(inspector.Scripted)
	if !assert.True(t, ok) {
		return
	}
	opened := app.Navigator.Open("script", scripted.Script())
	assert.NotNil(t, opened.Lookup("nickname"))

	assert.Nil(t, app.Console.Execute("inspector settings off off"))
	assert.Nil(t, app.Navigator.Current().Lookup("nickname"), "open panel is refreshed")
	assert.Nil(t, app.Inspector.BuildTree().Lookup("Player/self/nickname"))
}
