package settings

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/francoispqt/gojay"
)

const enabledKey = "enabled"

type (
	// Window represents a console window setting, encoded as {"<key>":"<scene>","enabled":true}
	Window struct {
		Key     string
		Scene   string
		Enabled bool
	}

	// Windows represents console window settings
	Windows []*Window
)

// MarshalJSONObject implements gojay.MarshalerJSONObject
func (w *Window) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey(w.Key, w.Scene)
	enc.BoolKey(enabledKey, w.Enabled)
}

// IsNil implements gojay.MarshalerJSONObject
func (w *Window) IsNil() bool {
	return w == nil
}

// UnmarshalJSONObject implements gojay.UnmarshalerJSONObject, the first non enabled key names the window
func (w *Window) UnmarshalJSONObject(dec *gojay.Decoder, key string) error {
	if key == enabledKey {
		return dec.Bool(&w.Enabled)
	}
	if w.Key != "" {
		return nil
	}
	w.Key = key
	return dec.String(&w.Scene)
}

// NKeys implements gojay.UnmarshalerJSONObject
func (w *Window) NKeys() int {
	return 0
}

// MarshalJSONArray implements gojay.MarshalerJSONArray
func (w Windows) MarshalJSONArray(enc *gojay.Encoder) {
	for _, window := range w {
		enc.Object(window)
	}
}

// IsNil implements gojay.MarshalerJSONArray
func (w Windows) IsNil() bool {
	return w == nil
}

// UnmarshalJSONArray implements gojay.UnmarshalerJSONArray, entries without a window key are skipped
func (w *Windows) UnmarshalJSONArray(dec *gojay.Decoder) error {
	window := &Window{}
	if err := dec.Object(window); err != nil {
		return err
	}
	if window.Key != "" {
		*w = append(*w, window)
	}
	return nil
}

// Lookup returns window with supplied key or nil
func (w Windows) Lookup(key string) *Window {
	for _, window := range w {
		if window.Key == key {
			return window
		}
	}
	return nil
}

// Enabled returns enabled windows
func (w Windows) Enabled() Windows {
	var result Windows
	for _, window := range w {
		if window.Enabled {
			result = append(result, window)
		}
	}
	return result
}

// Set enables or disables window with supplied key, unknown window is added
func (w *Windows) Set(key, scene string, enabled bool) *Window {
	window := w.Lookup(key)
	if window == nil {
		window = &Window{Key: key}
		*w = append(*w, window)
	}
	if scene != "" {
		window.Scene = scene
	}
	window.Enabled = enabled
	return window
}

// Defaults returns default console windows
func Defaults() Windows {
	return Windows{
		{Key: "Log and Command", Scene: "console", Enabled: true},
		{Key: "Object Inspector", Scene: "inspector", Enabled: true},
	}
}

// Decode decodes window settings, empty or null input yields nil
func Decode(data []byte) (Windows, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, nil
	}
	var ret Windows
	if err := gojay.UnmarshalJSONArray(data, &ret); err != nil {
		return nil, fmt.Errorf("failed to decode window settings: %w", err)
	}
	return ret, nil
}

// Encode encodes window settings
func Encode(windows Windows) ([]byte, error) {
	if windows == nil {
		windows = Windows{}
	}
	return gojay.MarshalJSONArray(windows)
}

// Load loads window settings, defaults are returned when file does not exist or holds no settings
func Load(path string, defaults Windows) (Windows, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return defaults, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read window settings %v: %w", path, err)
	}
	ret, err := Decode(data)
	if err != nil || ret == nil {
		return defaults, err
	}
	return ret, nil
}

// Save saves window settings
func Save(path string, windows Windows) error {
	data, err := Encode(windows)
	if err != nil {
		return err
	}
	if err = os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write window settings %v: %w", path, err)
	}
	return nil
}
