package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	dark "github.com/thiagokokada/dark-mode-go"

	"huewheel/view"
	"huewheel/wheel"
)

const SETTINGS_VERSION = 1

type settings struct {
	Version int

	WindowWidth  int
	WindowHeight int

	// Theme selects the default thumb color when the picker config does not
	// set one: "dark", "light", or empty to follow the OS.
	Theme string

	Picker view.Options
}

var gsdef = settings{
	Version:      SETTINGS_VERSION,
	WindowWidth:  480,
	WindowHeight: 480,
	Picker:       view.DefaultOptions(),
}

var gs = gsdef

// isDarkMode is swapped out by tests.
var isDarkMode = dark.IsDarkMode

// loadSettings reads the JSON config at path over the defaults. A missing
// file is not an error. A file from another settings version is ignored.
func loadSettings(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		gs = gsdef
		applyTheme(false)
		return nil
	}
	if err != nil {
		return fmt.Errorf("read settings: %w", err)
	}

	tmp := gsdef
	if err := json.Unmarshal(data, &tmp); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	if tmp.Version != SETTINGS_VERSION {
		logWarn("settings %s has version %d, want %d; using defaults", path, tmp.Version, SETTINGS_VERSION)
		gs = gsdef
		applyTheme(false)
		return nil
	}

	var raw struct {
		Picker struct {
			ArcColor json.RawMessage
		}
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	gs = tmp
	applyTheme(len(raw.Picker.ArcColor) > 0)
	if err := gs.Picker.Validate(); err != nil {
		return fmt.Errorf("settings %s: %w", path, err)
	}
	return nil
}

// applyTheme picks the thumb color from the theme unless the config set
// one explicitly.
func applyTheme(explicitArcColor bool) {
	if explicitArcColor {
		return
	}
	theme := gs.Theme
	if theme == "" {
		darkMode, err := isDarkMode()
		if err != nil {
			logDebug("dark mode detection: %v", err)
			theme = "light"
		} else if darkMode {
			theme = "dark"
		} else {
			theme = "light"
		}
	}
	switch theme {
	case "dark":
		gs.Picker.ArcColor = wheel.HueColor{Brightness: 1, Alpha: 1}
	default:
		gs.Picker.ArcColor = wheel.HueColor{Alpha: 1}
	}
}
