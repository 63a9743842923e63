package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"huewheel/wheel"
)

var (
	black = wheel.HueColor{Alpha: 1}
	white = wheel.HueColor{Brightness: 1, Alpha: 1}
)

func stubDarkMode(t *testing.T, darkMode bool, err error) {
	t.Helper()
	old := isDarkMode
	isDarkMode = func() (bool, error) { return darkMode, err }
	t.Cleanup(func() {
		isDarkMode = old
		gs = gsdef
	})
}

func writeSettings(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "huewheel.json")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadSettingsMissingFile(t *testing.T) {
	stubDarkMode(t, true, nil)
	if err := loadSettings(filepath.Join(t.TempDir(), "nope.json")); err != nil {
		t.Fatalf("loadSettings: %v", err)
	}
	want := gsdef
	want.Picker.ArcColor = white
	if diff := cmp.Diff(want, gs); diff != "" {
		t.Fatalf("settings mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadSettingsDarkModeError(t *testing.T) {
	stubDarkMode(t, true, errors.New("no session bus"))
	if err := loadSettings(filepath.Join(t.TempDir(), "nope.json")); err != nil {
		t.Fatal(err)
	}
	if gs.Picker.ArcColor != black {
		t.Fatalf("arc color = %v, want black", gs.Picker.ArcColor)
	}
}

func TestLoadSettingsOverrides(t *testing.T) {
	stubDarkMode(t, true, nil)
	path := writeSettings(t, `{
		"Version": 1,
		"Theme": "light",
		"Picker": {
			"ThicknessOfColorWheel": 12,
			"Arc": {"TotalSectors": 36, "Accumulation": "origin"}
		}
	}`)
	if err := loadSettings(path); err != nil {
		t.Fatalf("loadSettings: %v", err)
	}
	want := gsdef
	want.Theme = "light"
	want.Picker.ThicknessOfColorWheel = 12
	want.Picker.Arc.TotalSectors = 36
	want.Picker.Arc.Accumulation = wheel.AccumulateFromOrigin
	want.Picker.ArcColor = black
	if diff := cmp.Diff(want, gs); diff != "" {
		t.Fatalf("settings mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadSettingsExplicitArcColor(t *testing.T) {
	stubDarkMode(t, true, nil)
	path := writeSettings(t, `{"Version":1,"Picker":{"ArcColor":"#ff0000"}}`)
	if err := loadSettings(path); err != nil {
		t.Fatal(err)
	}
	if got := gs.Picker.ArcColor.Hex(); got != "#ff0000" {
		t.Fatalf("arc color = %s, want #ff0000", got)
	}
}

func TestLoadSettingsExplicitArcColorBeatsTheme(t *testing.T) {
	stubDarkMode(t, true, nil)
	path := writeSettings(t, `{"Version":1,"Picker":{"ArcColor":{"HSV":[0,0,0,1]}}}`)
	if err := loadSettings(path); err != nil {
		t.Fatal(err)
	}
	if gs.Picker.ArcColor != black {
		t.Fatalf("arc color = %v, want configured black in dark mode", gs.Picker.ArcColor)
	}

	path = writeSettings(t, `{"Version":1,"Picker":{"ThicknessOfColorWheel":8}}`)
	if err := loadSettings(path); err != nil {
		t.Fatal(err)
	}
	if gs.Picker.ArcColor != white {
		t.Fatalf("arc color = %v, want theme white", gs.Picker.ArcColor)
	}
}

func TestLoadSettingsInvalid(t *testing.T) {
	stubDarkMode(t, false, nil)

	path := writeSettings(t, `{"Version":1,"Picker":{"Arc":{"TotalSectors":0}}}`)
	if err := loadSettings(path); !errors.Is(err, wheel.ErrInvalidConfig) {
		t.Fatalf("zero sectors err = %v, want ErrInvalidConfig", err)
	}

	path = writeSettings(t, `{"Version":1,"Picker":{"Arc":{"StartAngleDeg":300,"EndAngleDeg":10}}}`)
	if err := loadSettings(path); !errors.Is(err, wheel.ErrInvalidConfig) {
		t.Fatalf("reversed angles err = %v, want ErrInvalidConfig", err)
	}

	path = writeSettings(t, `{"Version":1,`)
	if err := loadSettings(path); err == nil {
		t.Fatalf("malformed JSON accepted")
	}
}

func TestLoadSettingsVersionMismatch(t *testing.T) {
	stubDarkMode(t, false, nil)
	path := writeSettings(t, `{"Version":99,"WindowWidth":1000}`)
	if err := loadSettings(path); err != nil {
		t.Fatal(err)
	}
	if gs.WindowWidth != gsdef.WindowWidth {
		t.Fatalf("settings from another version were applied")
	}
}
