package profile

import (
	"slices"
	"testing"
)

func TestConfig_With(t *testing.T) {
	var c Config

	c = c.With(WithMode("cpu"), WithPath("/tmp/prof"), WithQuiet(true))

	mode, path, quiet := c()
	if mode != "cpu" || path != "/tmp/prof" || !quiet {
		t.Errorf("got (%q, %q, %v)", mode, path, quiet)
	}

	// Later options override earlier ones.
	mode, path, _ = c.With(WithMode("heap"))()
	if mode != "heap" || path != "/tmp/prof" {
		t.Errorf("override got (%q, %q)", mode, path)
	}
}

func TestConfig_Start_NoMode(t *testing.T) {
	for _, c := range []Config{nil, Config(nil).With(WithPath("/tmp"))} {
		ctrl := c.Start()
		if _, ok := ctrl.(ignore); !ok {
			t.Errorf("Start() = %T, want no-op", ctrl)
		}

		ctrl.Stop()
	}
}

func TestConfig_Start_UnknownMode(t *testing.T) {
	ctrl := Config(nil).With(WithMode("bogus")).Start()
	if _, ok := ctrl.(ignore); !ok {
		t.Errorf("Start() = %T, want no-op", ctrl)
	}
}

func TestModes(t *testing.T) {
	modes := Modes()

	if Enabled() != (len(modes) > 0) {
		t.Error("Enabled disagrees with Modes")
	}

	if !slices.IsSorted(modes) {
		t.Errorf("Modes() not sorted: %v", modes)
	}
}
