// Package config loads the drag-related compositor options from a
// TOML file. Missing files and missing keys fall back to the defaults
// of the original options, so an empty configuration is always valid.
package config

import (
	"fmt"
	"os"

	"deedles.dev/wlr"
	"github.com/BurntSushi/toml"
	"github.com/diamondburned/wayfire/drag"
)

// Defaults for the [move] section.
const (
	DefaultSnapOffThreshold = 10
	DefaultInitialScale     = 1.0
)

// Config is the root of the configuration file.
type Config struct {
	Move Move `toml:"move"`
}

// Move configures interactive window moving.
type Move struct {
	// EnableSnapOff holds tiled and fullscreen views in place until
	// they are dragged past SnapOffThreshold pixels.
	EnableSnapOff bool `toml:"enable_snap_off"`

	// SnapOffThreshold is the snap-off distance in layout pixels.
	SnapOffThreshold float64 `toml:"snap_off_threshold"`

	// InitialScale is the scale factor a picked-up view animates
	// towards. 1 leaves it at natural size.
	InitialScale float64 `toml:"initial_scale"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Move: Move{
			EnableSnapOff:    true,
			SnapOffThreshold: DefaultSnapOffThreshold,
			InitialScale:     DefaultInitialScale,
		},
	}
}

// Load reads the configuration at path on top of the defaults. A
// missing file yields the defaults with no error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}
	return cfg, nil
}

// DragOptions translates the move options into per-drag options for
// the given view. Snap-off only applies to views that have a slot to
// snap off from, i.e. tiled or fullscreen ones.
func (m Move) DragOptions(view drag.View) drag.Options {
	return drag.Options{
		InitialScale:     m.InitialScale,
		EnableSnapOff:    m.EnableSnapOff && (view.Fullscreen() || view.TiledEdges() != wlr.EdgeNone),
		SnapOffThreshold: m.SnapOffThreshold,
	}
}
