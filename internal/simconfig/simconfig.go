package simconfig

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// ConfigPath is the path to the simulation config file, relative to the
// process working directory.
const ConfigPath = "config/sim.json"

// Prefs holds simulation and overlay preferences persisted across runs.
type Prefs struct {
	GravityX           float64 `json:"gravity_x"`
	GravityY           float64 `json:"gravity_y"`
	VelocityIterations int     `json:"velocity_iterations"`
	WorldMinX          float64 `json:"world_min_x"`
	WorldMinY          float64 `json:"world_min_y"`
	WorldMaxX          float64 `json:"world_max_x"`
	WorldMaxY          float64 `json:"world_max_y"`
	ShowFPS            bool    `json:"show_fps"`
	ShowSimStats       bool    `json:"show_sim_stats"`
	ShowColliders      bool    `json:"show_colliders"`
}

// Default returns preferences matching the demo scene: earth-like
// gravity in pixels/s², six solver iterations, 800x600 bounds.
func Default() Prefs {
	return Prefs{
		GravityY:           980,
		VelocityIterations: 6,
		WorldMaxX:          800,
		WorldMaxY:          600,
		ShowFPS:            true,
		ShowSimStats:       true,
		ShowColliders:      true,
	}
}

// Load reads preferences from config/sim.json. If the file is missing
// or invalid, returns Default() and does not create a file.
func Load() (Prefs, error) {
	data, err := os.ReadFile(ConfigPath)
	if err != nil {
		return Default(), nil
	}
	var p Prefs
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), nil
	}
	return p, nil
}

// Save writes preferences to config/sim.json, creating the config
// directory if needed.
func Save(p Prefs) error {
	dir := filepath.Dir(ConfigPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(ConfigPath, data, 0644)
}
