package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tomz197/polyroids/internal/scores"
)

//go:embed defaults/polyroids.yaml
var defaultYAML []byte

// Settings holds every tunable of the game.
type Settings struct {
	Simulation Simulation `yaml:"simulation"`
	Ship       Ship       `yaml:"ship"`
	Ledger     Ledger     `yaml:"ledger"`
	Client     Client     `yaml:"client"`
	SSH        SSH        `yaml:"ssh"`
}

// Simulation controls tick cadence, lives and the asteroid population.
type Simulation struct {
	TickInterval    time.Duration `yaml:"tick_interval"`
	CatchUpFrames   int           `yaml:"catch_up_frames"`
	Invulnerability time.Duration `yaml:"invulnerability"`
	Lives           int           `yaml:"lives"`
	MaxAsteroids    int           `yaml:"max_asteroids"`
	SpawnSkipChance float64       `yaml:"spawn_skip_chance"`
	SpawnOffset     float64       `yaml:"spawn_offset"`
	AsteroidSpeed   float64       `yaml:"asteroid_speed"`
	GridCellSize    float64       `yaml:"grid_cell_size"`
}

// Ship is the handling of the player ship.
type Ship struct {
	MaxSpeed        float64 `yaml:"max_speed"`
	Acceleration    float64 `yaml:"acceleration"`
	RotationStep    float64 `yaml:"rotation_step"`
	Drag            float64 `yaml:"drag"`
	ProjectileSpeed float64 `yaml:"projectile_speed"`
	SpriteWidth     float64 `yaml:"sprite_width"`
	SpriteHeight    float64 `yaml:"sprite_height"`
}

// Ledger selects the score store.
type Ledger struct {
	Backend  string `yaml:"backend"`
	Path     string `yaml:"path"`
	Capacity int    `yaml:"capacity"`
	TopShown int    `yaml:"top_shown"`
	Player   string `yaml:"player"`
}

// Client is the terminal presentation.
type Client struct {
	UnitsPerCell int           `yaml:"units_per_cell"`
	KeyHold      time.Duration `yaml:"key_hold"`
	FrameRate    int           `yaml:"frame_rate"`
}

// SSH is the hosted-play server.
type SSH struct {
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// Ledger backends.
const (
	BackendText   = scores.BackendText
	BackendSQLite = scores.BackendSQLite
)

// Default returns the embedded default settings.
func Default() Settings {
	var s Settings
	if err := yaml.Unmarshal(defaultYAML, &s); err != nil {
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	return s
}

// Load builds the settings from the embedded defaults, overlaid with the
// first file found. Search order: path -> ~/.polyroids/config.yaml ->
// ./configs/polyroids.yaml. An explicit path must exist; the other
// locations are skipped when absent or unparsable. Environment overrides
// are applied last.
func Load(path string) (Settings, error) {
	s := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return s, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &s); err != nil {
			return s, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	} else {
		for _, candidate := range searchPaths() {
			data, err := os.ReadFile(candidate)
			if err != nil {
				continue
			}
			overlay := s
			if err := yaml.Unmarshal(data, &overlay); err != nil {
				continue
			}
			s = overlay
			break
		}
	}

	s.ApplyEnv()
	return s, s.Validate()
}

func searchPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".polyroids", "config.yaml"))
	}
	return append(paths, filepath.Join("configs", "polyroids.yaml"))
}

// ApplyEnv overrides ledger settings from POLYROIDS_LEDGER_BACKEND,
// POLYROIDS_LEDGER_PATH and POLYROIDS_PLAYER.
func (s *Settings) ApplyEnv() {
	s.Ledger.Backend = GetEnv("POLYROIDS_LEDGER_BACKEND", s.Ledger.Backend)
	s.Ledger.Path = GetEnv("POLYROIDS_LEDGER_PATH", s.Ledger.Path)
	s.Ledger.Player = GetEnv("POLYROIDS_PLAYER", s.Ledger.Player)
}

// Validate reports every setting outside its usable range.
func (s Settings) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	sim := s.Simulation
	check(sim.TickInterval > 0, "simulation.tick_interval must be positive, got %v", sim.TickInterval)
	check(sim.CatchUpFrames >= 1, "simulation.catch_up_frames must be at least 1, got %d", sim.CatchUpFrames)
	check(sim.Invulnerability >= 0, "simulation.invulnerability must not be negative, got %v", sim.Invulnerability)
	check(sim.Lives > 0, "simulation.lives must be positive, got %d", sim.Lives)
	check(sim.MaxAsteroids >= 0, "simulation.max_asteroids must not be negative, got %d", sim.MaxAsteroids)
	check(sim.SpawnSkipChance >= 0 && sim.SpawnSkipChance <= 1, "simulation.spawn_skip_chance must be in [0, 1], got %v", sim.SpawnSkipChance)
	check(sim.AsteroidSpeed >= 0, "simulation.asteroid_speed must not be negative, got %v", sim.AsteroidSpeed)
	check(sim.GridCellSize > 0, "simulation.grid_cell_size must be positive, got %v", sim.GridCellSize)

	ship := s.Ship
	check(ship.MaxSpeed > 0, "ship.max_speed must be positive, got %v", ship.MaxSpeed)
	check(ship.Acceleration > 0, "ship.acceleration must be positive, got %v", ship.Acceleration)
	check(ship.Drag > 0 && ship.Drag <= 1, "ship.drag must be in (0, 1], got %v", ship.Drag)
	check(ship.SpriteWidth > 0 && ship.SpriteHeight > 0, "ship sprite dimensions must be positive")

	led := s.Ledger
	check(led.Backend == BackendText || led.Backend == BackendSQLite, "ledger.backend must be %q or %q, got %q", BackendText, BackendSQLite, led.Backend)
	check(led.Path != "", "ledger.path must not be empty")
	check(led.Capacity > 0, "ledger.capacity must be positive, got %d", led.Capacity)
	check(led.TopShown >= 0, "ledger.top_shown must not be negative, got %d", led.TopShown)

	check(s.Client.UnitsPerCell > 0, "client.units_per_cell must be positive, got %d", s.Client.UnitsPerCell)
	check(s.Client.KeyHold > 0, "client.key_hold must be positive, got %s", s.Client.KeyHold)
	check(s.Client.FrameRate > 0, "client.frame_rate must be positive, got %d", s.Client.FrameRate)

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
