// Package config loads, saves, and hot-reloads the engine's tunable
// parameters: the TOML file an operator edits to retune a running repair
// search without restarting it.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// EngineConfig holds every tunable parameter named in the engine's
// configuration constants. Paths are site-specific and have no defaults.
type EngineConfig struct {
	TargetFitness  float64 `toml:"target_fitness"`
	MaxGenerations int     `toml:"max_generations"`
	PopulationSize int     `toml:"population_size"`
	TournamentSize int     `toml:"tournament_size"`
	UseTournament  bool    `toml:"use_tournament"`
	MaxSectionSize int     `toml:"max_section_size"`
	CrossoverRate  float64 `toml:"crossover_rate"`

	GoodMult float64 `toml:"good_mult"`
	BadMult  float64 `toml:"bad_mult"`

	Compiler      string   `toml:"compiler"`
	CompilerFlags []string `toml:"compiler_flags"`

	TestTimeoutMS     int `toml:"test_timeout_ms"`
	PointNeighborhood int `toml:"point_neighborhood"`

	TestDir          string `toml:"test_dir"`
	TestGood         string `toml:"test_good"`
	TestBad          string `toml:"test_bad"`
	FitnessCachePath string `toml:"fitness_cache_path"`
	CheckpointDir    string `toml:"checkpoint_dir"`
}

// DefaultConfig mirrors the engine's documented default constants; the
// site-specific paths are left empty and must be supplied by the operator.
func DefaultConfig() EngineConfig {
	return EngineConfig{
		TargetFitness:     10,
		MaxGenerations:    10,
		PopulationSize:    40,
		TournamentSize:    3,
		UseTournament:     false,
		MaxSectionSize:    1,
		CrossoverRate:     0.1,
		GoodMult:          1,
		BadMult:           5,
		Compiler:          "gcc",
		TestTimeoutMS:     2000,
		PointNeighborhood: 4,
	}
}

// GetConfigPath tries ./asmgp.toml first, then falls back to
// ~/.config/asmgp/config.toml.
func GetConfigPath() string {
	if _, err := os.Stat("./asmgp.toml"); err == nil {
		return "./asmgp.toml"
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "./asmgp.toml"
	}
	return filepath.Join(home, ".config", "asmgp", "config.toml")
}

// LoadConfig reads path; a missing file yields DefaultConfig rather than an
// error, since running without a config file at all is a normal first run.
func LoadConfig(path string) (EngineConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return DefaultConfig(), fmt.Errorf("read config file: %w", err)
	}

	var cfg EngineConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parse config file: %w", err)
	}
	return cfg, nil
}

// SaveConfig writes cfg to path, creating the containing directory if needed.
func SaveConfig(path string, cfg EngineConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create config file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			fmt.Printf("warning: failed to close config file: %v\n", err)
		}
	}()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
