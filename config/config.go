// Package config holds the benchmark and CLI settings. A JSON file is
// decoded into a generic map, then mapped onto Config with mapstructure on
// top of Default(), so a file only lists what it changes.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

// Algorithm names accepted in Config.Algorithms.
const (
	AlgoGreedy       = "greedy"
	AlgoRandomSearch = "random-search"
	AlgoBest         = "ls-best"
	AlgoFirst        = "ls-first"
)

// KnownAlgorithms lists every runnable algorithm in report order.
var KnownAlgorithms = []string{AlgoGreedy, AlgoRandomSearch, AlgoBest, AlgoFirst}

// DefaultSeeds are the five seeds of the reference experiments.
var DefaultSeeds = []int64{123456, 987654, 112233, 445566, 778899}

var (
	// ErrInvalid: a Config field holds an unusable value.
	ErrInvalid = errors.New("config: invalid configuration")
)

// Config drives one benchmark session.
type Config struct {
	// Instance is a QAPLIB-style data file. Empty means a random instance.
	Instance string `mapstructure:"instance"`

	// Random instance parameters, used when Instance is empty.
	RandomN   int   `mapstructure:"random_n"`
	RandomMin int   `mapstructure:"random_min"`
	RandomMax int   `mapstructure:"random_max"`
	InstSeed  int64 `mapstructure:"instance_seed"`

	Algorithms []string `mapstructure:"algorithms"`
	Seeds      []int64  `mapstructure:"seeds"`

	// RandomSearchFactor: random-search samples RandomSearchFactor·n
	// permutations.
	RandomSearchFactor int `mapstructure:"random_search_factor"`

	// MaxMoves caps local-search moves (0 = until local optimum).
	MaxMoves int `mapstructure:"max_moves"`

	Workers   int    `mapstructure:"workers"`
	OutputDir string `mapstructure:"output_dir"`
}

// Default returns the settings of the reference experiment: a random n=25
// instance with weights in [1,100], all algorithms, five seeds.
func Default() Config {
	return Config{
		RandomN:            25,
		RandomMin:          1,
		RandomMax:          100,
		InstSeed:           1,
		Algorithms:         append([]string(nil), KnownAlgorithms...),
		Seeds:              append([]int64(nil), DefaultSeeds...),
		RandomSearchFactor: 1000,
		Workers:            runtime.NumCPU(),
	}
}

// Decode maps raw (typically unmarshalled JSON) onto Default().
// Unknown keys are rejected.
func Decode(raw map[string]any) (Config, error) {
	cfg := Default()
	// ZeroFields makes listed slices replace the defaults instead of
	// overwriting them element by element.
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		ZeroFields:       true,
	})
	if err != nil {
		return Config{}, fmt.Errorf("config.Decode: %w", err)
	}
	if err = dec.Decode(raw); err != nil {
		return Config{}, fmt.Errorf("config.Decode: %w", err)
	}

	return cfg, cfg.Validate()
}

// Load reads a JSON file and decodes it with Decode.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config.Load: %w", err)
	}
	var raw map[string]any
	if err = json.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("config.Load: %s: %w", path, err)
	}

	return Decode(raw)
}

// Validate reports the first unusable field, wrapped around ErrInvalid.
func (c Config) Validate() error {
	if c.Instance == "" {
		if c.RandomN < 1 {
			return invalid("random_n must be >= 1, got %d", c.RandomN)
		}
		if c.RandomMin > c.RandomMax {
			return invalid("random_min %d exceeds random_max %d", c.RandomMin, c.RandomMax)
		}
	}
	if len(c.Algorithms) == 0 {
		return invalid("no algorithms selected")
	}
	if unknown := lo.Without(c.Algorithms, KnownAlgorithms...); len(unknown) > 0 {
		return invalid("unknown algorithms %v", unknown)
	}
	if dup := lo.FindDuplicates(c.Algorithms); len(dup) > 0 {
		return invalid("duplicate algorithms %v", dup)
	}
	if len(c.Seeds) == 0 {
		return invalid("no seeds")
	}
	if lo.Contains(c.Seeds, 0) {
		return invalid("seed 0 is reserved")
	}
	if c.RandomSearchFactor < 1 {
		return invalid("random_search_factor must be >= 1, got %d", c.RandomSearchFactor)
	}
	if c.MaxMoves < 0 {
		return invalid("max_moves must be >= 0, got %d", c.MaxMoves)
	}
	if c.Workers < 1 {
		return invalid("workers must be >= 1, got %d", c.Workers)
	}

	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}
