package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/timpalpant/subgame"
)

const (
	DefaultAddr            = "127.0.0.1:50051"
	DefaultShutdownTimeout = 5 * time.Second

	EngineHeuristic      = "heuristic"
	EngineRegretMatching = "regret-matching"
)

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Engine          EngineConfig
}

type EngineConfig struct {
	Name      string
	BatchSize int
	Discount  subgame.DiscountParams
}

// Load reads .env (if present) and the SOLVER_* environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from the given lookup function.
func FromEnv(getenv func(string) string) (*Config, error) {
	get := func(key string) string {
		return strings.TrimSpace(getenv(key))
	}

	cfg := &Config{
		Addr:            firstNonEmpty(get("SOLVER_ADDR"), DefaultAddr),
		ShutdownTimeout: DefaultShutdownTimeout,
		Engine: EngineConfig{
			Name:      firstNonEmpty(strings.ToLower(get("SOLVER_ENGINE")), EngineHeuristic),
			BatchSize: subgame.DefaultBatchSize,
		},
	}

	var err error
	if raw := get("SOLVER_SHUTDOWN_TIMEOUT"); raw != "" {
		if cfg.ShutdownTimeout, err = time.ParseDuration(raw); err != nil {
			return nil, errors.Wrap(err, "SOLVER_SHUTDOWN_TIMEOUT")
		}
	}

	if raw := get("SOLVER_BATCH_SIZE"); raw != "" {
		if cfg.Engine.BatchSize, err = strconv.Atoi(raw); err != nil {
			return nil, errors.Wrap(err, "SOLVER_BATCH_SIZE")
		}
	}

	d := &cfg.Engine.Discount
	if d.UseRegretMatchingPlus, err = parseBool(get("SOLVER_CFR_PLUS")); err != nil {
		return nil, errors.Wrap(err, "SOLVER_CFR_PLUS")
	}
	if d.LinearWeighting, err = parseBool(get("SOLVER_LINEAR_WEIGHTING")); err != nil {
		return nil, errors.Wrap(err, "SOLVER_LINEAR_WEIGHTING")
	}
	if d.DiscountAlpha, err = parseFloat(get("SOLVER_DISCOUNT_ALPHA")); err != nil {
		return nil, errors.Wrap(err, "SOLVER_DISCOUNT_ALPHA")
	}
	if d.DiscountBeta, err = parseFloat(get("SOLVER_DISCOUNT_BETA")); err != nil {
		return nil, errors.Wrap(err, "SOLVER_DISCOUNT_BETA")
	}
	if d.DiscountGamma, err = parseFloat(get("SOLVER_DISCOUNT_GAMMA")); err != nil {
		return nil, errors.Wrap(err, "SOLVER_DISCOUNT_GAMMA")
	}

	if _, err := cfg.Engine.Build(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Build returns the Engine selected by the configuration.
func (c EngineConfig) Build() (subgame.Engine, error) {
	switch c.Name {
	case EngineHeuristic:
		return subgame.HeuristicEngine{}, nil
	case EngineRegretMatching:
		return subgame.NewRegretMatchingEngine(c.Discount, c.BatchSize), nil
	default:
		return nil, errors.Errorf("unknown engine %q (want %q or %q)",
			c.Name, EngineHeuristic, EngineRegretMatching)
	}
}

func parseBool(raw string) (bool, error) {
	if raw == "" {
		return false, nil
	}
	return strconv.ParseBool(raw)
}

func parseFloat(raw string) (float64, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseFloat(raw, 64)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
