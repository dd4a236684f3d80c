package maincmd

import (
	"github.com/caarlos0/env/v6"

	"github.com/advsys/advc/lang/arena"
)

// arenaConfig holds the env-var overrides for the three arena region
// sizes (spec §3 "each with a fixed upper bound"). Defaults match
// arena.DefaultLimits; advc never reaches for flags here since these are
// rarely-tuned operational knobs, not per-invocation choices.
type arenaConfig struct {
	Code    int `env:"ADVC_CODE_LIMIT" envDefault:"1048576"`
	Data    int `env:"ADVC_DATA_LIMIT" envDefault:"1048576"`
	Strings int `env:"ADVC_STRINGS_LIMIT" envDefault:"524288"`
}

// arenaLimits reads ADVC_CODE_LIMIT/ADVC_DATA_LIMIT/ADVC_STRINGS_LIMIT
// from the environment, falling back to arena.DefaultLimits's values for
// anything unset.
func arenaLimits() (arena.Limits, error) {
	var cfg arenaConfig
	if err := env.Parse(&cfg); err != nil {
		return arena.Limits{}, err
	}
	return arena.Limits{Code: cfg.Code, Data: cfg.Data, Strings: cfg.Strings}, nil
}
