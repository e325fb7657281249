package main

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/osse101/PetFeed_Go/internal/clock"
	"github.com/osse101/PetFeed_Go/internal/domain"
	"github.com/osse101/PetFeed_Go/internal/logger"
)

// Output formats
const (
	outputTable = "table"
	outputJSON  = "json"
)

// fileConfig is the optional TOML config file
type fileConfig struct {
	HardCapHours uint32 `toml:"hard_cap_hours"`
	Workers      int    `toml:"workers"`
	Output       string `toml:"output"`
}

// globalOptions holds the persistent flags
type globalOptions struct {
	configPath string
	now        string
	output     string
	hardCap    uint32
	workers    int
	verbose    bool
}

// logLevel keeps service logs off the terminal unless --verbose is set
func (o *globalOptions) logLevel() string {
	if o.verbose {
		return logger.LogLevelDebug
	}
	return logger.LogLevelWarn
}

// settings are the effective options after merging flags over the config file
type settings struct {
	hardCap uint32
	workers int
	output  string
	clock   clock.Clock
}

var errUnknownOutput = errors.New("unknown output format")

// resolve merges flags over the config file over defaults
func (o *globalOptions) resolve() (settings, error) {
	s := settings{
		hardCap: domain.DefaultHardCapHours,
		workers: 1,
		output:  outputTable,
	}

	if o.configPath != "" {
		var fc fileConfig
		if _, err := toml.DecodeFile(o.configPath, &fc); err != nil {
			return settings{}, fmt.Errorf("read config %s: %w", o.configPath, err)
		}
		if fc.HardCapHours != 0 {
			s.hardCap = fc.HardCapHours
		}
		if fc.Workers != 0 {
			s.workers = fc.Workers
		}
		if fc.Output != "" {
			s.output = fc.Output
		}
	}

	if o.hardCap != 0 {
		s.hardCap = o.hardCap
	}
	if o.workers != 0 {
		s.workers = o.workers
	}
	if o.output != "" {
		s.output = o.output
	}
	if s.output != outputTable && s.output != outputJSON {
		return settings{}, fmt.Errorf("%w %q: use %s or %s", errUnknownOutput, s.output, outputTable, outputJSON)
	}

	now, err := parseNow(o.now)
	if err != nil {
		return settings{}, err
	}
	s.clock = now
	return s, nil
}

// parseNow accepts Unix seconds or an RFC3339 timestamp; empty means the wall clock
func parseNow(raw string) (clock.Clock, error) {
	if raw == "" {
		return clock.NewRealClock(), nil
	}
	if secs, err := strconv.ParseInt(raw, 10, 64); err == nil {
		if secs < 0 {
			return nil, fmt.Errorf("--now must not be negative: %d", secs)
		}
		return clock.NewSimulatedClockAt(secs), nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, fmt.Errorf("--now %q is neither Unix seconds nor RFC3339", raw)
	}
	if t.Unix() < 0 {
		return nil, fmt.Errorf("--now must not be before 1970: %s", raw)
	}
	return clock.NewSimulatedClock(t), nil
}
