package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

// envSetter applies one FIXCALC_* value to cfg. Values that do not parse are
// dropped and the flag default stays in place.
type envSetter func(cfg *AppConfig, value string)

// envBinding ties an environment key (without EnvPrefix) to the flag names
// that take precedence over it.
type envBinding struct {
	key   string
	flags []string
	set   envSetter
}

func setInt(field func(*AppConfig) *int) envSetter {
	return func(cfg *AppConfig, v string) {
		if n, err := strconv.Atoi(v); err == nil {
			*field(cfg) = n
		}
	}
}

func setBool(field func(*AppConfig) *bool) envSetter {
	return func(cfg *AppConfig, v string) {
		p := field(cfg)
		*p = parseBoolEnv(v, *p)
	}
}

var envBindings = []envBinding{
	{"WORD", []string{"word"}, setInt(func(c *AppConfig) *int { return &c.WordBits })},
	{"WORDS", []string{"words"}, setInt(func(c *AppConfig) *int { return &c.Words })},
	{"ITERATIONS", []string{"iterations"}, setInt(func(c *AppConfig) *int { return &c.Iterations })},
	{"WORKERS", []string{"workers"}, setInt(func(c *AppConfig) *int { return &c.Workers })},
	{"SEED", []string{"seed"}, func(c *AppConfig, v string) {
		// Base 0 accepts 0x2a as well as 42.
		if n, err := strconv.ParseUint(v, 0, 64); err == nil {
			c.Seed = n
		}
	}},
	{"TIMEOUT", []string{"timeout"}, func(c *AppConfig, v string) {
		if d, err := time.ParseDuration(v); err == nil {
			c.Timeout = d
		}
	}},
	{"LOG_LEVEL", []string{"log-level"}, func(c *AppConfig, v string) { c.LogLevel = v }},
	{"VERBOSE", []string{"v", "verbose"}, setBool(func(c *AppConfig) *bool { return &c.Verbose })},
	{"QUIET", []string{"q", "quiet"}, setBool(func(c *AppConfig) *bool { return &c.Quiet })},
	{"NO_COLOR", []string{"no-color"}, setBool(func(c *AppConfig) *bool { return &c.NoColor })},
	{"METRICS", []string{"metrics"}, setBool(func(c *AppConfig) *bool { return &c.Metrics })},
	{"TUI", []string{"tui"}, setBool(func(c *AppConfig) *bool { return &c.TUI })},
}

// parseBoolEnv reads true/1/yes and false/0/no in any case. Anything else
// returns def.
func parseBoolEnv(v string, def bool) bool {
	switch strings.ToLower(v) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	default:
		return def
	}
}

// applyEnvOverrides fills cfg from FIXCALC_* variables for every flag the
// user did not pass, so the order of precedence is flag, then env, then
// default.
func applyEnvOverrides(cfg *AppConfig, fs *flag.FlagSet) {
	explicit := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

next:
	for _, b := range envBindings {
		for _, name := range b.flags {
			if explicit[name] {
				continue next
			}
		}
		if v := os.Getenv(EnvPrefix + b.key); v != "" {
			b.set(cfg, v)
		}
	}
}
