// Package config collects pagesim settings from .env files and the
// environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"pagesim"
)

// Environment variables read by Load.
const (
	EnvFrames    = "PAGESIM_FRAMES"
	EnvPolicies  = "PAGESIM_POLICIES"
	EnvTrace     = "PAGESIM_TRACE"
	EnvTraceFile = "PAGESIM_TRACE_FILE"
	EnvLogLevel  = "PAGESIM_LOG_LEVEL"
	EnvLogFile   = "PAGESIM_LOG_FILE"
	EnvWorkers   = "PAGESIM_WORKERS"
)

// DefaultTrace is the textbook reference string used when no trace is
// configured.
const DefaultTrace = "7 0 1 2 0 3 0 4 2 3 0 3 2 1 2 0 1 7 0 1"

// Config holds simulator settings.
type Config struct {
	Frames    []int          // frame capacities to simulate
	Policies  []pagesim.Kind // policies to compare
	Trace     string         // inline trace, used when TraceFile is empty
	TraceFile string
	LogLevel  string
	LogFile   string // empty logs to stderr only
	Workers   int    // zero means one per CPU
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Frames:   []int{3},
		Policies: pagesim.Kinds(),
		Trace:    DefaultTrace,
		LogLevel: "INFO",
	}
}

// Load reads the given .env files, missing ones are skipped, and then
// overlays PAGESIM_* variables on the defaults. Variables already set
// in the environment win over .env files.
func Load(envFiles ...string) (*Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	c := Default()
	if v, ok := os.LookupEnv(EnvFrames); ok {
		frames, err := ParseFrames(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvFrames, err)
		}
		c.Frames = frames
	}
	if v, ok := os.LookupEnv(EnvPolicies); ok {
		kinds, err := ParsePolicies(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvPolicies, err)
		}
		c.Policies = kinds
	}
	if v, ok := os.LookupEnv(EnvTrace); ok {
		c.Trace = v
	}
	if v, ok := os.LookupEnv(EnvTraceFile); ok {
		c.TraceFile = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		c.LogLevel = v
	}
	if v, ok := os.LookupEnv(EnvLogFile); ok {
		c.LogFile = v
	}
	if v, ok := os.LookupEnv(EnvWorkers); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvWorkers, err)
		}
		c.Workers = n
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the configuration for values no simulation accepts.
func (c *Config) Validate() error {
	if len(c.Frames) == 0 {
		return errors.New("at least one frame capacity is required")
	}
	for _, f := range c.Frames {
		if f <= 0 {
			return fmt.Errorf("%w: got %d", pagesim.ErrInvalidCapacity, f)
		}
	}
	if len(c.Policies) == 0 {
		return errors.New("at least one policy is required")
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	return nil
}

// MaxFrameRange bounds how many capacities a single "lo-hi" range in
// ParseFrames may expand to.
const MaxFrameRange = 4096

// ParseFrames accepts a comma separated list of capacities and ranges,
// e.g. "3", "1-7" or "2,4,8-10".
func ParseFrames(s string) ([]int, error) {
	var ret []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		lo, hi, isRange := strings.Cut(part, "-")
		if !isRange {
			n, err := strconv.Atoi(part)
			if err != nil {
				return nil, fmt.Errorf("invalid frame count %q", part)
			}
			ret = append(ret, n)
			continue
		}
		from, err := strconv.Atoi(strings.TrimSpace(lo))
		if err != nil {
			return nil, fmt.Errorf("invalid frame range %q", part)
		}
		to, err := strconv.Atoi(strings.TrimSpace(hi))
		if err != nil || to < from || to == math.MaxInt {
			return nil, fmt.Errorf("invalid frame range %q", part)
		}
		if to-from >= MaxFrameRange {
			return nil, fmt.Errorf("frame range %q spans more than %d capacities", part, MaxFrameRange)
		}
		for n := from; n <= to; n++ {
			ret = append(ret, n)
		}
	}
	if len(ret) == 0 {
		return nil, fmt.Errorf("no frame counts in %q", s)
	}
	return ret, nil
}

// ParsePolicies accepts a comma separated list of policy names.
func ParsePolicies(s string) ([]pagesim.Kind, error) {
	var ret []pagesim.Kind
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		k, err := pagesim.ParseKind(part)
		if err != nil {
			return nil, err
		}
		ret = append(ret, k)
	}
	if len(ret) == 0 {
		return nil, fmt.Errorf("no policies in %q", s)
	}
	return ret, nil
}
