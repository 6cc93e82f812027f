/*
Package curveconf reads curve settings from YAML.

A configuration file looks like this:

	bake_resolution: 256
	debounce: 20ms
	min_value: -1
	max_value: 1
	trace_level: info

All keys are optional. Unknown keys are rejected.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package curveconf

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/npillmayer/curvature/bake"
	"github.com/npillmayer/curvature/curve"
	"github.com/npillmayer/schuko/tracing"
	"gopkg.in/yaml.v3"
)

// tracer writes to trace with key 'curveconf'
func tracer() tracing.Trace {
	return tracing.Select("curveconf")
}

// ErrInvalidConfig is wrapped by all validation errors.
var ErrInvalidConfig = errors.New("invalid curve configuration")

// TraceKeys are the trace keys of the curve packages, see ApplyTracing.
var TraceKeys = []string{"curvature", "bake", "props", "curveconf"}

// Config holds the settings of a curve.
type Config struct {
	BakeResolution int           `yaml:"bake_resolution"`
	Debounce       time.Duration `yaml:"debounce"`
	MinValue       *float64      `yaml:"min_value"`
	MaxValue       *float64      `yaml:"max_value"`
	TraceLevel     string        `yaml:"trace_level"`
}

// Default returns the settings curve.New uses without options.
func Default() Config {
	return Config{
		BakeResolution: curve.DefaultBakeResolution,
		Debounce:       bake.DefaultDebounce,
		TraceLevel:     "error",
	}
}

// Load reads and validates a configuration file.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()
	conf, err := Read(f)
	if err != nil {
		return conf, fmt.Errorf("%s: %w", path, err)
	}
	tracer().Infof("loaded curve configuration from %s", path)
	return conf, nil
}

// Parse reads and validates a configuration from YAML text.
func Parse(data []byte) (Config, error) {
	return Read(bytes.NewReader(data))
}

// Read decodes a configuration from r on top of the defaults and validates
// it. An empty document yields the defaults.
func Read(r io.Reader) (Config, error) {
	conf := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&conf); err != nil && !errors.Is(err, io.EOF) {
		return Default(), fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := conf.Validate(); err != nil {
		return Default(), err
	}
	return conf, nil
}

// Validate checks the settings for consistency.
func (conf Config) Validate() error {
	if conf.BakeResolution < 1 || conf.BakeResolution > curve.MaxBakeResolution {
		return fmt.Errorf("%w: bake_resolution %d not in [1,%d]", ErrInvalidConfig,
			conf.BakeResolution, curve.MaxBakeResolution)
	}
	if conf.Debounce < 0 {
		return fmt.Errorf("%w: negative debounce %v", ErrInvalidConfig, conf.Debounce)
	}
	if (conf.MinValue == nil) != (conf.MaxValue == nil) {
		return fmt.Errorf("%w: min_value and max_value must be given together", ErrInvalidConfig)
	}
	if conf.MinValue != nil && *conf.MaxValue-*conf.MinValue < curve.MinYRange {
		return fmt.Errorf("%w: value range [%g,%g] narrower than %g", ErrInvalidConfig,
			*conf.MinValue, *conf.MaxValue, curve.MinYRange)
	}
	if _, err := conf.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the trace level named by TraceLevel.
func (conf Config) Level() (tracing.TraceLevel, error) {
	switch conf.TraceLevel {
	case "", "error":
		return tracing.LevelError, nil
	case "info":
		return tracing.LevelInfo, nil
	case "debug":
		return tracing.LevelDebug, nil
	}
	return tracing.LevelError, fmt.Errorf("%w: unknown trace_level %q", ErrInvalidConfig, conf.TraceLevel)
}

// Options converts the settings into options for curve.New.
func (conf Config) Options() []curve.Option {
	opts := []curve.Option{
		curve.WithBakeResolution(conf.BakeResolution),
		curve.WithDebounce(conf.Debounce),
	}
	if conf.MinValue != nil && conf.MaxValue != nil {
		opts = append(opts, curve.WithRange(*conf.MinValue, *conf.MaxValue))
	}
	return opts
}

// ApplyTracing sets the trace level of the curve packages' traces.
func (conf Config) ApplyTracing() {
	level, err := conf.Level()
	if err != nil {
		tracer().Errorf("%v", err)
		return
	}
	for _, key := range TraceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
}
