package main

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/osuushi/convexify/advanced"
	"github.com/osuushi/convexify/render"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Tolerances   advanced.Tolerances `yaml:"tolerances"`
	SplitPenalty *int                `yaml:"split_penalty"`
	Render       render.Options      `yaml:"render"`
	Log          LogConfig           `yaml:"log"`
}

type LogConfig struct {
	// debug, info, warn or error
	Level string `yaml:"level"`
}

func defaultConfig() Config {
	return Config{
		Tolerances: advanced.DefaultTolerances,
		Render:     render.DefaultOptions,
		Log:        LogConfig{Level: "warn"},
	}
}

// Load a YAML config over the defaults. Unknown keys are an error, since a
// misspelled tolerance would otherwise be silently ignored.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return cfg, errors.Wrap(err, "opening config")
	}
	defer f.Close()
	return decodeConfig(f, cfg)
}

func decodeConfig(r io.Reader, cfg Config) (Config, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && err != io.EOF {
		return cfg, errors.Wrap(err, "decoding config")
	}
	return cfg, nil
}

func (c Config) partitionerOptions(logger *slog.Logger) []advanced.Option {
	opts := []advanced.Option{
		advanced.WithTolerances(c.Tolerances),
		advanced.WithLogger(logger),
	}
	if c.SplitPenalty != nil {
		opts = append(opts, advanced.WithSplitPenalty(*c.SplitPenalty))
	}
	return opts
}

func parseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning", "":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, errors.Errorf("unknown log level %q", level)
}
