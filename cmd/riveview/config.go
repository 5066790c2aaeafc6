// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/rive"
	"github.com/gogpu/rive/ffi"
)

// Config holds the viewer settings. Values come from the YAML config
// file, then environment variables, then command-line flags.
type Config struct {
	Library   string  `yaml:"library,omitempty"   env:"RIVE_LIBRARY"`
	Frames    int     `yaml:"frames,omitempty"    env:"RIVEVIEW_FRAMES"`
	FPS       float64 `yaml:"fps,omitempty"       env:"RIVEVIEW_FPS"`
	Width     uint32  `yaml:"width,omitempty"     env:"RIVEVIEW_WIDTH"`
	Height    uint32  `yaml:"height,omitempty"    env:"RIVEVIEW_HEIGHT"`
	Artboard  string  `yaml:"artboard,omitempty"  env:"RIVEVIEW_ARTBOARD"`
	Scene     string  `yaml:"scene,omitempty"     env:"RIVEVIEW_SCENE"`
	Pointer   string  `yaml:"pointer,omitempty"   env:"RIVEVIEW_POINTER"`
	Watch     bool    `yaml:"watch,omitempty"     env:"RIVEVIEW_WATCH"`
	Jobs      int     `yaml:"jobs,omitempty"      env:"RIVEVIEW_JOBS"`
	LogFormat string  `yaml:"logFormat,omitempty" env:"RIVEVIEW_LOG_FORMAT"`
	LogLevel  string  `yaml:"logLevel,omitempty"  env:"RIVEVIEW_LOG_LEVEL"`
}

func defaultConfig() Config {
	return Config{
		Frames:    60,
		FPS:       60,
		Width:     800,
		Height:    600,
		Jobs:      4,
		LogFormat: "text",
		LogLevel:  "info",
	}
}

// loadConfig reads the config file at path, if any, and applies
// environment overrides. A missing file is not an error.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// parseArgs resolves the configuration and returns it with the files to
// play. Flags given on the command line override the config file and the
// environment.
func parseArgs(args []string, stderr io.Writer) (Config, []string, error) {
	fs := flag.NewFlagSet("riveview", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: riveview [flags] file.riv...\n")
		fs.PrintDefaults()
	}

	def := defaultConfig()
	var flags Config
	configPath := fs.String("config", "riveview.yaml", "config file")
	fs.StringVar(&flags.Library, "lib", "", "native engine library (default "+ffi.DefaultLibraryPath+")")
	fs.IntVar(&flags.Frames, "frames", def.Frames, "number of frames to play")
	fs.Float64Var(&flags.FPS, "fps", def.FPS, "frames per second")
	fs.Func("width", "viewport width in pixels (default 800)", uintFlag(&flags.Width))
	fs.Func("height", "viewport height in pixels (default 600)", uintFlag(&flags.Height))
	fs.StringVar(&flags.Artboard, "artboard", "", "artboard name or #index")
	fs.StringVar(&flags.Scene, "scene", "", "state machine or animation name or #index")
	fs.StringVar(&flags.Pointer, "pointer", "", "send a pointer press at x,y on the first frame")
	fs.BoolVar(&flags.Watch, "watch", false, "replay files when they change")
	fs.IntVar(&flags.Jobs, "jobs", def.Jobs, "files played concurrently")
	fs.StringVar(&flags.LogFormat, "log-format", def.LogFormat, "log format: text or json")
	fs.StringVar(&flags.LogLevel, "log-level", def.LogLevel, "log level: debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		return Config{}, nil, err
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return Config{}, nil, err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "lib":
			cfg.Library = flags.Library
		case "frames":
			cfg.Frames = flags.Frames
		case "fps":
			cfg.FPS = flags.FPS
		case "width":
			cfg.Width = flags.Width
		case "height":
			cfg.Height = flags.Height
		case "artboard":
			cfg.Artboard = flags.Artboard
		case "scene":
			cfg.Scene = flags.Scene
		case "pointer":
			cfg.Pointer = flags.Pointer
		case "watch":
			cfg.Watch = flags.Watch
		case "jobs":
			cfg.Jobs = flags.Jobs
		case "log-format":
			cfg.LogFormat = flags.LogFormat
		case "log-level":
			cfg.LogLevel = flags.LogLevel
		}
	})
	if err := cfg.validate(); err != nil {
		return Config{}, nil, err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return Config{}, nil, errors.New("no files given")
	}
	return cfg, fs.Args(), nil
}

func uintFlag(p *uint32) func(string) error {
	return func(s string) error {
		v, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			return err
		}
		*p = uint32(v)
		return nil
	}
}

func (c *Config) validate() error {
	switch {
	case c.Frames < 0:
		return fmt.Errorf("frames must not be negative, got %d", c.Frames)
	case c.FPS <= 0:
		return fmt.Errorf("fps must be positive, got %v", c.FPS)
	case c.Jobs < 1:
		return fmt.Errorf("jobs must be at least 1, got %d", c.Jobs)
	}
	if _, _, _, err := c.pointer(); err != nil {
		return err
	}
	return nil
}

// pointer parses the pointer position. It reports false when unset.
func (c *Config) pointer() (x, y float32, ok bool, err error) {
	if c.Pointer == "" {
		return 0, 0, false, nil
	}
	xs, ys, found := strings.Cut(c.Pointer, ",")
	if !found {
		return 0, 0, false, fmt.Errorf("pointer %q: want x,y", c.Pointer)
	}
	px, err := strconv.ParseFloat(strings.TrimSpace(xs), 32)
	if err != nil {
		return 0, 0, false, fmt.Errorf("pointer %q: %w", c.Pointer, err)
	}
	py, err := strconv.ParseFloat(strings.TrimSpace(ys), 32)
	if err != nil {
		return 0, 0, false, fmt.Errorf("pointer %q: %w", c.Pointer, err)
	}
	return float32(px), float32(py), true, nil
}

// selector turns "" into the default, "#n" into an index and anything
// else into a name.
func selector(s string) rive.Handle {
	if s == "" {
		return rive.Default()
	}
	if rest, ok := strings.CutPrefix(s, "#"); ok {
		if i, err := strconv.ParseUint(rest, 10, 0); err == nil {
			return rive.Index(uint(i))
		}
	}
	return rive.Name(s)
}

func newLogger(format, level string, w io.Writer) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	opts := &slog.HandlerOptions{Level: lvl}
	switch format {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}
