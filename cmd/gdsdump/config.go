package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// dumpConfig holds the dump settings shared by the config file and flags.
type dumpConfig struct {
	Filter []string
	Color  string
	Limit  int
	Stats  bool
}

func defaultDumpConfig() dumpConfig {
	return dumpConfig{Color: "auto"}
}

type fileConfig struct {
	Filter []string `toml:"filter"`
	Color  string   `toml:"color"`
	Limit  int      `toml:"limit"`
	Stats  bool     `toml:"stats"`
}

// loadDumpConfig applies the keys present in a TOML file on top of cfg.
//
//	filter = ["LAYER", "XY"]
//	color  = "never"
//	limit  = 1000
//	stats  = true
func loadDumpConfig(path string, cfg dumpConfig) (dumpConfig, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return dumpConfig{}, fmt.Errorf("load gdsdump config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return dumpConfig{}, fmt.Errorf("load gdsdump config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("filter") {
		cfg.Filter = nil
		for _, name := range raw.Filter {
			if name = strings.TrimSpace(name); name != "" {
				cfg.Filter = append(cfg.Filter, name)
			}
		}
	}

	if meta.IsDefined("color") {
		mode := strings.ToLower(strings.TrimSpace(raw.Color))
		if err := checkColorMode(mode); err != nil {
			return dumpConfig{}, err
		}
		cfg.Color = mode
	}

	if meta.IsDefined("limit") {
		if raw.Limit < 0 {
			return dumpConfig{}, fmt.Errorf("parse limit: must not be negative, got %d", raw.Limit)
		}
		cfg.Limit = raw.Limit
	}

	if meta.IsDefined("stats") {
		cfg.Stats = raw.Stats
	}

	return cfg, nil
}

func checkColorMode(mode string) error {
	switch mode {
	case "auto", "always", "never":
		return nil
	default:
		return fmt.Errorf("parse color: want auto, always or never, got %q", mode)
	}
}
