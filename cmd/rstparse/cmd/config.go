// Copyright 2023 Matthew P. Dargan. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/matthewdargan/rstdoc/parse"
	"github.com/matthewdargan/rstdoc/scan"
)

// defaultConfigFile is read if no config file is given and it exists.
const defaultConfigFile = "rstparse.toml"

// Config holds the settings of rstparse.
type Config struct {
	ShortDirectives []string `toml:"short_directives"`
	TabWidth        int      `toml:"tab_width"`
	Trace           string   `toml:"trace"`
}

func defaultConfig() *Config {
	return &Config{
		ShortDirectives: append([]string(nil), parse.DefaultShortDirectives...),
		TabWidth:        scan.DefaultTabWidth,
		Trace:           "Error",
	}
}

// loadConfig reads the config file at path over the defaults. An empty
// path selects the default config file, which may be missing.
func loadConfig(path string) (*Config, error) {
	cfg := defaultConfig()
	if path == "" {
		if _, err := os.Stat(defaultConfigFile); err != nil {
			return cfg, nil
		}
		path = defaultConfigFile
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = scan.DefaultTabWidth
	}
	return cfg, nil
}
