// Copyright (C) 2023 Gobalsky Labs Limited
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package config

import (
	"os"
	"path/filepath"

	"code.vegaprotocol.io/lending/core/valuation"
	"code.vegaprotocol.io/lending/metrics"

	"github.com/BurntSushi/toml"
)

// Config ties together the configuration of all the packages an
// embedding application wires up.
type Config struct {
	Valuation valuation.Config `group:"Valuation" namespace:"valuation"`
	Metrics   metrics.Config   `group:"Metrics"   namespace:"metrics"`
}

// NewDefaultConfig returns the per package defaults.
func NewDefaultConfig() Config {
	return Config{
		Valuation: valuation.NewDefaultConfig(),
		Metrics:   metrics.NewDefaultConfig(),
	}
}

// Read loads a configuration from rootPath, on top of the defaults.
func Read(rootPath string) (*Config, error) {
	path := filepath.Join(rootPath, configFileName)
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := NewDefaultConfig()
	if _, err := toml.Decode(string(buf), &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Write saves the configuration under rootPath.
func Write(rootPath string, cfg Config) error {
	path := filepath.Join(rootPath, configFileName)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}
