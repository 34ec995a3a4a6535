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

package config_test

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"code.vegaprotocol.io/lending/config"
	"code.vegaprotocol.io/lending/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadWriteRoundTrip(t *testing.T) {
	rootPath := t.TempDir()

	cfg := config.NewDefaultConfig()
	cfg.Metrics.Port = 9999
	cfg.Metrics.Enabled = true
	require.NoError(t, config.Write(rootPath, cfg))

	loaded, err := config.Read(rootPath)
	require.NoError(t, err)
	assert.Equal(t, cfg, *loaded)
}

func TestReadMissingFile(t *testing.T) {
	_, err := config.Read(t.TempDir())
	assert.Error(t, err)
}

func TestReadAppliesDefaultsUnderneath(t *testing.T) {
	rootPath := t.TempDir()
	// a partial file only overrides what it names
	partial := "[Metrics]\n  Port = 9999\n"
	require.NoError(t, os.WriteFile(filepath.Join(rootPath, "config.toml"), []byte(partial), 0o644))

	loaded, err := config.Read(rootPath)
	require.NoError(t, err)
	assert.Equal(t, 9999, loaded.Metrics.Port)
	assert.Equal(t, config.NewDefaultConfig().Valuation, loaded.Valuation)
}

func TestWatcherPicksUpChanges(t *testing.T) {
	rootPath := t.TempDir()
	require.NoError(t, config.Write(rootPath, config.NewDefaultConfig()))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	watcher, err := config.NewFromFile(ctx, logging.NewTestLogger(), rootPath)
	require.NoError(t, err)

	var notified atomic.Int32
	watcher.OnConfigUpdate(func(cfg config.Config) {
		if cfg.Metrics.Port == 4321 {
			notified.Store(1)
		}
	})

	cfg := config.NewDefaultConfig()
	cfg.Metrics.Port = 4321
	require.NoError(t, config.Write(rootPath, cfg))

	// listeners only fire on time ticks, so keep ticking until the write
	// event has been picked up
	assert.Eventually(t, func() bool {
		watcher.OnTimeUpdate(ctx, time.Now())
		return notified.Load() == 1
	}, 5*time.Second, 50*time.Millisecond)
	assert.Equal(t, 4321, watcher.Get().Metrics.Port)
}
