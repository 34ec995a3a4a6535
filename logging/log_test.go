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

package logging_test

import (
	"testing"

	"code.vegaprotocol.io/lending/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]logging.Level{
		"Debug":   logging.DebugLevel,
		"Info":    logging.InfoLevel,
		"Warning": logging.WarnLevel,
		"Error":   logging.ErrorLevel,
	}
	for in, expected := range cases {
		level, err := logging.ParseLevel(in)
		require.NoError(t, err)
		assert.Equal(t, expected, level)
	}

	_, err := logging.ParseLevel("Verbose")
	assert.Error(t, err)
}

func TestNamedLoggersShareTheRoot(t *testing.T) {
	log := logging.NewTestLogger()
	named := log.Named("engine")
	assert.Equal(t, "engine", named.GetName())
	// naming must not touch the parent
	assert.Empty(t, log.GetName())

	named.SetLevel(logging.DebugLevel)
	assert.True(t, named.IsDebug())
}

func TestCloneIsIndependent(t *testing.T) {
	log := logging.NewTestLogger()
	clone := log.Clone()
	clone.SetLevel(logging.DebugLevel)
	assert.True(t, clone.IsDebug())
	assert.False(t, log.IsDebug())
}
