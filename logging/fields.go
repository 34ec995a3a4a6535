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

package logging

import (
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// String constructs a field with the given key and value.
func String(key, val string) zap.Field {
	return zap.String(key, val)
}

// Strings constructs a field with the given key and slice of strings.
func Strings(key string, val []string) zap.Field {
	return zap.Strings(key, val)
}

// Bool constructs a field with the given key and value.
func Bool(key string, val bool) zap.Field {
	return zap.Bool(key, val)
}

// Int constructs a field with the given key and value.
func Int(key string, val int) zap.Field {
	return zap.Int(key, val)
}

// Int64 constructs a field with the given key and value.
func Int64(key string, val int64) zap.Field {
	return zap.Int64(key, val)
}

// Uint16 constructs a field with the given key and value.
func Uint16(key string, val uint16) zap.Field {
	return zap.Uint16(key, val)
}

// Uint64 constructs a field with the given key and value.
func Uint64(key string, val uint64) zap.Field {
	return zap.Uint64(key, val)
}

// Time constructs a field with the given key and value.
func Time(key string, val time.Time) zap.Field {
	return zap.Time(key, val)
}

// Duration constructs a field with the given key and value.
func Duration(key string, val time.Duration) zap.Field {
	return zap.Duration(key, val)
}

// Decimal constructs a field with the given key and value.
func Decimal(key string, val decimal.Decimal) zap.Field {
	return zap.String(key, val.String())
}

// Error constructs a field that carries an error.
func Error(err error) zap.Field {
	return zap.Error(err)
}
