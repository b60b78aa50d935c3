// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package config holds the flag sets shared by the analyzer, the golangci-lint plugin and the
// JavaScript command line tool.
package config

// Flag is the constraint for single-bit flag types.
type Flag interface{ ~uint8 | ~uint16 | ~uint32 | ~uint64 }

// BitMask is a set of flags of type T. The zero value has no flag enabled.
type BitMask[T Flag] struct {
	value T
}

// NewBitMask returns a [BitMask] with the given flags enabled.
func NewBitMask[T Flag](flags ...T) BitMask[T] {
	var value T
	for _, flag := range flags {
		value |= flag
	}

	return BitMask[T]{value}
}

// Set enables or disables flag.
func (b *BitMask[T]) Set(flag T, enabled bool) {
	if enabled {
		b.value |= flag

		return
	}

	b.value &^= flag
}

// Enabled reports whether any bit of flag is set.
func (b BitMask[T]) Enabled(flag T) bool { return b.value&flag != 0 }

// None reports whether no flag is enabled.
func (b BitMask[T]) None() bool { return b.value == 0 }
