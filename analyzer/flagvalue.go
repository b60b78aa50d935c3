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

package analyzer

import (
	"fmt"
	"strconv"

	"fillmore-labs.com/uselessassign/internal/config"
)

// maskFlag is a boolean [flag.Value] toggling one flag of a [config.BitMask].
type maskFlag[T config.Flag] struct {
	mask *config.BitMask[T]
	flag T
}

func newMaskFlag[T config.Flag](mask *config.BitMask[T], flag T) maskFlag[T] {
	return maskFlag[T]{mask: mask, flag: flag}
}

// Set implements [flag.Value].
func (f maskFlag[T]) Set(s string) error {
	enabled, err := strconv.ParseBool(s)
	if err != nil {
		return fmt.Errorf("invalid boolean value %q", s)
	}

	f.mask.Set(f.flag, enabled)

	return nil
}

// String implements [flag.Value]. It is called on the zero value by the flag package.
func (f maskFlag[T]) String() string {
	return strconv.FormatBool(f.enabled())
}

// Get implements [flag.Getter].
func (f maskFlag[T]) Get() any { return f.enabled() }

// IsBoolFlag allows the flag to be given without a value.
func (maskFlag[T]) IsBoolFlag() bool { return true }

func (f maskFlag[T]) enabled() bool {
	return f.mask != nil && f.mask.Enabled(f.flag)
}
