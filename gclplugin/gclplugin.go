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

package gclplugin

import (
	"github.com/golangci/plugin-module-register/register"
	"golang.org/x/tools/go/analysis"

	uselessassign "fillmore-labs.com/uselessassign/analyzer"
)

func init() { register.Plugin("uselessassign", New) }

// New decodes the golangci-lint settings for this plugin and returns the [Plugin].
func New(rawSettings any) (register.LinterPlugin, error) {
	settings, err := register.DecodeSettings[Settings](rawSettings)
	if err != nil {
		return nil, err
	}

	return Plugin{settings: settings}, nil
}

// Plugin builds a single uselessassign analyzer configured from [Settings].
type Plugin struct {
	settings Settings
}

// GetLoadMode requests syntax only; no check depends on type information.
func (Plugin) GetLoadMode() string {
	return register.LoadModeSyntax
}

// BuildAnalyzers returns the configured analyzer. Generated files are always analyzed,
// golangci-lint excludes them itself.
func (p Plugin) BuildAnalyzers() ([]*analysis.Analyzer, error) {
	opts := append(p.settings.Options(), uselessassign.WithGenerated(true))
	a := uselessassign.New(opts...)

	return []*analysis.Analyzer{a}, nil
}
