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
	"log/slog"

	"fillmore-labs.com/uselessassign/analyzer/level"
	"fillmore-labs.com/uselessassign/internal/config"
	"fillmore-labs.com/uselessassign/internal/run"
)

// Option configures specific behavior of a [New] uselessassign analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithPolicy is an [Option] to select the detection policy.
func WithPolicy(policy level.Policy) Option { return policyOption{policy: policy} }

type policyOption struct{ policy level.Policy }

func (o policyOption) apply(r *run.Options) {
	r.Policy = o.policy
}

func (o policyOption) LogAttr() slog.Attr {
	text, err := o.policy.MarshalText()
	if err != nil {
		return slog.Int("policy", int(o.policy))
	}

	return slog.String("policy", string(text))
}

// WithDeclarations is an [Option] to configure whether redundant declarations are reported.
func WithDeclarations(declarations bool) Option {
	return declarationsOption{declarations: declarations}
}

type declarationsOption struct{ declarations bool }

func (o declarationsOption) apply(r *run.Options) {
	r.Checks.Set(config.DeclarationCheck, o.declarations)
}

func (o declarationsOption) LogAttr() slog.Attr {
	return slog.Bool("declarations", o.declarations)
}

// WithAssignments is an [Option] to configure whether useless assignments are reported.
func WithAssignments(assignments bool) Option {
	return assignmentsOption{assignments: assignments}
}

type assignmentsOption struct{ assignments bool }

func (o assignmentsOption) apply(r *run.Options) {
	r.Checks.Set(config.AssignmentCheck, o.assignments)
}

func (o assignmentsOption) LogAttr() slog.Attr {
	return slog.Bool("assignments", o.assignments)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}
