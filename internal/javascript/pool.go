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

package javascript

import (
	"fmt"
	"sync"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// parserPool recycles tree-sitter parsers of a single language.
//
// It is safe for use by multiple goroutines simultaneously.
type parserPool struct {
	pool sync.Pool
}

// newParserPool creates a pool for lang. It fails when the grammar is incompatible with the
// tree-sitter runtime.
func newParserPool(lang *sitter.Language) (*parserPool, error) {
	first := sitter.NewParser()
	if err := first.SetLanguage(lang); err != nil {
		first.Close()

		return nil, err
	}

	p := &parserPool{}
	p.pool.New = func() any {
		sp := sitter.NewParser()
		_ = sp.SetLanguage(lang) // checked above

		return sp
	}
	p.pool.Put(first)

	return p, nil
}

// get retrieves a parser configured for the pool's language.
func (p *parserPool) get() *sitter.Parser {
	return p.pool.Get().(*sitter.Parser)
}

// put resets a parser and returns it to the pool. sp must not be used afterwards.
func (p *parserPool) put(sp *sitter.Parser) {
	if sp == nil {
		return
	}

	sp.Reset()
	p.pool.Put(sp)
}

var pools = sync.OnceValues(func() ([numDialects]*parserPool, error) {
	var ps [numDialects]*parserPool
	for d := range numDialects {
		pool, err := newParserPool(d.language())
		if err != nil {
			return ps, fmt.Errorf("%s grammar: %w", d, err)
		}

		ps[d] = pool
	}

	return ps, nil
})
