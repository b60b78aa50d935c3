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

/*
Package gclplugin registers the [uselessassign] analyzer as a golangci-lint module plugin.

The plugin reports variables that are declared, or assigned in the same function, on the
statement directly before a "return <name>". It only needs syntax, so golangci-lint runs it
without loading type information. Generated files are handed to the analyzer unfiltered and
left to golangci-lint's own exclusion rules.

The settings map onto analyzer options; omitted settings keep the analyzer defaults:

  - policy: "useless" (default) tracks names per function and skips compound assignments,
    "redundant" searches the enclosing statement lists and also reports compound assignments.
  - declarations: report "Redundant variable." (default true).
  - assignments: report "Useless assignment." or "Redundant assignment." (default true).

# Usage

1. Add a file `.custom-gcl.yaml` to your source with:

	---
	version: v2.7.0

	name: golangci-lint
	destination: .

	plugins:
	  - module: fillmore-labs.com/uselessassign
	    import: fillmore-labs.com/uselessassign/gclplugin
	    version: v0.0.1

2. Run `golangci-lint custom` from your project root.

This will create a custom `golangci-lint` executable in your project root.

3. Configure the linter in `.golangci.yaml`:

	---
	version: "2"
	linters:
	  default: none
	  enable:
	    - uselessassign
	  settings:
	    custom:
	      uselessassign:
	        type: module
	        description: "uselessassign finds variables declared or assigned only to be returned."
	        original-url: "https://fillmore-labs.com/uselessassign"
	        settings:
	          policy: redundant
	          declarations: true
	          assignments: true

4. Run the linter:

	./golangci-lint run .

[uselessassign]: https://pkg.go.dev/fillmore-labs.com/uselessassign/analyzer
*/
package gclplugin
