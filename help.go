// Copyright 2025 Lachstec
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

package main

import (
	"fmt"
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getUsageMessage() string {
	message := fmt.Sprintf(`

 **avltree %s**

Visualize AVL trees: feed keys in, watch the rotations, export the result
as Graphviz dotfiles, SVG, PDF or PNG.

Built with Go %s

# 1. Commands
* render — insert keys and write one output file per snapshot (out-0, out-1, ...)
* print — insert keys and print an ASCII tree to the terminal
* explore — interactive terminal UI: insert, delete and search live
* settings — show or create ~/.avltree.yaml

# 2. Examples
* avltree render -v 10 20 30 -t svg
* avltree render -v 10 20 30 -i -o ./frames -t dot
* avltree render -v 5 3 8 1 4 -d 5 -t pdf
* avltree print -v 50 10 40 20 30
* avltree explore -v 10 20 30

# 3. Please be aware
* svg, pdf and png output require the Graphviz 'dot' binary on your PATH
* dot output needs nothing besides this tool
* duplicate keys are ignored: an AVL tree stores every key exactly once

# License
Licensed under the Apache License, Version 2.0

`, version, runtime.Version())
	result := markdown.Render(message, 80, 3)
	return string(result)
}
