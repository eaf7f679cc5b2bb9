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

	"github.com/emicklei/dot"

	"github.com/Lachstec/avl-tree/avl"
)

// treeToDot renders a read-only tree view as Graphviz DOT text. Nodes
// are emitted in pre-order, so the same tree shape always produces the
// same output.
func treeToDot(tree *avl.Tree[int], cfg *GraphConfig) string {
	g := dot.NewGraph(dot.Directed)
	g.Attr("rankdir", cfg.RankDir)

	if root := tree.Root(); root != nil {
		addDotNode(g, root, cfg)
	}
	return g.String()
}

func addDotNode(g *dot.Graph, n *avl.Node[int], cfg *GraphConfig) dot.Node {
	gn := g.Node(fmt.Sprintf("n%d", n.Key())).
		Attr("label", fmt.Sprintf("%d", n.Key())).
		Attr("shape", cfg.NodeShape).
		Attr("style", "filled").
		Attr("fillcolor", cfg.NodeColor).
		Attr("fontname", cfg.FontName)

	left, right := n.Left(), n.Right()

	if left != nil {
		g.Edge(gn, addDotNode(g, left, cfg))
	} else if right != nil {
		// invisible placeholder so the single child stays on its side
		addDotPlaceholder(g, gn, fmt.Sprintf("p%dl", n.Key()))
	}
	if right != nil {
		g.Edge(gn, addDotNode(g, right, cfg))
	} else if left != nil {
		addDotPlaceholder(g, gn, fmt.Sprintf("p%dr", n.Key()))
	}

	return gn
}

func addDotPlaceholder(g *dot.Graph, parent dot.Node, id string) {
	ph := g.Node(id).
		Attr("label", "").
		Attr("style", "invis")
	g.Edge(parent, ph).Attr("style", "invis")
}
