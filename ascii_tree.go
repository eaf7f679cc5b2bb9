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
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Lachstec/avl-tree/avl"
)

// to control the branch glyphs while printing
type branch int

const (
	branchRoot branch = iota
	branchLeft
	branchRight
)

var (
	asciiKeyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	asciiLineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// renderASCIITree returns a sideways text diagram of the tree: the
// right subtree is printed above its parent, the left below, so the
// page reads like the tree rotated 90 degrees counterclockwise.
func renderASCIITree(tree *avl.Tree[int]) string {
	if tree.IsEmpty() {
		return asciiLineStyle.Render("(empty tree)") + "\n"
	}
	var b strings.Builder
	printSubtree(&b, tree.Root(), "", branchRoot)
	return b.String()
}

func printSubtree(b *strings.Builder, n *avl.Node[int], prefix string, br branch) {
	if right := n.Right(); right != nil {
		pad := "      "
		if br == branchLeft {
			pad = "|     "
		}
		printSubtree(b, right, prefix+pad, branchRight)
	}

	connector := "+---- "
	switch br {
	case branchLeft:
		connector = `\---- `
	case branchRight:
		connector = "/---- "
	}
	b.WriteString(asciiLineStyle.Render(prefix + connector))
	b.WriteString(asciiKeyStyle.Render(fmt.Sprintf("%d", n.Key())))
	b.WriteString("\n")

	if left := n.Left(); left != nil {
		pad := "      "
		if br == branchRight {
			pad = "|     "
		}
		printSubtree(b, left, prefix+pad, branchLeft)
	}
}
