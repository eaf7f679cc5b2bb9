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

package avl

import "cmp"

// Tree holds the root node of an AVL tree. The zero value via New is an
// empty tree.
type Tree[T cmp.Ordered] struct {
	root  *Node[T]
	count int
}

// New creates an initially empty tree.
func New[T cmp.Ordered]() *Tree[T] {
	return &Tree[T]{}
}

// IsEmpty reports whether the tree contains no keys.
func (tree *Tree[T]) IsEmpty() bool {
	return tree.root == nil
}

// Count returns the number of keys currently in the tree.
func (tree *Tree[T]) Count() int {
	return tree.count
}

// Height returns the height of the tree: -1 when empty, 0 for a single
// node.
func (tree *Tree[T]) Height() int {
	return tree.root.Height()
}

// Root returns a read-only view of the root node, or nil for an empty
// tree.
func (tree *Tree[T]) Root() *Node[T] {
	return tree.root
}

// First returns the node with the lowest key, or nil for an empty tree.
func (tree *Tree[T]) First() *Node[T] {
	return tree.root.first()
}

// Last returns the node with the highest key, or nil for an empty tree.
func (tree *Tree[T]) Last() *Node[T] {
	return tree.root.last()
}
