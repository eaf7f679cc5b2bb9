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

// Insert adds key to the tree and reports whether a new node was
// created. Inserting a key that is already present is a silent no-op
// returning false; the tree is left exactly as it was.
func (tree *Tree[T]) Insert(key T) bool {
	root, added := insert(tree.root, key)
	tree.root = root
	if added {
		tree.count++
	}
	return added
}

// internal recursive insert. Returns the possibly new subtree root.
// Each frame recomputes its node's height and rebalances on the way
// back up, so height changes propagate to every ancestor.
func insert[T cmp.Ordered](n *Node[T], key T) (*Node[T], bool) {
	if n == nil {
		return &Node[T]{key: key}, true
	}

	var added bool
	switch {
	case key < n.key:
		n.left, added = insert(n.left, key)
	case key > n.key:
		n.right, added = insert(n.right, key)
	default:
		// duplicate key
		return n, false
	}
	if !added {
		// nothing changed below, heights still valid
		return n, false
	}

	n.updateHeight()
	return rebalance(n), true
}
