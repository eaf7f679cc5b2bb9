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

// Delete removes key from the tree and reports whether a node was
// removed. Deleting a key that is not present returns false and leaves
// the tree untouched.
func (tree *Tree[T]) Delete(key T) bool {
	root, removed := remove(tree.root, key)
	tree.root = root
	if removed {
		tree.count--
	}
	return removed
}

// internal recursive delete. Unlike insertion, a deletion can shrink a
// subtree enough to unbalance several ancestors, so every frame on the
// way back up recomputes its height and rebalances, whether or not a
// deeper rotation already fired.
func remove[T cmp.Ordered](n *Node[T], key T) (*Node[T], bool) {
	if n == nil {
		return nil, false
	}

	var removed bool
	switch {
	case key < n.key:
		n.left, removed = remove(n.left, key)
	case key > n.key:
		n.right, removed = remove(n.right, key)
	default:
		switch {
		case n.left == nil:
			// leaf or right-only child: splice
			return n.right, true
		case n.right == nil:
			return n.left, true
		default:
			// two children: copy the in-order successor's key here,
			// then delete the successor from the right subtree. The
			// successor has no left child, so that deletion reduces
			// to one of the splice cases above.
			succ := n.right.first()
			n.key = succ.key
			n.right, _ = remove(n.right, succ.key)
			removed = true
		}
	}
	if !removed {
		return n, false
	}

	n.updateHeight()
	return rebalance(n), true
}
