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

// rotateRight rotates around n with pivot n.left. The pivot's right
// subtree becomes n's new left subtree and n becomes the pivot's right
// child. Heights are recomputed for n first, then the pivot, since the
// pivot's new height depends on n's.
func rotateRight[T cmp.Ordered](n *Node[T]) *Node[T] {
	pivot := n.left
	n.left = pivot.right
	pivot.right = n

	n.updateHeight()
	pivot.updateHeight()

	return pivot
}

// rotateLeft is the mirror of rotateRight, with pivot n.right.
func rotateLeft[T cmp.Ordered](n *Node[T]) *Node[T] {
	pivot := n.right
	n.right = pivot.left
	pivot.left = n

	n.updateHeight()
	pivot.updateHeight()

	return pivot
}

// rebalance restores the AVL invariant at n, assuming both subtrees
// already satisfy it and n's height is up to date. Returns the subtree
// root after at most one single or double rotation.
func rebalance[T cmp.Ordered](n *Node[T]) *Node[T] {
	switch bf := n.balanceFactor(); {
	case bf > 1:
		if n.left.balanceFactor() < 0 {
			// left-right case
			n.left = rotateLeft(n.left)
		}
		return rotateRight(n)
	case bf < -1:
		if n.right.balanceFactor() > 0 {
			// right-left case
			n.right = rotateRight(n.right)
		}
		return rotateLeft(n)
	}
	return n
}
