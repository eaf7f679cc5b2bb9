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

// Node is a single element of a Tree. All fields are unexported, so a
// Node obtained from Root or Search is a read-only view of the tree
// structure at that moment.
type Node[T cmp.Ordered] struct {
	key    T
	left   *Node[T]
	right  *Node[T]
	height int
}

// Key returns the key stored in the node.
func (n *Node[T]) Key() T {
	return n.key
}

// Left returns the left child, or nil if there is none.
func (n *Node[T]) Left() *Node[T] {
	if n == nil {
		return nil
	}
	return n.left
}

// Right returns the right child, or nil if there is none.
func (n *Node[T]) Right() *Node[T] {
	if n == nil {
		return nil
	}
	return n.right
}

// Height returns the cached height of the subtree rooted at n. A leaf
// has height 0; an absent subtree reports -1.
func (n *Node[T]) Height() int {
	if n == nil {
		return -1
	}
	return n.height
}

// updateHeight recomputes the cached height from the children. Must be
// called bottom-up after any pointer surgery.
func (n *Node[T]) updateHeight() {
	n.height = 1 + max(n.left.Height(), n.right.Height())
}

// balanceFactor is height(left) - height(right). Positive means
// left-heavy, negative right-heavy.
func (n *Node[T]) balanceFactor() int {
	return n.left.Height() - n.right.Height()
}

// first returns the node holding the lowest key of the subtree.
func (n *Node[T]) first() *Node[T] {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

// last returns the node holding the highest key of the subtree.
func (n *Node[T]) last() *Node[T] {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}
