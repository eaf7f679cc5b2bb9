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

import (
	"cmp"
	"fmt"
)

// CheckOrder verifies the BST invariant: an in-order walk of the tree
// must yield strictly ascending keys. Intended for tests; prints the
// first offending key pair on failure.
func (tree *Tree[T]) CheckOrder() bool {
	it := tree.Iterator(InOrder)
	prev, ok := it.Next()
	if !ok {
		return true
	}
	for {
		n, ok := it.Next()
		if !ok {
			return true
		}
		if n.key <= prev.key {
			fmt.Printf("order violation: %v after %v\n", n.key, prev.key)
			return false
		}
		prev = n
	}
}

// CheckBalance verifies the AVL invariant and the cached heights for
// every node. Intended for tests; prints the first offending node on
// failure.
func (tree *Tree[T]) CheckBalance() bool {
	_, ok := checkBalance(tree.root)
	return ok
}

// internal: returns the recomputed height of the subtree and whether
// the subtree is valid.
func checkBalance[T cmp.Ordered](n *Node[T]) (int, bool) {
	if n == nil {
		return -1, true
	}
	lh, ok := checkBalance(n.left)
	if !ok {
		return 0, false
	}
	rh, ok := checkBalance(n.right)
	if !ok {
		return 0, false
	}
	h := 1 + max(lh, rh)
	if n.height != h {
		fmt.Printf("stale height at node: %v   cached: %d  actual: %d\n", n.key, n.height, h)
		return 0, false
	}
	if d := lh - rh; d < -1 || d > 1 {
		fmt.Printf("balance violation at node: %v   left: %d  right: %d\n", n.key, lh, rh)
		return 0, false
	}
	return h, true
}
