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

// Search finds the node holding key. The returned node is a read-only
// view; the boolean reports whether the key was found.
func (tree *Tree[T]) Search(key T) (*Node[T], bool) {
	n := search(tree.root, key)
	return n, n != nil
}

// Contains reports whether key is present in the tree.
func (tree *Tree[T]) Contains(key T) bool {
	return search(tree.root, key) != nil
}

func search[T cmp.Ordered](n *Node[T], key T) *Node[T] {
	for n != nil {
		switch {
		case key < n.key:
			n = n.left
		case key > n.key:
			n = n.right
		default:
			return n
		}
	}
	return nil
}
