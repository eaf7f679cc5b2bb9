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

// Order selects the traversal order of an Iterator.
type Order int

const (
	// InOrder visits left subtree, node, right subtree. For a BST this
	// yields keys in ascending order.
	InOrder Order = iota
	// PreOrder visits node, left subtree, right subtree.
	PreOrder
	// PostOrder visits left subtree, right subtree, node.
	PostOrder
)

// Iterator walks the tree without mutating it. It is not safe to
// mutate the tree while an Iterator is live. Obtain a fresh Iterator
// to restart a walk.
type Iterator[T cmp.Ordered] struct {
	order Order
	stack []iterFrame[T]
}

// iterFrame tracks how far a node's traversal has progressed: stage 0
// means the left subtree has not been entered yet, stage 1 means the
// right subtree has not, stage 2 means the frame is exhausted.
type iterFrame[T cmp.Ordered] struct {
	node  *Node[T]
	stage uint8
}

// Iterator returns a new traversal of the whole tree in the given
// order.
func (tree *Tree[T]) Iterator(order Order) *Iterator[T] {
	it := &Iterator[T]{order: order}
	if tree.root != nil {
		it.stack = append(it.stack, iterFrame[T]{node: tree.root})
	}
	return it
}

// Next returns the next node of the traversal, or false once the walk
// is finished.
func (it *Iterator[T]) Next() (*Node[T], bool) {
	for len(it.stack) > 0 {
		top := &it.stack[len(it.stack)-1]
		n := top.node

		switch top.stage {
		case 0:
			top.stage = 1
			if n.left != nil {
				it.stack = append(it.stack, iterFrame[T]{node: n.left})
			}
			if it.order == PreOrder {
				return n, true
			}
		case 1:
			top.stage = 2
			if n.right != nil {
				it.stack = append(it.stack, iterFrame[T]{node: n.right})
			}
			if it.order == InOrder {
				return n, true
			}
		default:
			it.stack = it.stack[:len(it.stack)-1]
			if it.order == PostOrder {
				return n, true
			}
		}
	}
	return nil, false
}

// Keys collects every key of the tree in the given traversal order.
func (tree *Tree[T]) Keys(order Order) []T {
	keys := make([]T, 0, tree.count)
	it := tree.Iterator(order)
	for {
		n, ok := it.Next()
		if !ok {
			return keys
		}
		keys = append(keys, n.key)
	}
}
