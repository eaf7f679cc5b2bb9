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

// Package avl implements a self-balancing binary search tree (AVL tree)
// over ordered keys. Every mutating operation restores the AVL
// invariant before returning: for each node the heights of its two
// subtrees differ by at most one.
//
// Keys are unique. Inserting a key that is already present leaves the
// tree untouched and is reported through the boolean result, not as an
// error. The same goes for deleting a key that was never inserted.
//
// Nodes carry no parent pointers; insertion and deletion are recursive
// and each stack frame repairs height and balance for its own node as
// the recursion unwinds. Rotations are therefore purely local pointer
// surgery.
//
// Note: a tree is not thread safe. Either confine it to a single
// goroutine or guard every call with a mutex.
package avl
