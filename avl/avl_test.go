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
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type treeTestCase struct {
	name          string
	insert        []int
	delete        []int
	expectedOrder []int
}

func TestTreeOperations(t *testing.T) {
	testCases := []treeTestCase{
		{
			name:          "ascending insertion",
			insert:        []int{1, 2, 3, 4, 5, 6, 7},
			expectedOrder: []int{1, 2, 3, 4, 5, 6, 7},
		},
		{
			name:          "descending insertion",
			insert:        []int{7, 6, 5, 4, 3, 2, 1},
			expectedOrder: []int{1, 2, 3, 4, 5, 6, 7},
		},
		{
			name:          "zig-zag insertion",
			insert:        []int{50, 10, 40, 20, 30},
			expectedOrder: []int{10, 20, 30, 40, 50},
		},
		{
			name:          "delete leaf",
			insert:        []int{20, 10, 30},
			delete:        []int{30},
			expectedOrder: []int{10, 20},
		},
		{
			name:          "delete node with one child",
			insert:        []int{20, 10, 30, 25},
			delete:        []int{30},
			expectedOrder: []int{10, 20, 25},
		},
		{
			name:          "delete node with two children",
			insert:        []int{20, 10, 30, 25, 35},
			delete:        []int{30},
			expectedOrder: []int{10, 20, 25, 35},
		},
		{
			name:          "delete root",
			insert:        []int{20, 10, 30},
			delete:        []int{20},
			expectedOrder: []int{10, 30},
		},
		{
			name:          "delete everything",
			insert:        []int{3, 1, 2},
			delete:        []int{2, 3, 1},
			expectedOrder: []int{},
		},
		{
			name:          "delete missing key",
			insert:        []int{20, 10, 30},
			delete:        []int{99},
			expectedOrder: []int{10, 20, 30},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tree := New[int]()
			for _, key := range tc.insert {
				tree.Insert(key)
			}
			for _, key := range tc.delete {
				tree.Delete(key)
			}
			assert.Equal(t, tc.expectedOrder, tree.Keys(InOrder))
			assert.Equal(t, len(tc.expectedOrder), tree.Count())
			require.True(t, tree.CheckOrder())
			require.True(t, tree.CheckBalance())
		})
	}
}

// The classic minimal rebalancing cases: each three-key sequence below
// must end up as the same balanced shape, root 20 with children 10 and
// 30 and overall height 1.
func TestThreeKeyRotations(t *testing.T) {
	sequences := map[string][]int{
		"single left (RR)":  {10, 20, 30},
		"single right (LL)": {30, 20, 10},
		"double left-right": {30, 10, 20},
		"double right-left": {10, 30, 20},
	}

	for name, seq := range sequences {
		t.Run(name, func(t *testing.T) {
			tree := New[int]()
			for _, key := range seq {
				require.True(t, tree.Insert(key))
			}

			root := tree.Root()
			require.NotNil(t, root)
			assert.Equal(t, 20, root.Key())
			require.NotNil(t, root.Left())
			require.NotNil(t, root.Right())
			assert.Equal(t, 10, root.Left().Key())
			assert.Equal(t, 30, root.Right().Key())
			assert.Equal(t, 1, tree.Height())
		})
	}
}

func TestDuplicateInsertIsNoOp(t *testing.T) {
	tree := New[int]()
	require.True(t, tree.Insert(1))
	require.False(t, tree.Insert(1))
	require.True(t, tree.Insert(2))

	before := tree.Keys(InOrder)
	assert.False(t, tree.Insert(2))
	assert.Equal(t, before, tree.Keys(InOrder))
	assert.Equal(t, 2, tree.Count())
}

func TestDeleteTwoChildrenUsesSuccessor(t *testing.T) {
	tree := New[int]()
	for _, key := range []int{5, 3, 8, 1, 4, 7, 9, 2, 6} {
		tree.Insert(key)
	}
	require.Equal(t, 9, tree.Count())
	require.Equal(t, 5, tree.Root().Key())

	require.True(t, tree.Delete(5))

	// 5 had two children, so its in-order successor 6 takes its place
	assert.Equal(t, 6, tree.Root().Key())
	assert.False(t, tree.Contains(5))
	assert.Equal(t, []int{1, 2, 3, 4, 6, 7, 8, 9}, tree.Keys(InOrder))
	assert.Equal(t, 8, tree.Count())
	require.True(t, tree.CheckOrder())
	require.True(t, tree.CheckBalance())
}

func TestInsertThenDeleteRoundTrip(t *testing.T) {
	tree := New[int]()
	for _, key := range []int{8, 4, 12, 2, 6, 10, 14} {
		tree.Insert(key)
	}
	before := tree.Keys(InOrder)

	require.True(t, tree.Insert(7))
	require.True(t, tree.Delete(7))

	assert.False(t, tree.Contains(7))
	assert.Equal(t, before, tree.Keys(InOrder))
	require.True(t, tree.CheckBalance())
}

func TestEmptyTree(t *testing.T) {
	tree := New[int]()
	assert.True(t, tree.IsEmpty())
	assert.Equal(t, 0, tree.Count())
	assert.Equal(t, -1, tree.Height())
	assert.Nil(t, tree.Root())
	assert.Nil(t, tree.First())
	assert.Nil(t, tree.Last())
	assert.False(t, tree.Delete(1))
	assert.False(t, tree.Contains(1))

	_, ok := tree.Iterator(InOrder).Next()
	assert.False(t, ok)
}

func TestSearch(t *testing.T) {
	tree := New[int]()
	for _, key := range []int{16, 8, 24, 4, 12, 20, 28} {
		tree.Insert(key)
	}

	n, ok := tree.Search(12)
	require.True(t, ok)
	assert.Equal(t, 12, n.Key())

	_, ok = tree.Search(13)
	assert.False(t, ok)

	assert.Equal(t, 4, tree.First().Key())
	assert.Equal(t, 28, tree.Last().Key())
}

func TestIteratorOrders(t *testing.T) {
	tree := New[int]()
	for _, key := range []int{4, 2, 6, 1, 3, 5, 7} {
		tree.Insert(key)
	}
	// perfectly balanced, no rotations fired: root 4

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, tree.Keys(InOrder))
	assert.Equal(t, []int{4, 2, 1, 3, 6, 5, 7}, tree.Keys(PreOrder))
	assert.Equal(t, []int{1, 3, 2, 5, 7, 6, 4}, tree.Keys(PostOrder))
}

func TestIteratorIsRestartable(t *testing.T) {
	tree := New[int]()
	for _, key := range []int{2, 1, 3} {
		tree.Insert(key)
	}

	it := tree.Iterator(InOrder)
	n, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, 1, n.Key())

	// a fresh iterator starts over, independent of the first
	it2 := tree.Iterator(InOrder)
	n2, ok := it2.Next()
	require.True(t, ok)
	assert.Equal(t, 1, n2.Key())

	n, ok = it.Next()
	require.True(t, ok)
	assert.Equal(t, 2, n.Key())
}

// avlHeightBound is the worst-case AVL height for n keys:
// 1.44*log2(n+2) - 0.328.
func avlHeightBound(n int) float64 {
	return 1.44*math.Log2(float64(n+2)) - 0.328
}

func TestRandomInsertDeleteInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(0x5eed))

	tree := New[int]()
	present := make(map[int]struct{})

	insertions := 3000
	for i := 0; i < insertions; i++ {
		key := rng.Intn(10 * insertions)
		added := tree.Insert(key)
		_, dup := present[key]
		require.Equal(t, !dup, added, "insert %d", key)
		present[key] = struct{}{}
	}

	expected := make([]int, 0, len(present))
	for key := range present {
		expected = append(expected, key)
	}
	sort.Ints(expected)

	require.Equal(t, len(present), tree.Count())
	require.Equal(t, expected, tree.Keys(InOrder))
	require.True(t, tree.CheckOrder())
	require.True(t, tree.CheckBalance())
	require.LessOrEqual(t, float64(tree.Height()), avlHeightBound(tree.Count()))

	// delete roughly half, in random order
	rng.Shuffle(len(expected), func(i, j int) {
		expected[i], expected[j] = expected[j], expected[i]
	})
	for _, key := range expected[:len(expected)/2] {
		require.True(t, tree.Delete(key))
		delete(present, key)
	}

	remaining := make([]int, 0, len(present))
	for key := range present {
		remaining = append(remaining, key)
	}
	sort.Ints(remaining)

	require.Equal(t, len(present), tree.Count())
	require.Equal(t, remaining, tree.Keys(InOrder))
	require.True(t, tree.CheckOrder())
	require.True(t, tree.CheckBalance())
	require.LessOrEqual(t, float64(tree.Height()), avlHeightBound(tree.Count()))
}

func TestDeletionCascadeRebalances(t *testing.T) {
	// a long ascending run followed by deleting one flank forces
	// rotations at more than one level on the unwind
	tree := New[int]()
	for key := 1; key <= 64; key++ {
		tree.Insert(key)
	}
	for key := 1; key <= 48; key++ {
		require.True(t, tree.Delete(key))
		require.True(t, tree.CheckBalance(), "after deleting %d", key)
		require.True(t, tree.CheckOrder(), "after deleting %d", key)
	}
	assert.Equal(t, 16, tree.Count())
}

func TestHeightAgainstCountGrowth(t *testing.T) {
	tree := New[int]()
	for n := 1; n <= 1024; n++ {
		tree.Insert(n)
		require.LessOrEqual(t, float64(tree.Height()), avlHeightBound(n), "n=%d", n)
	}
	// ascending insertion of 2^k keys yields a near-perfect tree
	assert.Equal(t, 10, tree.Height())
}
