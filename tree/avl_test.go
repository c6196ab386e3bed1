package tree_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jpcunhadias/ds-algo-lab/trace"
	"github.com/jpcunhadias/ds-algo-lab/tree"
)

// rotations filters the Rotation payloads out of a recorder's event stream.
func rotations(rec *recorder) []tree.Rotation[int] {
	var out []tree.Rotation[int]
	for i, kind := range rec.kinds {
		if kind == trace.KindRotate {
			out = append(out, rec.payloads[i].(tree.Rotation[int]))
		}
	}

	return out
}

// TestAVL_InsertRebalanceCases drives each of the four imbalance cases and
// checks both the resulting shape and the emitted rotations.
func TestAVL_InsertRebalanceCases(t *testing.T) {
	cases := []struct {
		name          string
		values        []int
		wantRotations []tree.Rotation[int]
	}{
		{
			name:          "LL_single_right",
			values:        []int{30, 20, 10},
			wantRotations: []tree.Rotation[int]{{Direction: "right", Pivot: 30, NewRoot: 20}},
		},
		{
			name:          "RR_single_left",
			values:        []int{10, 20, 30},
			wantRotations: []tree.Rotation[int]{{Direction: "left", Pivot: 10, NewRoot: 20}},
		},
		{
			name:   "LR_double",
			values: []int{30, 10, 20},
			wantRotations: []tree.Rotation[int]{
				{Direction: "left", Pivot: 10, NewRoot: 20},
				{Direction: "right", Pivot: 30, NewRoot: 20},
			},
		},
		{
			name:   "RL_double",
			values: []int{10, 30, 20},
			wantRotations: []tree.Rotation[int]{
				{Direction: "right", Pivot: 30, NewRoot: 20},
				{Direction: "left", Pivot: 10, NewRoot: 20},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := &recorder{}
			a := tree.NewAVL[int]()
			a.Attach(rec)
			for _, v := range tc.values {
				a.Insert(v)
			}

			// Every case ends in the same balanced shape: 20 on top.
			require.Equal(t, []int{20, 10, 30}, a.LevelOrder())
			require.Equal(t, 1, a.Height())
			require.Equal(t, 0, a.BalanceFactor())
			require.Equal(t, tc.wantRotations, rotations(rec))
		})
	}
}

// TestAVL_StaysBalancedUnderAscendingInserts: the degenerate BST input.
func TestAVL_StaysBalancedUnderAscendingInserts(t *testing.T) {
	a := tree.NewAVL[int]()
	for v := 1; v <= 100; v++ {
		a.Insert(v)
	}

	require.Equal(t, 100, a.Len())
	// A 100-node AVL tree is at most ~1.44*log2(101) ≈ 9 levels deep.
	require.LessOrEqual(t, a.Height(), 9)

	in := a.InOrder()
	for i := 1; i < len(in); i++ {
		require.Less(t, in[i-1], in[i])
	}
}

// requireEveryNodeBalanced walks a captured subtree and asserts the AVL
// invariant |balance factor| <= 1 at every node, not just the root.
func requireEveryNodeBalanced(t *testing.T, n *tree.NodeSnapshot[int]) {
	t.Helper()
	if n == nil {
		return
	}
	require.GreaterOrEqual(t, n.BalanceFactor, -1, "node %d out of balance", n.Value)
	require.LessOrEqual(t, n.BalanceFactor, 1, "node %d out of balance", n.Value)
	requireEveryNodeBalanced(t, n.Left)
	requireEveryNodeBalanced(t, n.Right)
}

// TestAVL_EveryNodeBalancedUnderRandomWorkload interleaves random inserts
// and deletes, re-checking the per-node balance invariant after each
// mutation rather than only the root's.
func TestAVL_EveryNodeBalancedUnderRandomWorkload(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	a := tree.NewAVL[int]()

	for i := 0; i < 600; i++ {
		v := rng.Intn(150)
		if rng.Intn(3) == 0 {
			a.Delete(v)
		} else {
			a.Insert(v)
		}

		snap := a.Snapshot().(tree.TreeSnapshot[int])
		requireEveryNodeBalanced(t, snap.Root)
	}

	in := a.InOrder()
	for i := 1; i < len(in); i++ {
		require.Less(t, in[i-1], in[i])
	}
}

func TestAVL_DuplicateInsertIsNoOp(t *testing.T) {
	a := tree.NewAVL(10, 20, 30)
	before := a.LevelOrder()

	a.Insert(20)

	require.Equal(t, 3, a.Len())
	require.Equal(t, before, a.LevelOrder())
}

// TestAVL_DeleteRebalances: removing a leaf that leaves an ancestor with
// balance -2 triggers a left rotation.
func TestAVL_DeleteRebalances(t *testing.T) {
	a := tree.NewAVL(20, 10, 30, 40)
	rec := &recorder{}
	a.Attach(rec)

	require.True(t, a.Delete(10))
	require.Equal(t, []int{30, 20, 40}, a.LevelOrder())
	require.Equal(t, []tree.Rotation[int]{{Direction: "left", Pivot: 20, NewRoot: 30}}, rotations(rec))
}

func TestAVL_DeleteAbsent(t *testing.T) {
	a := tree.NewAVL(10, 20)

	require.False(t, a.Delete(99))
	require.Equal(t, 2, a.Len())
}

func TestAVL_DeleteAll(t *testing.T) {
	values := []int{50, 25, 75, 10, 30, 60, 80, 5, 15}
	a := tree.NewAVL(values...)

	for _, v := range values {
		require.True(t, a.Delete(v), "delete %d", v)
	}
	require.Equal(t, 0, a.Len())
	require.Equal(t, -1, a.Height())
}

func TestAVL_SearchAndMinMax(t *testing.T) {
	a := tree.NewAVL(10, 20, 30, 40, 50)

	n := a.Search(40)
	require.NotNil(t, n)
	require.Equal(t, 40, n.Value)
	require.Nil(t, a.Search(99))

	minVal, ok := a.Min()
	require.True(t, ok)
	require.Equal(t, 10, minVal)

	maxVal, ok := a.Max()
	require.True(t, ok)
	require.Equal(t, 50, maxVal)
}

// TestAVL_SnapshotCarriesBalance: node snapshots record height and balance
// factor at capture time.
func TestAVL_SnapshotCarriesBalance(t *testing.T) {
	a := tree.NewAVL(10, 20, 30)

	snap := a.Snapshot().(tree.TreeSnapshot[int])
	require.Equal(t, "avl_tree", snap.Kind())
	require.Equal(t, 3, snap.Size())
	require.Equal(t, 20, snap.Root.Value)
	require.Equal(t, 1, snap.Root.Height)
	require.Equal(t, 0, snap.Root.BalanceFactor)
	require.Equal(t, 10, snap.Root.Left.Value)
	require.Equal(t, 30, snap.Root.Right.Value)
}
