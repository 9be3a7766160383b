package avl

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// leaf is shorthand for building expected shapes in tests.
func leaf() Tree[int] {
	return Tree[int]{}
}

func single(v int) Tree[int] {
	return Branch(v, leaf(), leaf())
}

func TestNew(t *testing.T) {
	tr := New[int]()

	assert.True(t, tr.IsLeaf())
	assert.Equal(t, 0, tr.Height())
	assert.Equal(t, 0, tr.BalanceFactor())
	assert.Equal(t, 0, tr.Len())
	assert.True(t, tr.Validate())
	assert.Equal(t, []int{}, tr.Slice())
	assert.Nil(t, tr.Left())
	assert.Nil(t, tr.Right())

	v, ok := tr.Value()
	assert.False(t, ok)
	assert.Zero(t, v)

	var zero Tree[int]
	assert.True(t, tr.Equal(&zero))
}

func TestBranch(t *testing.T) {
	tr := Branch(2, single(1), single(3))

	v, ok := tr.Value()
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	v, _ = tr.Left().Value()
	assert.Equal(t, 1, v)
	v, _ = tr.Right().Value()
	assert.Equal(t, 3, v)

	assert.Equal(t, 2, tr.Height())
	assert.Equal(t, 0, tr.BalanceFactor())
}

func TestTree_Height(t *testing.T) {
	tests := []struct {
		name   string
		tr     Tree[int]
		height int
		bf     int
	}{
		{
			name: "leaf",
			tr:   leaf(),
		},
		{
			name:   "single",
			tr:     single(1),
			height: 1,
		},
		{
			name:   "left only",
			tr:     Branch(2, single(1), leaf()),
			height: 2,
			bf:     1,
		},
		{
			name:   "right chain",
			tr:     Branch(1, leaf(), Branch(2, leaf(), single(3))),
			height: 3,
			bf:     -2,
		},
		{
			name:   "uneven",
			tr:     Branch(4, Branch(2, single(1), single(3)), single(5)),
			height: 3,
			bf:     1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.height, tt.tr.Height())
			assert.Equal(t, tt.bf, tt.tr.BalanceFactor())
		})
	}
}

func TestTree_Insert(t *testing.T) {
	tests := []struct {
		name    string
		inserts []int
		want    Tree[int]
	}{
		{
			name: "empty",
			want: leaf(),
		},
		{
			name:    "one",
			inserts: []int{1},
			want:    single(1),
		},
		{
			name:    "one duplicate",
			inserts: []int{1, 1},
			want:    single(1),
		},
		{
			name:    "left",
			inserts: []int{2, 1},
			want:    Branch(2, single(1), leaf()),
		},
		{
			name:    "right",
			inserts: []int{1, 2},
			want:    Branch(1, leaf(), single(2)),
		},
		{
			name:    "right-right",
			inserts: []int{1, 2, 3},
			want:    Branch(2, single(1), single(3)),
		},
		{
			name:    "left-left",
			inserts: []int{3, 2, 1},
			want:    Branch(2, single(1), single(3)),
		},
		{
			name:    "right-left",
			inserts: []int{1, 3, 2},
			want:    Branch(2, single(1), single(3)),
		},
		{
			name:    "left-right",
			inserts: []int{3, 1, 2},
			want:    Branch(2, single(1), single(3)),
		},
		{
			name:    "ascending five",
			inserts: []int{1, 2, 3, 4, 5},
			want:    Branch(2, single(1), Branch(4, single(3), single(5))),
		},
		{
			name:    "rotation below the root",
			inserts: []int{5, 3, 8, 1, 4, 7, 9, 0, -1},
			// 1 goes left-heavy by 2 and rotates, 3 and 5 stay put
			want: Branch(5,
				Branch(3,
					Branch(0, single(-1), single(1)),
					single(4)),
				Branch(8, single(7), single(9))),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tr Tree[int]

			for _, v := range tt.inserts {
				tr.Insert(v)
				require.True(t, tr.Validate(), "after inserting %d:\n%s", v, &tr)
			}

			assert.True(t, tr.Equal(&tt.want), "got:\n%s\nwant:\n%s", &tr, &tt.want)
		})
	}
}

func TestTree_InsertValidatesEveryStep(t *testing.T) {
	var tr Tree[int]

	for _, v := range []int{5, 3, 8, 1, 4, 7, 9} {
		tr.Insert(v)
		assert.True(t, tr.Validate(), "after inserting %d", v)
	}

	assert.Equal(t, []int{1, 3, 4, 5, 7, 8, 9}, tr.Slice())
}

func TestTree_InsertAscendingStaysShort(t *testing.T) {
	tr := FromSlice([]int{1, 2, 3, 4, 5})

	// an unbalanced BST would be 5 tall
	assert.Equal(t, 3, tr.Height())
	assert.True(t, tr.Validate())

	long := make([]int, 1023)
	for i := range long {
		long[i] = i
	}
	tr = FromSlice(long)
	// sequential inserts into an AVL tree end up perfectly balanced
	assert.Equal(t, 10, tr.Height())
	assert.True(t, tr.Validate())
}

func TestTree_InsertDuplicateIsIdempotent(t *testing.T) {
	rd := rand.New(rand.NewSource(0xd00d))

	for i := 0; i < 50; i++ {
		in := rd.Perm(1 + rd.Intn(100))
		tr := FromSlice(in)

		before := tr.Slice()
		height := tr.Height()
		shape := FromSlice(in)

		dup := in[rd.Intn(len(in))]
		tr.Insert(dup)

		assert.Equal(t, before, tr.Slice(), "dup=%d", dup)
		assert.Equal(t, height, tr.Height(), "dup=%d", dup)
		assert.True(t, tr.Validate(), "dup=%d", dup)
		assert.True(t, tr.Equal(&shape), "dup=%d", dup)
	}
}

func TestTree_InsertOrderIndependence(t *testing.T) {
	seedrd := rand.New(rand.NewSource(0x123456789abcdef0))
	const rounds = 20
	const size = 200

	base := make([]int, size)
	for i := range base {
		base[i] = i * 3
	}

	var first []int
	for i := 0; i < rounds; i++ {
		rd := rand.New(rand.NewSource(int64(seedrd.Uint64())))
		in := append([]int(nil), base...)
		rd.Shuffle(len(in), func(i, j int) {
			in[i], in[j] = in[j], in[i]
		})

		t.Run(fmt.Sprintf("round=%d", i), func(t *testing.T) {
			var tr Tree[int]
			for _, v := range in {
				tr.Insert(v)
				require.True(t, tr.Validate(), "after inserting %d", v)
			}

			got := tr.Slice()
			assert.Equal(t, base, got)
			if first == nil {
				first = got
			}
			assert.Equal(t, first, got)
		})
	}
}

func TestTree_SameValuesDifferentShapes(t *testing.T) {
	a := FromSlice([]int{1, 2, 3})
	b := FromSlice([]int{3, 2, 1})
	c := FromSlice([]int{1, 3, 2, 4})
	d := FromSlice([]int{4, 3, 2, 1})

	assert.True(t, a.Validate())
	assert.True(t, b.Validate())
	assert.Equal(t, a.Slice(), b.Slice())

	assert.True(t, c.Validate())
	assert.True(t, d.Validate())
	assert.Equal(t, c.Slice(), d.Slice())
	assert.False(t, c.Equal(&d), "c:\n%s\nd:\n%s", &c, &d)
}

func TestTree_Contains(t *testing.T) {
	tr := FromSlice([]string{"dog", "cat", "elephant", "bird"})

	for _, k := range []string{"dog", "cat", "elephant", "bird"} {
		assert.True(t, tr.Contains(k), k)
	}
	for _, k := range []string{"", "ant", "cow", "zebra"} {
		assert.False(t, tr.Contains(k), k)
	}

	var empty Tree[string]
	assert.False(t, empty.Contains("dog"))
}

func TestRoundTrip(t *testing.T) {
	rd := rand.New(rand.NewSource(0x5eed))

	for i := 0; i < 50; i++ {
		in := rd.Perm(rd.Intn(300))
		tr := FromSlice(in)

		want := append([]int{}, in...)
		sort.Ints(want)

		assert.Equal(t, want, tr.Slice())
		assert.Equal(t, len(in), tr.Len())
	}
}

func TestFromSlice_Floats(t *testing.T) {
	tr := FromSlice([]float64{2.5, -1, 0, 2.5, 100})

	assert.Equal(t, []float64{-1, 0, 2.5, 100}, tr.Slice())
	assert.True(t, tr.Validate())
}

var treeForBench Tree[int]

func BenchmarkTree_Insert(b *testing.B) {
	seedrd := rand.New(rand.NewSource(0x123456789abcdef0))
	sizes := []int{10, 100, 1000}

	for _, size := range sizes {
		in := rand.New(rand.NewSource(int64(seedrd.Uint64()))).Perm(size)

		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				treeForBench = FromSlice(in)
			}
		})
	}
}
