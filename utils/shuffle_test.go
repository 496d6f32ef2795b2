package utils

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShuffleSeedGoldenVectors(t *testing.T) {
	// pinned outputs of the reference hash/LCG; any drift here means the
	// daily rotation no longer matches what was shipped
	tests := []struct {
		name  string
		items []string
		seed  string
		want  []string
	}{
		{
			name:  "four categories",
			items: []string{"A", "B", "C", "D"},
			seed:  "2024-01-01:cats",
			want:  []string{"C", "B", "A", "D"},
		},
		{
			name:  "eight categories",
			items: []string{"A", "B", "C", "D", "E", "F", "G", "H"},
			seed:  "2024-03-15:cats",
			want:  []string{"H", "G", "D", "C", "A", "E", "F", "B"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShuffleSeed(tt.items, tt.seed))
		})
	}
}

func TestSeedHash(t *testing.T) {
	assert.Equal(t, uint64(336818089), seedHash("2024-01-01:cats"))
	// empty seed hashes to zero; the generator substitutes 1
	assert.Equal(t, uint64(0), seedHash(""))
}

func TestShuffleSeedDeterministic(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	first := ShuffleSeed(items, "2025-12-31:cats")
	second := ShuffleSeed(items, "2025-12-31:cats")
	assert.Equal(t, first, second)

	assert.Equal(t, []int{1, 4, 3, 2, 5}, ShuffleSeed([]int{1, 2, 3, 4, 5}, "2025-12-31:cats"))
}

func TestShuffleSeedIsPermutation(t *testing.T) {
	items := []string{"x", "y", "z", "x", "w", "v", "u"}

	out := ShuffleSeed(items, "2024-06-01:grid")
	require.Len(t, out, len(items))

	wantSorted := append([]string(nil), items...)
	gotSorted := append([]string(nil), out...)
	sort.Strings(wantSorted)
	sort.Strings(gotSorted)
	assert.Equal(t, wantSorted, gotSorted)
}

func TestShuffleSeedDoesNotMutateInput(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}
	original := append([]string(nil), items...)

	ShuffleSeed(items, "2024-01-01:cats")
	assert.Equal(t, original, items)
}

func TestShuffleSeedDifferentSeedsDiverge(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}

	a := ShuffleSeed(items, "2024-01-01:cats")
	b := ShuffleSeed(items, "2024-01-02:cats")
	assert.NotEqual(t, a, b)
}

func TestShuffleSeedEdgeSizes(t *testing.T) {
	assert.Empty(t, ShuffleSeed([]string{}, "2024-01-01:cats"))
	assert.Equal(t, []string{"only"}, ShuffleSeed([]string{"only"}, "2024-01-01:cats"))
	// the empty seed must not hang or panic on its zero hash
	assert.Len(t, ShuffleSeed([]string{"a", "b", "c"}, ""), 3)
}
