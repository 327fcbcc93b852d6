package paginate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestSlice_TotalPagesAndReassembly(t *testing.T) {
	for _, size := range []int{1, 3, 12, 16} {
		for _, n := range []int{0, 1, 11, 12, 13, 16, 17, 100} {
			items := seq(n)
			first := Slice(items, 1, size)

			want := (n + size - 1) / size
			if want < 1 {
				want = 1
			}
			assert.Equal(t, want, first.TotalPages, "size=%d n=%d", size, n)

			var joined []int
			for p := 1; p <= first.TotalPages; p++ {
				joined = append(joined, Slice(items, p, size).Items...)
			}
			if n == 0 {
				assert.Empty(t, joined)
				continue
			}
			assert.Equal(t, items, joined, "size=%d n=%d", size, n)
		}
	}
}

func TestSlice_Clamps(t *testing.T) {
	items := seq(30)

	low := Slice(items, -4, 12)
	assert.Equal(t, 1, low.Current)
	assert.Equal(t, seq(12), low.Items)

	high := Slice(items, 99, 12)
	assert.Equal(t, 3, high.Current)
	assert.Equal(t, []int{24, 25, 26, 27, 28, 29}, high.Items)
	assert.False(t, high.HasNext())
	assert.True(t, high.HasPrev())
	assert.Equal(t, 2, high.Prev())

	empty := Slice([]int(nil), 5, 16)
	assert.Equal(t, 1, empty.Current)
	assert.Equal(t, 1, empty.TotalPages)
	assert.Empty(t, empty.Items)
	assert.Equal(t, []int{1}, empty.Numbers())
}
