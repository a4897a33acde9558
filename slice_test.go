package mixhash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlice_EmptyIsNeutral(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{"empty ints", []int{}},
		{"nil strings", []string(nil)},
		{"empty bytes", []byte{}},
		{"empty tuples", []Tuple2[int, int]{}},
		{"empty array", [0]int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			digest, err := Of(tt.value)
			require.NoError(t, err)
			assert.Equal(t, uint64(0), digest)
		})
	}
}

func TestSlice_FoldRecurrence(t *testing.T) {
	digest, err := Slice([]int{1, 2})
	require.NoError(t, err)

	assert.Equal(t, Combine(Combine(0, MustOf(1)), MustOf(2)), digest)
}

func TestSlice_OrderSensitive(t *testing.T) {
	forward := MustSlice([]int{1, 2, 3})

	assert.NotEqual(t, MustSlice([]int{3, 2, 1}), forward)
	assert.NotEqual(t, MustSlice([]int{2, 1, 3}), forward)
}

func TestSlice_MatchesOf(t *testing.T) {
	s := []string{"one", "two", "three"}

	assert.Equal(t, MustSlice(s), MustOf(s))
	assert.Equal(t, MustSlice([]int{1, 2, 3}), MustOf([3]int{1, 2, 3}))
}

func TestSlice_ByteElementsFold(t *testing.T) {
	// Of treats []byte as an ordered sequence, not as a scalar blob
	assert.Equal(t, Combine(0, Integer(uint8(1))), MustOf([]byte{1}))
	assert.Equal(t, MustSlice([]byte{1, 2}), MustOf([]byte{1, 2}))
	assert.NotEqual(t, Bytes(nil), MustOf([]byte{}))
}

func TestSlice_Unhashable(t *testing.T) {
	_, err := Slice([]any{1, struct{}{}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnhashable)
}

func TestMap_OrderIndependent(t *testing.T) {
	first := map[uint32]string{
		1: "one",
		2: "two",
		3: "three",
	}

	second := map[uint32]string{
		3: "three",
		1: "one",
		2: "two",
	}

	assert.Equal(t, MustMap(first), MustMap(second))
}

func TestMap_ContentSensitive(t *testing.T) {
	base := map[uint32]string{1: "one", 2: "two"}

	tests := []struct {
		name  string
		other map[uint32]string
	}{
		{"different value", map[uint32]string{1: "X", 2: "two"}},
		{"different key", map[uint32]string{9: "one", 2: "two"}},
		{"extra entry", map[uint32]string{1: "one", 2: "two", 3: "three"}},
		{"swapped values", map[uint32]string{1: "two", 2: "one"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEqual(t, MustMap(base), MustMap(tt.other))
		})
	}
}

func TestMap_EmptyAndOf(t *testing.T) {
	assert.Equal(t, uint64(0), MustMap(map[string]int{}))
	assert.Equal(t, uint64(0), MustMap(map[string]int(nil)))

	m := map[string]int{"a": 1, "b": 2}
	assert.Equal(t, MustMap(m), MustOf(m))
}
