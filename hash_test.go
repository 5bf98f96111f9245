package chainmap

import (
	"hash/maphash"
	"testing"

	"github.com/stretchr/testify/require"
)

type point struct {
	x, y int
}

func (p point) Hash() uint64 {
	return uint64(p.x)*31 + uint64(p.y)
}

func TestMakeDefaultHash(t *testing.T) {
	v := "foo"
	s := maphash.MakeSeed()

	h1 := MakeDefaultHashFunc[string](s)(v)
	h2 := maphash.Comparable(s, v)

	require.Equal(t, h2, h1)
}

func TestMakeDefaultHash_Hashable(t *testing.T) {
	f := MakeDefaultHashFunc[point](maphash.MakeSeed())

	require.Equal(t, uint64(3*31+4), f(point{3, 4}))
	require.Equal(t, f(point{1, 2}), f(point{1, 2}))
}

func TestStringHash_MatchesBytesHash(t *testing.T) {
	tests := []string{"", "a", "foo", "the quick brown fox jumps over the lazy dog"}

	for _, s := range tests {
		t.Run(s, func(t *testing.T) {
			require.Equal(t, StringHash(s), BytesHash([]byte(s)))
		})
	}
}
