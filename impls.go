package mixhash

import (
	"encoding/binary"
	"math"

	"github.com/shabbyrobe/go-num"
	"github.com/zeebo/xxh3"
	"golang.org/x/exp/constraints"
)

var le = binary.LittleEndian

// Integer hashes any integer value through its 64-bit representation, so equal
// values digest equally regardless of width or signedness. Named integer types
// (Go's enumerated types) funnel through their underlying value, which keeps
// Of(color(3)) equal to Of(3).
func Integer[T constraints.Integer](v T) uint64 {
	return hashUint64(uint64(v))
}

// Float hashes a floating point value, widening to float64 first. Negative
// zero digests as positive zero so equal floats digest equally.
func Float[T constraints.Float](v T) uint64 {
	f := float64(v)
	if f == 0 {
		f = 0
	}

	return hashUint64(math.Float64bits(f))
}

func Bool(v bool) uint64 {
	if v {
		return hashUint64(1)
	}

	return hashUint64(0)
}

// String hashes the string's bytes as a single scalar. A string is not an
// ordered sequence in the composite sense: the empty string does not digest
// to the neutral value.
func String(v string) uint64 {
	return xxh3.HashString(v)
}

// Bytes hashes a byte blob as a single scalar, equal to String of the same
// content. Note that Of treats a []byte as an ordered sequence instead, so
// that the empty-sequence rule holds for every element type; use Bytes when
// string-like hashing of a blob is wanted.
func Bytes(v []byte) uint64 {
	return xxh3.Hash(v)
}

// FromU128 digests a 128-bit integer, folding the low word as element 0 and
// the high word as element 1.
func FromU128(v num.U128) uint64 {
	hi, lo := v.Raw()

	return Combine(hashUint64(hi), hashUint64(lo))
}

func Some[T any](in T) Optional[T] {
	return Optional[T]{t: &in}
}

func None[T any]() Optional[T] {
	return Optional[T]{t: nil}
}

// Optional wraps a value that may be absent. None digests to the neutral
// value; Some(v) folds a presence marker with v's digest, so Some of a zero
// value digests differently from None.
type Optional[T any] struct {
	t *T
}

func (u Optional[T]) IsSome() bool {
	return u.t != nil
}

func (u Optional[T]) IsNone() bool {
	return u.t == nil
}

// Hash64 implements Hashable. It panics if T itself is unhashable.
func (u Optional[T]) Hash64() uint64 {
	if u.IsNone() {
		return 0
	}

	return Combine(0, MustOf(*u.t))
}

func hashUint64(v uint64) uint64 {
	var buf [8]byte
	le.PutUint64(buf[:], v)

	return xxh3.Hash(buf[:])
}
