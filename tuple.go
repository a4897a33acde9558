package mixhash

// Tuples are fixed-arity ordered aggregates of hashable values. The traversal
// order is fixed: element 0 is the innermost term of the fold, so for a two
// element tuple the digest is Combine(Of(V1), Of(V0)). Swapping two elements
// changes the digest. The Hash64 methods panic if an element is unhashable.

type Tuple2[T0, T1 any] struct {
	V0 T0
	V1 T1
}

// Hash64 implements Hashable
func (t Tuple2[T0, T1]) Hash64() uint64 {
	return Combine(MustOf(t.V1), MustOf(t.V0))
}

type Tuple3[T0, T1, T2 any] struct {
	V0 T0
	V1 T1
	V2 T2
}

// Hash64 implements Hashable
func (t Tuple3[T0, T1, T2]) Hash64() uint64 {
	return Combine(MustOf(t.V2), Combine(MustOf(t.V1), MustOf(t.V0)))
}

type Tuple4[T0, T1, T2, T3 any] struct {
	V0 T0
	V1 T1
	V2 T2
	V3 T3
}

// Hash64 implements Hashable
func (t Tuple4[T0, T1, T2, T3]) Hash64() uint64 {
	return Combine(MustOf(t.V3), Combine(MustOf(t.V2), Combine(MustOf(t.V1), MustOf(t.V0))))
}

// Values digests several independent values in one call, exactly as if they
// were grouped into a tuple in argument order: Values(a, b, c) equals
// Of(Tuple3{a, b, c}). It is the convenient way for a Hash64 implementation
// to digest several fields in one expression:
//
//	func (s SocketAddress) Hash64() uint64 {
//		return mixhash.MustValues(s.Host, s.Port)
//	}
//
// Zero arguments digest to the neutral value 0.
func Values(values ...any) (uint64, error) {
	if len(values) == 0 {
		return 0, nil
	}

	digest, err := Of(values[0])
	if err != nil {
		return 0, err
	}

	for _, value := range values[1:] {
		elem, err := Of(value)
		if err != nil {
			return 0, err
		}

		digest = Combine(elem, digest)
	}

	return digest, nil
}

// MustValues is like Values but panics on unhashable values.
func MustValues(values ...any) uint64 {
	digest, err := Values(values...)
	if err != nil {
		panic(err)
	}

	return digest
}
