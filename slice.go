package mixhash

// Slice digests an ordered sequence by folding element digests in iteration
// order from the neutral seed 0: seed = Combine(seed, Of(elem)). An empty or
// nil slice digests to 0 for every element type. Of resolves slices and
// arrays through the same fold, so sequences of hashable elements are
// hashable without extra registration.
func Slice[T any](s []T) (uint64, error) {
	var seed uint64
	for _, elem := range s {
		digest, err := Of(elem)
		if err != nil {
			return 0, err
		}

		seed = Combine(seed, digest)
	}

	return seed, nil
}

// MustSlice is like Slice but panics on unhashable elements.
func MustSlice[T any](s []T) uint64 {
	digest, err := Slice(s)
	if err != nil {
		panic(err)
	}

	return digest
}

// Map digests an unordered map by summing per-entry digests with wrapping
// addition, so the result is independent of iteration order. Each entry
// digests as Values(key, value). An empty or nil map digests to 0.
func Map[K comparable, V any](m map[K]V) (uint64, error) {
	var sum uint64
	for k, v := range m {
		entry, err := Values(k, v)
		if err != nil {
			return 0, err
		}

		sum += entry
	}

	return sum, nil
}

// MustMap is like Map but panics on unhashable keys or values.
func MustMap[K comparable, V any](m map[K]V) uint64 {
	digest, err := Map(m)
	if err != nil {
		panic(err)
	}

	return digest
}
