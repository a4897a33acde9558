// Package mixhash computes fixed-width digests for arbitrary values, for use as
// keys in hash-based containers, deduplication and memoization. It is not a
// cryptographic hash: digests have good practical distribution but no collision
// resistance, and their exact values may change between builds, so they must
// never be persisted or transmitted.
package mixhash

import (
	"errors"
	"fmt"
	"reflect"
)

// goldenRatio64 is the 64-bit extension of the classic 32-bit mixing constant
// 0x9e3779b9, derived from the golden ratio.
const goldenRatio64 = 0x9e3779b97f4a7c15

// ErrUnhashable is returned by Of and Values when no hashing strategy exists
// for a value's type.
var ErrUnhashable = errors.New("unhashable type")

// Hashable lets a type control its own digest. Implementing it is the sole
// mechanism for making a new domain type hashable; when a type implements it,
// Of uses the method and never consults the built-in strategies.
type Hashable interface {
	Hash64() uint64
}

// Combine folds a new hash value into an accumulated seed. The fold is order
// sensitive: Combine(Combine(s, a), b) differs from Combine(Combine(s, b), a)
// for typical a != b.
func Combine(seed, value uint64) uint64 {
	return seed ^ (value + goldenRatio64 + (seed << 6) + (seed >> 2))
}

// Of returns the digest of value, resolving the hashing strategy in a fixed
// order: the value's own Hash64 method if it implements Hashable, then the
// built-in scalar strategies (named integer types hash their underlying
// integer value, named strings/bools/floats likewise, pointers hash as opaque
// identity), then the composite strategies (slices and arrays fold element
// digests in order, maps fold entry digests order-independently). A value
// matching none of these yields ErrUnhashable.
func Of(value any) (uint64, error) {
	if h, ok := value.(Hashable); ok {
		return h.Hash64(), nil
	}

	switch v := value.(type) {
	case bool:
		return Bool(v), nil
	case string:
		return String(v), nil
	case int:
		return Integer(v), nil
	case int8:
		return Integer(v), nil
	case int16:
		return Integer(v), nil
	case int32:
		return Integer(v), nil
	case int64:
		return Integer(v), nil
	case uint:
		return Integer(v), nil
	case uint8:
		return Integer(v), nil
	case uint16:
		return Integer(v), nil
	case uint32:
		return Integer(v), nil
	case uint64:
		return Integer(v), nil
	case uintptr:
		return Integer(v), nil
	case float32:
		return Float(v), nil
	case float64:
		return Float(v), nil
	}

	if value == nil {
		return 0, fmt.Errorf("no hashing strategy for <nil>: %w", ErrUnhashable)
	}

	return reflectOf(reflect.ValueOf(value))
}

// MustOf is like Of but panics on unhashable values.
func MustOf(value any) uint64 {
	digest, err := Of(value)
	if err != nil {
		panic(err)
	}

	return digest
}

// reflectOf handles named types and composites that fell through the concrete
// type switch in Of.
func reflectOf(rv reflect.Value) (uint64, error) {
	switch rv.Kind() {
	case reflect.Bool:
		return Bool(rv.Bool()), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Integer(rv.Int()), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Integer(rv.Uint()), nil

	case reflect.Float32, reflect.Float64:
		return Float(rv.Float()), nil

	case reflect.String:
		return String(rv.String()), nil

	case reflect.Pointer, reflect.UnsafePointer:
		return Integer(rv.Pointer()), nil

	case reflect.Slice, reflect.Array:
		var seed uint64
		for i := 0; i < rv.Len(); i++ {
			elem, err := Of(rv.Index(i).Interface())
			if err != nil {
				return 0, err
			}

			seed = Combine(seed, elem)
		}

		return seed, nil

	case reflect.Map:
		var sum uint64
		iter := rv.MapRange()
		for iter.Next() {
			entry, err := Values(iter.Key().Interface(), iter.Value().Interface())
			if err != nil {
				return 0, err
			}

			sum += entry
		}

		return sum, nil
	}

	return 0, fmt.Errorf("no hashing strategy for %s: %w", rv.Type(), ErrUnhashable)
}
