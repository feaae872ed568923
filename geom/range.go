package geom

import "golang.org/x/exp/constraints"

// Range is a span of Length consecutive indices beginning at Start,
// such as a run of characters in a text layout.
type Range[T constraints.Unsigned] struct {
	Start, Length T
}

// InvalidRange returns the sentinel range produced by operations that
// have no result.
func InvalidRange[T constraints.Unsigned]() Range[T] {
	return Range[T]{Start: ^T(0)}
}

// IsInvalid reports whether r is the sentinel returned by
// [InvalidRange].
func (r Range[T]) IsInvalid() bool {
	return r.Start == ^T(0)
}

// End returns the last index in r. It is meaningless for an empty
// range.
func (r Range[T]) End() T {
	return r.Start + r.Length - 1
}

// Intersect returns the indices that are in both r and r2, or
// [InvalidRange] if there are none.
func (r Range[T]) Intersect(r2 Range[T]) Range[T] {
	if r.Length == 0 || r2.Length == 0 {
		return InvalidRange[T]()
	}

	start := max(r.Start, r2.Start)
	end := min(r.End(), r2.End())
	if start > end {
		return InvalidRange[T]()
	}
	return Range[T]{Start: start, Length: 1 + end - start}
}
