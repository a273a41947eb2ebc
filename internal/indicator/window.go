package indicator

// roll maps fn over every sliding window of exactly size elements.
// Output k comes from window [k, k+size), so it lines up with input
// index k+size-1. Returns nil when the input is shorter than one window.
func roll[T, U any](src []T, size int, fn func(window []T) U) []U {
	if size <= 0 || len(src) < size {
		return nil
	}
	out := make([]U, 0, len(src)-size+1)
	for i := 0; i+size <= len(src); i++ {
		out = append(out, fn(src[i:i+size]))
	}
	return out
}

// rollErr is roll for window functions that can fail. The first failing
// window aborts the whole computation.
func rollErr[T, U any](src []T, size int, fn func(window []T) (U, error)) ([]U, error) {
	if size <= 0 || len(src) < size {
		return nil, nil
	}
	out := make([]U, 0, len(src)-size+1)
	for i := 0; i+size <= len(src); i++ {
		v, err := fn(src[i : i+size])
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// expand maps fn over every expanding prefix [0, i] of src. Output
// length equals input length.
func expand[T, U any](src []T, fn func(prefix []T) U) []U {
	out := make([]U, 0, len(src))
	for i := range src {
		out = append(out, fn(src[:i+1]))
	}
	return out
}

// rightTrim keeps the last n elements of s, preserving right-alignment
// when two derived series of different lengths are combined.
func rightTrim[T any](s []T, n int) []T {
	if n >= len(s) {
		return s
	}
	return s[len(s)-n:]
}
