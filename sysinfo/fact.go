package sysinfo

import "fmt"

// Fact is the outcome of gathering one piece of dashboard data: either a
// value, or the placeholder to display in its place together with the error
// that caused it.
type Fact[T any] struct {
	Value    T
	Fallback string
	Err      error
	ok       bool
}

// Known returns a Fact holding v.
func Known[T any](v T) Fact[T] {
	return Fact[T]{Value: v, ok: true}
}

// Degraded returns a Fact that displays fallback. err records why.
func Degraded[T any](fallback string, err error) Fact[T] {
	return Fact[T]{Fallback: fallback, Err: err}
}

// OK reports whether the fact holds a gathered value.
func (f Fact[T]) OK() bool {
	return f.ok
}

// String returns the value formatted for display, or the fallback.
func (f Fact[T]) String() string {
	if !f.ok {
		return f.Fallback
	}
	return fmt.Sprint(f.Value)
}
