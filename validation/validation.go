// Package validation provides a two-variant Passing/Failing value that
// accumulates human-readable messages instead of short-circuiting on the
// first problem.
//
// Use it for input validation, DTO decoding, and form checks where every
// issue should be reported at once.
//
// Example:
//
//	v := validation.Passing(42)
//	doubled := validation.Map(v, func(n int) int { return n * 2 })
//	fmt.Println(doubled) // Passing(84)
//
// Combinators uphold Functor/Monad/Semigroup laws (see
// laws_validation_test.go) to keep pipelines predictable when checks are
// reordered or merged.
package validation

import (
	"errors"
	"fmt"
	"strings"
)

// Validation wraps either a passing value or an ordered collection of
// failure messages. The discriminant is fixed at construction; transformations
// always produce a new value.
type Validation[T any] struct {
	value    T
	messages []string
	failing  bool
}

// Passing constructs a successful Validation carrying value.
//
// Example:
//
//	v := validation.Passing("token")
//	fmt.Println(v.IsPassing()) // true
func Passing[T any](value T) Validation[T] {
	return Validation[T]{value: value}
}

// Failing constructs a failed Validation aggregating the provided messages
// in order. A Failing with no messages is still failing.
//
// Example:
//
//	v := validation.Failing[int]("name required", "age negative")
//	fmt.Println(len(v.Messages())) // 2
func Failing[T any](messages ...string) Validation[T] {
	return Validation[T]{messages: copyMessages(messages), failing: true}
}

// FromTuple converts a standard Go (value, error) pair into a Validation,
// mirroring idiomatic tuple returns.
//
// Example:
//
//	value, err := strconv.Atoi(raw)
//	v := validation.FromTuple(value, err)
func FromTuple[T any](value T, err error) Validation[T] {
	if err != nil {
		return Failing[T](err.Error())
	}
	return Passing(value)
}

// IsPassing reports whether the Validation holds a value.
func (v Validation[T]) IsPassing() bool {
	return !v.failing
}

// IsFailing reports whether the Validation holds failure messages.
func (v Validation[T]) IsFailing() bool {
	return v.failing
}

// Value returns the stored value along with a boolean indicating whether the
// Validation is passing.
func (v Validation[T]) Value() (T, bool) {
	return v.value, !v.failing
}

// Messages returns the collected failure messages. The returned slice is an
// immutable copy; a passing Validation yields an empty slice.
func (v Validation[T]) Messages() []string {
	return copyMessages(v.messages)
}

// GetOr returns the value when passing, otherwise returns fallback.
//
// Example:
//
//	limit := v.GetOr(100)
func (v Validation[T]) GetOr(fallback T) T {
	if v.failing {
		return fallback
	}
	return v.value
}

// String implements fmt.Stringer for debugging. It is not intended for
// serialization.
func (v Validation[T]) String() string {
	if v.failing {
		return fmt.Sprintf("Failing(%s)", strings.Join(v.messages, "; "))
	}
	return fmt.Sprintf("Passing(%v)", v.value)
}

// Map transforms the stored value when passing. Map is unguarded: a panicking
// fn propagates to the caller. A Failing value passes through untouched.
//
// Example:
//
//	length := validation.Map(v, func(s string) int { return len(s) })
func Map[T any, R any](v Validation[T], fn func(T) R) Validation[R] {
	if v.failing {
		return Validation[R]{messages: v.messages, failing: true}
	}
	return Passing(fn(v.value))
}

// Chain sequences dependent checks. When v is passing, fn receives the
// Validation itself and its result is returned directly; a Failing value
// passes through untouched.
//
// Example:
//
//	checked := validation.Chain(parsed, func(v validation.Validation[int]) validation.Validation[int] {
//		n, _ := v.Value()
//		if n < 0 {
//			return validation.Failing[int]("must be positive")
//		}
//		return v
//	})
func Chain[T any, R any](v Validation[T], fn func(Validation[T]) Validation[R]) Validation[R] {
	if v.failing {
		return Validation[R]{messages: v.messages, failing: true}
	}
	return fn(v)
}

// Concat combines two Validations with Failing absorbing Passing:
// a passing left side yields the right side unchanged; a failing left side
// wins over a passing right side; two failing sides merge their messages
// left-to-right without deduplication.
//
// Example:
//
//	merged := validation.Concat(
//		validation.Failing[string]("a"),
//		validation.Failing[int]("b"),
//	)
//	fmt.Println(merged) // Failing(a; b)
func Concat[A any, B any](a Validation[A], b Validation[B]) Validation[B] {
	if !a.failing {
		return b
	}
	if b.failing {
		merged := make([]string, 0, len(a.messages)+len(b.messages))
		merged = append(merged, a.messages...)
		merged = append(merged, b.messages...)
		return Validation[B]{messages: merged, failing: true}
	}
	return Validation[B]{messages: a.messages, failing: true}
}

// Fold collapses the Validation into a single value by dispatching on the
// variant; exactly one branch runs and receives the Validation itself.
//
// Example:
//
//	text := validation.Fold(v,
//		func(p validation.Validation[int]) string { return "ok" },
//		func(f validation.Validation[int]) string { return "failed" },
//	)
func Fold[T any, R any](v Validation[T], onPassing func(Validation[T]) R, onFailing func(Validation[T]) R) R {
	if v.failing {
		return onFailing(v)
	}
	return onPassing(v)
}

// Cases holds optional side-effecting handlers for Match. Nil handlers are
// skipped.
type Cases[T any] struct {
	Passing func(Validation[T])
	Failing func(Validation[T])
}

// Match runs the handler matching the variant when one is supplied,
// otherwise it is a no-op. Handlers return nothing; Match exists for side
// effects only.
//
// Example:
//
//	validation.Match(v, validation.Cases[int]{
//		Failing: func(f validation.Validation[int]) { log.Println(f.Messages()) },
//	})
func Match[T any](v Validation[T], cases Cases[T]) {
	if v.failing {
		if cases.Failing != nil {
			cases.Failing(v)
		}
		return
	}
	if cases.Passing != nil {
		cases.Passing(v)
	}
}

// Pair represents two values combined by Zip.
type Pair[A any, B any] struct {
	First  A
	Second B
}

// Zip combines two Validations, accumulating messages from both sides.
//
// Example:
//
//	combined := validation.Zip(checkName(name), checkAge(age))
func Zip[A any, B any](a Validation[A], b Validation[B]) Validation[Pair[A, B]] {
	if !a.failing && !b.failing {
		return Passing(Pair[A, B]{First: a.value, Second: b.value})
	}
	return Validation[Pair[A, B]]{messages: appendMessages(a.messages, b.messages), failing: true}
}

// Sequence collapses a slice of Validations, accumulating every failure
// message or producing the slice of values when all pass.
//
// Example:
//
//	all := validation.Sequence(checks)
func Sequence[T any](items []Validation[T]) Validation[[]T] {
	values := make([]T, 0, len(items))
	var messages []string
	failing := false
	for _, item := range items {
		if item.failing {
			failing = true
			messages = appendMessages(messages, item.messages)
			continue
		}
		values = append(values, item.value)
	}
	if failing {
		return Validation[[]T]{messages: messages, failing: true}
	}
	return Passing(values)
}

// Traverse maps the input slice to Validations and sequences them,
// accumulating every failure message.
//
// Example:
//
//	parsed := validation.Traverse(raw, parseEntry)
func Traverse[A any, B any](items []A, fn func(A) Validation[B]) Validation[[]B] {
	values := make([]B, 0, len(items))
	var messages []string
	failing := false
	for _, item := range items {
		res := fn(item)
		if res.failing {
			failing = true
			messages = appendMessages(messages, res.messages)
			continue
		}
		values = append(values, res.value)
	}
	if failing {
		return Validation[[]B]{messages: messages, failing: true}
	}
	return Passing(values)
}

// ToError converts the Validation into a single error, joining one error per
// message when failing and returning nil when passing. A Failing without
// messages still yields a descriptive error to avoid silent successes.
//
// Example:
//
//	if err := validation.ToError(v); err != nil {
//		return err
//	}
func ToError[T any](v Validation[T]) error {
	if !v.failing {
		return nil
	}
	if len(v.messages) == 0 {
		return errors.New("validation: failing without messages")
	}
	errs := make([]error, len(v.messages))
	for i, message := range v.messages {
		errs[i] = errors.New(message)
	}
	return errors.Join(errs...)
}

func copyMessages(messages []string) []string {
	if len(messages) == 0 {
		return []string{}
	}
	copied := make([]string, len(messages))
	copy(copied, messages)
	return copied
}

func appendMessages(dst []string, src []string) []string {
	if len(src) == 0 {
		return dst
	}
	if len(dst) == 0 {
		dst = make([]string, 0, len(src))
	}
	return append(dst, src...)
}
