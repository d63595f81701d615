// Package resource models the four states of remotely fetched data as a
// closed sum type: Data (a value arrived), Query (a request is in flight),
// Empty (the source had nothing), and Failure (an ordered list of messages).
//
// Every variant carries an optional params side channel (request metadata
// such as an id or a page cursor) that is threaded independently of the
// variant through every transformation.
//
// Example:
//
//	profile := resource.Data(42, "req-123")
//	next := resource.Map(profile, func(n int) int { return n + 1 })
//	fmt.Println(next) // Data(43)
//
// Combinators uphold Functor/Applicative/Monad laws (see
// laws_resource_test.go) so UI state pipelines stay predictable across
// refetches and composition.
package resource

import (
	"fmt"
	"strings"
)

type tag uint8

const (
	tagData tag = iota
	tagQuery
	tagEmpty
	tagFailure
)

// Resource represents one of the four remote-data states. The discriminant
// is fixed at construction; no operation mutates a Resource in place, so
// values may be shared freely across goroutines.
//
// Example:
//
//	var users resource.Resource[[]User, string] = resource.Query[[]User]("page-1")
type Resource[T any, Q any] struct {
	tag       tag
	value     T
	messages  []string
	params    Q
	hasParams bool
}

// Data constructs a Resource holding value. An optional trailing params
// argument attaches request metadata; at most one is read.
//
// Example:
//
//	res := resource.Data(42, "req-123")
//	fmt.Println(res.IsData()) // true
func Data[T any, Q any](value T, params ...Q) Resource[T, Q] {
	return withParams(Resource[T, Q]{tag: tagData, value: value}, params)
}

// Query constructs an in-flight Resource carrying no value.
//
// Example:
//
//	res := resource.Query[User]("req-123")
func Query[T any, Q any](params ...Q) Resource[T, Q] {
	return withParams(Resource[T, Q]{tag: tagQuery}, params)
}

// Empty constructs a Resource signalling that the source had no value.
//
// Example:
//
//	res := resource.Empty[[]User, string]()
func Empty[T any, Q any](params ...Q) Resource[T, Q] {
	return withParams(Resource[T, Q]{tag: tagEmpty}, params)
}

// Failure constructs a failed Resource aggregating the provided messages in
// order. The slice is copied defensively.
//
// Example:
//
//	res := resource.Failure[User]([]string{"timeout"}, "req-123")
func Failure[T any, Q any](messages []string, params ...Q) Resource[T, Q] {
	return withParams(Resource[T, Q]{tag: tagFailure, messages: copyMessages(messages)}, params)
}

// IsData reports whether the Resource holds a value.
func (r Resource[T, Q]) IsData() bool {
	return r.tag == tagData
}

// IsQuery reports whether the Resource represents an in-flight request.
func (r Resource[T, Q]) IsQuery() bool {
	return r.tag == tagQuery
}

// IsEmpty reports whether the Resource represents an absent value.
func (r Resource[T, Q]) IsEmpty() bool {
	return r.tag == tagEmpty
}

// IsFailure reports whether the Resource represents a failure.
func (r Resource[T, Q]) IsFailure() bool {
	return r.tag == tagFailure
}

// Value returns the stored value along with a boolean indicating whether the
// Resource is Data.
//
// Example:
//
//	if user, ok := res.Value(); ok {
//		fmt.Println(user)
//	}
func (r Resource[T, Q]) Value() (T, bool) {
	return r.value, r.tag == tagData
}

// Params returns the attached params along with a boolean indicating
// presence, mirroring Go map lookups. Absence is distinct from a present
// zero value.
//
// Example:
//
//	if id, ok := res.Params(); ok {
//		fmt.Println("request", id)
//	}
func (r Resource[T, Q]) Params() (Q, bool) {
	return r.params, r.hasParams
}

// Messages returns the failure messages. The returned slice is an immutable
// copy; non-Failure variants yield an empty slice.
func (r Resource[T, Q]) Messages() []string {
	return copyMessages(r.messages)
}

// GetOr returns the value when the Resource is Data, otherwise it returns
// fallback unchanged.
//
// Example:
//
//	count := res.GetOr(0)
func (r Resource[T, Q]) GetOr(fallback T) T {
	if r.tag == tagData {
		return r.value
	}
	return fallback
}

// String implements fmt.Stringer for debugging. It is not intended for
// serialization.
func (r Resource[T, Q]) String() string {
	switch r.tag {
	case tagData:
		return fmt.Sprintf("Data(%v)", r.value)
	case tagQuery:
		return "Query"
	case tagEmpty:
		return "Empty"
	default:
		return fmt.Sprintf("Failure(%s)", strings.Join(r.messages, "; "))
	}
}

// Map transforms the value when the Resource is Data, keeping its params;
// the other variants pass through untouched. Map is unguarded: a panicking
// fn propagates to the caller. Use MapSafe to capture it instead.
//
// Example:
//
//	next := resource.Map(res, func(n int) int { return n + 1 })
func Map[T any, R any, Q any](r Resource[T, Q], fn func(T) R) Resource[R, Q] {
	if r.tag != tagData {
		return retag[T, R](r)
	}
	return Resource[R, Q]{tag: tagData, value: fn(r.value), params: r.params, hasParams: r.hasParams}
}

// MapSafe behaves like Map but recovers a panicking fn into a Failure
// holding a single message (the recovered error's message, or its printed
// form for non-error panics) with the same params.
//
// Example:
//
//	safe := resource.MapSafe(res, parsePayload)
func MapSafe[T any, R any, Q any](r Resource[T, Q], fn func(T) R) (out Resource[R, Q]) {
	if r.tag != tagData {
		return retag[T, R](r)
	}
	defer func() {
		if rec := recover(); rec != nil {
			out = Resource[R, Q]{
				tag:       tagFailure,
				messages:  []string{recoveredMessage(rec)},
				params:    r.params,
				hasParams: r.hasParams,
			}
		}
	}()
	return Resource[R, Q]{tag: tagData, value: fn(r.value), params: r.params, hasParams: r.hasParams}
}

// Chain sequences dependent fetch steps. When r is Data, fn receives the
// Resource itself and its result is returned directly, params included; the
// other variants pass through untouched.
//
// Example:
//
//	profile := resource.Chain(user, func(u resource.Resource[User, string]) resource.Resource[Profile, string] {
//		value, _ := u.Value()
//		return loadProfile(value.ID)
//	})
func Chain[T any, R any, Q any](r Resource[T, Q], fn func(Resource[T, Q]) Resource[R, Q]) Resource[R, Q] {
	if r.tag != tagData {
		return retag[T, R](r)
	}
	return fn(r)
}

// Of lifts value into a Data Resource anchored to r's params, regardless of
// r's own variant. It is the monadic pure for a pipeline that already knows
// its request metadata.
//
// Example:
//
//	seeded := resource.Of(res, defaultProfile)
func Of[T any, R any, Q any](r Resource[T, Q], value R) Resource[R, Q] {
	return Resource[R, Q]{tag: tagData, value: value, params: r.params, hasParams: r.hasParams}
}

const apNotAFunction = "resource: Ap called on Data that does not contain a function"

// Ap applies a Resource-wrapped function to a Resource-wrapped value.
// The result always adopts the value side's params. When the function side
// is not Data, its variant tag wins (a Failure keeps its messages) but the
// params are still borrowed from the value argument. When the function side
// is Data, a non-Data value argument is re-wrapped as-is before the
// function is inspected; only a Data/Data pairing with a nil function
// yields a Failure with a fixed diagnostic.
//
// Example:
//
//	render := resource.Data[func(int) string, string](formatCount)
//	label := resource.Ap(render, resource.Data(3, "req-9"))
func Ap[A any, B any, QF any, QV any](f Resource[func(A) B, QF], v Resource[A, QV]) Resource[B, QV] {
	if f.tag != tagData {
		out := Resource[B, QV]{tag: f.tag, params: v.params, hasParams: v.hasParams}
		if f.tag == tagFailure {
			out.messages = copyMessages(f.messages)
		}
		return out
	}
	if v.tag != tagData {
		return retag[A, B](v)
	}
	if f.value == nil {
		return Resource[B, QV]{
			tag:       tagFailure,
			messages:  []string{apNotAFunction},
			params:    v.params,
			hasParams: v.hasParams,
		}
	}
	return Resource[B, QV]{tag: tagData, value: f.value(v.value), params: v.params, hasParams: v.hasParams}
}

// Update discards the current variant, value, and params entirely and
// transitions to a fresh Query carrying the new params. It signals that a
// new request is starting.
//
// Example:
//
//	refetching := resource.Update(res, "page-2")
func Update[T any, Q any, P any](_ Resource[T, Q], params P) Resource[T, P] {
	return Resource[T, P]{tag: tagQuery, params: params, hasParams: true}
}

// Fold collapses the Resource into a single value by dispatching on the
// variant; exactly one branch runs and receives the Resource itself.
//
// Example:
//
//	text := resource.Fold(res,
//		func(d resource.Resource[int, string]) string { return "data" },
//		func(q resource.Resource[int, string]) string { return "loading" },
//		func(e resource.Resource[int, string]) string { return "empty" },
//		func(f resource.Resource[int, string]) string { return "failed" },
//	)
func Fold[T any, Q any, R any](
	r Resource[T, Q],
	onData func(Resource[T, Q]) R,
	onQuery func(Resource[T, Q]) R,
	onEmpty func(Resource[T, Q]) R,
	onFailure func(Resource[T, Q]) R,
) R {
	switch r.tag {
	case tagData:
		return onData(r)
	case tagQuery:
		return onQuery(r)
	case tagEmpty:
		return onEmpty(r)
	default:
		return onFailure(r)
	}
}

// Cases holds optional side-effecting handlers for Match. Nil handlers are
// skipped.
type Cases[T any, Q any] struct {
	Data    func(Resource[T, Q])
	Query   func(Resource[T, Q])
	Empty   func(Resource[T, Q])
	Failure func(Resource[T, Q])
}

// Match runs the handler matching the variant when one is supplied,
// otherwise it is a no-op. Handlers return nothing; Match exists for side
// effects only.
//
// Example:
//
//	resource.Match(res, resource.Cases[int, string]{
//		Failure: func(f resource.Resource[int, string]) { log.Println(f.Messages()) },
//	})
func Match[T any, Q any](r Resource[T, Q], cases Cases[T, Q]) {
	switch r.tag {
	case tagData:
		if cases.Data != nil {
			cases.Data(r)
		}
	case tagQuery:
		if cases.Query != nil {
			cases.Query(r)
		}
	case tagEmpty:
		if cases.Empty != nil {
			cases.Empty(r)
		}
	default:
		if cases.Failure != nil {
			cases.Failure(r)
		}
	}
}

// Sequence converts a slice of Resources into a Resource containing a slice
// of values, failing fast: the first non-Data element wins and is returned
// as-is. When all elements are Data, the result carries the params of the
// last element that has them (the latest request wins).
//
// Example:
//
//	pages := resource.Sequence(fetched)
func Sequence[T any, Q any](items []Resource[T, Q]) Resource[[]T, Q] {
	values := make([]T, 0, len(items))
	out := Resource[[]T, Q]{tag: tagData}
	for _, item := range items {
		if item.tag != tagData {
			return retag[T, []T](item)
		}
		values = append(values, item.value)
		if item.hasParams {
			out.params = item.params
			out.hasParams = true
		}
	}
	out.value = values
	return out
}

// Traverse maps input values to Resources and sequences them, failing fast
// on the first non-Data result.
//
// Example:
//
//	users := resource.Traverse(ids, loadUser)
func Traverse[A any, B any, Q any](items []A, fn func(A) Resource[B, Q]) Resource[[]B, Q] {
	values := make([]B, 0, len(items))
	out := Resource[[]B, Q]{tag: tagData}
	for _, item := range items {
		res := fn(item)
		if res.tag != tagData {
			return retag[B, []B](res)
		}
		values = append(values, res.value)
		if res.hasParams {
			out.params = res.params
			out.hasParams = true
		}
	}
	out.value = values
	return out
}

// retag rebuilds a non-participating variant under a new value type,
// preserving the discriminant, messages, and params field-for-field.
func retag[T any, R any, Q any](r Resource[T, Q]) Resource[R, Q] {
	return Resource[R, Q]{tag: r.tag, messages: r.messages, params: r.params, hasParams: r.hasParams}
}

func withParams[T any, Q any](r Resource[T, Q], params []Q) Resource[T, Q] {
	if len(params) > 0 {
		r.params = params[0]
		r.hasParams = true
	}
	return r
}

func recoveredMessage(rec any) string {
	if err, ok := rec.(error); ok {
		return err.Error()
	}
	return fmt.Sprint(rec)
}

func copyMessages(messages []string) []string {
	if len(messages) == 0 {
		return []string{}
	}
	copied := make([]string, len(messages))
	copy(copied, messages)
	return copied
}
