// Package render selects a view for an ADT instance by dispatching on its
// variant and delegating to caller-supplied view functions. It holds no
// state and performs no mutation; the only contract it relies on is the
// core types' total dispatch.
package render

import (
	"github.com/charmingruby/remotedata/resource"
	"github.com/charmingruby/remotedata/validation"
)

// ResourceViews supplies one view function per Resource variant. Each
// receives the matched instance and returns a renderable value.
type ResourceViews[T any, Q any, V any] struct {
	Data    func(resource.Resource[T, Q]) V
	Query   func(resource.Resource[T, Q]) V
	Empty   func(resource.Resource[T, Q]) V
	Failure func(resource.Resource[T, Q]) V
}

// Resource renders r by invoking exactly one of the supplied views.
func Resource[T any, Q any, V any](r resource.Resource[T, Q], views ResourceViews[T, Q, V]) V {
	return resource.Fold(r, views.Data, views.Query, views.Empty, views.Failure)
}

// ValidationViews supplies one view function per Validation variant.
type ValidationViews[T any, V any] struct {
	Passing func(validation.Validation[T]) V
	Failing func(validation.Validation[T]) V
}

// Validation renders v by invoking exactly one of the supplied views.
func Validation[T any, V any](v validation.Validation[T], views ValidationViews[T, V]) V {
	return validation.Fold(v, views.Passing, views.Failing)
}
