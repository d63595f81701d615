package resource

import "github.com/charmingruby/remotedata/validation"

// FromValidation lifts a Validation into a Resource: Passing becomes Data
// and Failing becomes Failure with the same ordered messages. The optional
// params attach to either outcome.
//
// Example:
//
//	res := resource.FromValidation(checkInput(raw), "req-123")
func FromValidation[T any, Q any](v validation.Validation[T], params ...Q) Resource[T, Q] {
	if value, ok := v.Value(); ok {
		return Data[T, Q](value, params...)
	}
	return Failure[T, Q](v.Messages(), params...)
}

// ToValidation collapses a Resource into a Validation: Data becomes Passing
// and Failure becomes Failing with the same messages. Query and Empty carry
// no value to validate and map to a Failing holding a single descriptive
// message, keeping the conversion total.
//
// Example:
//
//	v := resource.ToValidation(res)
func ToValidation[T any, Q any](r Resource[T, Q]) validation.Validation[T] {
	switch r.tag {
	case tagData:
		return validation.Passing(r.value)
	case tagFailure:
		return validation.Failing[T](r.messages...)
	case tagQuery:
		return validation.Failing[T]("resource: still in flight")
	default:
		return validation.Failing[T]("resource: no value")
	}
}
