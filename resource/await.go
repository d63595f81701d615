package resource

import "context"

// Await runs a context-aware effect and materializes its outcome: a nil
// error yields Data carrying the returned value, anything else yields a
// Failure holding the error's message. The params are attached either way.
// Await never panics and never surfaces an error; a context that is already
// done short-circuits into a Failure without invoking fn.
//
// Example:
//
//	res := resource.Await(ctx, repo.LoadUser, "req-123")
func Await[T any, Q any](ctx context.Context, fn func(context.Context) (T, error), params ...Q) Resource[T, Q] {
	if err := ctx.Err(); err != nil {
		return Failure[T, Q]([]string{err.Error()}, params...)
	}
	value, err := fn(ctx)
	if err != nil {
		return Failure[T, Q]([]string{err.Error()}, params...)
	}
	return Data[T, Q](value, params...)
}

// Go launches fn on its own goroutine and returns a channel that delivers
// exactly one settled Resource (Data or Failure) before closing. The channel
// is buffered, so the result is never lost when the receiver is slow.
//
// Example:
//
//	settled := resource.Go(ctx, repo.LoadUser, "req-123")
//	res := <-settled
func Go[T any, Q any](ctx context.Context, fn func(context.Context) (T, error), params ...Q) <-chan Resource[T, Q] {
	settled := make(chan Resource[T, Q], 1)
	go func() {
		settled <- Await(ctx, fn, params...)
		close(settled)
	}()
	return settled
}
