package decaf

// Result is the outcome of a decode operation: success carrying a value of T,
// or failure carrying one or more Errors. Exactly one of the two holds; the
// zero Result is success with the zero value of T.
type Result[T any] struct {
	val  T
	errs Errors
}

// Succeed returns a successful Result.
func Succeed[T any](v T) Result[T] { return Result[T]{val: v} }

// Fail returns a failed Result carrying a single error.
func Fail[T any](e Error) Result[T] { return Result[T]{errs: Errors{e}} }

// FailWith returns a failed Result carrying errs. Empty errs are normalized
// to a single custom error so a failure never reports zero errors.
func FailWith[T any](errs Errors) Result[T] {
	if len(errs) == 0 {
		errs = Errors{{Code: CodeCustom, Expected: "failure detail", Actual: "none"}}
	}
	return Result[T]{errs: errs}
}

// Ok reports whether r is a success.
func (r Result[T]) Ok() bool { return len(r.errs) == 0 }

// Get returns the success value and whether r is a success.
func (r Result[T]) Get() (T, bool) {
	if !r.Ok() {
		var zero T
		return zero, false
	}
	return r.val, true
}

// GetOrElse returns the success value, or def when r is a failure.
func (r Result[T]) GetOrElse(def T) T {
	if !r.Ok() {
		return def
	}
	return r.val
}

// Err returns the failure's errors, or nil for a success.
func (r Result[T]) Err() Errors {
	if r.Ok() {
		return nil
	}
	return r.errs
}

// Unpack splits r into Go's conventional value/error pair. The error, when
// non-nil, is always an Errors value.
func (r Result[T]) Unpack() (T, error) {
	if r.Ok() {
		return r.val, nil
	}
	var zero T
	return zero, r.errs
}

// Map transforms the success value of r. A failure passes through with its
// errors untouched.
func Map[T, U any](r Result[T], f func(T) U) Result[U] {
	if !r.Ok() {
		return Result[U]{errs: r.errs}
	}
	return Succeed(f(r.val))
}

// Apply combines a lifted function with an argument result. Combination is
// fail-fast, left to right: when both sides fail, only the function side's
// errors are kept, so record decoders built on Apply report the first
// declared field's failure.
func Apply[T, U any](rf Result[func(T) U], ra Result[T]) Result[U] {
	if !rf.Ok() {
		return Result[U]{errs: rf.errs}
	}
	if !ra.Ok() {
		return Result[U]{errs: ra.errs}
	}
	return Succeed(rf.val(ra.val))
}

// FlatMap sequences a decode that depends on an earlier success, e.g.
// decoding a discriminator field before the matching variant body. A failure
// passes through untouched.
func FlatMap[T, U any](r Result[T], f func(T) Result[U]) Result[U] {
	if !r.Ok() {
		return Result[U]{errs: r.errs}
	}
	return f(r.val)
}
