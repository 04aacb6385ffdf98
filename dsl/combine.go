package dsl

import (
	decaf "github.com/norelock/decaf"
)

// Map transforms the success of d with f.
func Map[A, Z any](d decaf.Decoder[A], f func(A) Z) decaf.Decoder[Z] {
	return decaf.DecoderFunc[Z](func(v decaf.Value) decaf.Result[Z] {
		return decaf.Map(d.Decode(v), f)
	})
}

// Map2 runs two decoders against the same value in declaration order and
// combines their successes with f. The first decoder that fails decides the
// failure; later decoders are not run.
func Map2[A, B, Z any](da decaf.Decoder[A], db decaf.Decoder[B], f func(A, B) Z) decaf.Decoder[Z] {
	return decaf.DecoderFunc[Z](func(v decaf.Value) decaf.Result[Z] {
		ra := da.Decode(v)
		a, ok := ra.Get()
		if !ok {
			return decaf.FailWith[Z](ra.Err())
		}
		rb := db.Decode(v)
		b, ok := rb.Get()
		if !ok {
			return decaf.FailWith[Z](rb.Err())
		}
		return decaf.Succeed(f(a, b))
	})
}

// Map3 is Map2 for three decoders.
func Map3[A, B, C, Z any](da decaf.Decoder[A], db decaf.Decoder[B], dc decaf.Decoder[C], f func(A, B, C) Z) decaf.Decoder[Z] {
	return decaf.DecoderFunc[Z](func(v decaf.Value) decaf.Result[Z] {
		ra := da.Decode(v)
		a, ok := ra.Get()
		if !ok {
			return decaf.FailWith[Z](ra.Err())
		}
		rb := db.Decode(v)
		b, ok := rb.Get()
		if !ok {
			return decaf.FailWith[Z](rb.Err())
		}
		rc := dc.Decode(v)
		c, ok := rc.Get()
		if !ok {
			return decaf.FailWith[Z](rc.Err())
		}
		return decaf.Succeed(f(a, b, c))
	})
}

// Map4 is Map2 for four decoders.
func Map4[A, B, C, D, Z any](da decaf.Decoder[A], db decaf.Decoder[B], dc decaf.Decoder[C], dd decaf.Decoder[D], f func(A, B, C, D) Z) decaf.Decoder[Z] {
	return decaf.DecoderFunc[Z](func(v decaf.Value) decaf.Result[Z] {
		ra := da.Decode(v)
		a, ok := ra.Get()
		if !ok {
			return decaf.FailWith[Z](ra.Err())
		}
		rb := db.Decode(v)
		b, ok := rb.Get()
		if !ok {
			return decaf.FailWith[Z](rb.Err())
		}
		rc := dc.Decode(v)
		c, ok := rc.Get()
		if !ok {
			return decaf.FailWith[Z](rc.Err())
		}
		rd := dd.Decode(v)
		d, ok := rd.Get()
		if !ok {
			return decaf.FailWith[Z](rd.Err())
		}
		return decaf.Succeed(f(a, b, c, d))
	})
}

// Map5 is Map2 for five decoders.
func Map5[A, B, C, D, E, Z any](da decaf.Decoder[A], db decaf.Decoder[B], dc decaf.Decoder[C], dd decaf.Decoder[D], de decaf.Decoder[E], f func(A, B, C, D, E) Z) decaf.Decoder[Z] {
	return decaf.DecoderFunc[Z](func(v decaf.Value) decaf.Result[Z] {
		ra := da.Decode(v)
		a, ok := ra.Get()
		if !ok {
			return decaf.FailWith[Z](ra.Err())
		}
		rb := db.Decode(v)
		b, ok := rb.Get()
		if !ok {
			return decaf.FailWith[Z](rb.Err())
		}
		rc := dc.Decode(v)
		c, ok := rc.Get()
		if !ok {
			return decaf.FailWith[Z](rc.Err())
		}
		rd := dd.Decode(v)
		d, ok := rd.Get()
		if !ok {
			return decaf.FailWith[Z](rd.Err())
		}
		re := de.Decode(v)
		e, ok := re.Get()
		if !ok {
			return decaf.FailWith[Z](re.Err())
		}
		return decaf.Succeed(f(a, b, c, d, e))
	})
}

// Map6 is Map2 for six decoders.
func Map6[A, B, C, D, E, F, Z any](da decaf.Decoder[A], db decaf.Decoder[B], dc decaf.Decoder[C], dd decaf.Decoder[D], de decaf.Decoder[E], df decaf.Decoder[F], f func(A, B, C, D, E, F) Z) decaf.Decoder[Z] {
	return decaf.DecoderFunc[Z](func(v decaf.Value) decaf.Result[Z] {
		ra := da.Decode(v)
		a, ok := ra.Get()
		if !ok {
			return decaf.FailWith[Z](ra.Err())
		}
		rb := db.Decode(v)
		b, ok := rb.Get()
		if !ok {
			return decaf.FailWith[Z](rb.Err())
		}
		rc := dc.Decode(v)
		c, ok := rc.Get()
		if !ok {
			return decaf.FailWith[Z](rc.Err())
		}
		rd := dd.Decode(v)
		d, ok := rd.Get()
		if !ok {
			return decaf.FailWith[Z](rd.Err())
		}
		re := de.Decode(v)
		e, ok := re.Get()
		if !ok {
			return decaf.FailWith[Z](re.Err())
		}
		rf := df.Decode(v)
		fv, ok := rf.Get()
		if !ok {
			return decaf.FailWith[Z](rf.Err())
		}
		return decaf.Succeed(f(a, b, c, d, e, fv))
	})
}

// Map7 is Map2 for seven decoders.
func Map7[A, B, C, D, E, F, G, Z any](da decaf.Decoder[A], db decaf.Decoder[B], dc decaf.Decoder[C], dd decaf.Decoder[D], de decaf.Decoder[E], df decaf.Decoder[F], dg decaf.Decoder[G], f func(A, B, C, D, E, F, G) Z) decaf.Decoder[Z] {
	return decaf.DecoderFunc[Z](func(v decaf.Value) decaf.Result[Z] {
		ra := da.Decode(v)
		a, ok := ra.Get()
		if !ok {
			return decaf.FailWith[Z](ra.Err())
		}
		rb := db.Decode(v)
		b, ok := rb.Get()
		if !ok {
			return decaf.FailWith[Z](rb.Err())
		}
		rc := dc.Decode(v)
		c, ok := rc.Get()
		if !ok {
			return decaf.FailWith[Z](rc.Err())
		}
		rd := dd.Decode(v)
		d, ok := rd.Get()
		if !ok {
			return decaf.FailWith[Z](rd.Err())
		}
		re := de.Decode(v)
		e, ok := re.Get()
		if !ok {
			return decaf.FailWith[Z](re.Err())
		}
		rf := df.Decode(v)
		fv, ok := rf.Get()
		if !ok {
			return decaf.FailWith[Z](rf.Err())
		}
		rg := dg.Decode(v)
		g, ok := rg.Get()
		if !ok {
			return decaf.FailWith[Z](rg.Err())
		}
		return decaf.Succeed(f(a, b, c, d, e, fv, g))
	})
}

// Map8 is Map2 for eight decoders. Wider records nest: decode a struct of
// eight with Map8, then merge it with the rest via Map2.
func Map8[A, B, C, D, E, F, G, H, Z any](da decaf.Decoder[A], db decaf.Decoder[B], dc decaf.Decoder[C], dd decaf.Decoder[D], de decaf.Decoder[E], df decaf.Decoder[F], dg decaf.Decoder[G], dh decaf.Decoder[H], f func(A, B, C, D, E, F, G, H) Z) decaf.Decoder[Z] {
	return decaf.DecoderFunc[Z](func(v decaf.Value) decaf.Result[Z] {
		ra := da.Decode(v)
		a, ok := ra.Get()
		if !ok {
			return decaf.FailWith[Z](ra.Err())
		}
		rb := db.Decode(v)
		b, ok := rb.Get()
		if !ok {
			return decaf.FailWith[Z](rb.Err())
		}
		rc := dc.Decode(v)
		c, ok := rc.Get()
		if !ok {
			return decaf.FailWith[Z](rc.Err())
		}
		rd := dd.Decode(v)
		d, ok := rd.Get()
		if !ok {
			return decaf.FailWith[Z](rd.Err())
		}
		re := de.Decode(v)
		e, ok := re.Get()
		if !ok {
			return decaf.FailWith[Z](re.Err())
		}
		rf := df.Decode(v)
		fv, ok := rf.Get()
		if !ok {
			return decaf.FailWith[Z](rf.Err())
		}
		rg := dg.Decode(v)
		g, ok := rg.Get()
		if !ok {
			return decaf.FailWith[Z](rg.Err())
		}
		rh := dh.Decode(v)
		h, ok := rh.Get()
		if !ok {
			return decaf.FailWith[Z](rh.Err())
		}
		return decaf.Succeed(f(a, b, c, d, e, fv, g, h))
	})
}

// AndThen decodes with d and feeds the success to f, which picks the decoder
// to run against the same value. The usual shape is dispatch on a
// discriminator field.
func AndThen[A, Z any](d decaf.Decoder[A], f func(A) decaf.Decoder[Z]) decaf.Decoder[Z] {
	return decaf.DecoderFunc[Z](func(v decaf.Value) decaf.Result[Z] {
		r := d.Decode(v)
		a, ok := r.Get()
		if !ok {
			return decaf.FailWith[Z](r.Err())
		}
		next := f(a)
		if next == nil {
			return decaf.Fail[Z](decaf.Error{
				Code:     decaf.CodeCustom,
				Expected: "a decoder from AndThen",
				Actual:   "nil",
			})
		}
		return next.Decode(v)
	})
}

// OneOf tries each alternative in order against the same value and yields
// the first success. When every alternative fails, the failure carries all
// branch errors concatenated in branch order.
func OneOf[T any](ds ...decaf.Decoder[T]) decaf.Decoder[T] {
	return decaf.DecoderFunc[T](func(v decaf.Value) decaf.Result[T] {
		if len(ds) == 0 {
			return decaf.Fail[T](decaf.Error{
				Code:     decaf.CodeCustom,
				Expected: "at least one alternative",
				Actual:   "none",
			})
		}
		var all decaf.Errors
		for _, d := range ds {
			r := d.Decode(v)
			if r.Ok() {
				return r
			}
			all = decaf.AppendErrors(all, r.Err()...)
		}
		return decaf.FailWith[T](all)
	})
}

// Succeed ignores the value and always yields v. Useful as the seed of an
// AndThen chain or to fill a constructor argument that has no input.
func Succeed[T any](v T) decaf.Decoder[T] {
	return decaf.DecoderFunc[T](func(decaf.Value) decaf.Result[T] {
		return decaf.Succeed(v)
	})
}

// Fail ignores the value and always fails with a custom error carrying msg.
func Fail[T any](msg string) decaf.Decoder[T] {
	return decaf.DecoderFunc[T](func(v decaf.Value) decaf.Result[T] {
		return decaf.Fail[T](decaf.Error{
			Code:     decaf.CodeCustom,
			Expected: msg,
			Actual:   v.Kind().String(),
		})
	})
}

// Raw yields the value itself, untouched. It never fails and is the escape
// hatch for payloads whose shape is decided later.
func Raw() decaf.Decoder[decaf.Value] {
	return decaf.DecoderFunc[decaf.Value](func(v decaf.Value) decaf.Result[decaf.Value] {
		return decaf.Succeed(v)
	})
}

// Nullable decodes null to nil and anything else with d.
func Nullable[T any](d decaf.Decoder[T]) decaf.Decoder[*T] {
	return decaf.DecoderFunc[*T](func(v decaf.Value) decaf.Result[*T] {
		if v.IsNull() {
			return decaf.Succeed[*T](nil)
		}
		r := d.Decode(v)
		val, ok := r.Get()
		if !ok {
			return decaf.FailWith[*T](r.Err())
		}
		return decaf.Succeed(&val)
	})
}

// Lazy defers building the decoder until the first decode so self-referential
// decoders can be declared without an initialization cycle. mk runs on every
// decode and must be cheap.
func Lazy[T any](mk func() decaf.Decoder[T]) decaf.Decoder[T] {
	return decaf.DecoderFunc[T](func(v decaf.Value) decaf.Result[T] {
		return mk().Decode(v)
	})
}
