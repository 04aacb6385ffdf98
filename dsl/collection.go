package dsl

import (
	"sort"

	decaf "github.com/norelock/decaf"
)

// Array decodes every element of an array with elem, in order, stopping at
// the first element that fails; the failure carries the element index on its
// path. An empty array decodes to an empty non-nil slice.
func Array[T any](elem decaf.Decoder[T]) decaf.Decoder[[]T] {
	return decaf.DecoderFunc[[]T](func(v decaf.Value) decaf.Result[[]T] {
		ra := v.AsArray()
		elems, ok := ra.Get()
		if !ok {
			return decaf.FailWith[[]T](ra.Err())
		}
		out := make([]T, 0, len(elems))
		for i, ev := range elems {
			r := elem.Decode(ev)
			val, ok := r.Get()
			if !ok {
				return decaf.FailWith[[]T](r.Err().PrefixIndex(i))
			}
			out = append(out, val)
		}
		return decaf.Succeed(out)
	})
}

// Dict decodes every member of an object with elem, keeping the keys as-is.
// Members are visited in sorted key order so the first failure is the same
// on every run; a failure carries the member key on its path and no partial
// map is produced.
func Dict[T any](elem decaf.Decoder[T]) decaf.Decoder[map[string]T] {
	return decaf.DecoderFunc[map[string]T](func(v decaf.Value) decaf.Result[map[string]T] {
		ro := v.AsObject()
		fields, ok := ro.Get()
		if !ok {
			return decaf.FailWith[map[string]T](ro.Err())
		}
		keys := make([]string, 0, len(fields))
		for k := range fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make(map[string]T, len(fields))
		for _, k := range keys {
			r := elem.Decode(fields[k])
			val, ok := r.Get()
			if !ok {
				return decaf.FailWith[map[string]T](r.Err().PrefixKey(k))
			}
			out[k] = val
		}
		return decaf.Succeed(out)
	})
}
