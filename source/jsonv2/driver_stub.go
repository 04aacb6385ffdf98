//go:build !jsonv2

// Package jsonv2 provides a driver backed by the experimental
// encoding/json/v2, enabled with the jsonv2 build tag. Building it also
// requires GOEXPERIMENT=jsonv2.
package jsonv2

import (
	"io"

	decaf "github.com/norelock/decaf"
	jsonsrc "github.com/norelock/decaf/source/json"
)

// Driver returns a stub that delegates to the encoding/json source when the
// jsonv2 tag is not enabled, so callers can register it unconditionally.
func Driver() decaf.JSONDriver { return stub{} }

type stub struct{}

func (stub) NewReader(r io.Reader) decaf.Source { return decaf.FromEngine(jsonsrc.NewReader(r)) }
func (stub) NewBytes(b []byte) decaf.Source     { return decaf.FromEngine(jsonsrc.NewBytes(b)) }
func (stub) Name() string                       { return "encoding/json (jsonv2 stub)" }
