//go:build !gojson

// Package gojson provides a goccy/go-json backed driver, enabled with the
// gojson build tag.
package gojson

import (
	"io"

	decaf "github.com/norelock/decaf"
	jsonsrc "github.com/norelock/decaf/source/json"
)

// Driver returns a stub that delegates to the encoding/json source when the
// gojson tag is not enabled, so callers can register it unconditionally.
func Driver() decaf.JSONDriver { return stub{} }

type stub struct{}

func (stub) NewReader(r io.Reader) decaf.Source { return decaf.FromEngine(jsonsrc.NewReader(r)) }
func (stub) NewBytes(b []byte) decaf.Source     { return decaf.FromEngine(jsonsrc.NewBytes(b)) }
func (stub) Name() string                       { return "encoding/json (gojson stub)" }
