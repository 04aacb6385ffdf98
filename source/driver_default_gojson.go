// Package source registers the preferred JSON driver. Importing it (usually
// blank) makes go-json the process-wide driver when built with the gojson
// tag; otherwise the registration is a no-op stub.
package source

import (
	decaf "github.com/norelock/decaf"
	drvgojson "github.com/norelock/decaf/source/gojson"
)

// init lives outside the root package to avoid an import cycle.
func init() { decaf.SetJSONDriver(drvgojson.Driver()) }
