// Package cbor converts CBOR items into decaf Values via fxamacker/cbor.
package cbor

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"
	"strconv"
	"sync"

	_cbor "github.com/fxamacker/cbor/v2"

	decaf "github.com/norelock/decaf"
)

var (
	decModeOnce sync.Once
	decMode     _cbor.DecMode
	decModeErr  error
)

func getDecMode() (_cbor.DecMode, error) {
	decModeOnce.Do(func() {
		decMode, decModeErr = _cbor.DecOptions{
			MaxNestedLevels: 256,
		}.DecMode()
	})
	return decMode, decModeErr
}

// Parse converts a single CBOR item into a Value. Byte strings become base64
// strings, bignums go through big.Int, tags unwrap to their content, and
// integer map keys are stringified; non-finite floats are rejected since
// they have no JSON value form.
func Parse(data []byte) (decaf.Value, error) {
	dm, err := getDecMode()
	if err != nil {
		return decaf.Value{}, fmt.Errorf("cbor: %w", err)
	}
	var raw any
	if err := dm.Unmarshal(data, &raw); err != nil {
		return decaf.Value{}, fmt.Errorf("cbor: %w", err)
	}
	norm, err := normalize(raw)
	if err != nil {
		return decaf.Value{}, err
	}
	v, err := decaf.ValueOf(norm)
	if err != nil {
		return decaf.Value{}, fmt.Errorf("cbor: %w", err)
	}
	return v, nil
}

// normalize rewrites CBOR-decoded trees into the JSON-like shape ValueOf
// accepts.
func normalize(x any) (any, error) {
	switch t := x.(type) {
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, v := range t {
			ks, err := mapKey(k)
			if err != nil {
				return nil, err
			}
			nv, err := normalize(v)
			if err != nil {
				return nil, err
			}
			out[ks] = nv
		}
		return out, nil
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, v := range t {
			nv, err := normalize(v)
			if err != nil {
				return nil, err
			}
			out[k] = nv
		}
		return out, nil
	case []any:
		out := make([]any, len(t))
		for i := range t {
			nv, err := normalize(t[i])
			if err != nil {
				return nil, err
			}
			out[i] = nv
		}
		return out, nil
	case []byte:
		return base64.StdEncoding.EncodeToString(t), nil
	case big.Int:
		return json.Number(t.String()), nil
	case *big.Int:
		return json.Number(t.String()), nil
	case float32:
		return float64(t), nil
	case _cbor.Tag:
		return normalize(t.Content)
	default:
		return x, nil
	}
}

// mapKey stringifies CBOR map keys the way RFC 8949 suggests for JSON
// conversion: text keys pass through, integer keys become decimal strings.
func mapKey(k any) (string, error) {
	switch t := k.(type) {
	case string:
		return t, nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	case uint64:
		return strconv.FormatUint(t, 10), nil
	default:
		return "", fmt.Errorf("cbor: unsupported map key %v (%T)", k, k)
	}
}
