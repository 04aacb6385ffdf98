// Package yaml converts YAML documents into decaf Values via gopkg.in/yaml.v3.
package yaml

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"time"

	yamlv3 "gopkg.in/yaml.v3"

	decaf "github.com/norelock/decaf"
)

// Parse converts a single YAML document into a Value. Mapping keys must be
// strings; timestamps become RFC 3339 strings and binary scalars become
// base64 strings, mirroring their JSON conventions.
func Parse(data []byte) (decaf.Value, error) {
	var raw any
	if err := yamlv3.Unmarshal(data, &raw); err != nil {
		return decaf.Value{}, fmt.Errorf("yaml: %w", err)
	}
	return toValue(raw)
}

// ParseAll converts a multi-document YAML stream into one Value per document.
func ParseAll(data []byte) ([]decaf.Value, error) {
	dec := yamlv3.NewDecoder(bytes.NewReader(data))
	var out []decaf.Value
	for {
		var raw any
		err := dec.Decode(&raw)
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("yaml: document %d: %w", len(out), err)
		}
		v, err := toValue(raw)
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", len(out), err)
		}
		out = append(out, v)
	}
}

func toValue(raw any) (decaf.Value, error) {
	norm, err := normalize(raw)
	if err != nil {
		return decaf.Value{}, err
	}
	v, err := decaf.ValueOf(norm)
	if err != nil {
		return decaf.Value{}, fmt.Errorf("yaml: %w", err)
	}
	return v, nil
}

// normalize rewrites YAML-decoded trees (which may contain map[any]any,
// timestamps and binary scalars) into the JSON-like shape ValueOf accepts.
func normalize(x any) (any, error) {
	switch t := x.(type) {
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
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, v := range t {
			ks, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("yaml: unsupported mapping key %v (%T)", k, k)
			}
			nv, err := normalize(v)
			if err != nil {
				return nil, err
			}
			out[ks] = nv
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
	case time.Time:
		return t.Format(time.RFC3339Nano), nil
	case []byte:
		return base64.StdEncoding.EncodeToString(t), nil
	default:
		return x, nil
	}
}
