package stac

import (
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"
)

// marshalWithExtras merges extras into the typed encoding of v. Typed fields
// win on key collisions. The merged form encodes through a map, whose keys
// marshal in sorted order, so document output stays deterministic.
func marshalWithExtras(v any, extras map[string]any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if len(extras) == 0 {
		return data, nil
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	for k, val := range extras {
		if _, exists := out[k]; !exists {
			out[k] = val
		}
	}
	return json.Marshal(out)
}

// Parse decodes a STAC document, dispatching on its "type" field.
func Parse(data []byte) (Object, error) {
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("stac: parse: %w", err)
	}
	switch ObjectKind(probe.Type) {
	case KindItem:
		var it Item
		if err := json.Unmarshal(data, &it); err != nil {
			return nil, fmt.Errorf("stac: parse item: %w", err)
		}
		return &it, nil
	case KindCollection:
		var c Collection
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("stac: parse collection: %w", err)
		}
		return &c, nil
	default:
		return nil, fmt.Errorf("stac: unrecognized object type %q", probe.Type)
	}
}

// Read decodes a STAC document from r.
func Read(r io.Reader) (Object, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// ReadFile decodes the STAC document at path.
func ReadFile(path string) (Object, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	obj, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return obj, nil
}

// WriteFile writes obj to path as indented JSON.
func WriteFile(path string, obj Object) error {
	data, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// toMap renders obj into its raw document form.
func toMap(obj Object) (map[string]any, error) {
	data, err := json.Marshal(obj)
	if err != nil {
		return nil, err
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}
