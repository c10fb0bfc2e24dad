package cmyk

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// components is the wire form of a Color in JSON and YAML documents.
type components struct {
	Cyan    int `json:"cyan" yaml:"cyan"`
	Magenta int `json:"magenta" yaml:"magenta"`
	Yellow  int `json:"yellow" yaml:"yellow"`
	Black   int `json:"black" yaml:"black"`
}

// MarshalJSON encodes c as an object with the four component percentages.
func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal(components{c.cyan, c.magenta, c.yellow, c.black})
}

// UnmarshalJSON decodes an object produced by MarshalJSON. Components that
// are missing, fractional or outside [0, 100] make it fail with ErrValidation.
func (c *Color) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return err
	}

	attrs := make(map[string]any, len(raw))
	for k, v := range raw {
		num, ok := v.(json.Number)
		if !ok {
			continue
		}
		if n, err := num.Int64(); err == nil {
			attrs[k] = n
		}
	}

	col, err := FromMap(attrs)
	if err != nil {
		return err
	}
	*c = col
	return nil
}

// MarshalYAML encodes c as a mapping with the four component percentages.
func (c Color) MarshalYAML() (any, error) {
	return components{c.cyan, c.magenta, c.yellow, c.black}, nil
}

// UnmarshalYAML decodes a mapping produced by MarshalYAML, with the same
// validation as UnmarshalJSON.
func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	var raw map[string]any
	if err := node.Decode(&raw); err != nil {
		return err
	}
	col, err := FromMap(raw)
	if err != nil {
		return err
	}
	*c = col
	return nil
}
