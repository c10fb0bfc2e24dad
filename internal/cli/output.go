package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/cmyk/pkg/cmyk"
)

// Output formats.
const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

// colorResult is the structured form of a command result.
type colorResult struct {
	Value      string     `json:"value" yaml:"value"`
	Components cmyk.Color `json:"components" yaml:"components"`
}

// writeColor prints col in the configured output format.
func (a *app) writeColor(w io.Writer, col cmyk.Color) error {
	format := a.cfg.GetString(cfgKeyOutput)
	res := colorResult{Value: col.String(), Components: col}

	switch format {
	case outputText:
		_, err := fmt.Fprintln(w, col)
		return err
	case outputJSON:
		out, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	case outputYAML:
		out, err := yaml.Marshal(res)
		if err != nil {
			return fmt.Errorf("marshal YAML: %w", err)
		}
		_, err = w.Write(out)
		return err
	default:
		return fmt.Errorf("unknown output format %q (valid: %s, %s, %s)", format, outputText, outputJSON, outputYAML)
	}
}
