package utils

import (
	"bytes"

	"gopkg.in/yaml.v3"
)

const DefaultYAMLIndent = 2

type YAMLOptions struct {
	Indent int
}

// ConvertToYAML converts the provided value to a YAML document
func ConvertToYAML(data any, opts ...YAMLOptions) (string, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)

	indent := DefaultYAMLIndent
	if len(opts) > 0 && opts[0].Indent > 0 {
		indent = opts[0].Indent
	}
	encoder.SetIndent(indent)

	if err := encoder.Encode(data); err != nil {
		return "", err
	}
	if err := encoder.Close(); err != nil {
		return "", err
	}
	return buf.String(), nil
}
