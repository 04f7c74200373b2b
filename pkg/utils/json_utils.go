package utils

import (
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// ConvertToJSON converts the provided value to an indented JSON document
func ConvertToJSON(data any) (string, error) {
	var json = jsoniter.ConfigCompatibleWithStandardLibrary
	j, err := json.MarshalIndent(data, "", strings.Repeat(" ", DefaultYAMLIndent))
	if err != nil {
		return "", err
	}
	return string(j) + "\n", nil
}
