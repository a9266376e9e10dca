package jsonlogic

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a JsonLogic rule document
type Format string

const (
	// FormatAuto reads JSON if the document is valid JSON, YAML otherwise
	FormatAuto Format = "auto"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Decode reads a single JsonLogic rule from r.
// JSON numbers are kept as json.Number so that Parse sees them unrounded.
func Decode(r io.Reader, format Format) (any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "could not read rule")
	}
	switch format {
	case FormatJSON:
		return decodeJSON(data)
	case FormatYAML:
		return decodeYAML(data)
	case FormatAuto, "":
		if json.Valid(data) {
			return decodeJSON(data)
		}
		return decodeYAML(data)
	}
	return nil, errors.Errorf("unknown rule format %q", format)
}

func decodeJSON(data []byte) (any, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	var value any
	if err := decoder.Decode(&value); err != nil {
		return nil, errors.Wrap(err, "could not decode JSON rule")
	}
	return value, nil
}

func decodeYAML(data []byte) (any, error) {
	var value any
	if err := yaml.Unmarshal(data, &value); err != nil {
		return nil, errors.Wrap(err, "could not decode YAML rule")
	}
	return value, nil
}
