package yamlutil

import (
	"bytes"
	"io"

	"gopkg.in/yaml.v3"
)

func Encode(w io.Writer, v any, indent int) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(indent)
	if err := encoder.Encode(v); err != nil {
		_ = encoder.Close()
		return err
	}
	return encoder.Close()
}

func MarshalWithIndent(v any, indent int) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, v, indent); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
