package kv

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/ValentinKolb/hKV/lib/command"
	"github.com/ValentinKolb/hKV/lib/kv"
	"gopkg.in/yaml.v3"
)

type outputFormat string

const (
	outputYAML outputFormat = "yaml"
	outputJSON outputFormat = "json"
)

func parseOutputFormat(s string) (outputFormat, error) {
	switch f := outputFormat(s); f {
	case outputYAML, outputJSON:
		return f, nil
	default:
		return "", fmt.Errorf("invalid output format %s (expected yaml or json)", s)
	}
}

// printedResponse is the human-readable form of a response.
// Values are printed as plain scalars, binary values as base64, the default value as null.
type printedResponse struct {
	Status  uint32        `yaml:"status" json:"status"`
	Message string        `yaml:"message,omitempty" json:"message,omitempty"`
	Values  []any         `yaml:"values,omitempty" json:"values,omitempty"`
	Pairs   []printedPair `yaml:"pairs,omitempty" json:"pairs,omitempty"`
}

type printedPair struct {
	Key   string `yaml:"key" json:"key"`
	Value any    `yaml:"value" json:"value"`
}

func printable(v kv.Value) any {
	if b, err := v.AsBinary(); err == nil {
		return base64.StdEncoding.EncodeToString(b)
	}
	return v.Interface()
}

func formatResponse(resp command.CommandResponse, format outputFormat) ([]byte, error) {
	out := printedResponse{
		Status:  resp.Status,
		Message: resp.Message,
	}
	for _, v := range resp.Values {
		out.Values = append(out.Values, printable(v))
	}
	for _, p := range resp.Pairs {
		out.Pairs = append(out.Pairs, printedPair{Key: p.Key, Value: printable(p.Value)})
	}

	if format == outputJSON {
		b, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(b, '\n'), nil
	}
	return yaml.Marshal(out)
}
