package output

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"cdn-manager/core/faults"

	"github.com/itchyny/gojq"
	"gopkg.in/yaml.v3"
)

// Format is an output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a user supplied format name.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(name))) {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", faults.Configuration("unsupported output format %q (want json or yaml)", name)
	}
}

// Renderer writes values in one format.
type Renderer struct {
	format Format
	code   *gojq.Code
}

// NewRenderer builds a renderer. An empty query disables filtering.
func NewRenderer(format, query string) (*Renderer, error) {
	f, err := ParseFormat(format)
	if err != nil {
		return nil, err
	}

	r := &Renderer{format: f}
	if expression := strings.TrimSpace(query); expression != "" {
		parsed, err := gojq.Parse(expression)
		if err != nil {
			return nil, faults.Configuration("invalid jq expression: %v", err)
		}
		code, err := gojq.Compile(parsed)
		if err != nil {
			return nil, faults.Configuration("invalid jq expression: %v", err)
		}
		r.code = code
	}
	return r, nil
}

// Render writes v to w.
func (r *Renderer) Render(ctx context.Context, w io.Writer, v any) error {
	value, err := plain(v)
	if err != nil {
		return err
	}

	if r.code != nil {
		value, err = r.filter(ctx, value)
		if err != nil {
			return err
		}
	}

	switch r.format {
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(value); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return encoder.Close()
	default:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(value); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	}
}

func (r *Renderer) filter(ctx context.Context, value any) (any, error) {
	iterator := r.code.RunWithContext(ctx, value)
	results := make([]any, 0, 1)
	for {
		item, ok := iterator.Next()
		if !ok {
			break
		}
		if itemErr, isErr := item.(error); isErr {
			return nil, fmt.Errorf("failed to evaluate jq expression: %w", itemErr)
		}
		results = append(results, item)
	}

	switch len(results) {
	case 0:
		return nil, nil
	case 1:
		return results[0], nil
	default:
		return results, nil
	}
}

// plain round-trips v through JSON so jq and yaml only see maps, slices and scalars.
func plain(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to decode result: %w", err)
	}
	return out, nil
}
