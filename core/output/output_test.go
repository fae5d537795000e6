package output

import (
	"bytes"
	"context"
	"testing"

	"cdn-manager/core/faults"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Action   string         `json:"action"`
	Changed  bool           `json:"changed"`
	Resource map[string]any `json:"resource"`
}

func TestRender_JSON(t *testing.T) {
	r, err := NewRenderer("json", "")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(context.Background(), &buf, sample{Action: "none", Resource: map[string]any{"port": 80}}))
	assert.JSONEq(t, `{"action":"none","changed":false,"resource":{"port":80}}`, buf.String())
}

func TestRender_YAML(t *testing.T) {
	r, err := NewRenderer("YAML", "")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(context.Background(), &buf, sample{Action: "created", Changed: true, Resource: map[string]any{"hostname": "o1"}}))
	assert.Equal(t, "action: created\nchanged: true\nresource:\n  hostname: o1\n", buf.String())
}

func TestRender_Query(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"single value", ".resource.hostname", "\"o1\"\n"},
		{"multiple values", ".resource | keys[]", "[\n  \"hostname\",\n  \"port\"\n]\n"},
		{"no values", "empty", "null\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRenderer("json", tt.query)
			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, r.Render(context.Background(), &buf, sample{Resource: map[string]any{"hostname": "o1", "port": 80}}))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestRender_QueryRuntimeError(t *testing.T) {
	r, err := NewRenderer("json", ".action | keys")
	require.NoError(t, err)

	var buf bytes.Buffer
	err = r.Render(context.Background(), &buf, sample{Action: "none"})
	assert.ErrorContains(t, err, "failed to evaluate jq expression")
}

func TestNewRenderer_Invalid(t *testing.T) {
	_, err := NewRenderer("xml", "")
	assert.True(t, faults.IsCategory(err, faults.ConfigurationError))

	_, err = NewRenderer("json", ".[")
	assert.True(t, faults.IsCategory(err, faults.ConfigurationError))
}
