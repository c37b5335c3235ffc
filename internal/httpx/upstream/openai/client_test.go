package openai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractJSON(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"bare", `{"strengths":[]}`, `{"strengths":[]}`},
		{"fenced", "```json\n{\"strengths\":[]}\n```", `{"strengths":[]}`},
		{"fenced no lang", "```\n[\"a\",\"b\"]\n```", `["a","b"]`},
		{"surrounding whitespace", "  {\"a\":1}\n", `{"a":1}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, extractJSON(tc.in))
		})
	}
}
