package vision

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanResponse(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{
			name:     "bare json untouched",
			raw:      `{"items": []}`,
			expected: `{"items": []}`,
		},
		{
			name:     "json fence",
			raw:      "```json\n{\"items\": []}\n```",
			expected: `{"items": []}`,
		},
		{
			name:     "plain fence",
			raw:      "```\n{\"items\": []}\n```",
			expected: `{"items": []}`,
		},
		{
			name:     "surrounding whitespace",
			raw:      "\n\n  {\"items\": []}  \n",
			expected: `{"items": []}`,
		},
		{
			name:     "fence with trailing newline inside",
			raw:      "```json\n{\"a\": 1}\n\n```\n",
			expected: `{"a": 1}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanResponse(tt.raw))
		})
	}
}
