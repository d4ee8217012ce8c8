package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain json untouched",
			input:    `{"score": 0.8}`,
			expected: `{"score": 0.8}`,
		},
		{
			name:     "json fence",
			input:    "```json\n{\"score\": 0.8}\n```",
			expected: `{"score": 0.8}`,
		},
		{
			name:     "bare fence with language id",
			input:    "```javascript\n{\"score\": 0.8}\n```",
			expected: `{"score": 0.8}`,
		},
		{
			name:     "bare fence without language id",
			input:    "```\n{\"score\": 0.8}\n```",
			expected: `{"score": 0.8}`,
		},
		{
			name:     "surrounding whitespace",
			input:    "  \n```json\n{}\n```  ",
			expected: `{}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanJSONBlock(tt.input))
		})
	}
}
