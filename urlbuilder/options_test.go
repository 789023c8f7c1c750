package urlbuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.True(t, opts.ExcludeNullQueryValues)
	assert.False(t, opts.ExcludeNullFragmentValues)
}

func TestParseOptions(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Options
	}{
		{
			name:     "empty document",
			input:    "",
			expected: DefaultOptions(),
		},
		{
			name:     "query override",
			input:    "exclude_null_query_values: false\n",
			expected: Options{ExcludeNullQueryValues: false, ExcludeNullFragmentValues: false},
		},
		{
			name:     "fragment override",
			input:    "exclude_null_fragment_values: true\n",
			expected: Options{ExcludeNullQueryValues: true, ExcludeNullFragmentValues: true},
		},
		{
			name:     "both keys",
			input:    "exclude_null_query_values: false\nexclude_null_fragment_values: true\n",
			expected: Options{ExcludeNullQueryValues: false, ExcludeNullFragmentValues: true},
		},
		{
			name:     "json document",
			input:    `{"exclude_null_query_values": false}`,
			expected: Options{ExcludeNullQueryValues: false, ExcludeNullFragmentValues: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := ParseOptions([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, opts)
		})
	}
}

func TestParseOptionsErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "unknown key", input: "exclude_nulls: true\n"},
		{name: "not a bool", input: "exclude_null_query_values: maybe\n"},
		{name: "not a mapping", input: "- true\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseOptions([]byte(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "urlbuilder: decode options")
		})
	}
}

func TestOptionsYAMLTags(t *testing.T) {
	data, err := yaml.Marshal(DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "exclude_null_query_values: true\nexclude_null_fragment_values: false\n", string(data))

	opts, err := ParseOptions(data)
	require.NoError(t, err)
	assert.Equal(t, DefaultOptions(), opts)
}

func TestParsedOptionsDriveRender(t *testing.T) {
	opts, err := ParseOptions([]byte("exclude_null_query_values: false\nexclude_null_fragment_values: true\n"))
	require.NoError(t, err)

	b := NewWithOptions("http://h", opts).Query("a", nil).Anchor("main")
	assert.Equal(t, "http://h?a", b.String())
}
