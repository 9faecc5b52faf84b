package casing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/actionkit/pkg/casing"
)

func TestCamelCase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		opts     []casing.Option
		expected string
	}{
		{
			name:     "single upper word",
			input:    "INCREMENT",
			expected: "increment",
		},
		{
			name:     "screaming snake case",
			input:    "APP_LOADED",
			expected: "appLoaded",
		},
		{
			name:     "kebab case",
			input:    "user-signed-in",
			expected: "userSignedIn",
		},
		{
			name:     "already camel case",
			input:    "fetchUsers",
			expected: "fetchUsers",
		},
		{
			name:     "pascal case",
			input:    "FetchUsers",
			expected: "fetchUsers",
		},
		{
			name:     "acronym followed by word",
			input:    "XMLHttpRequest",
			expected: "xmlHttpRequest",
		},
		{
			name:     "spaces and punctuation",
			input:    "  load -- more!! items ",
			expected: "loadMoreItems",
		},
		{
			name:     "digits stay with preceding word",
			input:    "FETCH_V2_USERS",
			expected: "fetchV2Users",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "only separators",
			input:    "__--//",
			expected: "",
		},
		{
			name:     "upper first",
			input:    "app_loaded",
			opts:     []casing.Option{casing.UpperFirst(true)},
			expected: "AppLoaded",
		},
		{
			name:     "custom replacement",
			input:    "SAVE_&_CLOSE",
			opts:     []casing.Option{casing.CustomReplace(map[string]string{"&": "and"})},
			expected: "saveAndClose",
		},
		{
			name:     "unicode letters",
			input:    "ÉTAT_CHANGÉ",
			expected: "étatChangé",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, casing.CamelCase(tt.input, tt.opts...))
		})
	}
}

func TestNamespacedCamelCase(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "app/loaded", casing.NamespacedCamelCase("APP/LOADED", "/"))
	assert.Equal(t, "app/dataLoaded", casing.NamespacedCamelCase("APP/DATA_LOADED", "/"))
	assert.Equal(t, "app--counter--incrementBy", casing.NamespacedCamelCase("APP--COUNTER--INCREMENT_BY", "--"))
	assert.Equal(t, "increment", casing.NamespacedCamelCase("INCREMENT", "/"))

	t.Run("empty separator falls back to plain camel case", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "appLoaded", casing.NamespacedCamelCase("APP/LOADED", ""))
	})
}

func TestWords(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"APP", "LOADED"}, casing.Words("APP_LOADED"))
	assert.Equal(t, []string{"foo", "Bar"}, casing.Words("fooBar"))
	assert.Equal(t, []string{"XML", "Http"}, casing.Words("XMLHttp"))
	assert.Equal(t, []string{"v2", "Beta"}, casing.Words("v2Beta"))
	assert.Empty(t, casing.Words("..."))
}

func BenchmarkCamelCase(b *testing.B) {
	for b.Loop() {
		_ = casing.CamelCase("APP_DATA_LOADED_SUCCESSFULLY")
	}
}
