package directive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_SourceOnly(t *testing.T) {
	tests := []string{"services", "query", "route", "body", "header"}

	for _, source := range tests {
		t.Run(source, func(t *testing.T) {
			d, err := Parse(source)
			require.NoError(t, err)
			assert.Equal(t, source, d.Source)
			assert.Empty(t, d.Name)
			assert.Empty(t, d.Binder)
		})
	}
}

func TestParse_NameOption(t *testing.T) {
	d, err := Parse("query,name=page")
	require.NoError(t, err)
	assert.Equal(t, "query", d.Source)
	assert.Equal(t, "page", d.Name)
}

func TestParse_HeaderName(t *testing.T) {
	d, err := Parse("header,name=X-Trace-Id")
	require.NoError(t, err)
	assert.Equal(t, "header", d.Source)
	assert.Equal(t, "X-Trace-Id", d.Name)
}

func TestParse_CustomBinder(t *testing.T) {
	d, err := Parse("custom,binder=money")
	require.NoError(t, err)
	assert.Equal(t, "custom", d.Source)
	assert.Equal(t, "money", d.Binder)
}

func TestParse_CustomWithoutBinder(t *testing.T) {
	_, err := Parse("custom")
	require.Error(t, err)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Message, "binder")
}

func TestParse_ExtraOptions(t *testing.T) {
	d, err := Parse("query,name=ids,delim=comma,required")
	require.NoError(t, err)
	assert.Equal(t, "ids", d.Name)
	assert.Equal(t, "comma", d.Options["delim"])

	// Bare flags carry an empty value
	value, ok := d.Options["required"]
	assert.True(t, ok)
	assert.Empty(t, value)
}

func TestParse_Whitespace(t *testing.T) {
	d, err := Parse("  query , name=page  ")
	require.NoError(t, err)
	assert.Equal(t, "query", d.Source)
	assert.Equal(t, "page", d.Name)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		tag  string
	}{
		{"empty", ""},
		{"blank", "   "},
		{"missing value", "query,name="},
		{"leading comma", ",query"},
		{"duplicate option", "query,delim=a,delim=b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.tag)
			require.Error(t, err)

			var parseErr *ParseError
			assert.ErrorAs(t, err, &parseErr)
		})
	}
}

func TestValidate_UnknownSource(t *testing.T) {
	_, err := Validate("cookie,name=session")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown binding source")

	d, err := Validate("services")
	require.NoError(t, err)
	assert.Equal(t, "services", d.Source)
}
