package utility

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestIsBlank(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "empty", input: "", expected: true},
		{name: "spaces", input: "   ", expected: true},
		{name: "tabs and newlines", input: "\t\n\r ", expected: true},
		{name: "text", input: "foo", expected: false},
		{name: "padded text", input: "  foo  ", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, IsBlank(tt.input), tt.expected)
			assert.Equal(t, IsNotBlank(tt.input), !tt.expected)
		})
	}
}

func TestCapitalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty", input: "", expected: ""},
		{name: "blank is returned unchanged", input: "  ", expected: "  "},
		{name: "lower case", input: "hello", expected: "Hello"},
		{name: "mixed case", input: "hELLO wORLD", expected: "Hello world"},
		{name: "single letter", input: "a", expected: "A"},
		{name: "leading digit", input: "1ST", expected: "1st"},
		{name: "non ascii", input: "élan", expected: "Élan"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, Capitalize(tt.input), tt.expected)
		})
	}
}

func TestCamelToSnake(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty", input: "", expected: ""},
		{name: "blank is returned unchanged", input: " ", expected: " "},
		{name: "camel case", input: "userName", expected: "user_name"},
		{name: "multiple words", input: "createdAtDate", expected: "created_at_date"},
		{name: "leading upper case gets an underscore", input: "CamelCase", expected: "_camel_case"},
		{name: "every upper case letter is split", input: "ID", expected: "_i_d"},
		{name: "already snake case", input: "user_name", expected: "user_name"},
		{name: "digits are kept", input: "addressLine2", expected: "address_line2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, CamelToSnake(tt.input), tt.expected)
		})
	}
}

func TestSnakeToCamel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty", input: "", expected: ""},
		{name: "blank is returned unchanged", input: "  ", expected: "  "},
		{name: "snake case", input: "user_name", expected: "userName"},
		{name: "multiple words", input: "created_at_date", expected: "createdAtDate"},
		{name: "first segment kept verbatim", input: "USER_NAME", expected: "USERName"},
		{name: "leading underscore", input: "_user_name", expected: "UserName"},
		{name: "double underscore", input: "a__b", expected: "aB"},
		{name: "trailing underscore", input: "user_", expected: "user"},
		{name: "only underscores", input: "___", expected: ""},
		{name: "no underscore", input: "user", expected: "user"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, SnakeToCamel(tt.input), tt.expected)
		})
	}
}

func TestCaseConversionRoundTrip(t *testing.T) {
	t.Parallel()

	assert.Equal(t, CamelToSnake("UserName"), "_user_name")
	assert.Equal(t, SnakeToCamel(CamelToSnake("UserName")), "UserName")
	assert.Equal(t, SnakeToCamel(CamelToSnake("userName")), "userName")

	// round trip does not hold for underscores or non ASCII upper case letters
	assert.Equal(t, SnakeToCamel(CamelToSnake("my_Var")), "myVar")
	assert.Equal(t, SnakeToCamel(CamelToSnake("Élan")), "élan")
}
