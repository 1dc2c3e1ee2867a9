package utility

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsBlank reports whether s is empty once leading and trailing white space is removed.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsNotBlank is the negation of IsBlank.
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// Capitalize upper-cases the first character of s and lower-cases the rest.
// Blank strings are returned unchanged.
//
// Example:
//
//	Capitalize("hELLO") // "Hello"
func Capitalize(s string) string {
	if IsBlank(s) {
		return s
	}

	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

// CamelToSnake converts a camelCase string to snake_case by inserting an
// underscore before every ASCII upper-case letter and lower-casing the result.
// Blank strings are returned unchanged.
//
// A leading upper-case letter also gets an underscore:
//
//	CamelToSnake("userName")  // "user_name"
//	CamelToSnake("CamelCase") // "_camel_case"
//	CamelToSnake("ID")        // "_i_d"
func CamelToSnake(s string) string {
	if IsBlank(s) {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s) + len(s)/2)
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			sb.WriteByte('_')
		}
		sb.WriteRune(r)
	}

	return strings.ToLower(sb.String())
}

// SnakeToCamel converts a snake_case string to camelCase. The first segment is
// kept as is and every following segment is passed through Capitalize.
// Trailing underscores are ignored. Blank strings are returned unchanged.
//
// Example:
//
//	SnakeToCamel("user_name")  // "userName"
//	SnakeToCamel("_user_name") // "UserName"
func SnakeToCamel(s string) string {
	if IsBlank(s) {
		return s
	}

	parts := strings.Split(s, "_")
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}

	if len(parts) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.Grow(len(s))
	sb.WriteString(parts[0])
	for _, p := range parts[1:] {
		sb.WriteString(Capitalize(p))
	}

	return sb.String()
}
