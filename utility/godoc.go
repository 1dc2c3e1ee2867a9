// Package utility provides a set of small, stateless helper functions commonly
// used across Go projects. It includes string predicates and case conversion,
// date formatting and parsing with a fixed "YYYY-MM-DD HH:MM:SS" layout, hex
// digests, random string generation, and safe access and pagination over slices.
//
// All functions are safe for concurrent use. Invalid input never returns an
// error: it degrades to a default value (an empty string, an empty slice or a
// nil pointer).
package utility
