package utility

import (
	"slices"
)

// IsEmpty reports whether s is nil or has no elements.
func IsEmpty[T any](s []T) bool {
	return len(s) == 0
}

// IsNotEmpty is the negation of IsEmpty.
func IsNotEmpty[T any](s []T) bool {
	return !IsEmpty(s)
}

// SafeGet returns a pointer to a copy of the element at index, or nil if
// index is outside [0, len(s)).
func SafeGet[T any](s []T, index int) *T {
	if index < 0 || index >= len(s) {
		return nil
	}

	return Ptr(s[index])
}

// Paginate returns a copy of the elements of the given 1-indexed page.
//
// An empty slice is returned if s is empty, page or pageSize are lower
// than 1, or the page starts past the end of s.
//
// Example:
//
//	Paginate([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 2, 3) // [4 5 6]
func Paginate[T any](s []T, page, pageSize int) []T {
	if IsEmpty(s) || page < 1 || pageSize < 1 {
		return []T{}
	}

	// equivalent to (page-1)*pageSize >= len(s), without overflowing
	if page-1 > (len(s)-1)/pageSize {
		return []T{}
	}

	start := (page - 1) * pageSize
	end := start + min(pageSize, len(s)-start)

	return slices.Clone(s[start:end])
}

// PageCount returns how many pages of pageSize elements are needed to hold
// total elements. It returns 0 if total or pageSize are lower than 1.
func PageCount(total, pageSize int) int {
	if total < 1 || pageSize < 1 {
		return 0
	}

	return (total-1)/pageSize + 1
}
