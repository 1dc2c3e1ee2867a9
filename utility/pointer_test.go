package utility

import (
	"testing"
	"time"

	"gotest.tools/v3/assert"
)

func TestPtr(t *testing.T) {
	t.Parallel()

	type input struct {
		data any
	}

	tests := []struct {
		name  string
		input input
	}{
		{
			name:  "get pointer to int",
			input: input{data: 1},
		},
		{
			name:  "get pointer to string",
			input: input{data: "foo"},
		},
		{
			name:  "get pointer to time",
			input: input{data: time.Date(2023, time.June, 1, 12, 0, 0, 0, time.UTC)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Ptr(tt.input.data)

			assert.Assert(t, p != nil)
			assert.Equal(t, *p, tt.input.data)
		})
	}
}

func TestPtrCopiesValue(t *testing.T) {
	t.Parallel()

	v := 1
	p := Ptr(v)
	*p = 2

	assert.Equal(t, v, 1)
}
