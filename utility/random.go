package utility

import (
	"math/rand/v2"

	"github.com/google/uuid"
)

// alphanumeric is the character set used by RandomAlphanumeric.
const alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// RandomAlphanumeric returns a string of exactly length characters drawn
// uniformly from [A-Za-z0-9]. It returns an empty string if length <= 0.
//
// The characters come from the math/rand/v2 global source, so the result is
// not suitable for secrets or tokens.
func RandomAlphanumeric(length int) string {
	return randomFrom(rand.IntN, length)
}

// RandomAlphanumericFrom behaves like RandomAlphanumeric but draws from r.
// Seeding r makes the output reproducible.
//
// Example:
//
//	r := rand.New(rand.NewPCG(1, 2))
//	s := RandomAlphanumericFrom(r, 8)
func RandomAlphanumericFrom(r *rand.Rand, length int) string {
	return randomFrom(r.IntN, length)
}

// RandomUUID returns a new random (version 4) UUID in its canonical string form.
func RandomUUID() string {
	return uuid.NewString()
}

func randomFrom(intN func(n int) int, length int) string {
	if length <= 0 {
		return ""
	}

	b := make([]byte, length)
	for i := range b {
		b[i] = alphanumeric[intN(len(alphanumeric))]
	}

	return string(b)
}
