package pkg

import (
	"math/rand"
	"time"
)

const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

var seeded = rand.New(rand.NewSource(time.Now().UnixNano()))

// RandString builds a short room code; ambiguous characters are left out of
// the alphabet.
func RandString(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = codeAlphabet[seeded.Intn(len(codeAlphabet))]
	}
	return string(b)
}
