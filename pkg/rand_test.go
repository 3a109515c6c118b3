package pkg

import (
	"strings"
	"testing"
)

func TestRandString(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		code := RandString(6)
		if len(code) != 6 {
			t.Fatalf("len = %d, want 6", len(code))
		}
		for _, ch := range code {
			if !strings.ContainsRune(codeAlphabet, ch) {
				t.Fatalf("code %q contains %q outside the alphabet", code, ch)
			}
		}
		seen[code] = true
	}
	if len(seen) < 90 {
		t.Fatalf("only %d distinct codes out of 100", len(seen))
	}
}
