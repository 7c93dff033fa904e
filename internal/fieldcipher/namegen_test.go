package fieldcipher

import (
	"math/rand/v2"
	"strings"
	"testing"
)

func TestNameGenerator_LengthAndAlphabet(t *testing.T) {
	g := NewNameGenerator(nil)

	for i := 0; i < 1000; i++ {
		alias := g.Generate()
		if len(alias) < aliasMinLen || len(alias) > aliasMaxLen {
			t.Fatalf("alias %q length = %d, want in [%d,%d]", alias, len(alias), aliasMinLen, aliasMaxLen)
		}
		for _, r := range alias {
			if !strings.ContainsRune(aliasAlphabet, r) {
				t.Fatalf("alias %q contains %q outside the alphabet", alias, r)
			}
		}
	}
}

func TestNameGenerator_CoversLengthRange(t *testing.T) {
	g := NewNameGenerator(rand.NewPCG(1, 2))

	seen := make(map[int]bool)
	for i := 0; i < 2000; i++ {
		seen[len(g.Generate())] = true
	}
	for n := aliasMinLen; n <= aliasMaxLen; n++ {
		if !seen[n] {
			t.Fatalf("length %d never generated in 2000 draws", n)
		}
	}
}

func TestNameGenerator_SeededDeterminism(t *testing.T) {
	g1 := NewNameGenerator(rand.NewPCG(7, 7))
	g2 := NewNameGenerator(rand.NewPCG(7, 7))

	for i := 0; i < 100; i++ {
		a, b := g1.Generate(), g2.Generate()
		if a != b {
			t.Fatalf("draw %d: %q != %q for identical seeds", i, a, b)
		}
	}
}
