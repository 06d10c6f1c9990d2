package symspell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransferCaseClasses(t *testing.T) {
	cases := []struct {
		src, target, want string
	}{
		{"hello", "world", "world"},
		{"HELLO", "world", "WORLD"},
		{"Hello", "world", "World"},
		{"HeLLo", "world", "WoRLd"},
	}
	for _, c := range cases {
		assert.Equalf(t, c.want, transferCase(c.src, c.target), "transferCase(%q, %q)", c.src, c.target)
	}
}

// Applying a source's casing twice is the same as applying it once:
// transferCase(src, transferCase(src, tgt)) == transferCase(src, tgt).
func TestTransferCaseIdempotence(t *testing.T) {
	sources := []string{"hello", "HELLO", "Hello", "HeLLo", "", "123", "Mc'Donald"}
	targets := []string{"world", "example", "a", "xyzabc", "WoRd"}

	for _, src := range sources {
		for _, tgt := range targets {
			once := transferCase(src, tgt)
			twice := transferCase(src, once)
			assert.Equalf(t, once, twice, "transferCase(%q, ...) not idempotent", src)
		}
	}
}

func TestClassifyCasing(t *testing.T) {
	cases := []struct {
		in   string
		want casingClass
	}{
		{"hello", casingLower},
		{"HELLO", casingUpper},
		{"Hello", casingTitle},
		{"HeLLo", casingMixed},
		{"123", casingLower},
		{"", casingLower},
	}
	for _, c := range cases {
		assert.Equalf(t, c.want, classifyCasing(c.in), "classifyCasing(%q)", c.in)
	}
}
