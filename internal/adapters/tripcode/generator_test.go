package tripcode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Generate(t *testing.T) {
	gen := NewGenerator()

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		code, err := gen.Generate()
		require.NoError(t, err)
		require.Len(t, code, CodeLength)
		for _, c := range code {
			assert.True(t, strings.ContainsRune(codeChars, c), "unexpected character %q", c)
		}
		seen[code] = struct{}{}
	}
	// 100 draws from a 32^6 space colliding would point at a broken generator.
	assert.Greater(t, len(seen), 95)
}
