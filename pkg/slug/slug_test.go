package slug_test

import (
	"testing"

	"kodeksa-backend/pkg/slug"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	t.Run("Should lower-case and hyphenate words", func(t *testing.T) {
		assert.Equal(t, "desarrollador-full-stack", slug.Generate("Desarrollador Full Stack"))
	})

	t.Run("Should strip punctuation and collapse hyphens", func(t *testing.T) {
		got := slug.Generate("  Multi   Space--Title!! ")
		assert.Equal(t, "multi-space-title", got)
		assert.NotContains(t, got, "--")
		assert.False(t, len(got) > 0 && (got[0] == '-' || got[len(got)-1] == '-'))
	})

	t.Run("Should keep digits and underscores", func(t *testing.T) {
		assert.Equal(t, "backend_dev-2024", slug.Generate("Backend_Dev 2024"))
	})

	t.Run("Should return empty string for punctuation-only input", func(t *testing.T) {
		assert.Equal(t, "", slug.Generate("!!! ??? "))
	})

	t.Run("Should be idempotent over its own output", func(t *testing.T) {
		once := slug.Generate("María García López")
		assert.Equal(t, once, slug.Generate(once))
	})
}
