package chat

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andriikh/ecomgen/internal/domain"
)

func TestRenderResultsTruncatesOnRuneBoundary(t *testing.T) {
	long := strings.Repeat("é", descriptionPreview+40)
	out := renderResults([]domain.Product{{
		Name:        "Café Premium Grinder",
		Category:    "Home & Kitchen",
		Description: long,
	}})

	require.True(t, utf8.ValidString(out), "truncation split a multi-byte rune")
	assert.Contains(t, out, strings.Repeat("é", descriptionPreview)+"...")
	assert.NotContains(t, out, strings.Repeat("é", descriptionPreview+1))
}

func TestRenderResultsShortDescriptionUntouched(t *testing.T) {
	out := renderResults([]domain.Product{{
		Name:        "SoundMax Pro Headphones",
		Category:    "Electronics",
		Description: "Wireless over-ear headphones",
	}})
	assert.Contains(t, out, "Wireless over-ear headphones")
	assert.NotContains(t, out, "...")
}

func TestRenderResultsEmpty(t *testing.T) {
	assert.Equal(t, "No matches.", renderResults(nil))
}
