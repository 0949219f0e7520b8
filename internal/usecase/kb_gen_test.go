package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andriikh/ecomgen/internal/rng"
)

func TestKBArticles(t *testing.T) {
	g := &KBGenerator{Rand: rng.New(42)}
	articles := g.Generate()
	require.Len(t, articles, 8)

	ids := map[string]bool{}
	for i, a := range articles {
		assert.Equal(t, kbSeeds[i].docID, a.DocID)
		assert.False(t, ids[a.DocID], "duplicate doc id %q", a.DocID)
		ids[a.DocID] = true

		assert.NotEmpty(t, a.Title)
		assert.NotEmpty(t, a.Content)
		assert.NotEmpty(t, a.Tags)
		assert.GreaterOrEqual(t, a.Views, kbSeeds[i].viewsLo)
		assert.LessOrEqual(t, a.Views, kbSeeds[i].viewsHi)
		assert.GreaterOrEqual(t, a.HelpfulVotes, kbSeeds[i].votesLo)
		assert.LessOrEqual(t, a.HelpfulVotes, kbSeeds[i].votesHi)
	}
}
