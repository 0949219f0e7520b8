package fake

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andriikh/ecomgen/internal/rng"
)

func TestEmailDerivedFromName(t *testing.T) {
	r := rng.New(42)
	name := Name(r)
	email := Email(r, name)

	require.Contains(t, email, "@")
	user := strings.Split(email, "@")[0]
	assert.True(t, strings.HasPrefix(user, strings.ToLower(strings.ReplaceAll(name, " ", "."))))
}

func TestPhoneFormat(t *testing.T) {
	r := rng.New(1)
	re := regexp.MustCompile(`^\+1-\d{3}-\d{3}-\d{4}$`)
	for i := 0; i < 50; i++ {
		require.Regexp(t, re, Phone(r))
	}
}

func TestSentenceShape(t *testing.T) {
	r := rng.New(7)
	s := Sentence(r, 15)
	assert.True(t, strings.HasSuffix(s, "."))
	assert.Len(t, strings.Fields(s), 15)
	assert.Equal(t, strings.ToUpper(s[:1]), s[:1])
}
