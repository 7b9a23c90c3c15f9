package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan(t *testing.T) {
	assert := assert.New(t)

	t.Run("basic matches in ascending order", func(t *testing.T) {
		ms := scan([]rune("fix $10M ~4h @john #web >tmr"))
		require.Len(t, ms, 5)
		var prev int
		for _, m := range ms {
			assert.GreaterOrEqual(m.Start, prev)
			assert.Less(m.Start, m.End)
			prev = m.End
		}
		assert.Equal("$10M", ms[0].FullText)
		assert.Equal("10M", ms[0].Payload)
		assert.Equal('$', ms[0].Marker)
		assert.Equal(">tmr", ms[4].FullText)
	})

	t.Run("restartable and stateless", func(t *testing.T) {
		rs := []rune("a $5 b ~2h c")
		assert.Equal(scan(rs), scan(rs))
	})

	t.Run("marker at end of string", func(t *testing.T) {
		assert.Empty(scan([]rune("dangling @")))
		assert.Empty(scan([]rune("dangling $")))
	})

	t.Run("marker followed by whitespace", func(t *testing.T) {
		assert.Empty(scan([]rune("a @ b # c")))
	})

	t.Run("email exclusion by preceding char", func(t *testing.T) {
		assert.Empty(scan([]rune("contact john@example.com")))
		assert.Empty(scan([]rune("john.doe+x@mail.co")))
	})

	t.Run("email exclusion by domain-like payload", func(t *testing.T) {
		assert.Empty(scan([]rune("ping @example.com please")))
	})

	t.Run("escaped double marker is not a match", func(t *testing.T) {
		assert.Empty(scan([]rune("@@mention literal")))
		assert.Empty(scan([]rune("cost $$ money")))
	})

	t.Run("marker glued to word tail", func(t *testing.T) {
		assert.Empty(scan([]rune("x#y")))
	})

	t.Run("trailing punctuation excluded from payload", func(t *testing.T) {
		ms := scan([]rune("due >tomorrow."))
		require.Len(t, ms, 1)
		assert.Equal("tomorrow", ms[0].Payload)
		assert.Equal(">tomorrow", ms[0].FullText)
	})

	t.Run("unicode payloads use rune offsets", func(t *testing.T) {
		rs := []rune("việc #dựán xong")
		ms := scan(rs)
		require.Len(t, ms, 1)
		assert.Equal("dựán", ms[0].Payload)
		assert.Equal(string(rs[ms[0].Start:ms[0].End]), ms[0].FullText)
	})

	t.Run("adjacent markers resolve left to right", func(t *testing.T) {
		ms := scan([]rune("#a #b #c"))
		require.Len(t, ms, 3)
		assert.Equal("a", ms[0].Payload)
		assert.Equal("c", ms[2].Payload)
	})
}

func TestNextMatch(t *testing.T) {
	assert := assert.New(t)
	rs := []rune("$5 and ~1h")

	m, next, ok := nextMatch(rs, 0)
	assert.True(ok)
	assert.Equal("$5", m.FullText)

	m, _, ok = nextMatch(rs, next)
	assert.True(ok)
	assert.Equal("~1h", m.FullText)

	_, _, ok = nextMatch(rs, len(rs))
	assert.False(ok)
}
