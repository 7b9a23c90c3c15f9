package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScenarios(t *testing.T) {
	assert := assert.New(t)
	cfg := DefaultConfig()

	t.Run("full task line", func(t *testing.T) {
		res := Parse("Build landing page $10M ~4h @john #website >tomorrow", refWed, cfg)
		assert.Equal("Build landing page", res.CleanContent)
		require.Len(t, res.Tokens, 5)
		require.NotNil(t, res.Values.Value)
		assert.Equal(float64(10_000_000), *res.Values.Value)
		require.NotNil(t, res.Values.Effort)
		assert.Equal(4.0, *res.Values.Effort)
		require.NotNil(t, res.Values.Assignee)
		assert.Equal("john", *res.Values.Assignee)
		require.NotNil(t, res.Values.DueDate)
		assert.Equal(day(2025, 1, 16), *res.Values.DueDate)
		assert.Equal([]string{"website"}, res.Values.Tags)
		assert.Nil(res.Values.Company)
	})

	t.Run("quick fix", func(t *testing.T) {
		res := Parse("Quick fix $1K ~30m", refWed, cfg)
		assert.Equal("Quick fix", res.CleanContent)
		assert.Equal(1000.0, *res.Values.Value)
		assert.InDelta(0.5, *res.Values.Effort, 1e-9)
	})

	t.Run("escaped marker collapses to a literal", func(t *testing.T) {
		res := Parse("@@mention literal", refWed, cfg)
		assert.Empty(res.Tokens)
		assert.Equal("@mention literal", res.CleanContent)
	})

	t.Run("company wins over assignee", func(t *testing.T) {
		res := Parse("Meeting @AIC", refWed, cfg)
		require.NotNil(t, res.Values.Company)
		assert.Equal("AIC", *res.Values.Company)
		assert.Nil(res.Values.Assignee)
	})

	t.Run("invalid calendar date stays a tag", func(t *testing.T) {
		res := Parse("Task #31/02/2025", refWed, cfg)
		assert.Nil(res.Values.DueDate)
		assert.Equal([]string{"31/02/2025"}, res.Values.Tags)
		assert.Equal("Task", res.CleanContent)
	})

	t.Run("email address produces no tokens", func(t *testing.T) {
		res := Parse("contact john@example.com", refWed, cfg)
		assert.Empty(res.Tokens)
		assert.Equal("contact john@example.com", res.CleanContent)
	})

	t.Run("vietnamese text and dates", func(t *testing.T) {
		res := Parse("Họp với @Hùng >thứ6 #dựán", refWed, cfg)
		assert.Equal("Họp với", res.CleanContent)
		require.NotNil(t, res.Values.Assignee)
		assert.Equal("Hùng", *res.Values.Assignee)
		require.NotNil(t, res.Values.DueDate)
		assert.Equal(day(2025, 1, 17), *res.Values.DueDate)
		assert.Equal([]string{"dựán"}, res.Values.Tags)
	})

	t.Run("unparsable substrings stay in the text", func(t *testing.T) {
		res := Parse("ship $soon &NOPE", refWed, cfg)
		assert.Empty(res.Tokens)
		assert.Equal("ship $soon &NOPE", res.CleanContent)
	})

	t.Run("empty input", func(t *testing.T) {
		res := Parse("   ", refWed, cfg)
		assert.Empty(res.Tokens)
		assert.Empty(res.CleanContent)
	})
}

func TestParseProperties(t *testing.T) {
	assert := assert.New(t)
	cfg := DefaultConfig()
	inputs := []string{
		"Build landing page $10M ~4h @john #website >tomorrow",
		"a $5 b $10K c ~2h ~3h",
		"#x #y #x @AIC @john >fri >2025-06-01",
		"Họp với @Hùng >thứ6 #dựán",
	}

	t.Run("tokens are sorted and non-overlapping", func(t *testing.T) {
		for _, in := range inputs {
			res := Parse(in, refWed, cfg)
			for i := 1; i < len(res.Tokens); i++ {
				assert.GreaterOrEqual(res.Tokens[i].Start, res.Tokens[i-1].End, in)
			}
		}
	})

	t.Run("reduction is idempotent", func(t *testing.T) {
		// holds for inputs free of escaped markers and of markers glued
		// to a removed span
		for _, in := range inputs {
			clean := Parse(in, refWed, cfg).CleanContent
			again := Parse(clean, refWed, cfg)
			assert.Emptyf(again.Tokens, "input %q -> clean %q", in, clean)
			assert.Equal(clean, again.CleanContent)
		}
	})

	t.Run("span removal can expose a glued marker", func(t *testing.T) {
		// "#x" is inert in "$5#x" because '#' follows a word rune, but
		// removing the value span uncovers it for a second parse
		res := Parse("$5#x", refWed, cfg)
		require.Len(t, res.Tokens, 1)
		assert.Equal(KindValue, res.Tokens[0].Kind)
		assert.Equal("#x", res.CleanContent)

		again := Parse(res.CleanContent, refWed, cfg)
		require.Len(t, again.Tokens, 1)
		assert.Equal(KindTag, again.Tokens[0].Kind)
		assert.Equal([]string{"x"}, again.Values.Tags)
	})

	t.Run("last token wins per singleton field", func(t *testing.T) {
		res := Parse("a $5 b $10K c ~2h ~3h", refWed, cfg)
		assert.Equal(10_000.0, *res.Values.Value)
		assert.Equal(3.0, *res.Values.Effort)

		res = Parse("@john then @mary", refWed, cfg)
		assert.Equal("mary", *res.Values.Assignee)

		res = Parse(">today or >fri", refWed, cfg)
		assert.Equal(day(2025, 1, 17), *res.Values.DueDate)
	})

	t.Run("tags keep order and drop duplicates", func(t *testing.T) {
		res := Parse("#x #y #x #z", refWed, cfg)
		assert.Equal([]string{"x", "y", "z"}, res.Values.Tags)
	})

	t.Run("decomposed diacritics normalize before matching", func(t *testing.T) {
		// "mai" with a decomposed accent on a date payload
		composed := Parse(">ngàymai", refWed, cfg)
		decomposed := Parse(">nga\u0300ymai", refWed, cfg)
		require.NotNil(t, composed.Values.DueDate)
		require.NotNil(t, decomposed.Values.DueDate)
		assert.Equal(*composed.Values.DueDate, *decomposed.Values.DueDate)
	})

	t.Run("whitespace collapses after removal", func(t *testing.T) {
		res := Parse("fix   $5   now", refWed, cfg)
		assert.Equal("fix now", res.CleanContent)
	})
}

func TestTokenString(t *testing.T) {
	assert := assert.New(t)
	res := Parse("$1500 ~30m @john &AIC #web >2025-06-01", refWed, DefaultConfig())
	require.Len(t, res.Tokens, 6)
	var rendered []string
	res.Tokens.ForEach(func(tk *Token) {
		rendered = append(rendered, tk.String())
	})
	assert.Equal([]string{"$1500", "~30m", "@john", "&AIC", "#web", ">2025-06-01"}, rendered)
}

func TestTokensHelpers(t *testing.T) {
	assert := assert.New(t)
	res := Parse("#a @john #b", refWed, DefaultConfig())

	tags := res.Tokens.Filter(TkByKind(KindTag))
	assert.Len(tags, 2)

	tk, ndx := res.Tokens.Find(TkByKind(KindAssignee))
	require.NotNil(t, tk)
	assert.Equal(1, ndx)

	tk, ndx = res.Tokens.Find(TkByKind(KindCompany))
	assert.Nil(tk)
	assert.Equal(-1, ndx)
}

func TestParseDeterminism(t *testing.T) {
	assert := assert.New(t)
	in := "Build $10M ~4h @john >tomorrow #web"
	a := Parse(in, refWed, DefaultConfig())
	b := Parse(in, refWed, DefaultConfig())
	assert.Equal(a.CleanContent, b.CleanContent)
	assert.Equal(a.Values, b.Values)

	t.Run("reference date is injected, not ambient", func(t *testing.T) {
		other := refWed.AddDate(0, 0, 1)
		c := Parse(in, other, DefaultConfig())
		assert.Equal(day(2025, 1, 17), *c.Values.DueDate)
	})
}

var benchSink Result

func BenchmarkParse(b *testing.B) {
	cfg := DefaultConfig()
	ref := time.Date(2025, 1, 15, 0, 0, 0, 0, time.Local)
	for i := 0; i < b.N; i++ {
		benchSink = Parse("Build landing page $10M ~4h @john #website >tomorrow", ref, cfg)
	}
}
