package technews

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceFieldNestedObject(t *testing.T) {
	var a upstreamArticle
	require.NoError(t, json.Unmarshal([]byte(`{"title":"t","source":{"name":"TechCrunch","url":"https://techcrunch.com"}}`), &a))
	assert.Equal(t, "TechCrunch", a.Source.Name)
}

func TestSourceFieldBareString(t *testing.T) {
	var a upstreamArticle
	require.NoError(t, json.Unmarshal([]byte(`{"title":"t","source":"The Verge"}`), &a))
	assert.Equal(t, "The Verge", a.Source.Name)
}

func TestNormalize(t *testing.T) {
	a := upstreamArticle{
		Title:       "Title",
		Description: "Desc",
		URL:         "https://example.com/a",
		Source:      sourceField{Name: "Example"},
		Image:       "https://example.com/img.png",
		PublishedAt: "2026-08-30T10:00:00Z",
	}
	out := a.normalize()
	assert.Equal(t, "Example", out.Source)
	require.NotNil(t, out.Image)
	assert.Equal(t, "https://example.com/img.png", *out.Image)
}

func TestNormalizeMissingImageIsNull(t *testing.T) {
	out := upstreamArticle{Title: "t"}.normalize()
	assert.Nil(t, out.Image)

	raw, err := json.Marshal(out)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"image":null`)
}

func TestCacheFreshness(t *testing.T) {
	c := NewCache()
	now := time.Now()

	_, ok := c.Get(now)
	assert.False(t, ok, "empty cache must miss")

	articles := []Article{{Title: "a"}}
	c.Set(now, articles)

	got, ok := c.Get(now.Add(CacheTTL - time.Second))
	assert.True(t, ok)
	assert.Equal(t, articles, got)

	_, ok = c.Get(now.Add(CacheTTL))
	assert.False(t, ok, "entry at TTL boundary must be stale")
}

func TestCacheOverwrites(t *testing.T) {
	c := NewCache()
	now := time.Now()

	c.Set(now, []Article{{Title: "old"}})
	c.Set(now.Add(time.Hour), []Article{{Title: "new"}})

	got, ok := c.Get(now.Add(time.Hour))
	require.True(t, ok)
	require.Len(t, got, 1)
	assert.Equal(t, "new", got[0].Title)
}
