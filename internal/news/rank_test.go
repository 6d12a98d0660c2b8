package news

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func itemWithTags(names ...string) Item {
	tags := make([]Tag, 0, len(names))
	for _, n := range names {
		tags = append(tags, Tag{Name: n})
	}
	return Item{Title: "t", Link: "https://qiita.com/u/items/x", Tags: tags}
}

func TestTopTagsCountsDescending(t *testing.T) {
	items := []Item{
		itemWithTags("Go", "Docker"),
		itemWithTags("Python", "Go"),
		itemWithTags("Go", "Python", "AWS"),
	}

	got := TopTags(items, 10)
	assert.Equal(t, []RankedTag{
		{Name: "Go", Count: 3},
		{Name: "Python", Count: 2},
		{Name: "Docker", Count: 1},
		{Name: "AWS", Count: 1},
	}, got)
}

func TestTopTagsTieBreaksByFirstOccurrence(t *testing.T) {
	items := []Item{
		itemWithTags("Zig", "Rust"),
		itemWithTags("Alpha", "Rust", "Zig"),
		itemWithTags("Beta", "Alpha"),
	}

	got := TopTags(items, 10)
	// Zig, Rust and Alpha all have 2; Zig was seen first, then Rust, then Alpha.
	assert.Equal(t, []string{"Zig", "Rust", "Alpha", "Beta"}, TagNames(got))
}

func TestTopTagsCountsItemOnce(t *testing.T) {
	items := []Item{
		itemWithTags("Go", "Go", "Go"),
		itemWithTags("Rust"),
		itemWithTags("Rust"),
	}

	got := TopTags(items, 5)
	assert.Equal(t, []RankedTag{
		{Name: "Rust", Count: 2},
		{Name: "Go", Count: 1},
	}, got)
}

func TestTopTagsTruncatesAndPrefix(t *testing.T) {
	var items []Item
	names := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"}
	for i := range names {
		// names[i] is carried by i%4+1 items, so ties are frequent
		for j := 0; j <= i%4; j++ {
			items = append(items, itemWithTags(names[i]))
		}
	}

	top5 := TopTags(items, 5)
	top10 := TopTags(items, 10)

	assert.Len(t, top5, 5)
	assert.Len(t, top10, 10)
	assert.Equal(t, top10[:5], top5)
}

func TestTopTagsFewerThanLimit(t *testing.T) {
	got := TopTags([]Item{itemWithTags("Go")}, 5)
	assert.Equal(t, []RankedTag{{Name: "Go", Count: 1}}, got)
}

func TestTopTagsEmpty(t *testing.T) {
	assert.Empty(t, TopTags(nil, 5))
	assert.Empty(t, TopTags([]Item{{Title: "untagged"}}, 5))
	assert.Empty(t, TopTags([]Item{itemWithTags("Go")}, 0))
}

func TestTopTagsDeterministic(t *testing.T) {
	items := []Item{
		itemWithTags("x", "y", "z"),
		itemWithTags("z", "w"),
		itemWithTags("y", "v", "u"),
	}
	first := TopTags(items, 10)
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, TopTags(items, 10))
	}
}
