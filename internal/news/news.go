package news

import "regexp"

// Item is one trending article. Tags stays nil until enrichment.
type Item struct {
	Title   string
	Link    string
	Updated string
	Tags    []Tag
}

type Tag struct {
	Name string
}

// RankedTag is a tag name with the number of items carrying it.
type RankedTag struct {
	Name  string
	Count int
}

// FeedSnapshot is the unit passed between pipeline stages.
type FeedSnapshot struct {
	Items       []Item
	FeedUpdated string
}

var itemIDPattern = regexp.MustCompile(`/items/([A-Za-z0-9]+)`)

// ExtractItemID returns the article id following /items/ in link.
func ExtractItemID(link string) (string, bool) {
	m := itemIDPattern.FindStringSubmatch(link)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// TagNames flattens tags to their names.
func TagNames(tags []RankedTag) []string {
	names := make([]string, 0, len(tags))
	for _, t := range tags {
		names = append(names, t.Name)
	}
	return names
}
