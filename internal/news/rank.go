package news

import "sort"

// TopTags ranks tag names by how many items carry them. Each item counts a
// name at most once. Equal counts keep first-occurrence order across items.
func TopTags(items []Item, limit int) []RankedTag {
	if limit <= 0 {
		return []RankedTag{}
	}

	counts := make(map[string]int)
	var order []string

	for _, item := range items {
		seen := make(map[string]struct{}, len(item.Tags))
		for _, tag := range item.Tags {
			if _, dup := seen[tag.Name]; dup {
				continue
			}
			seen[tag.Name] = struct{}{}

			if _, ok := counts[tag.Name]; !ok {
				order = append(order, tag.Name)
			}
			counts[tag.Name]++
		}
	}

	ranked := make([]RankedTag, 0, len(order))
	for _, name := range order {
		ranked = append(ranked, RankedTag{Name: name, Count: counts[name]})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
