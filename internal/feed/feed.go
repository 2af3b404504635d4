package feed

// Article is one entry in the feed.
type Article struct {
	Slug        string
	Title       string
	Description string
	Body        string
	Author      string
	Tags        []string
}

// HasTag reports whether the article carries the given tag.
func (a Article) HasTag(tag string) bool {
	for _, t := range a.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// FilterByTag returns the articles carrying the tag, preserving source
// order. An empty tag passes everything through.
func FilterByTag(articles []Article, tag string) []Article {
	if tag == "" {
		return articles
	}

	filtered := make([]Article, 0, len(articles))
	for _, a := range articles {
		if a.HasTag(tag) {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

// Tags returns the distinct tags across all articles in first-seen order.
func Tags(articles []Article) []string {
	seen := make(map[string]bool)
	var tags []string
	for _, a := range articles {
		for _, t := range a.Tags {
			if !seen[t] {
				seen[t] = true
				tags = append(tags, t)
			}
		}
	}
	return tags
}

// TagCounts returns how many articles carry each tag.
func TagCounts(articles []Article) map[string]int {
	counts := make(map[string]int)
	for _, a := range articles {
		for _, t := range a.Tags {
			counts[t]++
		}
	}
	return counts
}
