package alfrusco

import (
	"fmt"

	"github.com/sahilm/fuzzy"
)

// itemSource adapts a slice of items for fuzzy matching. Matching runs
// against "<subtitle> : <title>" so queries can hit either field.
type itemSource []*Item

func (s itemSource) String(i int) string {
	return fmt.Sprintf("%s : %s", s[i].Subtitle, s[i].Title)
}

func (s itemSource) Len() int { return len(s) }

// filterAndSortItems keeps the items matching query, best scores first.
// Non-matching items are dropped entirely; an empty query keeps
// everything in its original order.
func filterAndSortItems(items []*Item, query string) []*Item {
	if query == "" {
		return items
	}
	matches := fuzzy.FindFrom(query, itemSource(items))
	out := make([]*Item, 0, len(matches))
	for _, m := range matches {
		out = append(out, items[m.Index])
	}
	return out
}
