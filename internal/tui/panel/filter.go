package panel

import (
	"github.com/sahilm/fuzzy"
)

// rowSource adapts the row list to fuzzy.Source. Name and id are both
// searchable.
type rowSource []*monitorRow

func (s rowSource) String(i int) string { return s[i].name + " " + s[i].id }
func (s rowSource) Len() int            { return len(s) }

// filterRows returns the indexes of rows matching query, best match first.
// An empty query keeps every row in host order.
func filterRows(rows []*monitorRow, query string) []int {
	if query == "" {
		out := make([]int, len(rows))
		for i := range rows {
			out[i] = i
		}
		return out
	}

	matches := fuzzy.FindFrom(query, rowSource(rows))
	out := make([]int, 0, len(matches))
	for _, match := range matches {
		out = append(out, match.Index)
	}
	return out
}
