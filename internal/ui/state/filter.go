package state

import (
	"strings"

	"github.com/atomicstack/gridselect/internal/menu"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Locate returns the entry whose caption best matches query. Exact matches
// win over prefixes, prefixes over substrings, and substrings over fuzzy
// matches. Ties go to the earliest entry.
func Locate[T any](entries []menu.Entry[T], query string) (menu.Entry[T], bool) {
	idx := BestMatchIndex(captions(entries), query)
	if idx < 0 {
		return menu.Entry[T]{}, false
	}
	return entries[idx], true
}

func captions[T any](entries []menu.Entry[T]) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Caption
	}
	return out
}

// BestMatchIndex returns the index of the best caption for query, or -1.
func BestMatchIndex(labels []string, query string) int {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" || len(labels) == 0 {
		return -1
	}
	lower := strings.ToLower(trimmed)
	for i, label := range labels {
		if strings.EqualFold(label, trimmed) {
			return i
		}
	}
	for i, label := range labels {
		if strings.HasPrefix(strings.ToLower(label), lower) {
			return i
		}
	}
	for i, label := range labels {
		if strings.Contains(strings.ToLower(label), lower) {
			return i
		}
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) == 0 {
		return -1
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
			continue
		}
		if rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex {
			best = rank
		}
	}
	if best.OriginalIndex < 0 || best.OriginalIndex >= len(labels) {
		return -1
	}
	return best.OriginalIndex
}
