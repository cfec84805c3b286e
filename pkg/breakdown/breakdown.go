// Package breakdown aggregates per-file language detections into the
// ordered summaries the reporting layer prints. All transformations are
// pure: inputs are never mutated and identical inputs always produce
// identical output, independent of map iteration or scan order.
package breakdown

import (
	"sort"

	"github.com/dkoosis/polyglot/internal/detect"
)

// LanguageGroup pairs a language with its detections, in scan order.
type LanguageGroup struct {
	Language string
	Files    []detect.Detection
}

// Group filters a breakdown down to markup and programming languages and
// orders the groups by descending file count. Equal counts fall back to
// language name ascending so the ordering is total.
func Group(b detect.Breakdown, typeOf func(string) detect.Type) []LanguageGroup {
	groups := make([]LanguageGroup, 0, len(b))
	for lang, files := range b {
		switch typeOf(lang) {
		case detect.TypeMarkup, detect.TypeProgramming:
			groups = append(groups, LanguageGroup{Language: lang, Files: files})
		}
	}
	sort.Slice(groups, func(i, j int) bool {
		if len(groups[i].Files) != len(groups[j].Files) {
			return len(groups[i].Files) > len(groups[j].Files)
		}
		return groups[i].Language < groups[j].Language
	})
	return groups
}

// Share is one language's slice of the total file count.
type Share struct {
	Language string
	Count    int
	Percent  float64
}

// Shares computes each group's percentage of the total, preserving group
// order. An empty grouping yields no shares; there is no zero total to
// divide by.
func Shares(groups []LanguageGroup) []Share {
	total := 0
	for _, g := range groups {
		total += len(g.Files)
	}
	if total == 0 {
		return nil
	}
	shares := make([]Share, len(groups))
	for i, g := range groups {
		shares[i] = Share{
			Language: g.Language,
			Count:    len(g.Files),
			Percent:  float64(len(g.Files)*100) / float64(total),
		}
	}
	return shares
}
