package breakdown

import "sort"

// Entry is one detected file inside a strategy bucket.
type Entry struct {
	Language string
	Path     string
}

// StrategyGroup pairs a detection strategy with every file it decided,
// ordered ascending by (language, path).
type StrategyGroup struct {
	Strategy string
	Entries  []Entry
}

// ByStrategy repartitions the grouped detections by the strategy that
// produced them. Entries within a bucket are sorted ascending by language
// then path so that upstream scan order never leaks into the display;
// buckets are ordered by descending size, then strategy name ascending.
func ByStrategy(groups []LanguageGroup) []StrategyGroup {
	buckets := make(map[string][]Entry)
	for _, g := range groups {
		for _, d := range g.Files {
			name := d.Strategy.String()
			buckets[name] = append(buckets[name], Entry{Language: g.Language, Path: d.Path})
		}
	}

	out := make([]StrategyGroup, 0, len(buckets))
	for name, entries := range buckets {
		sort.Slice(entries, func(i, j int) bool {
			if entries[i].Language != entries[j].Language {
				return entries[i].Language < entries[j].Language
			}
			return entries[i].Path < entries[j].Path
		})
		out = append(out, StrategyGroup{Strategy: name, Entries: entries})
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i].Entries) != len(out[j].Entries) {
			return len(out[i].Entries) > len(out[j].Entries)
		}
		return out[i].Strategy < out[j].Strategy
	})
	return out
}
