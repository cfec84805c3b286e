// Package detect walks a file tree and determines the language of each
// regular file, recording which strategy produced the answer.
package detect

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-enry/go-enry/v2"
)

// readLimit bounds how much of each file is read for the content-based
// strategies. Matches linguist's practice of sniffing a prefix only.
const readLimit = 16 * 1024

// Detection records how one file's language was determined.
type Detection struct {
	Strategy Strategy
	Path     string
}

// Breakdown maps a language name to its detections, in scan order.
type Breakdown map[string][]Detection

// Options configures a scan.
type Options struct {
	// Ignore holds glob patterns matched against slash-separated paths
	// relative to the scan root. Matching files and directories are skipped.
	Ignore []string
}

// Scan walks root and classifies every regular file it can read. Dot
// files, vendored paths, binaries, and files matching an ignore pattern
// are skipped. Unreadable or unclassifiable files are silently omitted
// rather than reported.
func Scan(root string, opts Options) (Breakdown, error) {
	if _, err := os.Stat(root); err != nil {
		return nil, err
	}
	b := make(Breakdown)
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Permission denials and races are invisible to the report:
			// the file simply does not appear in the breakdown.
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		rel := relPath(root, path)
		if d.IsDir() {
			if path != root && skipDir(path, rel, opts) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() || enry.IsDotFile(path) || enry.IsVendor(rel) || opts.ignored(rel) {
			return nil
		}
		content, readErr := readPrefix(path)
		if readErr != nil || enry.IsBinary(content) {
			return nil
		}
		lang, strategy, ok := classify(path, content)
		if !ok {
			return nil
		}
		b[lang] = append(b[lang], Detection{Strategy: strategy, Path: path})
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}
	return b, nil
}

func skipDir(path, rel string, opts Options) bool {
	return enry.IsDotFile(path) || enry.IsVendor(rel+"/") || opts.ignored(rel)
}

func relPath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	return filepath.ToSlash(rel)
}

func (o Options) ignored(rel string) bool {
	for _, pat := range o.Ignore {
		if ok, err := filepath.Match(pat, rel); err == nil && ok {
			return true
		}
		if ok, err := filepath.Match(pat, filepath.Base(rel)); err == nil && ok {
			return true
		}
	}
	return false
}

func readPrefix(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(io.LimitReader(f, readLimit))
}

// orderedStrategies are tried in linguist order: cheap, precise signals
// first, content analysis last. The statistical classifier only breaks
// ties the earlier strategies could not.
var orderedStrategies = []struct {
	strategy Strategy
	fn       func(filename string, content []byte, candidates []string) []string
}{
	{Filename, enry.GetLanguagesByFilename},
	{Shebang, enry.GetLanguagesByShebang},
	{Extension, enry.GetLanguagesByExtension},
	{Heuristics, enry.GetLanguagesByContent},
}

// classify runs the strategies in order, narrowing the candidate set
// until a single language remains. Returns false when no strategy
// recognizes the file at all.
func classify(path string, content []byte) (string, Strategy, bool) {
	var candidates []string
	for _, s := range orderedStrategies {
		langs := s.fn(path, content, candidates)
		switch {
		case len(langs) == 1:
			return langs[0], s.strategy, true
		case len(langs) > 1:
			candidates = langs
		}
	}
	if len(candidates) == 0 {
		return "", 0, false
	}
	ranked := enry.GetLanguagesByClassifier(path, content, candidates)
	if len(ranked) == 0 {
		return candidates[0], Classifier, true
	}
	return ranked[0], Classifier, true
}

func languageType(name string) Type {
	switch enry.GetLanguageType(name) {
	case enry.Programming:
		return TypeProgramming
	case enry.Markup:
		return TypeMarkup
	case enry.Data:
		return TypeData
	case enry.Prose:
		return TypeProse
	default:
		return TypeUnknown
	}
}
