// Package render prints language and strategy breakdowns as styled text.
// Printers hold no state beyond their sink and theme; ordering decisions
// belong to pkg/breakdown.
package render

import (
	"fmt"
	"io"
	"regexp"

	"github.com/dkoosis/polyglot/pkg/breakdown"
)

// Options controls breakdown rendering.
type Options struct {
	// Condensed suppresses per-item lines, leaving headers and counts only.
	Condensed bool
	// Filter restricts output to groups whose name matches. A nil filter
	// matches everything; matching is unanchored.
	Filter *regexp.Regexp
}

func (o Options) matches(name string) bool {
	return o.Filter == nil || o.Filter.MatchString(name)
}

// Printer writes breakdown reports to a single sink. The first write
// error aborts the current report and is returned to the caller;
// already-written lines are not retracted.
type Printer struct {
	w     io.Writer
	theme Theme
}

// NewPrinter creates a printer writing styled text to w.
func NewPrinter(w io.Writer, theme Theme) *Printer {
	return &Printer{w: w, theme: theme}
}

// LanguageSummary prints one "<percent>% <language>" line per share, in
// the given order.
func (p *Printer) LanguageSummary(shares []breakdown.Share) error {
	for _, s := range shares {
		if _, err := fmt.Fprintf(p.w, "%.2f%% %s\n", s.Percent, s.Language); err != nil {
			return err
		}
	}
	return nil
}

// FileBreakdown prints a header per matching language and, unless
// condensed, each file's normalized path followed by a blank separator
// line. Non-matching languages produce no output at all.
func (p *Printer) FileBreakdown(groups []breakdown.LanguageGroup, opts Options) error {
	for _, g := range groups {
		if !opts.matches(g.Language) {
			continue
		}
		if err := p.header(g.Language, len(g.Files)); err != nil {
			return err
		}
		if opts.Condensed {
			continue
		}
		for _, d := range g.Files {
			if _, err := fmt.Fprintln(p.w, NormalizePath(d.Path)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(p.w); err != nil {
			return err
		}
	}
	return nil
}

// StrategyBreakdown prints a header per matching strategy and, unless
// condensed, one "<path> (<language>)" line per entry in the bucket's
// ascending order, followed by a blank separator line.
func (p *Printer) StrategyBreakdown(groups []breakdown.StrategyGroup, opts Options) error {
	for _, g := range groups {
		if !opts.matches(g.Strategy) {
			continue
		}
		if err := p.header(g.Strategy, len(g.Entries)); err != nil {
			return err
		}
		if opts.Condensed {
			continue
		}
		for _, e := range g.Entries {
			line := p.theme.Default.Render(NormalizePath(e.Path)) +
				p.theme.Language.Render(" ("+e.Language+")")
			if _, err := fmt.Fprintln(p.w, line); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(p.w); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) header(name string, count int) error {
	_, err := fmt.Fprintf(p.w, "%s%s\n",
		p.theme.Header.Render(name),
		p.theme.Default.Render(fmt.Sprintf(" (%d)", count)))
	return err
}
