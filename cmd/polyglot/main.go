// polyglot reports the language composition of a file tree.
//
// Usage:
//
//	polyglot [flags] [PATH]
//
// Always prints the percentage of files per detected markup or
// programming language, descending by count. Optional breakdowns:
//
//	-b, --breakdown   per-file listing grouped by language
//	-s, --strategies  per-strategy listing of (file, language) pairs
//	-c, --condensed   headers and counts only, no per-item lines
//	-f, --filter      regex restricting which groups are shown
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"regexp"

	"golang.org/x/term"

	"github.com/dkoosis/polyglot/internal/config"
	"github.com/dkoosis/polyglot/internal/detect"
	"github.com/dkoosis/polyglot/internal/version"
	"github.com/dkoosis/polyglot/pkg/breakdown"
	"github.com/dkoosis/polyglot/pkg/render"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("polyglot", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		fileBreakdown     bool
		strategyBreakdown bool
		condensed         bool
		filter            string
		themeFlag         string
		showVersion       bool
	)
	fs.BoolVar(&fileBreakdown, "b", false, "print the language detected for each file")
	fs.BoolVar(&fileBreakdown, "breakdown", false, "print the language detected for each file")
	fs.BoolVar(&strategyBreakdown, "s", false, "print each strategy and the files it decided")
	fs.BoolVar(&strategyBreakdown, "strategies", false, "print each strategy and the files it decided")
	fs.BoolVar(&condensed, "c", false, "condense breakdowns to group counts only")
	fs.BoolVar(&condensed, "condensed", false, "condense breakdowns to group counts only")
	fs.StringVar(&filter, "f", "", "regex filtering the breakdown groups by name")
	fs.StringVar(&filter, "filter", "", "regex filtering the breakdown groups by name")
	fs.StringVar(&themeFlag, "theme", "", "color theme: default, mono")
	fs.BoolVar(&showVersion, "version", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if showVersion {
		fmt.Fprintf(stdout, "polyglot %s (%s, %s)\n", version.Version, version.CommitHash, version.BuildDate)
		return 0
	}

	root := "."
	if fs.NArg() > 0 {
		root = fs.Arg(0)
	}

	// A malformed filter is a startup error: nothing is scanned or printed.
	opts := render.Options{Condensed: condensed}
	if filter != "" {
		re, err := regexp.Compile(filter)
		if err != nil {
			fmt.Fprintf(stderr, "polyglot: invalid filter %q: %v\n", filter, err)
			return 2
		}
		opts.Filter = re
	}

	cfg, err := config.Load(root)
	if err != nil {
		fmt.Fprintf(stderr, "polyglot: %v\n", err)
		return 2
	}

	b, err := detect.Scan(root, detect.Options{Ignore: cfg.Ignore})
	if err != nil {
		fmt.Fprintf(stderr, "polyglot: scanning %s: %v\n", root, err)
		return 2
	}

	groups := breakdown.Group(b, detect.LanguageType)
	printer := render.NewPrinter(stdout, selectTheme(themeFlag, cfg.Theme, stdout))

	if err := printer.LanguageSummary(breakdown.Shares(groups)); err != nil {
		fmt.Fprintf(stderr, "polyglot: %v\n", err)
		return 1
	}
	if fileBreakdown {
		fmt.Fprintln(stdout)
		if err := printer.FileBreakdown(groups, opts); err != nil {
			fmt.Fprintf(stderr, "polyglot: %v\n", err)
			return 1
		}
	}
	if strategyBreakdown {
		fmt.Fprintln(stdout)
		if err := printer.StrategyBreakdown(breakdown.ByStrategy(groups), opts); err != nil {
			fmt.Fprintf(stderr, "polyglot: %v\n", err)
			return 1
		}
	}
	return 0
}

// selectTheme resolves the theme from flag, then config file, downgrading
// to mono when NO_COLOR is set or stdout is not a terminal.
func selectTheme(flagName, cfgName string, w io.Writer) render.Theme {
	if os.Getenv("NO_COLOR") != "" || !isTTYWriter(w) {
		return render.MonoTheme()
	}
	name := cfgName
	if flagName != "" {
		name = flagName
	}
	return render.ThemeByName(name)
}

// isTTYWriter reports whether w is a terminal.
func isTTYWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
