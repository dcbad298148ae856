// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"depthstat/internal/cliutil"
	"depthstat/internal/version"
)

// DefaultWindowSize partitions a chromosome into 5 kb windows unless told
// otherwise.
const DefaultWindowSize = 5000

// Options holds all CLI flags and arguments, parsed once and immutable
// afterwards.
type Options struct {
	// Input
	Input string // depth file path, or "-" for stdin

	// Windowing
	WindowSize int
	Mapped     bool // window by covered-position count instead of span
	Compact    bool // no windows; one TOTAL row per chromosome

	// Output
	Coverage bool // append covered-position count and span columns
	Split    bool // one output file per chromosome

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: windowed mean sequencing depth from per-position depth records

Reads chrom<TAB>pos<TAB>depth lines (e.g. samtools depth output, optionally
gzip'd) from FILE or stdin and reports mean depth per window, per
chromosome, and in total, as TSV.

Version: %s

Usage: %s [options] [FILE]
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// Parse is the top-level call for CLI parsing.
func Parse() (Options, error) { return ParseArgs(flag.CommandLine, nil) }

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.IntVar(&opt.WindowSize, "w", DefaultWindowSize, "window size (shorthand) [5000]")
	fs.IntVar(&opt.WindowSize, "window", DefaultWindowSize, "window size in positions, or in covered positions with --mapped [5000]")
	fs.BoolVar(&opt.Mapped, "mapped", false, "close windows by covered-position count instead of position span [false]")
	fs.BoolVar(&opt.Compact, "compact", false, "disable windowing; emit one TOTAL row per chromosome [false]")
	fs.BoolVar(&opt.Coverage, "coverage", false, "append covered-position count and position-span columns [false]")
	fs.BoolVar(&opt.Split, "split", false, "write one <chromosome>_<input>.depth file per chromosome [false]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	switch len(posArgs) {
	case 0:
		opt.Input = "-"
	case 1:
		opt.Input = posArgs[0]
	default:
		return opt, fmt.Errorf("expected at most one input file, got %d", len(posArgs))
	}

	// Validation
	if opt.WindowSize <= 0 {
		return opt, errors.New("--window must be > 0")
	}
	if opt.Compact && opt.Mapped {
		return opt, errors.New("--compact conflicts with --mapped")
	}
	return opt, nil
}
