// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"

	"depthstat/internal/cli"
	"depthstat/internal/depth"
	"depthstat/internal/engine"
	"depthstat/internal/version"
	"depthstat/internal/window"
	"depthstat/internal/writers"
)

// RunContext parses argv, wires the engine, and runs it over the input.
// Exit codes: 0 ok (including broken pipe downstream), 1 runtime failure,
// 2 usage error, 3 output flush failure.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("depthstat")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = cli.ParseArgs(fs, []string{"-h"})
		fs.SetOutput(outw)
		fs.Usage()
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			if e := outw.Flush(); writers.IsBrokenPipe(e) {
				return 0
			} else if e != nil {
				_, _ = fmt.Fprintln(stderr, e)
				return 3
			}
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "depthstat version %s\n", version.Version)
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	in, err := depth.Open(opts.Input)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	defer func() { _ = in.Close() }()

	var sink writers.Sink
	if opts.Split {
		sink = &writers.SplitSink{InputName: inputName(opts.Input)}
	} else {
		sink = writers.StreamSink{W: outw}
	}

	eng := &engine.Engine{
		Policy:   window.ForMode(windowMode(opts), opts.WindowSize),
		Sink:     sink,
		Coverage: opts.Coverage,
		Compact:  opts.Compact,
	}
	if err := eng.Run(parent, in); err != nil {
		if writers.IsBrokenPipe(err) {
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}

	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}
	return 0
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func windowMode(o cli.Options) window.Mode {
	switch {
	case o.Compact:
		return window.None
	case o.Mapped:
		return window.Mapped
	default:
		return window.Position
	}
}

// inputName is the <input> part of split-output filenames.
func inputName(path string) string {
	if path == "-" {
		return "stdin"
	}
	return filepath.Base(path)
}
