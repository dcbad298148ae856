// internal/cli/options_test.go
package cli

import (
	"errors"
	"flag"
	"testing"
)

func newFS() *flag.FlagSet { return flag.NewFlagSet("test", flag.ContinueOnError) }

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	opts, err := ParseArgs(newFS(), args)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	return opts
}

func TestDefaults(t *testing.T) {
	o := mustParse(t)
	if o.Input != "-" || o.WindowSize != DefaultWindowSize {
		t.Errorf("want stdin + default window, got %+v", o)
	}
	if o.Mapped || o.Compact || o.Coverage || o.Split {
		t.Errorf("want all modes off by default, got %+v", o)
	}
}

func TestPositionalInput(t *testing.T) {
	o := mustParse(t, "--window", "100", "sample.depth")
	if o.Input != "sample.depth" || o.WindowSize != 100 {
		t.Errorf("bad parse %+v", o)
	}
}

func TestInputBeforeFlags(t *testing.T) {
	o := mustParse(t, "sample.depth", "--coverage")
	if o.Input != "sample.depth" || !o.Coverage {
		t.Errorf("bad parse %+v", o)
	}
}

func TestStdinDash(t *testing.T) {
	o := mustParse(t, "--compact", "-")
	if o.Input != "-" || !o.Compact {
		t.Errorf("bad parse %+v", o)
	}
}

func TestErrorTooManyInputs(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"a.depth", "b.depth"}); err == nil {
		t.Fatalf("expected error for two inputs")
	}
}

func TestErrorWindowNotPositive(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"--window", "0"}); err == nil {
		t.Fatalf("expected error for zero window")
	}
}

func TestErrorCompactConflictsMapped(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"--compact", "--mapped"}); err == nil {
		t.Fatalf("expected conflict error")
	}
}

func TestHelpReturnsErrHelp(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"-h"})
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("want flag.ErrHelp, got %v", err)
	}
}

func TestVersionShortCircuits(t *testing.T) {
	o := mustParse(t, "--version")
	if !o.Version {
		t.Fatalf("want Version set, got %+v", o)
	}
}
