package cliutil

import (
	"flag"
	"testing"
)

func TestSplitFlagsAndPositionals(t *testing.T) {
	fs := flag.NewFlagSet("x", flag.ContinueOnError)
	var b bool
	var n int
	fs.BoolVar(&b, "bool", false, "")
	fs.IntVar(&n, "num", 0, "")
	flagArgs, posArgs := SplitFlagsAndPositionals(fs, []string{"--bool", "pos1", "--num", "3", "--", "pos2"})
	if len(flagArgs) != 3 || len(posArgs) != 2 || posArgs[0] != "pos1" || posArgs[1] != "pos2" {
		t.Fatalf("unexpected split: %v / %v", flagArgs, posArgs)
	}
}

func TestDashIsPositional(t *testing.T) {
	fs := flag.NewFlagSet("x", flag.ContinueOnError)
	flagArgs, posArgs := SplitFlagsAndPositionals(fs, []string{"-"})
	if len(flagArgs) != 0 || len(posArgs) != 1 || posArgs[0] != "-" {
		t.Fatalf("unexpected split: %v / %v", flagArgs, posArgs)
	}
}

func TestEqualsFormNeedsNoValue(t *testing.T) {
	fs := flag.NewFlagSet("x", flag.ContinueOnError)
	var n int
	fs.IntVar(&n, "num", 0, "")
	flagArgs, posArgs := SplitFlagsAndPositionals(fs, []string{"--num=3", "in.depth"})
	if len(flagArgs) != 1 || len(posArgs) != 1 || posArgs[0] != "in.depth" {
		t.Fatalf("unexpected split: %v / %v", flagArgs, posArgs)
	}
}
