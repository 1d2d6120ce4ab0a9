package cli

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func TestHelp(t *testing.T) {
	for _, arg := range []string{"-h", "--help"} {
		var out, err bytes.Buffer
		code := Run([]string{arg}, &out, &err)
		if code != ExitOK {
			t.Fatalf("%s: expected exit %d, got %d", arg, ExitOK, code)
		}
		if err.Len() != 0 {
			t.Fatalf("%s: expected no stderr output, got %q", arg, err.String())
		}
		output := out.String()
		if !strings.Contains(output, "Usage:") {
			t.Fatalf("%s: expected usage header, got %q", arg, output)
		}
		for _, flag := range []string{"--input_dir", "--output_csv", "--extensions", "--countries", "--recursive", "--author", "--course", "--semester", "--config", "--duckdb"} {
			if !strings.Contains(output, flag) {
				t.Fatalf("%s: expected flag %q in usage", arg, flag)
			}
		}
	}
}

func TestNoArgsRequiresInputDir(t *testing.T) {
	var out, err bytes.Buffer
	code := Run(nil, &out, &err)
	if code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no stdout output, got %q", out.String())
	}
	if !strings.Contains(err.String(), "[Error] --input_dir is required") {
		t.Fatalf("expected required flag error, got %q", err.String())
	}
	if !strings.Contains(err.String(), "Usage:") {
		t.Fatalf("expected usage in stderr, got %q", err.String())
	}
}

func TestUnknownFlag(t *testing.T) {
	var out, err bytes.Buffer
	code := Run([]string{"--input_dir", ".", "--nope"}, &out, &err)
	if code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
	if !strings.Contains(err.String(), "invalid arguments") {
		t.Fatalf("expected invalid arguments error, got %q", err.String())
	}
}

func TestUnexpectedPositionalArguments(t *testing.T) {
	var out, err bytes.Buffer
	code := Run([]string{"--input_dir", ".", "extra"}, &out, &err)
	if code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
	if !strings.Contains(err.String(), "unexpected arguments: extra") {
		t.Fatalf("expected unexpected arguments error, got %q", err.String())
	}
}

func TestHelpAfterOtherFlags(t *testing.T) {
	var out, err bytes.Buffer
	code := Run([]string{"--input_dir", "x", "-h"}, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d", ExitOK, code)
	}
	if !strings.Contains(out.String(), "Usage:") {
		t.Fatalf("expected usage, got %q", out.String())
	}
}

func TestHelpShorthandAsFlagValue(t *testing.T) {
	var out, err bytes.Buffer
	code := Run([]string{"--author", "-h"}, &out, &err)
	if code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
	if !strings.Contains(err.String(), "[Error] --input_dir is required") {
		t.Fatalf("expected -h to be taken as the author value, got %q", err.String())
	}
}

func TestHelpAfterTerminatorIsPositional(t *testing.T) {
	var out, err bytes.Buffer
	code := Run([]string{"--input_dir", "x", "--", "-h"}, &out, &err)
	if code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
	if !strings.Contains(err.String(), "unexpected arguments: -h") {
		t.Fatalf("expected unexpected arguments error, got %q", err.String())
	}
}

func TestHelpMentionsCountryDeduplication(t *testing.T) {
	var out, err bytes.Buffer
	Run([]string{"--help"}, &out, &err)
	if !strings.Contains(out.String(), "repeated names are asked once") {
		t.Fatalf("expected countries help to mention repeats, got %q", out.String())
	}
}

func TestErrorTagPlainWhenNotTerminal(t *testing.T) {
	var buf bytes.Buffer
	printError(&buf, "boom")
	if buf.String() != "[Error] boom\n" {
		t.Fatalf("unexpected error output %q", buf.String())
	}
}

func TestErrorTagStyledOnTerminal(t *testing.T) {
	previous := isTerminal
	isTerminal = func(io.Writer) bool { return true }
	t.Cleanup(func() { isTerminal = previous })

	var buf bytes.Buffer
	printError(&buf, "boom")
	if !strings.Contains(buf.String(), "[Error]") || !strings.HasSuffix(buf.String(), " boom\n") {
		t.Fatalf("unexpected styled output %q", buf.String())
	}
}
