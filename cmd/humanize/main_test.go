package main

import (
	"bytes"
	"strings"
	"testing"
)

// run executes the CLI with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestCommands(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		args []string
		want string
	}{
		{"bytes", []string{"bytes", "82854982"}, "82.855 MB"},
		{"bytes iec", []string{"bytes", "--iec", "82854982"}, "79.017 MiB"},
		{"bytes digits", []string{"bytes", "--digits", "1", "82854982"}, "82.9 MB"},
		{"parse-bytes", []string{"parse-bytes", "42 MB"}, "42000000"},
		{"si", []string{"si", "2.2345e-12", "F"}, "2.2345 pF"},
		{"si no unit", []string{"si", "1000000"}, "1 M"},
		{"parse-si", []string{"parse-si", "1 MB"}, "1e+06 B"},
		{"comma int", []string{"comma", "1000"}, "1,000"},
		{"comma float", []string{"comma", "834142.32"}, "834,142.32"},
		{"comma european", []string{"comma", "--european", "834142.32"}, "834.142,32"},
		{"ordinal", []string{"ordinal", "21"}, "21st"},
		{"plural", []string{"plural", "42", "bus"}, "42 buses"},
		{"plural bare", []string{"plural", "--bare", "2", "baby"}, "babies"},
		{"series", []string{"series", "foo", "bar", "baz"}, "foo, bar and baz"},
		{"series oxford", []string{"series", "--oxford", "foo", "bar", "baz"}, "foo, bar, and baz"},
		{"reltime", []string{"reltime", "--ref", "2026-01-01T00:05:00Z", "2026-01-01T00:00:00Z"}, "5 minutes ago"},
	}

	for _, tt := range cases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out, err := run(t, tt.args...)
			if err != nil {
				t.Fatalf("%v: unexpected error: %v", tt.args, err)
			}
			if got := strings.TrimSpace(out); got != tt.want {
				t.Errorf("%v = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestCommandErrors(t *testing.T) {
	t.Parallel()

	bad := [][]string{
		{"bytes", "not-a-number"},
		{"parse-bytes", "10 zortabytes"},
		{"parse-bytes", "-10 MB"},
		{"parse-si", "MB"},
		{"ordinal", "x"},
		{"reltime", "yesterday"},
	}

	for _, args := range bad {
		args := args
		if _, err := run(t, args...); err == nil {
			t.Errorf("%v: expected error, got nil", args)
		}
	}
}

func TestSITable(t *testing.T) {
	t.Parallel()

	out, err := run(t, "si", "--table")
	if err != nil {
		t.Fatalf("si --table: %v", err)
	}
	for _, want := range []string{"kilo", "micro", "quetta"} {
		want := want
		if !strings.Contains(out, want) {
			t.Errorf("si --table output missing %q", want)
		}
	}
}
