// Command humanize formats and parses human-readable values from the
// command line. One subcommand exists per library capability:
//
//	humanize bytes 82854982
//	humanize bytes --iec 82854982
//	humanize parse-bytes "42 MB"
//	humanize si 2.2345e-12 F
//	humanize parse-si "2.2345 pF"
//	humanize comma 834142.32
//	humanize ordinal 21
//	humanize plural 42 bus
//	humanize series foo bar baz
//	humanize reltime 2026-08-01T00:00:00Z
//
// Results go to stdout; diagnostics go to stderr with exit code 1.
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/humanize-go/humanize/bytesize"
	"github.com/humanize-go/humanize/comma"
	"github.com/humanize-go/humanize/ordinal"
	"github.com/humanize-go/humanize/plural"
	"github.com/humanize-go/humanize/reltime"
	"github.com/humanize-go/humanize/series"
	"github.com/humanize-go/humanize/siprefix"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "humanize:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "humanize",
		Short:         "Format and parse human-readable numbers, sizes and times",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newBytesCmd(),
		newParseBytesCmd(),
		newSICmd(),
		newParseSICmd(),
		newCommaCmd(),
		newOrdinalCmd(),
		newPluralCmd(),
		newSeriesCmd(),
		newRelTimeCmd(),
	)
	return root
}

func newBytesCmd() *cobra.Command {
	var (
		iec    bool
		digits int
	)
	cmd := &cobra.Command{
		Use:   "bytes <count>",
		Short: "Format a byte count as a human-readable size",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("byte count %q: %w", args[0], err)
			}
			if iec {
				fmt.Fprintln(cmd.OutOrStdout(), bytesize.IBytesWithDigits(n, digits))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), bytesize.BytesWithDigits(n, digits))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&iec, "iec", false, "use binary (IEC) units: KiB, MiB, ...")
	cmd.Flags().IntVar(&digits, "digits", bytesize.DefaultDigits, "fractional digits")
	return cmd
}

func newParseBytesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse-bytes <size>",
		Short: "Parse a human-readable size back to a byte count",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := bytesize.Parse(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}
}

func newSICmd() *cobra.Command {
	var (
		digits int
		table  bool
	)
	cmd := &cobra.Command{
		Use:   "si <value> [unit]",
		Short: "Format a value with a metric prefix",
		Args:  cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if table {
				fmt.Fprint(cmd.OutOrStdout(), siprefix.TableString())
				return nil
			}
			if len(args) == 0 {
				return fmt.Errorf("a value is required unless --table is given")
			}
			v, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("value %q: %w", args[0], err)
			}
			unit := ""
			if len(args) == 2 {
				unit = args[1]
			}
			fmt.Fprintln(cmd.OutOrStdout(), siprefix.SIWithDigits(v, digits, unit))
			return nil
		},
	}
	cmd.Flags().IntVar(&digits, "digits", siprefix.DefaultDigits, "fractional digits")
	cmd.Flags().BoolVar(&table, "table", false, "print the metric prefix table")
	return cmd
}

func newParseSICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse-si <value-with-prefix>",
		Short: "Parse a metric-prefixed value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, unit, err := siprefix.ParseSI(args[0])
			if err != nil {
				return err
			}
			if unit == "" {
				fmt.Fprintf(cmd.OutOrStdout(), "%g\n", v)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%g %s\n", v, unit)
			}
			return nil
		},
	}
}

func newCommaCmd() *cobra.Command {
	var european bool
	cmd := &cobra.Command{
		Use:   "comma <number>",
		Short: "Group a number's digits with thousand separators",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format := comma.Standard
			if european {
				format = comma.European
			}
			if n, err := strconv.ParseInt(args[0], 10, 64); err == nil {
				fmt.Fprintln(cmd.OutOrStdout(), format.Int(n))
				return nil
			}
			f, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("number %q: %w", args[0], err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), format.Float(f))
			return nil
		},
	}
	cmd.Flags().BoolVar(&european, "european", false, "group with \".\" and use \",\" for the fraction")
	return cmd
}

func newOrdinalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ordinal <integer>",
		Short: "Append the English ordinal suffix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("integer %q: %w", args[0], err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), ordinal.Ordinal(n))
			return nil
		},
	}
}

func newPluralCmd() *cobra.Command {
	var bare bool
	cmd := &cobra.Command{
		Use:   "plural <quantity> <word> [plural-form]",
		Short: "Render a quantity with the matching noun form",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("quantity %q: %w", args[0], err)
			}
			override := ""
			if len(args) == 3 {
				override = args[2]
			}
			if bare {
				fmt.Fprintln(cmd.OutOrStdout(), plural.PluralWord(n, args[1], override))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), plural.Plural(n, args[1], override))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&bare, "bare", false, "print the word only, without the quantity")
	return cmd
}

func newSeriesCmd() *cobra.Command {
	var (
		conjunction string
		oxford      bool
	)
	cmd := &cobra.Command{
		Use:   "series <word>...",
		Short: "Join words into a natural-language list",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if oxford {
				fmt.Fprintln(cmd.OutOrStdout(), series.OxfordWordSeries(args, conjunction))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), series.WordSeries(args, conjunction))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&conjunction, "conjunction", "and", "word placed before the final item")
	cmd.Flags().BoolVar(&oxford, "oxford", false, "keep the serial comma before the conjunction")
	return cmd
}

func newRelTimeCmd() *cobra.Command {
	var ref string
	cmd := &cobra.Command{
		Use:   "reltime <RFC3339-time>",
		Short: "Describe an instant relative to now (or --ref)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := time.Parse(time.RFC3339, args[0])
			if err != nil {
				return fmt.Errorf("time %q: %w", args[0], err)
			}
			base := time.Now()
			if ref != "" {
				base, err = time.Parse(time.RFC3339, ref)
				if err != nil {
					return fmt.Errorf("reference time %q: %w", ref, err)
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), reltime.RelTime(t, base, "ago", "from now"))
			return nil
		},
	}
	cmd.Flags().StringVar(&ref, "ref", "", "reference instant (RFC3339), defaults to now")
	return cmd
}
