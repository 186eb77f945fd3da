// Command daijiconv converts numbers to formal Japanese daiji numerals.
//
// Each argument is converted and printed on its own line; without
// arguments, lines are read from standard input:
//
//	daijiconv 12345 120.3045E4
//	echo 1,234,567 | daijiconv -style common
//	daijiconv -parse 壱万弐千参百四拾五
//	daijiconv -text "値段は1,234円です"
//
// The -style flag selects the glyph tables, -bare-one drops the leading 壱
// before 千, 百 and 拾, and -omit-overflow renders numbers past the unit
// table instead of failing.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/68B09/DaijiConverter/daiji"
)

func main() {
	style := flag.String("style", "daiji", "glyph style: daiji, old or common")
	bareOne := flag.Bool("bare-one", false, "write 千 instead of 壱千 (everyday style)")
	omitOverflow := flag.Bool("omit-overflow", false, "render numbers past the unit table without a unit name")
	parseMode := flag.Bool("parse", false, "read kanji numerals and print their numeric value")
	textMode := flag.Bool("text", false, "rewrite every numeral inside running text")
	flag.Parse()

	if *parseMode && *textMode {
		fmt.Fprintf(os.Stderr, "daijiconv: -parse and -text are mutually exclusive\n")
		os.Exit(1)
	}

	conv, err := newConverter(*style, *bareOne, *omitOverflow)
	if err != nil {
		fmt.Fprintf(os.Stderr, "daijiconv: %v\n", err)
		os.Exit(1)
	}

	process := func(s string) error {
		switch {
		case *parseMode:
			v, err := daiji.Parse(s)
			if err != nil {
				return err
			}
			fmt.Println(v)
		case *textMode:
			fmt.Println(conv.ReplaceNumerals(s))
		default:
			out, err := conv.ConvertString(s)
			if err != nil {
				return err
			}
			fmt.Println(out)
		}
		return nil
	}

	failed := false

	if args := flag.Args(); len(args) > 0 {
		for _, arg := range args {
			if err := process(arg); err != nil {
				fmt.Fprintf(os.Stderr, "daijiconv: %q: %v\n", arg, err)
				failed = true
			}
		}
	} else {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			if err := process(scanner.Text()); err != nil {
				fmt.Fprintf(os.Stderr, "daijiconv: %q: %v\n", scanner.Text(), err)
				failed = true
			}
		}
		if err := scanner.Err(); err != nil {
			fmt.Fprintf(os.Stderr, "daijiconv: reading stdin: %v\n", err)
			failed = true
		}
	}

	if failed {
		os.Exit(1)
	}
}

// newConverter builds the converter selected by the style flags.
func newConverter(style string, bareOne, omitOverflow bool) (*daiji.Converter, error) {
	var opts []daiji.Option
	switch style {
	case "daiji":
	case "old":
		opts = append(opts,
			daiji.WithDigitGlyphs(daiji.OldDaijiDigits),
			daiji.WithPositionalUnits(daiji.OldDaijiPositionalUnits),
			daiji.WithLargeUnits(daiji.OldDaijiLargeUnits),
		)
	case "common":
		opts = append(opts,
			daiji.WithDigitGlyphs(daiji.CommonDigits),
			daiji.WithPositionalUnits(daiji.CommonPositionalUnits),
			daiji.WithAppendOneBeforeSmallUnits(false),
		)
	default:
		return nil, fmt.Errorf("unknown style %q (want daiji, old or common)", style)
	}
	if bareOne {
		opts = append(opts, daiji.WithAppendOneBeforeSmallUnits(false))
	}
	if omitOverflow {
		opts = append(opts, daiji.WithOverflowPolicy(daiji.OverflowOmitUnit))
	}
	return daiji.New(opts...)
}
