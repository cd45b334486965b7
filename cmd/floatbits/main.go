// floatbits encodes decimal numbers into a small floating point format and
// prints the exercise text with the solution table.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/golang/glog"
	"golang.org/x/text/language"

	"github.com/calebcase/floatbits/bit"
	"github.com/calebcase/floatbits/exercise"
	"github.com/calebcase/floatbits/float"
)

var (
	exponentFlag = flag.Int("e", 4, "exponent width in `bits`")
	mantissaFlag = flag.Int("m", 3, "mantissa width in `bits`")
	tasksFlag    = flag.Int("n", 0, "generate `count` random numbers instead of reading them")
	seedFlag     = flag.Int64("seed", 0, "random `seed` for -n. Zero uses the current time")
	langFlag     = flag.String("lang", "de", "`language` of the exercise text")
	decodeFlag   = flag.Bool("decode", false, "read the arguments as bit strings and print their values")
)

func main() {
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), help)
		fmt.Fprintln(flag.CommandLine.Output(), "\nOptional arguments:")
		flag.PrintDefaults()
	}
	flag.Parse()
	defer glog.Flush()

	f := float.Format{
		ExponentWidth: *exponentFlag,
		MantissaWidth: *mantissaFlag,
	}
	if err := f.Validate(); err != nil {
		fail(err.Error())
	}

	w := tabwriter.NewWriter(os.Stdout, 8, 1, 2, ' ', 0)

	var err error
	if *decodeFlag {
		err = decode(w, f, flag.Args())
	} else {
		err = encode(context.Background(), w, f)
	}
	if err != nil {
		glog.Errorf("%+v", err)
		fail(err.Error())
	}

	if err := w.Flush(); err != nil {
		glog.Exitf("flush: %v", err)
	}
}

func requests(f float.Format) ([]float.Request, error) {
	if *tasksFlag > 0 {
		seed := *seedFlag
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		glog.V(1).Infof("generating %d numbers with seed %d", *tasksFlag, seed)

		return exercise.Generate(rand.New(rand.NewSource(seed)), f, *tasksFlag)
	}

	if flag.NArg() > 0 {
		return exercise.Parse(strings.NewReader(strings.Join(flag.Args(), exercise.TaskSeparator)), f)
	}

	return exercise.Parse(os.Stdin, f)
}

func encode(ctx context.Context, w io.Writer, f float.Format) error {
	tag, err := language.Parse(*langFlag)
	if err != nil {
		return err
	}

	reqs, err := requests(f)
	if err != nil {
		return err
	}

	ex, err := exercise.New(ctx, tag, f, reqs)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, ex.Text)
	fmt.Fprintln(w)
	for _, r := range ex.Results {
		glog.V(1).Infof("%s: %s", r.Literal, r.Class)
		fmt.Fprintf(w, "%s\t%s\t\n", r.Literal, r)
	}

	return nil
}

func decode(w io.Writer, f float.Format, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("no bit strings to decode")
	}

	for _, arg := range args {
		s, err := bit.Parse(arg)
		if err != nil {
			return err
		}

		v, err := float.Decode(s, f)
		if err != nil {
			return err
		}
		glog.V(1).Infof("%s: %s", arg, v.Class)

		fmt.Fprintf(w, "%s\t%s\t%s\t\n", s.Group(1, f.ExponentWidth), v, v.Class)
	}

	return nil
}

func fail(reason string) {
	fmt.Fprintln(os.Stderr, reason)
	fmt.Fprint(os.Stderr, help, "\n")
	glog.Flush()
	os.Exit(1)
}

const help = `floatbits shows the bits of decimal numbers in a floating point format
with one sign bit, e exponent bits and m mantissa bits.
Usage:
	floatbits [-e bits] [-m bits] [-lang de|en] num...
	floatbits [-e bits] [-m bits] -n count [-seed seed]
	floatbits [-e bits] [-m bits] -decode bits...

Where num is a decimal number with a comma as the decimal separator (1,5) or
inf / -inf. Without arguments the numbers are read from the first line of
standard input, separated by semicolons. Put -- in front of the numbers
when the first one is negative.
`
