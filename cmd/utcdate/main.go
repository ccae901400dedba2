package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"github.com/davejbax/go-utcdatetime"
	"github.com/spf13/pflag"
	"io"
	"log"
	"os"
	"strconv"
)

var (
	errNoTimes       = errors.New("no time strings given")
	errUnknownOutput = errors.New("unknown output format")
)

type renderFunc func(d utcdatetime.DateTime) (string, error)

var renderers = map[string]renderFunc{
	"display": func(d utcdatetime.DateTime) (string, error) {
		return d.String(), nil
	},
	"unix": func(d utcdatetime.DateTime) (string, error) {
		seconds, err := d.Unix()
		return strconv.FormatUint(seconds, 10), err
	},
	"unix32": func(d utcdatetime.DateTime) (string, error) {
		seconds, err := d.Unix32()
		return strconv.FormatUint(uint64(seconds), 10), err
	},
	"weekday": func(d utcdatetime.DateTime) (string, error) {
		return strconv.Itoa(int(d.Weekday())), nil
	},
	"binary": func(d utcdatetime.DateTime) (string, error) {
		data, err := d.MarshalBinary()
		return hex.EncodeToString(data), err
	},
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("utcdate: ")

	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

// run converts every time string in args, writing one line per string to stdout. Strings that cannot be converted
// are reported on stderr and do not stop the remaining strings from being converted.
func run(args []string, stdout io.Writer, stderr io.Writer) error {
	flags := pflag.NewFlagSet("utcdate", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	output := flags.StringP("output", "o", "display", "Rendering of each time: display, unix, unix32, weekday or binary")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	render, ok := renderers[*output]
	if !ok {
		return fmt.Errorf("%w: %s", errUnknownOutput, *output)
	}

	if flags.NArg() == 0 {
		fmt.Fprintf(stderr, "usage: utcdate [flags] TIME...\n%s", flags.FlagUsages())
		return errNoTimes
	}

	logger := log.New(stderr, "utcdate: ", 0)

	failed := 0
	for _, arg := range flags.Args() {
		d, err := utcdatetime.Parse(arg)
		if err != nil {
			logger.Printf("could not parse %q: %v", arg, err)
			failed++
			continue
		}

		rendered, err := render(d)
		if err != nil {
			logger.Printf("could not render %s as %s: %v", d, *output, err)
			failed++
			continue
		}

		fmt.Fprintln(stdout, rendered)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d times could not be converted", failed, flags.NArg())
	}

	return nil
}
