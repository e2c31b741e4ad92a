// Package convert renders av2bv / bv2av conversions for the command line.
package convert

import (
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-multierror"
	log "github.com/sirupsen/logrus"

	"abv/biliutil"
)

const avPrefix = "av"

type Options struct {
	// NoPrefix hides the "av" in front of av numbers.
	NoPrefix bool
	// NoSuffix hides the " = <input>" echo after each result.
	NoSuffix bool
	// Separator is written after every item, on stdout for results and on
	// stderr for failures.
	Separator string
}

func (o Options) prefix() string {
	if o.NoPrefix {
		return ""
	}
	return avPrefix
}

// AVToBV converts every av argument and keeps going when one of them fails.
// The returned error collects every failure.
func AVToBV(args []string, opts Options, stdout, stderr io.Writer) error {
	var result *multierror.Error
	for _, arg := range args {
		aid, err := biliutil.ParseAid(arg)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to parse arg as int64: %s%s", err, opts.Separator)
			result = multierror.Append(result, fmt.Errorf("%s: %w", arg, err))
			continue
		}

		bv, err := biliutil.Encode(aid)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to convert av: %d, %s", aid, err)
			result = multierror.Append(result, fmt.Errorf("%s: %w", arg, err))
		} else {
			log.Debugf("av%d -> %s", aid, bv)
			fmt.Fprint(stdout, bv)
			if !opts.NoSuffix {
				fmt.Fprintf(stdout, " = %s%d", opts.prefix(), aid)
			}
		}
		fmt.Fprint(stdout, opts.Separator)
	}
	return result.ErrorOrNil()
}

// BVToAV converts every BV argument and keeps going when one of them fails.
// The returned error collects every failure.
func BVToAV(args []string, opts Options, stdout, stderr io.Writer) error {
	var result *multierror.Error
	for _, arg := range args {
		bv := strings.TrimSpace(arg)
		aid, err := biliutil.Decode(bv)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to convert bv: %s, %s", bv, err)
			result = multierror.Append(result, fmt.Errorf("%s: %w", bv, err))
		} else {
			log.Debugf("%s -> av%d", bv, aid)
			fmt.Fprintf(stdout, "%s%d", opts.prefix(), aid)
			if !opts.NoSuffix {
				fmt.Fprintf(stdout, " = %s", bv)
			}
		}
		fmt.Fprint(stdout, opts.Separator)
	}
	return result.ErrorOrNil()
}
