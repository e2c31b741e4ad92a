package convert

import "github.com/spf13/pflag"

// Flags registers the output flags shared by av2bv and bv2av.
func Flags(flags *pflag.FlagSet, opts *Options, prefixUsage, suffixUsage string) {
	flags.BoolVarP(&opts.NoPrefix, "no-prefix", "P", false, prefixUsage)
	flags.BoolVarP(&opts.NoSuffix, "no-suffix", "S", false, suffixUsage)
	flags.StringVarP(&opts.Separator, "separator", "s", "\n", "Separator of each element")
}
