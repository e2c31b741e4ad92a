package convert

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlags(t *testing.T) {
	var opts Options
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	Flags(flags, &opts, "prefix", "suffix")

	assert.Equal(t, "\n", opts.Separator)

	require.NoError(t, flags.Parse([]string{"-P", "--no-suffix", "-s", ", "}))
	assert.Equal(t, Options{NoPrefix: true, NoSuffix: true, Separator: ", "}, opts)
}
