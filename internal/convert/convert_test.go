package convert

import (
	"bytes"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"abv/biliutil"
)

func TestAVToBV(t *testing.T) {
	testCases := []struct {
		name   string
		args   []string
		opts   Options
		stdout string
		stderr string
		failed int
	}{
		{
			name:   "defaults",
			args:   []string{"av170001", " 2 "},
			opts:   Options{Separator: "\n"},
			stdout: "BV17x411w7KC = av170001\nBV1xx411c7mD = av2\n",
		},
		{
			name:   "no prefix",
			args:   []string{"170001"},
			opts:   Options{NoPrefix: true, Separator: "\n"},
			stdout: "BV17x411w7KC = 170001\n",
		},
		{
			name:   "no suffix with separator",
			args:   []string{"1", "2"},
			opts:   Options{NoSuffix: true, Separator: ","},
			stdout: "BV1xx411c7mQ,BV1xx411c7mD,",
		},
		{
			name:   "bad items do not stop the rest",
			args:   []string{"abc", "0", "av1"},
			opts:   Options{NoSuffix: true, Separator: ";"},
			stdout: ";BV1xx411c7mQ;",
			stderr: `Failed to parse arg as int64: av is not a number: strconv.ParseUint: parsing "abc": invalid syntax;` +
				"Failed to convert av: 0, av is smaller than 1: 0",
			failed: 2,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			err := AVToBV(tc.args, tc.opts, &stdout, &stderr)

			assert.Equal(t, tc.stdout, stdout.String())
			assert.Equal(t, tc.stderr, stderr.String())
			if tc.failed == 0 {
				assert.NoError(t, err)
				return
			}
			var merr *multierror.Error
			require.ErrorAs(t, err, &merr)
			assert.Len(t, merr.Errors, tc.failed)
		})
	}
}

func TestBVToAV(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := BVToAV([]string{"BV17x411w7KC", "BV1B0Ziyo7s2", " bv1xx411c7mQ "}, Options{Separator: "\n"}, &stdout, &stderr)

	assert.Equal(t, "av170001 = BV17x411w7KC\n\nav1 = bv1xx411c7mQ\n", stdout.String())
	assert.Equal(t, "Failed to convert bv: BV1B0Ziyo7s2, bv has invalid char '0'", stderr.String())
	assert.ErrorIs(t, err, biliutil.ErrBvInvalidChar)
}

func TestBVToAVNoPrefixNoSuffix(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := BVToAV([]string{"BV1gA4v1m7BV"}, Options{NoPrefix: true, NoSuffix: true}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Equal(t, "11451419180", stdout.String())
	assert.Empty(t, stderr.String())
}
