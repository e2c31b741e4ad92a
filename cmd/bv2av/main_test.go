package main

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

func run(t *testing.T, args ...string) (int, string, string, *test.Hook) {
	t.Helper()

	hook := test.NewGlobal()
	t.Cleanup(hook.Reset)

	var stdout, stderr bytes.Buffer
	rootCmd.SetArgs(append([]string{}, args...))
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)

	code := execute()
	return code, stdout.String(), stderr.String(), hook
}

func TestExecute(t *testing.T) {
	code, stdout, stderr, hook := run(t, "BV17x411w7KC", "bv1xx411c7mQ")

	assert.Equal(t, 0, code)
	assert.Equal(t, "av170001 = BV17x411w7KC\nav1 = bv1xx411c7mQ\n", stdout)
	assert.Empty(t, stderr)
	assert.Empty(t, hook.AllEntries())
}

func TestExecuteItemFailure(t *testing.T) {
	code, stdout, stderr, hook := run(t, "BV1B0Ziyo7s2", "BV1gA4v1m7BV")

	assert.Equal(t, 1, code)
	assert.Equal(t, "\nav11451419180 = BV1gA4v1m7BV\n", stdout)
	assert.Equal(t, "Failed to convert bv: BV1B0Ziyo7s2, bv has invalid char '0'", stderr)
	assert.Empty(t, hook.AllEntries())
}

func TestExecuteUsageError(t *testing.T) {
	code, stdout, _, hook := run(t)

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Len(t, hook.AllEntries(), 1)
}
