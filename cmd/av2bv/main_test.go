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
	code, stdout, stderr, hook := run(t, "av170001", "2")

	assert.Equal(t, 0, code)
	assert.Equal(t, "BV17x411w7KC = av170001\nBV1xx411c7mD = av2\n", stdout)
	assert.Empty(t, stderr)
	assert.Empty(t, hook.AllEntries())
}

func TestExecuteItemFailure(t *testing.T) {
	code, stdout, stderr, hook := run(t, "0", "av1")

	assert.Equal(t, 1, code)
	assert.Equal(t, "\nBV1xx411c7mQ = av1\n", stdout)
	assert.Equal(t, "Failed to convert av: 0, av is smaller than 1: 0", stderr)
	assert.Empty(t, hook.AllEntries())
}

func TestExecuteUsageError(t *testing.T) {
	code, stdout, _, hook := run(t)

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Len(t, hook.AllEntries(), 1)
}
