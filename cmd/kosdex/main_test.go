package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("no arguments shows help and fails", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		m := NewMain()

		err := m.Run(context.Background(), nil, &stdout, &stderr)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
		assert.Contains(t, stdout.String(), "kosdex")
	})

	t.Run("help flag succeeds", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		m := NewMain()

		err := m.Run(context.Background(), []string{"--help"}, &stdout, &stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "build")
		assert.Contains(t, stdout.String(), "cache")
	})

	t.Run("unknown command fails", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		m := NewMain()

		err := m.Run(context.Background(), []string{"frobnicate"}, &stdout, &stderr)

		assert.Error(t, err)
	})
}

func TestCmdWord(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "build", cmdWord("build"))
	assert.Equal(t, "preview", cmdWord("preview <url>"))
	assert.Equal(t, "cache", cmdWord("cache stats"))
}
