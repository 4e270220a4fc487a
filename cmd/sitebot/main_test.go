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

	t.Run("no arguments shows help and errors", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		m := NewMain()
		err := m.Run(context.Background(), nil, &stdout, &stderr)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
		assert.Contains(t, stdout.String(), "serve")
	})

	t.Run("help succeeds", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		m := NewMain()
		require.NoError(t, m.Run(context.Background(), []string{"help"}, &stdout, &stderr))
		assert.Contains(t, stdout.String(), "chat")
	})

	t.Run("unknown command", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		m := NewMain()
		err := m.Run(context.Background(), []string{"frobnicate"}, &stdout, &stderr)
		assert.Error(t, err)
	})
}
