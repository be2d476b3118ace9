package main

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmdPassesEveryArgumentThrough(t *testing.T) {
	tests := [][]string{
		{},
		{"Fedora"},
		{"-x"},
		{"--help"},
		{"Arch", "--unknown", "extra"},
	}

	for _, args := range tests {
		var got []string
		called := false
		cmd := newRootCmd(func(_ io.Writer, a []string) error {
			called = true
			got = a
			return nil
		})
		cmd.SetArgs(args)

		require.NoError(t, cmd.Execute(), "%q", args)
		assert.True(t, called, "%q", args)
		assert.Len(t, got, len(args), "%q", args)
		if len(args) > 0 {
			assert.Equal(t, args, got)
		}
	}
}
