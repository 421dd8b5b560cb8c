package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmd(t *testing.T) {
	cmd := NewRootCmd("1.0.0", nil)
	require.NotNil(t, cmd)

	assert.Equal(t, "moviematch", cmd.Use)
	assert.Equal(t, "1.0.0", cmd.Version)
	assert.Nil(t, cmd.RunE)
}

func TestRootCmdHasFlags(t *testing.T) {
	cmd := NewRootCmd("1.0.0", nil)

	for _, name := range []string{"config", "movies", "embeddings", "log-level"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), "flag %q", name)
	}
}

func TestRootCmdSubcommands(t *testing.T) {
	cmd := NewRootCmd("dev", newApp())

	names := make(map[string]bool)
	for _, c := range cmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"search", "info", "build-embeddings"} {
		assert.True(t, names[want], "missing subcommand %q", want)
	}
	assert.NotNil(t, cmd.RunE)
}

func TestRootCmdAbortsOnLoadError(t *testing.T) {
	f := newFixture(t)

	// No embeddings built yet.
	_, err := f.run(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), f.embeddings)
}
