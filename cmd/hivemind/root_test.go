package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRootCmdDefaultFlags(t *testing.T) {
	cmd := newRootCmd()

	configPath, err := cmd.Flags().GetString("config")
	require.NoError(t, err)
	require.Empty(t, configPath)

	reportPath, err := cmd.Flags().GetString("report")
	require.NoError(t, err)
	require.Equal(t, "simulation.txt", reportPath)

	quiet, err := cmd.Flags().GetBool("quiet")
	require.NoError(t, err)
	require.False(t, quiet)
}

func TestSeedOrDefault(t *testing.T) {
	require.Equal(t, int64(1), seedOrDefault(0))
	require.Equal(t, int64(42), seedOrDefault(42))
}
