package command_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgeswarm/swarmprov/internal/command"
	"github.com/edgeswarm/swarmprov/internal/testutil"
)

func TestRealRunnerCapturesOutput(t *testing.T) {
	script := testutil.WriteScript(t, t.TempDir(), "hello", `echo "hello $1"; echo "warn" >&2`)

	out, err := command.RealRunner{}.Run(context.Background(), script, "world")
	require.NoError(t, err)
	assert.Contains(t, string(out), "hello world")
	assert.Contains(t, string(out), "warn")
}

func TestRealRunnerReportsExitCode(t *testing.T) {
	script := testutil.WriteScript(t, t.TempDir(), "nmcli", `echo "Error: unknown connection 'Hotspot'." >&2; exit 10`)

	_, err := command.RealRunner{}.Run(context.Background(), script, "connection", "delete", "Hotspot")
	require.Error(t, err)
	assert.Equal(t, 10, command.ExitCode(err))
	assert.Contains(t, command.Output(err), "unknown connection")
	assert.Contains(t, err.Error(), "unknown connection 'Hotspot'.")

	var cmdErr *command.Error
	require.True(t, errors.As(err, &cmdErr))
	assert.Equal(t, []string{"connection", "delete", "Hotspot"}, cmdErr.Args)
}

func TestRealRunnerAppendsEnv(t *testing.T) {
	script := testutil.WriteScript(t, t.TempDir(), "env-echo", `echo "frontend=$DEBIAN_FRONTEND"`)

	out, err := command.RealRunner{Env: []string{"DEBIAN_FRONTEND=noninteractive"}}.Run(context.Background(), script)
	require.NoError(t, err)
	assert.Contains(t, string(out), "frontend=noninteractive")
}

func TestRealRunnerMissingProgram(t *testing.T) {
	_, err := command.RealRunner{}.Run(context.Background(), filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.Equal(t, -1, command.ExitCode(err))
}

func TestExitCodeOfPlainError(t *testing.T) {
	assert.Equal(t, -1, command.ExitCode(errors.New("plain")))
	assert.Empty(t, command.Output(errors.New("plain")))
}
