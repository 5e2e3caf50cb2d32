package privilege

import (
	"errors"
	"os"
	"os/user"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envOf(vars map[string]string) Env {
	return func(key string) string { return vars[key] }
}

func noLookup(string) (*user.User, error) {
	return nil, errors.New("unknown user")
}

func TestCheck(t *testing.T) {
	assert.NoError(t, Check(func() int { return 0 }))
	assert.ErrorIs(t, Check(func() int { return 1000 }), ErrNotRoot)
}

func TestInvokerFromSudo(t *testing.T) {
	lookup := func(name string) (*user.User, error) {
		require.Equal(t, "pi", name)
		return &user.User{Username: "pi", HomeDir: "/home/pi"}, nil
	}
	op, err := Invoker(envOf(map[string]string{"SUDO_UID": "1000", "SUDO_GID": "1001", "SUDO_USER": "pi", "HOME": "/root"}), lookup)
	require.NoError(t, err)
	assert.Equal(t, Operator{Name: "pi", UID: 1000, GID: 1001, Home: "/home/pi", Sudo: true}, op)
}

func TestInvokerSudoFallsBackToHome(t *testing.T) {
	op, err := Invoker(envOf(map[string]string{"SUDO_UID": "1000", "SUDO_GID": "1000", "SUDO_USER": "ghost", "HOME": "/root"}), noLookup)
	require.NoError(t, err)
	assert.Equal(t, "/root", op.Home)
	assert.True(t, op.Sudo)
}

func TestInvokerRejectsBadIDs(t *testing.T) {
	_, err := Invoker(envOf(map[string]string{"SUDO_UID": "pi", "SUDO_GID": "1000"}), noLookup)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid SUDO_UID "pi"`)

	_, err = Invoker(envOf(map[string]string{"SUDO_UID": "1000", "SUDO_GID": "-x"}), noLookup)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SUDO_GID")
}

func TestInvokerWithoutSudo(t *testing.T) {
	op, err := Invoker(envOf(map[string]string{"HOME": "/home/op"}), noLookup)
	require.NoError(t, err)
	assert.False(t, op.Sudo)
	assert.Equal(t, os.Getuid(), op.UID)
	assert.Equal(t, "/home/op", op.Home)
}

func TestChownWithoutSudoIsNoop(t *testing.T) {
	assert.NoError(t, Operator{UID: 12345, GID: 12345}.Chown(filepath.Join(t.TempDir(), "missing")))
}

func TestChownToSelf(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "a", "b"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a", "b", "f"), []byte("x"), 0o644))

	op := Operator{UID: os.Getuid(), GID: os.Getgid(), Sudo: true}
	assert.NoError(t, op.Chown(root))
}

func TestChownMissingTree(t *testing.T) {
	op := Operator{UID: os.Getuid(), GID: os.Getgid(), Sudo: true}
	err := op.Chown(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chown")
}
