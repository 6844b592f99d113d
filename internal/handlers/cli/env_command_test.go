package cli

import (
	"errors"
	"testing"

	"github.com/AntonioJCosta/ngenctl/internal/core/testutil"
	"github.com/AntonioJCosta/ngenctl/internal/repositories/envfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvSet(t *testing.T) {
	t.Run("stores every assignment", func(t *testing.T) {
		te := newTestEnv(nil)
		te.deps.Env = testutil.NewInMemoryEnvStore(map[string]string{"KEEP": "1"})

		stdout, _, err := executeCommand(te.deps, "env", "set", "JENKINS_URL=https://ci.example.com/?a=b", "JENKINS_USER=me")

		require.NoError(t, err)
		assert.Equal(t, "Set JENKINS_URL\nSet JENKINS_USER\n", stdout)
		env, _ := te.deps.Env.Load()
		assert.Equal(t, map[string]string{
			"KEEP":         "1",
			"JENKINS_URL":  "https://ci.example.com/?a=b",
			"JENKINS_USER": "me",
		}, env)
	})

	t.Run("one bad assignment stores nothing", func(t *testing.T) {
		te := newTestEnv(nil)

		_, _, err := executeCommand(te.deps, "env", "set", "A=1", "NOT VALID=2")

		assert.ErrorIs(t, err, envfile.ErrInvalidKey)
		env, _ := te.env.Load()
		assert.Empty(t, env)
	})

	t.Run("load failure", func(t *testing.T) {
		te := newTestEnv(nil)
		te.deps.Env = &testutil.MockEnvStore{
			LoadFunc: func() (map[string]string, error) { return nil, errors.New("unreadable") },
		}

		_, _, err := executeCommand(te.deps, "env", "set", "A=1")

		assert.ErrorContains(t, err, "unreadable")
	})
}

func TestEnvList(t *testing.T) {
	te := newTestEnv(nil)
	te.deps.Env = testutil.NewInMemoryEnvStore(map[string]string{
		"JENKINS_URL":   "https://ci.example.com",
		"JENKINS_TOKEN": "s3cr3t",
	})

	stdout, _, err := executeCommand(te.deps, "env", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "https://ci.example.com")
	assert.Contains(t, stdout, maskedValue)
	assert.NotContains(t, stdout, "s3cr3t")

	stdout, _, err = executeCommand(te.deps, "env", "list", "--show-secrets")
	require.NoError(t, err)
	assert.Contains(t, stdout, "s3cr3t")
}

func TestEnvList_Empty(t *testing.T) {
	te := newTestEnv(nil)

	stdout, _, err := executeCommand(te.deps, "env", "list")

	require.NoError(t, err)
	assert.Contains(t, stdout, "No variables stored in ~/.ngenctl/.env.")
}

func TestEnvUnset(t *testing.T) {
	te := newTestEnv(nil)
	te.deps.Env = testutil.NewInMemoryEnvStore(map[string]string{"A": "1", "B": "2"})

	stdout, stderr, err := executeCommand(te.deps, "env", "unset", "A", "MISSING")

	require.NoError(t, err)
	assert.Equal(t, "Removed A\n", stdout)
	assert.Contains(t, stderr, "'MISSING' is not set")
	env, _ := te.deps.Env.Load()
	assert.Equal(t, map[string]string{"B": "2"}, env)
}

func TestEnvCommand_NotConfigured(t *testing.T) {
	te := newTestEnv(nil)
	te.deps.Env = nil

	_, _, err := executeCommand(te.deps, "env", "list")

	assert.ErrorContains(t, err, "env file is not configured")
}
