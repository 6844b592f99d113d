package aliasmanagement

import (
	"errors"
	"io"
	"testing"

	"github.com/AntonioJCosta/ngenctl/internal/core/domain/alias"
	"github.com/AntonioJCosta/ngenctl/internal/core/ports"
	"github.com/AntonioJCosta/ngenctl/internal/core/services/aliasresolution"
	"github.com/AntonioJCosta/ngenctl/internal/core/testutil"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResolver() ports.AliasResolver {
	return aliasresolution.NewService(log.New(io.Discard))
}

func TestNewService(t *testing.T) {
	t.Run("should return a service if dependencies are set", func(t *testing.T) {
		svc := NewService(&testutil.MockAliasStore{}, newResolver())
		assert.NotNil(t, svc)
	})

	t.Run("should panic if store is nil", func(t *testing.T) {
		assert.Panics(t, func() { _ = NewService(nil, newResolver()) })
	})

	t.Run("should panic if resolver is nil", func(t *testing.T) {
		assert.Panics(t, func() { _ = NewService(&testutil.MockAliasStore{}, nil) })
	})
}

func TestService_SetAlias(t *testing.T) {
	tests := []struct {
		name        string
		initial     alias.Mapping
		aliasName   string
		expansion   string
		saveErr     error
		wantCreated bool
		wantErrIs   error
		wantSaved   alias.Mapping
	}{
		{
			name:        "success - alias newly created",
			initial:     alias.Mapping{},
			aliasName:   "r",
			expansion:   "rancher",
			wantCreated: true,
			wantSaved:   alias.Mapping{"r": "rancher"},
		},
		{
			name:        "success - existing alias replaced, others untouched",
			initial:     alias.Mapping{"r": "rancher", "g": "git"},
			aliasName:   "r",
			expansion:   "  rancher kubectl  ",
			wantCreated: false,
			wantSaved:   alias.Mapping{"r": "rancher kubectl", "g": "git"},
		},
		{
			name:      "failure - empty name",
			initial:   alias.Mapping{},
			aliasName: "",
			expansion: "x",
			wantErrIs: ErrInvalidAliasName,
		},
		{
			name:      "failure - name with whitespace",
			initial:   alias.Mapping{},
			aliasName: "two words",
			expansion: "x",
			wantErrIs: ErrInvalidAliasName,
		},
		{
			name:      "failure - name with path separator",
			initial:   alias.Mapping{},
			aliasName: "../evil",
			expansion: "x",
			wantErrIs: ErrInvalidAliasName,
		},
		{
			name:      "failure - reserved builtin name",
			initial:   alias.Mapping{},
			aliasName: "alias",
			expansion: "x",
			wantErrIs: ErrInvalidAliasName,
		},
		{
			name:      "failure - store returns error",
			initial:   alias.Mapping{},
			aliasName: "r",
			expansion: "rancher",
			saveErr:   errors.New("disk full"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := testutil.NewInMemoryAliasStore(tt.initial)
			if tt.saveErr != nil {
				store.SaveFunc = func(alias.Mapping) error { return tt.saveErr }
			}
			svc := NewService(store, newResolver(), "alias", "commands")

			created, err := svc.SetAlias(tt.aliasName, tt.expansion)

			if tt.wantErrIs != nil || tt.saveErr != nil {
				require.Error(t, err)
				if tt.wantErrIs != nil {
					assert.ErrorIs(t, err, tt.wantErrIs)
					assert.Empty(t, store.SaveCalls, "invalid names must not reach the store")
				} else {
					assert.ErrorIs(t, err, tt.saveErr)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCreated, created)
			require.Len(t, store.SaveCalls, 1)
			assert.Equal(t, tt.wantSaved, store.SaveCalls[0])
		})
	}
}

func TestService_RemoveAlias(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		store := testutil.NewInMemoryAliasStore(alias.Mapping{"a": "x", "b": "y"})
		svc := NewService(store, newResolver())

		require.NoError(t, svc.RemoveAlias("a"))
		assert.Equal(t, alias.Mapping{"b": "y"}, svc.ListAliases())
	})

	t.Run("failure - unknown alias", func(t *testing.T) {
		store := testutil.NewInMemoryAliasStore(alias.Mapping{"b": "y"})
		svc := NewService(store, newResolver())

		err := svc.RemoveAlias("a")
		assert.ErrorIs(t, err, ErrAliasNotFound)
		assert.Empty(t, store.SaveCalls)
	})
}

func TestService_ResolveAlias(t *testing.T) {
	store := testutil.NewInMemoryAliasStore(alias.Mapping{
		"a":    "b extra",
		"b":    "run",
		"loop": "pool",
		"pool": "loop",
	})
	svc := NewService(store, newResolver())

	got, err := svc.ResolveAlias("a")
	require.NoError(t, err)
	assert.Equal(t, "run extra", got)

	_, err = svc.ResolveAlias("loop")
	assert.ErrorIs(t, err, aliasresolution.ErrAliasCycle)

	_, err = svc.ResolveAlias("missing")
	assert.ErrorIs(t, err, ErrAliasNotFound)
}

func TestService_ImportAliases(t *testing.T) {
	incoming := []alias.Alias{
		{Name: "new", Command: "rancher"},
		{Name: "same", Command: "git status"},
		{Name: "changed", Command: "kubectl v2"},
		{Name: "bad name", Command: "x"},
	}
	initial := alias.Mapping{"same": "git status", "changed": "kubectl v1"}

	tests := []struct {
		name      string
		overwrite bool
		want      ports.ImportResult
		wantSaved alias.Mapping
	}{
		{
			name:      "without overwrite existing definitions are kept",
			overwrite: false,
			want: ports.ImportResult{
				Added:   []string{"new"},
				Skipped: []string{"same", "changed"},
				Invalid: []string{"bad name"},
			},
			wantSaved: alias.Mapping{"new": "rancher", "same": "git status", "changed": "kubectl v1"},
		},
		{
			name:      "with overwrite changed definitions are replaced",
			overwrite: true,
			want: ports.ImportResult{
				Added:       []string{"new"},
				Overwritten: []string{"changed"},
				Skipped:     []string{"same"},
				Invalid:     []string{"bad name"},
			},
			wantSaved: alias.Mapping{"new": "rancher", "same": "git status", "changed": "kubectl v2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := testutil.NewInMemoryAliasStore(initial)
			provider := &testutil.MockAliasProvider{
				GetAliasesFunc: func() ([]alias.Alias, error) { return incoming, nil },
			}
			svc := NewService(store, newResolver())

			got, err := svc.ImportAliases(provider, tt.overwrite)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			require.Len(t, store.SaveCalls, 1, "import must save the mapping exactly once")
			assert.Equal(t, tt.wantSaved, store.SaveCalls[0])
		})
	}

	t.Run("nothing to change does not write", func(t *testing.T) {
		store := testutil.NewInMemoryAliasStore(alias.Mapping{"same": "git status"})
		provider := &testutil.MockAliasProvider{
			GetAliasesFunc: func() ([]alias.Alias, error) {
				return []alias.Alias{{Name: "same", Command: "git status"}}, nil
			},
		}
		svc := NewService(store, newResolver())

		got, err := svc.ImportAliases(provider, false)
		require.NoError(t, err)
		assert.Equal(t, []string{"same"}, got.Skipped)
		assert.Empty(t, store.SaveCalls)
	})

	t.Run("provider error is returned", func(t *testing.T) {
		providerErr := errors.New("bad yaml")
		provider := &testutil.MockAliasProvider{
			GetAliasesFunc: func() ([]alias.Alias, error) { return nil, providerErr },
		}
		svc := NewService(testutil.NewInMemoryAliasStore(nil), newResolver())

		_, err := svc.ImportAliases(provider, false)
		assert.ErrorIs(t, err, providerErr)
	})
}
