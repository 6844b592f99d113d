package aliasstore

import (
	"bytes"
	"testing"

	"github.com/AntonioJCosta/ngenctl/internal/core/domain/alias"
	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPath = "/home/tester/.ngenctl/alias.json"

func newTestStore(t *testing.T, fs afero.Fs) (*JSONStore, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	store, err := NewJSONStore(fs, testPath, log.New(&logs))
	require.NoError(t, err)
	return store.(*JSONStore), &logs
}

func TestNewJSONStore(t *testing.T) {
	logger := log.New(&bytes.Buffer{})
	fs := afero.NewMemMapFs()

	_, err := NewJSONStore(nil, testPath, logger)
	assert.Error(t, err)
	_, err = NewJSONStore(fs, "", logger)
	assert.Error(t, err)
	_, err = NewJSONStore(fs, testPath, nil)
	assert.Error(t, err)

	store, err := NewJSONStore(fs, testPath, logger)
	require.NoError(t, err)
	assert.IsType(t, &JSONStore{}, store)
}

func TestDefaultPath(t *testing.T) {
	assert.Equal(t, "/home/u/.ngenctl/alias.json", DefaultPath("/home/u"))
}

func TestJSONStore_Load(t *testing.T) {
	tests := []struct {
		name        string
		content     *string
		want        alias.Mapping
		wantWarning string
	}{
		{
			name:    "missing file is created empty",
			content: nil,
			want:    alias.Mapping{},
		},
		{
			name:    "valid mapping",
			content: ptr(`{"r": "rancher", "gc": "git clone --depth 1"}`),
			want:    alias.Mapping{"r": "rancher", "gc": "git clone --depth 1"},
		},
		{
			name:    "empty object",
			content: ptr(`{}`),
			want:    alias.Mapping{},
		},
		{
			name:        "invalid JSON",
			content:     ptr(`{"r": `),
			want:        alias.Mapping{},
			wantWarning: "invalid alias file",
		},
		{
			name:        "empty file",
			content:     ptr(``),
			want:        alias.Mapping{},
			wantWarning: "invalid alias file",
		},
		{
			name:        "top-level array",
			content:     ptr(`["r", "rancher"]`),
			want:        alias.Mapping{},
			wantWarning: "invalid alias file",
		},
		{
			name:        "null document",
			content:     ptr(`null`),
			want:        alias.Mapping{},
			wantWarning: "invalid alias file",
		},
		{
			name:        "non-string value",
			content:     ptr(`{"r": {"cmd": "rancher"}}`),
			want:        alias.Mapping{},
			wantWarning: "invalid alias file",
		},
		{
			name:        "null value",
			content:     ptr(`{"r": null}`),
			want:        alias.Mapping{},
			wantWarning: "invalid alias file",
		},
		{
			name:        "empty alias name",
			content:     ptr(`{"": "rancher"}`),
			want:        alias.Mapping{},
			wantWarning: "invalid alias file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			if tt.content != nil {
				require.NoError(t, afero.WriteFile(fs, testPath, []byte(*tt.content), 0o644))
			}
			store, logs := newTestStore(t, fs)

			got := store.Load()

			assert.Equal(t, tt.want, got)
			if tt.wantWarning != "" {
				assert.Contains(t, logs.String(), tt.wantWarning)
			} else {
				assert.Empty(t, logs.String())
			}

			if tt.content == nil {
				data, err := afero.ReadFile(fs, testPath)
				require.NoError(t, err, "missing alias file should have been created")
				assert.JSONEq(t, `{}`, string(data))
			} else {
				data, err := afero.ReadFile(fs, testPath)
				require.NoError(t, err)
				assert.Equal(t, *tt.content, string(data), "malformed files are never repaired")
			}
		})
	}
}

func TestJSONStore_Load_CreateFailureIsOnlyAWarning(t *testing.T) {
	store, logs := newTestStore(t, afero.NewReadOnlyFs(afero.NewMemMapFs()))

	assert.Equal(t, alias.Mapping{}, store.Load())
	assert.Contains(t, logs.String(), "could not create alias file")
}

func TestJSONStore_Save(t *testing.T) {
	t.Run("round trip replaces the whole mapping", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		store, _ := newTestStore(t, fs)

		require.NoError(t, store.Save(alias.Mapping{"a": "one", "b": "two"}))
		require.NoError(t, store.Save(alias.Mapping{"c": "three"}))

		assert.Equal(t, alias.Mapping{"c": "three"}, store.Load())
	})

	t.Run("output is indented JSON", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		store, _ := newTestStore(t, fs)

		require.NoError(t, store.Save(alias.Mapping{"b": "two", "a": "one"}))

		data, err := afero.ReadFile(fs, testPath)
		require.NoError(t, err)
		assert.Equal(t, "{\n  \"a\": \"one\",\n  \"b\": \"two\"\n}\n", string(data))
	})

	t.Run("nil mapping is saved as an empty object", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		store, _ := newTestStore(t, fs)

		require.NoError(t, store.Save(nil))

		data, err := afero.ReadFile(fs, testPath)
		require.NoError(t, err)
		assert.JSONEq(t, `{}`, string(data))
	})

	t.Run("failed write keeps the previous content", func(t *testing.T) {
		base := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(base, testPath, []byte(`{"keep": "me"}`), 0o644))
		store, _ := newTestStore(t, afero.NewReadOnlyFs(base))

		err := store.Save(alias.Mapping{"new": "value"})
		require.Error(t, err)

		data, err := afero.ReadFile(base, testPath)
		require.NoError(t, err)
		assert.JSONEq(t, `{"keep": "me"}`, string(data))
	})
}

func ptr(s string) *string { return &s }
