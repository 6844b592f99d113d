package aliasstore

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/AntonioJCosta/ngenctl/internal/core/domain/alias"
	"github.com/AntonioJCosta/ngenctl/internal/core/ports"
	"github.com/AntonioJCosta/ngenctl/internal/repositories/fsutil"
	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
)

const (
	// DefaultDir is the per-user directory holding ngenctl state, relative to $HOME.
	DefaultDir = ".ngenctl"
	// DefaultFilename is the alias file name inside DefaultDir.
	DefaultFilename = "alias.json"
)

// DefaultPath returns $HOME/.ngenctl/alias.json for the given home directory.
func DefaultPath(homeDir string) string {
	return filepath.Join(homeDir, DefaultDir, DefaultFilename)
}

// JSONStore keeps the alias mapping in a single JSON object file.
type JSONStore struct {
	fs     afero.Fs
	path   string
	logger *log.Logger
}

// NewJSONStore creates a new alias store backed by the JSON file at path.
func NewJSONStore(fs afero.Fs, path string, logger *log.Logger) (ports.AliasStore, error) {
	if fs == nil {
		return nil, fmt.Errorf("filesystem cannot be nil")
	}
	if path == "" {
		return nil, fmt.Errorf("alias file path cannot be empty")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}
	return &JSONStore{fs: fs, path: path, logger: logger}, nil
}

// Load implements the ports.AliasStore interface. It never fails: a missing
// file is created empty and unreadable or malformed content is reported as a
// warning, in both cases yielding an empty mapping.
func (s *JSONStore) Load() alias.Mapping {
	exists, err := afero.Exists(s.fs, s.path)
	if err != nil {
		s.logger.Warn("could not check alias file", "path", s.Location(), "err", err)
		return alias.Mapping{}
	}
	if !exists {
		if err := s.createEmpty(); err != nil {
			s.logger.Warn("could not create alias file", "path", s.Location(), "err", err)
		}
		return alias.Mapping{}
	}

	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		s.logger.Warn("could not read alias file", "path", s.Location(), "err", err)
		return alias.Mapping{}
	}

	aliases, err := decodeMapping(data)
	if err != nil {
		s.logger.Warn("invalid alias file, continuing without aliases", "path", s.Location(), "err", err)
		return alias.Mapping{}
	}
	return aliases
}

// Save implements the ports.AliasStore interface. The whole file is replaced.
func (s *JSONStore) Save(aliases alias.Mapping) error {
	data, err := encodeMapping(aliases)
	if err != nil {
		return fmt.Errorf("failed to encode aliases: %w", err)
	}
	if err := fsutil.WriteFileReplace(s.fs, s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to save aliases to %s: %w", s.Location(), err)
	}
	return nil
}

// Location implements the ports.AliasStore interface.
func (s *JSONStore) Location() string {
	return fsutil.UserFriendlyPath(s.path)
}

func (s *JSONStore) createEmpty() error {
	return fsutil.WriteFileReplace(s.fs, s.path, []byte("{}\n"), 0o644)
}

var _ ports.AliasStore = (*JSONStore)(nil)

// encodeMapping renders aliases as an indented JSON object with sorted keys.
func encodeMapping(aliases alias.Mapping) ([]byte, error) {
	if aliases == nil {
		aliases = alias.Mapping{}
	}
	data, err := json.MarshalIndent(aliases, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
