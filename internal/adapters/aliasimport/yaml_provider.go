package aliasimport

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/AntonioJCosta/ngenctl/internal/core/domain/alias"
	"github.com/AntonioJCosta/ngenctl/internal/core/ports"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// YAMLProvider implements the AliasProvider interface
// by reading aliases from a YAML file.
type YAMLProvider struct {
	fs       afero.Fs
	filePath string
}

// NewYAMLProvider creates a new YAMLProvider.
// filePath is the path to a YAML list of {alias, command} entries.
func NewYAMLProvider(fs afero.Fs, filePath string) (ports.AliasProvider, error) {
	if fs == nil {
		return nil, fmt.Errorf("filesystem cannot be nil")
	}
	if filePath == "" {
		return nil, fmt.Errorf("YAML file path cannot be empty")
	}
	return &YAMLProvider{fs: fs, filePath: filePath}, nil
}

// GetAliases reads and parses aliases from the configured YAML file.
// The file must exist; an empty file or document yields an empty list.
func (p *YAMLProvider) GetAliases() ([]alias.Alias, error) {
	aliases := []alias.Alias{}

	data, err := afero.ReadFile(p.fs, p.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read aliases file %s: %w", p.filePath, err)
	}
	if len(data) == 0 {
		return aliases, nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&aliases); err != nil {
		// A file holding only comments or "---" has no document.
		if errors.Is(err, io.EOF) {
			return []alias.Alias{}, nil
		}
		return nil, fmt.Errorf("failed to unmarshal aliases from %s: %w", p.filePath, err)
	}
	if aliases == nil {
		aliases = []alias.Alias{}
	}
	return aliases, nil
}
