package envfile

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/AntonioJCosta/ngenctl/internal/core/domain/params"
	"github.com/AntonioJCosta/ngenctl/internal/core/ports"
	"github.com/AntonioJCosta/ngenctl/internal/repositories/fsutil"
	"github.com/joho/godotenv"
	"github.com/spf13/afero"
)

// DefaultFilename is the env file name inside the ngenctl state directory.
const DefaultFilename = ".env"

// ErrInvalidKey is returned for keys that cannot be used as environment variable names.
var ErrInvalidKey = errors.New("invalid environment variable name")

var keyPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// DefaultPath returns $HOME/.ngenctl/.env for the given home directory.
func DefaultPath(homeDir string) string {
	return filepath.Join(homeDir, ".ngenctl", DefaultFilename)
}

// Store keeps KEY=VALUE pairs in a dotenv file.
type Store struct {
	fs   afero.Fs
	path string
}

// NewStore creates a new env store backed by the dotenv file at path.
func NewStore(fs afero.Fs, path string) (ports.EnvStore, error) {
	if fs == nil {
		return nil, fmt.Errorf("filesystem cannot be nil")
	}
	if path == "" {
		return nil, fmt.Errorf("env file path cannot be empty")
	}
	return &Store{fs: fs, path: path}, nil
}

// Load implements the ports.EnvStore interface. A missing file is an empty set.
func (s *Store) Load() (map[string]string, error) {
	f, err := s.fs.Open(s.path)
	if err != nil {
		if errors.Is(err, afero.ErrFileNotFound) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("failed to open env file %s: %w", s.Location(), err)
	}
	defer f.Close()

	env, err := godotenv.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse env file %s: %w", s.Location(), err)
	}
	return env, nil
}

// Save implements the ports.EnvStore interface. The file is only readable by its owner.
func (s *Store) Save(env map[string]string) error {
	for key := range env {
		if !keyPattern.MatchString(key) {
			return fmt.Errorf("%w: '%s'", ErrInvalidKey, key)
		}
	}
	content, err := godotenv.Marshal(env)
	if err != nil {
		return fmt.Errorf("failed to encode env file: %w", err)
	}
	if content != "" {
		content += "\n"
	}
	if err := fsutil.WriteFileReplace(s.fs, s.path, []byte(content), 0o600); err != nil {
		return fmt.Errorf("failed to save env file %s: %w", s.Location(), err)
	}
	return nil
}

// Location implements the ports.EnvStore interface.
func (s *Store) Location() string {
	return fsutil.UserFriendlyPath(s.path)
}

var _ ports.EnvStore = (*Store)(nil)

// ParseAssignment splits a KEY=VALUE argument and validates the key.
func ParseAssignment(token string) (string, string, error) {
	key, value, ok := params.SplitKeyValue(token)
	if !ok {
		return "", "", fmt.Errorf("expected KEY=VALUE, got '%s'", token)
	}
	if !keyPattern.MatchString(key) {
		return "", "", fmt.Errorf("%w: '%s'", ErrInvalidKey, key)
	}
	return key, value, nil
}

// IsSecretKey reports whether the value of key should be masked when displayed.
func IsSecretKey(key string) bool {
	upper := strings.ToUpper(key)
	for _, marker := range []string{"TOKEN", "SECRET", "PASSWORD", "PASS", "KEY", "CREDENTIAL"} {
		if strings.Contains(upper, marker) {
			return true
		}
	}
	return false
}
