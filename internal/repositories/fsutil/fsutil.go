/*
Package fsutil holds small filesystem helpers shared by the file-backed repositories.
*/
package fsutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// UserFriendlyPath converts an absolute path to a ~/-based path if it's under the user's home directory.
// If the home directory cannot be determined or the path is not under home, it returns the original path.
func UserFriendlyPath(absPath string) string {
	homeDir, err := os.UserHomeDir()
	if err != nil || homeDir == "" {
		return absPath
	}
	if absPath == homeDir {
		return "~"
	}
	if !strings.HasPrefix(absPath, homeDir+string(os.PathSeparator)) {
		return absPath
	}
	relPath, err := filepath.Rel(homeDir, absPath)
	if err != nil {
		return absPath
	}
	return filepath.Join("~", relPath)
}

/*
WriteFileReplace writes data to a temporary file next to path and renames it
over path, so a failed write leaves the previous content in place. The
containing directory is created first.
*/
func WriteFileReplace(fs afero.Fs, path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmp, err := afero.TempFile(fs, dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = fs.Remove(tmpName) }

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("failed to write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("failed to close %s: %w", tmpName, err)
	}
	if err := fs.Chmod(tmpName, perm); err != nil {
		cleanup()
		return fmt.Errorf("failed to set permissions on %s: %w", tmpName, err)
	}
	if err := fs.Rename(tmpName, path); err != nil {
		cleanup()
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
