/*
Package script defines where dispatchable executables live and how a command
token maps to a file name.
*/
package script

import "path/filepath"

// Source identifies which candidate location a script was found in.
type Source string

const (
	SourceSystem  Source = "system"
	SourceBundled Source = "bundled"
	SourceAlias   Source = "alias"
)

/*
Location is one directory searched for scripts. The file name for a command is
Prefix + command, e.g. "ngenctl-rancher".
*/
type Location struct {
	Source Source
	Dir    string
	Prefix string
}

// PathFor returns the candidate path for the given command in this location.
func (l Location) PathFor(command string) string {
	return filepath.Join(l.Dir, l.Prefix+command)
}

// Candidate is a script that was found on disk.
type Candidate struct {
	Command string
	Path    string
	Source  Source
}
