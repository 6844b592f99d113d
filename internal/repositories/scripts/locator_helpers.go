package scripts

import (
	"sort"
	"strings"

	"github.com/AntonioJCosta/ngenctl/internal/core/domain/script"
	"github.com/spf13/afero"
)

// isPlainCommandName rejects tokens that would escape the script directory.
func isPlainCommandName(command string) bool {
	if command == "" || command == "." || command == ".." {
		return false
	}
	return !strings.ContainsAny(command, `/\`)
}

func isRegularFile(fs afero.Fs, path string) bool {
	info, err := fs.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

/*
EnumerateCandidates lists the scripts present in every location, sorted by
command name. When two locations provide the same command the earlier one
wins, matching what Locate would pick. Unreadable directories are skipped.
*/
func EnumerateCandidates(fs afero.Fs, locations []script.Location) []script.Candidate {
	seen := make(map[string]bool)
	candidates := []script.Candidate{}

	for _, loc := range locations {
		entries, err := afero.ReadDir(fs, loc.Dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if !entry.Mode().IsRegular() || !strings.HasPrefix(entry.Name(), loc.Prefix) {
				continue
			}
			command := strings.TrimPrefix(entry.Name(), loc.Prefix)
			if !isPlainCommandName(command) || seen[command] {
				continue
			}
			seen[command] = true
			candidates = append(candidates, script.Candidate{
				Command: command,
				Path:    loc.PathFor(command),
				Source:  loc.Source,
			})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Command < candidates[j].Command
	})
	return candidates
}
