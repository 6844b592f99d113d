package dispatch

import (
	"os"
	"sort"

	"github.com/AntonioJCosta/ngenctl/internal/core/domain/alias"
	"github.com/AntonioJCosta/ngenctl/internal/core/domain/params"
)

// expandAlias runs the alias stage. When command is an alias its expansion's
// first word becomes the command and the remaining words are placed ahead of args.
func (s *service) expandAlias(command string, args []string) (string, []string, error) {
	aliases := s.aliases.Load()
	resolved := s.resolver.Resolve(command, aliases)
	if resolved == command {
		return command, args, nil
	}

	words := splitExpansion(resolved)
	if len(words) == 0 {
		return "", nil, ErrEmptyExpansion
	}
	s.logger.Debug("expanded alias", "alias", command, "expansion", resolved)

	expanded := make([]string, 0, len(words)-1+len(args))
	expanded = append(expanded, words[1:]...)
	expanded = append(expanded, args...)
	return words[0], expanded, nil
}

// splitExpansion splits alias expansion text into literal words, the same way
// the resolver finds the first token.
func splitExpansion(expansion string) []string {
	words := alias.Words(expansion)
	if len(words) == 0 {
		return nil
	}
	return words
}

// paramEnvironment renders parsed parameters as NGENCTL_PARAM_<KEY>=<VALUE> entries, sorted by key.
func paramEnvironment(parsed params.Map) []string {
	env := make([]string, 0, len(parsed))
	for _, key := range parsed.Keys() {
		env = append(env, ParamEnvPrefix+key+"="+parsed[key])
	}
	return env
}

// envFileEntries returns env file entries not already present in the process
// environment, sorted by key. Load failures are logged and ignored.
func (s *service) envFileEntries() []string {
	if s.env == nil {
		return nil
	}
	entries, err := s.env.Load()
	if err != nil {
		s.logger.Warn("could not load environment file", "path", s.env.Location(), "err", err)
		return nil
	}

	keys := make([]string, 0, len(entries))
	for k := range entries {
		if _, set := os.LookupEnv(k); set {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	env := make([]string, 0, len(keys))
	for _, k := range keys {
		env = append(env, k+"="+entries[k])
	}
	return env
}
