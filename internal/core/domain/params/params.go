/*
Package params extracts repeated "--param" key/value flags from a raw argument
list, leaving every other token in place.

Two surface forms are accepted and may be mixed within one invocation:

	--param KEY1=VALUE1 KEY2=VALUE2 ...
	--param=KEY=VALUE

The first form consumes following tokens greedily while they contain '=' and
do not start with "--". The second form must contain a '=' after the prefix.
*/
package params

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

const (
	flagName   = "--param"
	flagPrefix = flagName + "="
)

// ErrMalformedParam is wrapped by MalformedParamError.
var ErrMalformedParam = errors.New("malformed parameter")

// MalformedParamError reports a "--param=" token without a KEY=VALUE body.
type MalformedParamError struct {
	Token string
}

func (e *MalformedParamError) Error() string {
	return fmt.Sprintf("malformed parameter %q: expected %sKEY=VALUE", e.Token, flagPrefix)
}

func (e *MalformedParamError) Unwrap() error { return ErrMalformedParam }

// Map holds parsed parameters. Later occurrences of a key overwrite earlier ones.
type Map map[string]string

// Keys returns the parameter keys in sorted order.
func (m Map) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Parse scans args left to right once and returns the parameter map and the
// remaining tokens in their original relative order.
func Parse(args []string) (Map, []string, error) {
	parameters := Map{}
	remaining := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		token := args[i]

		switch {
		case token == flagName:
			// Greedy: stop at the first token that is another flag or lacks '='.
			for i+1 < len(args) && isGreedyValue(args[i+1]) {
				i++
				key, value, _ := SplitKeyValue(args[i])
				parameters[key] = value
			}
		case strings.HasPrefix(token, flagPrefix):
			key, value, ok := SplitKeyValue(strings.TrimPrefix(token, flagPrefix))
			if !ok {
				return nil, nil, &MalformedParamError{Token: token}
			}
			parameters[key] = value
		default:
			remaining = append(remaining, token)
		}
	}

	return parameters, remaining, nil
}

// SplitKeyValue splits "KEY=VALUE" on the first '='. ok is false when there is no '='.
func SplitKeyValue(token string) (key, value string, ok bool) {
	return strings.Cut(token, "=")
}

func isGreedyValue(token string) bool {
	return !strings.HasPrefix(token, "--") && strings.Contains(token, "=")
}
