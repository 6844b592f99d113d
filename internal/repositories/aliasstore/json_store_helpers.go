package aliasstore

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/AntonioJCosta/ngenctl/internal/core/domain/alias"
)

// errNotAMapping is returned when the file holds valid JSON that is not an object of strings.
var errNotAMapping = errors.New("alias file must contain a JSON object of string values")

// decodeMapping parses a JSON object of name -> expansion strings.
// Entries with an empty name are rejected along with the rest of the file.
func decodeMapping(data []byte) (alias.Mapping, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, errNotAMapping
		}
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if raw == nil {
		return nil, errNotAMapping // the literal null
	}

	aliases := make(alias.Mapping, len(raw))
	for name, value := range raw {
		if name == "" {
			return nil, fmt.Errorf("%w: empty alias name", errNotAMapping)
		}
		var expansion *string
		if err := json.Unmarshal(value, &expansion); err != nil || expansion == nil {
			return nil, fmt.Errorf("%w: value of '%s' is not a string", errNotAMapping, name)
		}
		aliases[name] = *expansion
	}
	return aliases, nil
}
