package aliasresolution

// visitedSet records the alias names seen during one resolution pass.
type visitedSet map[string]struct{}

func (v visitedSet) has(name string) bool {
	_, ok := v[name]
	return ok
}

// with returns a copy of v that also contains name.
func (v visitedSet) with(name string) visitedSet {
	next := make(visitedSet, len(v)+1)
	for k := range v {
		next[k] = struct{}{}
	}
	next[name] = struct{}{}
	return next
}
