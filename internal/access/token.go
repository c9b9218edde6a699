package access

import (
	"fmt"
	"strings"
	"unicode"
)

// Normalize converts any raw role/category value into its canonical
// comparison form: coerced to string, trimmed, upper-cased, with internal
// whitespace, hyphen and underscore runs stripped. Normalizing an already
// normalized token yields itself.
func Normalize(v any) string {
	var s string
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		s = t
	default:
		s = fmt.Sprint(v)
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) || r == '-' || r == '_' {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// TokenSet is the set of normalized role tokens collected from a record.
type TokenSet map[string]struct{}

// Has reports membership of an already-normalized token.
func (s TokenSet) Has(token string) bool {
	_, ok := s[token]
	return ok
}

// HasAny reports whether the set intersects the given normalized tokens.
func (s TokenSet) HasAny(tokens ...string) bool {
	for _, t := range tokens {
		if s.Has(t) {
			return true
		}
	}
	return false
}

// CollectRoleTokens gathers every role-bearing field registered in the alias
// table, normalizes each value and returns the resulting set. Duplicates
// collapse, empty results are dropped. This is the only place role fields are
// read; new role-field aliases are registered in roleFields, not here.
func CollectRoleTokens(r Record) TokenSet {
	set := TokenSet{}
	if r == nil {
		return set
	}
	for _, field := range roleFields {
		v, ok := r.lookup(field)
		if !ok {
			continue
		}
		switch t := v.(type) {
		case []any:
			for _, e := range t {
				set.add(e)
			}
		case []string:
			for _, e := range t {
				set.add(e)
			}
		default:
			set.add(t)
		}
	}
	return set
}

func (s TokenSet) add(v any) {
	switch v.(type) {
	case map[string]any, []any, nil:
		return
	}
	if tok := Normalize(v); tok != "" {
		s[tok] = struct{}{}
	}
}
