package glmetrics

import (
	"regexp"
	"sort"
	"strings"
)

// separator matches a '-' or '_' followed by a lowercase letter.
var separator = regexp.MustCompile(`[-_][a-z]`)

// CamelKey rewrites a snake_case or kebab-case key into camelCase.
//
// Only a separator followed by a lowercase letter is rewritten, so keys that
// are already camelCase are returned unchanged.
func CamelKey(key string) string {
	return separator.ReplaceAllStringFunc(key, func(m string) string {
		return strings.ToUpper(m[1:])
	})
}

// Normalize returns a copy of a decoded document where every object key has
// been rewritten with CamelKey. Arrays keep their order and length, and any
// other value (strings included) is returned as is.
//
// When two keys of the same object collapse onto the same camelCase key, the
// one that was already camelCase wins.
func Normalize(node any) any {
	switch v := node.(type) {
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		out := make(map[string]any, len(v))
		for _, k := range keys {
			ck := CamelKey(k)
			if _, exists := out[ck]; exists && k != ck {
				continue
			}
			out[ck] = Normalize(v[k])
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = Normalize(item)
		}
		return out
	default:
		return node
	}
}
