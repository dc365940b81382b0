package ui

import (
	"sort"
	"strings"
)

// ClassKey is the attribute holding a space-separated class list.
const ClassKey = "class"

// Attrs is a pass-through attribute mapping forwarded by structural components.
// Keys are free-form ("id", "role", "data-testid", ...). The class list lives
// under ClassKey.
type Attrs map[string]string

// Get returns the value stored under key.
func (a Attrs) Get(key string) (string, bool) {
	if a == nil {
		return "", false
	}
	v, ok := a[key]
	return v, ok
}

// Has reports whether key is present, even with an empty value.
func (a Attrs) Has(key string) bool {
	_, ok := a.Get(key)
	return ok
}

// Classes returns the class list in declaration order.
func (a Attrs) Classes() []string {
	v, _ := a.Get(ClassKey)
	return strings.Fields(v)
}

// Keys returns the attribute keys in sorted order.
func (a Attrs) Keys() []string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns an independent copy.
func (a Attrs) Clone() Attrs {
	if a == nil {
		return nil
	}
	out := make(Attrs, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// MergeAttrs overlays caller onto base. Caller keys replace base keys, except
// the class list which concatenates base classes followed by caller classes.
// A class repeated in the combined list keeps only its last position, so the
// later occurrence wins when classes are resolved in order.
func MergeAttrs(base, caller Attrs) Attrs {
	out := make(Attrs, len(base)+len(caller))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range caller {
		if k == ClassKey {
			continue
		}
		out[k] = v
	}

	classes := JoinClasses(base.Classes(), caller.Classes())
	if len(classes) > 0 {
		out[ClassKey] = strings.Join(classes, " ")
	} else {
		delete(out, ClassKey)
	}
	return out
}

// JoinClasses concatenates class lists, dropping earlier duplicates.
func JoinClasses(lists ...[]string) []string {
	var all []string
	for _, list := range lists {
		all = append(all, list...)
	}

	last := make(map[string]int, len(all))
	for i, class := range all {
		last[class] = i
	}

	out := make([]string, 0, len(last))
	for i, class := range all {
		if last[class] == i {
			out = append(out, class)
		}
	}
	return out
}
