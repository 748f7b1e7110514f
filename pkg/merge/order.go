package merge

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// foldedKey pairs a key with its case-folded form.
type foldedKey struct {
	key    string
	folded string
}

// compareFolded orders keys case-insensitively, then ordinally so that keys
// differing only in case keep a stable order.
func compareFolded(a, b foldedKey) int {
	if c := strings.Compare(a.folded, b.folded); c != 0 {
		return c
	}
	return strings.Compare(a.key, b.key)
}

// sortedKeys returns the union of the keys of all maps in case-insensitive
// order.
func sortedKeys[V any](maps ...map[string]V) []string {
	fold := cases.Fold()
	seen := make(map[string]struct{})
	var keys []foldedKey
	for _, m := range maps {
		for k := range m {
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			keys = append(keys, foldedKey{key: k, folded: fold.String(k)})
		}
	}

	slices.SortFunc(keys, compareFolded)

	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = k.key
	}
	return out
}

// sortByKey sorts entries by their Key in the same order as sortedKeys. The
// sort is stable.
func sortByKey[T Entry[T]](items []T) {
	fold := cases.Fold()
	type keyed struct {
		foldedKey
		item T
	}
	tmp := make([]keyed, len(items))
	for i, it := range items {
		k := it.Key()
		tmp[i] = keyed{foldedKey{key: k, folded: fold.String(k)}, it}
	}

	slices.SortStableFunc(tmp, func(a, b keyed) int {
		return compareFolded(a.foldedKey, b.foldedKey)
	})

	for i := range tmp {
		items[i] = tmp[i].item
	}
}
