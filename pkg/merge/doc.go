// Package merge reconciles three snapshots of a keyed manifest: the common
// ancestor (base), the current side (local) and the side being merged in
// (incoming).
//
// Every key found in any snapshot becomes a Conflict. Classify turns a
// conflict into a ChangePattern, and the engine resolves the unambiguous
// patterns itself: identical values, one-sided edits, agreed additions and
// deletions. Anything else is escalated to a Resolver, which is usually a
// chain of domain resolvers ending in an interactive or strategy resolver.
//
//	merged, err := merge.MergeAll(ctx, base, local, incoming, resolver)
//	if errors.IsAbortFile(err) {
//		// skip this manifest
//	}
//
// Entries never chosen as a resolution are flagged by IsResolveOption; the
// engine refuses to pick them and re-checks whatever a resolver returns.
// MergeAllDuplicates handles snapshots that record the same key more than
// once.
package merge
