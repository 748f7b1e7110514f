package merge

// MergeResult is the decision for one key. An absent Item means the key is
// deleted from the merged manifest.
type MergeResult[T Entry[T]] struct {
	Key          string
	Item         Optional[T]
	Pattern      ChangePattern
	ResolvedWith ResolutionSource
	IsResolved   bool
}

// Resolved returns a result keeping v.
func Resolved[T Entry[T]](key string, v T, pattern ChangePattern, source ResolutionSource) MergeResult[T] {
	return MergeResult[T]{
		Key:          key,
		Item:         Some(v),
		Pattern:      pattern,
		ResolvedWith: source,
		IsResolved:   true,
	}
}

// Deleted returns a result removing the key.
func Deleted[T Entry[T]](key string, pattern ChangePattern, source ResolutionSource) MergeResult[T] {
	return MergeResult[T]{
		Key:          key,
		Item:         None[T](),
		Pattern:      pattern,
		ResolvedWith: source,
		IsResolved:   true,
	}
}

// IsDeleted reports whether the key is removed.
func (r MergeResult[T]) IsDeleted() bool {
	return !r.Item.IsPresent()
}
