package merge_test

import (
	"context"
	"sync"

	"github.com/agentstation/depmerge/pkg/merge"
)

// dep is a minimal entry used throughout the engine tests.
type dep struct {
	ID      string
	Version string
	Extra   string
	Missing bool
}

func (d dep) Key() string { return d.ID }
func (d dep) IsResolveOption() bool { return !d.Missing }
func (d dep) Equal(other dep) bool { return d == other }

func v(id, version string) dep {
	return dep{ID: id, Version: version}
}

// recorder counts escalations and answers with a fixed decision.
type recorder struct {
	mu        sync.Mutex
	conflicts []merge.Conflict[dep]
	answer    func(merge.Conflict[dep]) (merge.MergeResult[dep], error)
}

func (r *recorder) Resolve(_ context.Context, c merge.Conflict[dep]) (merge.MergeResult[dep], error) {
	r.mu.Lock()
	r.conflicts = append(r.conflicts, c)
	r.mu.Unlock()
	if r.answer == nil {
		return merge.Resolved(c.Key, c.Local.Value(), c.Pattern(), merge.SourceLocal), nil
	}
	return r.answer(c)
}

func (r *recorder) calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.conflicts)
}

// failing fails the test on any escalation.
func failing(t interface{ Fatalf(string, ...any) }) merge.Resolver[dep] {
	return merge.ResolverFunc[dep](func(_ context.Context, c merge.Conflict[dep]) (merge.MergeResult[dep], error) {
		t.Fatalf("resolver unexpectedly invoked for %s", c.Key)
		return merge.MergeResult[dep]{}, nil
	})
}
