package resolvers

import (
	"context"
	"fmt"
	"strconv"

	"github.com/agentstation/depmerge/pkg/constants"
	"github.com/agentstation/depmerge/pkg/errors"
	"github.com/agentstation/depmerge/pkg/merge"
)

// Describer renders an entry for a prompt.
type Describer[T any] func(T) string

func describeDefault[T any](v T) string {
	if s, ok := any(v).(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%+v", v)
}

// Prompt is an interactive terminal resolver. It shows the three sides and
// reads one of:
//
//	l  keep local        i  keep incoming
//	b  keep base         d  delete the entry
//	s  skip manifest     q  quit
//
// Choosing an absent side deletes the key. Unknown answers are asked again;
// closed input stops the run.
type Prompt[T merge.Entry[T]] struct {
	term     *Terminal
	describe Describer[T]
}

// NewPrompt returns a Prompt asking on term. A nil describe prints entries
// with their String method, or %+v.
func NewPrompt[T merge.Entry[T]](term *Terminal, describe Describer[T]) *Prompt[T] {
	if describe == nil {
		describe = describeDefault[T]
	}
	return &Prompt[T]{term: term, describe: describe}
}

// Resolve implements merge.Resolver.
func (p *Prompt[T]) Resolve(ctx context.Context, c merge.Conflict[T]) (merge.MergeResult[T], error) {
	p.term.printf("\nConflict on %s (%s)\n", c.Key, c.Pattern())
	p.line("b", constants.LabelBase, c.Base)
	p.line("l", constants.LabelLocal, c.Local)
	p.line("i", constants.LabelIncoming, c.Incoming)
	p.term.printf("  [d] delete  [s] skip manifest  [q] quit\n")

	answer, err := p.term.ask(ctx, "Choice [l/i/b/d/s/q]:", func(a string) bool {
		switch a {
		case "l", "i", "b", "d", "s", "q":
			return true
		}
		return false
	})
	if err != nil {
		return merge.MergeResult[T]{}, err
	}

	pick := func(o merge.Optional[T], source merge.ResolutionSource) merge.MergeResult[T] {
		if v, ok := o.Get(); ok {
			return merge.Resolved(c.Key, v, c.Pattern(), source)
		}
		return merge.Deleted[T](c.Key, c.Pattern(), source)
	}

	switch answer {
	case "l":
		return pick(c.Local, merge.SourceLocal), nil
	case "i":
		return pick(c.Incoming, merge.SourceIncoming), nil
	case "b":
		return pick(c.Base, merge.SourceBase), nil
	case "d":
		return merge.Deleted[T](c.Key, c.Pattern(), merge.SourceCustom), nil
	case "s":
		return merge.MergeResult[T]{}, errors.AbortFile("skipped by user at " + c.Key)
	default:
		return merge.MergeResult[T]{}, errors.AbortRun("quit by user at " + c.Key)
	}
}

func (p *Prompt[T]) line(choice, label string, o merge.Optional[T]) {
	text := "(absent)"
	if v, ok := o.Get(); ok {
		text = p.describe(v)
		if !v.IsResolveOption() {
			text += " (not installed)"
		}
	}
	p.term.printf("  [%s] %-9s %s\n", choice, label+":", text)
}

// DuplicatePrompt asks the user to pick one of the distinct values recorded
// for a duplicated key.
type DuplicatePrompt[T merge.Entry[T]] struct {
	term     *Terminal
	describe Describer[T]
}

// NewDuplicatePrompt returns a DuplicatePrompt asking on term.
func NewDuplicatePrompt[T merge.Entry[T]](term *Terminal, describe Describer[T]) *DuplicatePrompt[T] {
	if describe == nil {
		describe = describeDefault[T]
	}
	return &DuplicatePrompt[T]{term: term, describe: describe}
}

type labeled[T any] struct {
	value  T
	source merge.ResolutionSource
}

// ResolveDuplicates implements merge.DuplicateResolver.
func (p *DuplicatePrompt[T]) ResolveDuplicates(ctx context.Context, dc merge.DuplicateConflict[T]) (merge.MergeResult[T], error) {
	var options []labeled[T]
	add := func(vs []T, source merge.ResolutionSource) {
	next:
		for _, v := range vs {
			for i := range options {
				if options[i].value.Equal(v) {
					options[i].source |= source
					continue next
				}
			}
			options = append(options, labeled[T]{value: v, source: source})
		}
	}
	add(dc.Base, merge.SourceBase)
	add(dc.Local, merge.SourceLocal)
	add(dc.Incoming, merge.SourceIncoming)

	p.term.printf("\nDuplicate entries for %s (%s)\n", dc.Key, dc.Pattern())
	for i, o := range options {
		text := p.describe(o.value)
		if !o.value.IsResolveOption() {
			text += " (not installed)"
		}
		p.term.printf("  [%d] %s  <%s>\n", i+1, text, o.source)
	}
	p.term.printf("  [d] delete  [s] skip manifest  [q] quit\n")

	answer, err := p.term.ask(ctx, fmt.Sprintf("Choice [1-%d/d/s/q]:", len(options)), func(a string) bool {
		switch a {
		case "d", "s", "q":
			return true
		}
		n, err := strconv.Atoi(a)
		return err == nil && n >= 1 && n <= len(options)
	})
	if err != nil {
		return merge.MergeResult[T]{}, err
	}

	switch answer {
	case "d":
		return merge.Deleted[T](dc.Key, dc.Pattern(), merge.SourceCustom), nil
	case "s":
		return merge.MergeResult[T]{}, errors.AbortFile("skipped by user at " + dc.Key)
	case "q":
		return merge.MergeResult[T]{}, errors.AbortRun("quit by user at " + dc.Key)
	}

	n, _ := strconv.Atoi(answer)
	chosen := options[n-1]
	return merge.Resolved(dc.Key, chosen.value, dc.Pattern(), chosen.source), nil
}
