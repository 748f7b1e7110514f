// Package resolvers provides the resolvers the merge engine escalates to.
//
// Automatic resolvers check one deterministic condition. When it holds they
// settle the conflict and log which rule fired and which side won; otherwise
// they forward the conflict, untouched, to the resolver they wrap. Terminal
// resolvers (Strategy, Prompt) always decide or raise one of the abort
// signals from pkg/errors.
//
// A typical chain for package entries:
//
//	r := resolvers.Chain[manifest.Package](
//		resolvers.NewPrompt[manifest.Package](resolvers.NewTerminal(os.Stdin, os.Stdout), nil),
//		resolvers.ValidCandidateWrapper[manifest.Package](),
//		resolvers.VersionOnlyWrapper[manifest.Package](resolvers.StrictVersions),
//	)
//
// Here the version-only rule runs first, then the single-valid-candidate
// rule, and the user is asked last.
package resolvers
