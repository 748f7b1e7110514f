package app

import "github.com/agentstation/depmerge/internal/appcontext"

// Ensure App implements the command context.
var _ appcontext.Interface = (*App)(nil)
