package depmerge

import (
	"sync"

	"github.com/agentstation/depmerge/pkg/merge"
)

// Hook function types for merge events
type (
	// DecisionHook is called after each key of a manifest is settled
	DecisionHook func(manifest string, kind string, decision merge.Decision)

	// ReportHook is called when a manifest has been merged, skipped or has failed
	ReportHook func(report *Report)
)

// hooks manages event callbacks for a Merger
type hooks struct {
	mu         sync.RWMutex
	onDecision []DecisionHook
	onReport   []ReportHook
}

// newHooks creates a new hooks instance
func newHooks() *hooks {
	return &hooks{}
}

// OnDecision registers a callback for per-key decisions
func (m *Merger) OnDecision(fn DecisionHook) {
	m.hooks.mu.Lock()
	defer m.hooks.mu.Unlock()
	m.hooks.onDecision = append(m.hooks.onDecision, fn)
}

// OnReport registers a callback for finished manifests
func (m *Merger) OnReport(fn ReportHook) {
	m.hooks.mu.Lock()
	defer m.hooks.mu.Unlock()
	m.hooks.onReport = append(m.hooks.onReport, fn)
}

func (h *hooks) decision(manifest, kind string, d merge.Decision) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, fn := range h.onDecision {
		fn(manifest, kind, d)
	}
}

func (h *hooks) report(r *Report) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, fn := range h.onReport {
		fn(r)
	}
}
