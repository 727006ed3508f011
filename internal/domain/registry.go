package domain

import "sort"

// Registry indexes a checklist's check definitions by id and resolves
// severities for emitted results.
//
// The registry is built once per run from the checklist's "checks"
// sequence. Entries without a string id are skipped; if the same id
// appears twice, the last entry wins. The checklist itself is never
// validated — a malformed entry degrades to the INFO default rather
// than failing the run.
type Registry struct {
	defs map[string]map[string]any
}

// NewRegistry builds a Registry from a parsed checklist.
func NewRegistry(checklist map[string]any) *Registry {
	defs := make(map[string]map[string]any)
	checks, _ := checklist["checks"].([]any)
	for _, item := range checks {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		id, ok := entry["id"].(string)
		if !ok {
			continue
		}
		defs[id] = entry
	}
	return &Registry{defs: defs}
}

// Contains reports whether the checklist defines the given check id.
// Several structural rules emit only when their id is defined.
func (r *Registry) Contains(id string) bool {
	_, ok := r.defs[id]
	return ok
}

// SeverityOf returns the declared level for a check id, or INFO when the
// id is unknown or its level is missing or unrecognized.
func (r *Registry) SeverityOf(id string) Severity {
	entry, ok := r.defs[id]
	if !ok {
		return SeverityInfo
	}
	level, _ := entry["level"].(string)
	return ParseSeverity(level)
}

// IDs returns the defined check ids in lexical order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.defs))
	for id := range r.defs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
