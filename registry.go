// Copyright 2026 Conductor OSS
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.

package attachpipe

import (
	"log/slog"
	"sort"
)

// Kind is the taxonomy key grouping plugins in the registry.
type Kind string

const (
	KindLoader        Kind = "loader"
	KindTransform     Kind = "transform"
	KindRendererText  Kind = "renderer_text"
	KindRendererImage Kind = "renderer_image"
	KindRendererAudio Kind = "renderer_audio"
	KindDeliverer     Kind = "deliverer"

	// KindContract is introspection-only: it holds descriptors for the
	// plugin interface contracts and is never consulted by the pipeline.
	KindContract Kind = "contract"
)

// DefaultPriority is used when a plugin has no reason to outrank or yield
// to others of its kind.
const DefaultPriority = 100

// Entry is one registered plugin. Entries are owned by the registry and
// replaced, not mutated, when priority changes.
type Entry struct {
	Name     string
	Impl     any
	Priority int
}

// Registry is a priority-ordered, kind-keyed plugin store.
//
// It is not synchronized: concurrent mutation must be serialized by the
// caller. Concurrent read-only lookups are safe absent concurrent mutation.
// Lookups never fail the caller; "not found" is a valid outcome.
type Registry struct {
	logger   *slog.Logger
	entries  map[Kind][]Entry
	disabled map[Kind][]*DisabledPlugin
}

// NewRegistry creates an empty registry logging through the given logger.
// A nil logger falls back to slog.Default().
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		logger:   logger,
		entries:  make(map[Kind][]Entry),
		disabled: make(map[Kind][]*DisabledPlugin),
	}
}

// Register adds impl under kind. An exact duplicate name under the same
// kind is rejected with a warning, not an error. A *DisabledPlugin is
// skipped (one warning) and retained for diagnostics instead.
func (r *Registry) Register(kind Kind, name string, impl any, priority int) {
	if d, ok := impl.(*DisabledPlugin); ok {
		r.logger.Warn("skipping disabled plugin",
			"kind", kind, "name", name, "missing", d.missingNames())
		r.disabled[kind] = append(r.disabled[kind], d)
		return
	}
	for _, e := range r.entries[kind] {
		if e.Name == name {
			r.logger.Warn("duplicate plugin registration rejected",
				"kind", kind, "name", name)
			return
		}
	}
	r.entries[kind] = append(r.entries[kind], Entry{Name: name, Impl: impl, Priority: priority})
	r.resort(kind)
}

// First scans kind in descending priority order (ties by insertion order)
// and returns the first entry satisfying pred. It is the sole lookup
// mechanism: deterministic, never raising on a miss.
func (r *Registry) First(kind Kind, pred func(Entry) bool) (Entry, bool) {
	for _, e := range r.entries[kind] {
		if pred(e) {
			return e, true
		}
	}
	return Entry{}, false
}

// All returns the full priority-ordered enumeration for kind. The returned
// slice is a copy.
func (r *Registry) All(kind Kind) []Entry {
	out := make([]Entry, len(r.entries[kind]))
	copy(out, r.entries[kind])
	return out
}

// Disabled returns the plugins skipped at registration under kind, with
// their missing-capability reasons.
func (r *Registry) Disabled(kind Kind) []*DisabledPlugin {
	out := make([]*DisabledPlugin, len(r.disabled[kind]))
	copy(out, r.disabled[kind])
	return out
}

// Kinds returns every kind with at least one registered or disabled entry.
func (r *Registry) Kinds() []Kind {
	seen := make(map[Kind]bool)
	var kinds []Kind
	for k := range r.entries {
		if !seen[k] {
			seen[k] = true
			kinds = append(kinds, k)
		}
	}
	for k := range r.disabled {
		if !seen[k] {
			seen[k] = true
			kinds = append(kinds, k)
		}
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// BumpPriority replaces the named entry with one carrying the new
// priority. Unknown entries are ignored with a warning.
func (r *Registry) BumpPriority(kind Kind, name string, priority int) {
	for i, e := range r.entries[kind] {
		if e.Name == name {
			r.entries[kind][i] = Entry{Name: e.Name, Impl: e.Impl, Priority: priority}
			r.resort(kind)
			return
		}
	}
	r.logger.Warn("cannot bump priority of unknown plugin", "kind", kind, "name", name)
}

// Unregister removes the named entry. Removing an unknown entry is a no-op.
func (r *Registry) Unregister(kind Kind, name string) {
	entries := r.entries[kind]
	for i, e := range entries {
		if e.Name == name {
			r.entries[kind] = append(entries[:i:i], entries[i+1:]...)
			return
		}
	}
}

// Clear removes every entry and every disabled record.
func (r *Registry) Clear() {
	r.entries = make(map[Kind][]Entry)
	r.disabled = make(map[Kind][]*DisabledPlugin)
}

// Temp registers impl and returns a release func that removes it again.
// Callers defer the release so the registration is scoped to every exit
// path. Not reentrant-safe across goroutines for the same kind.
func (r *Registry) Temp(kind Kind, name string, impl any, priority int) (release func()) {
	r.Register(kind, name, impl, priority)
	return func() { r.Unregister(kind, name) }
}

// resort restores descending-priority order. The stable sort keeps
// insertion order for equal priorities.
func (r *Registry) resort(kind Kind) {
	entries := r.entries[kind]
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Priority > entries[j].Priority
	})
}
