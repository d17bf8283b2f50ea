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
	"reflect"
	"sort"
)

// Role names a pipeline capability implemented by multiple type-specific
// handlers ("pages", "render_text", ...).
type Role string

// Handler is the untyped form a dispatcher stores. The argument is the
// uninterpreted DSL token argument, empty when absent.
type Handler func(p Payload, arg string) (Payload, error)

// Dispatcher selects, per role, the handler matching a payload's run-time
// type. Resolution order:
//
//  1. exact concrete type
//  2. shape fallback: a payload exposing the single-unit shape (Chunked)
//     matches the *Text handler; one exposing the multi-unit shape
//     (ItemCollection) matches the *Collection handler
//  3. wildcard handler, if any
//
// No match returns a *NoHandlerError naming the role, the offered payload
// kind and the kinds with handlers. At most one handler exists per
// (role, type); the last registration wins silently.
//
// All participating payload types are plain Go types known at registration
// time, so there is no deferred-name resolution: a dispatcher is complete
// as soon as its handlers are registered.
type Dispatcher struct {
	role     Role
	handlers map[reflect.Type]Handler
	kinds    map[reflect.Type]PayloadKind
	wildcard Handler
}

// NewDispatcher creates an empty dispatcher for role.
func NewDispatcher(role Role) *Dispatcher {
	return &Dispatcher{
		role:     role,
		handlers: make(map[reflect.Type]Handler),
		kinds:    make(map[reflect.Type]PayloadKind),
	}
}

// Role returns the role this dispatcher serves.
func (d *Dispatcher) Role() Role { return d.role }

// On registers fn for the concrete payload type T. Registering the same
// handler under several types expresses a union: the datum matches if any
// alternative matches.
func On[T Payload](d *Dispatcher, fn func(p T, arg string) (Payload, error)) {
	t := reflect.TypeFor[T]()
	var zero T
	d.kinds[t] = zero.PayloadKind()
	d.handlers[t] = func(p Payload, arg string) (Payload, error) {
		return fn(p.(T), arg)
	}
}

// OnAny registers the universal fallback handler.
func (d *Dispatcher) OnAny(fn Handler) {
	d.wildcard = fn
}

var (
	textType       = reflect.TypeFor[*Text]()
	collectionType = reflect.TypeFor[*Collection]()
)

// resolve returns the handler for p, applying the resolution order, and
// the (possibly coerced) payload to hand it.
func (d *Dispatcher) resolve(p Payload) (Handler, Payload, bool) {
	if h, ok := d.handlers[reflect.TypeOf(p)]; ok {
		return h, p, true
	}
	if c, ok := p.(Chunked); ok {
		if h, ok := d.handlers[textType]; ok {
			source, content := c.Chunk()
			return h, &Text{Source: source, Content: content}, true
		}
	}
	if ic, ok := p.(ItemCollection); ok {
		if h, ok := d.handlers[collectionType]; ok {
			return h, &Collection{Items: ic.Units()}, true
		}
	}
	if d.wildcard != nil {
		return d.wildcard, p, true
	}
	return nil, nil, false
}

// CanDispatch reports whether Dispatch would find a handler for p.
func (d *Dispatcher) CanDispatch(p Payload) bool {
	if p == nil {
		return false
	}
	_, _, ok := d.resolve(p)
	return ok
}

// Dispatch runs the matching handler for p.
func (d *Dispatcher) Dispatch(p Payload, arg string) (Payload, error) {
	if p == nil {
		return nil, &NoHandlerError{Role: d.role, Offered: "<nil>", Known: d.knownKinds()}
	}
	h, coerced, ok := d.resolve(p)
	if !ok {
		return nil, &NoHandlerError{
			Role:    d.role,
			Offered: p.PayloadKind(),
			Known:   d.knownKinds(),
		}
	}
	return h(coerced, arg)
}

func (d *Dispatcher) knownKinds() []string {
	seen := make(map[string]bool)
	var kinds []string
	for _, k := range d.kinds {
		if !seen[string(k)] {
			seen[string(k)] = true
			kinds = append(kinds, string(k))
		}
	}
	sort.Strings(kinds)
	if d.wildcard != nil {
		kinds = append(kinds, "*")
	}
	return kinds
}
