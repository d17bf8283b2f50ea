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
	"errors"
	"fmt"
	"strings"
)

// NoLoaderError is returned when no registered loader matches a locator.
type NoLoaderError struct {
	Locator string
}

func (e *NoLoaderError) Error() string {
	return fmt.Sprintf("no loader matches locator %q", e.Locator)
}

// NoDelivererError is returned when no deliverer is registered under the
// requested style.
type NoDelivererError struct {
	Style string
}

func (e *NoDelivererError) Error() string {
	return fmt.Sprintf("no deliverer registered for style %q", e.Style)
}

// MissingCapability names one unavailable external capability together with
// a remediation hint.
type MissingCapability struct {
	Name string
	Hint string
}

// CapabilityError is returned when a disabled plugin is actually invoked.
// It enumerates every missing capability so the failure is actionable.
type CapabilityError struct {
	Plugin  string
	Missing []MissingCapability
}

func (e *CapabilityError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "plugin %q is disabled, missing %d capability(ies):", e.Plugin, len(e.Missing))
	for _, m := range e.Missing {
		fmt.Fprintf(&b, "\n  %s", m.Name)
		if m.Hint != "" {
			fmt.Fprintf(&b, " (%s)", m.Hint)
		}
	}
	return b.String()
}

// NoHandlerError is returned by a dispatcher when no handler accepts the
// offered payload. Known lists the payload kinds that do have handlers.
type NoHandlerError struct {
	Role    Role
	Offered PayloadKind
	Known   []string
}

func (e *NoHandlerError) Error() string {
	return fmt.Sprintf("role %q: no handler for payload kind %q (handlers exist for: %s)",
		e.Role, e.Offered, strings.Join(e.Known, ", "))
}

// StageError wraps a payload error with the identifier, stage and plugin
// kind involved, so failures stay attributable across batch runs.
type StageError struct {
	ID     string
	Stage  string
	Kind   Kind
	Plugin string
	Err    error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: stage %s (%s/%s): %v", e.ID, e.Stage, e.Kind, e.Plugin, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// IsNoLoader reports whether the error is a NoLoaderError.
func IsNoLoader(err error) bool {
	var target *NoLoaderError
	return errors.As(err, &target)
}

// IsNoDeliverer reports whether the error is a NoDelivererError.
func IsNoDeliverer(err error) bool {
	var target *NoDelivererError
	return errors.As(err, &target)
}

// IsDisabled reports whether the error is a CapabilityError.
func IsDisabled(err error) bool {
	var target *CapabilityError
	return errors.As(err, &target)
}
