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
	"os"
	"os/exec"
)

// Capability is a probe for an optional external dependency. The probe
// runs once, at definition time, when a plugin is wrapped with Requires.
type Capability struct {
	Name  string
	Hint  string
	Probe func() bool
}

// Binary is a capability satisfied when an executable is on PATH.
func Binary(name, hint string) Capability {
	return Capability{
		Name: name,
		Hint: hint,
		Probe: func() bool {
			_, err := exec.LookPath(name)
			return err == nil
		},
	}
}

// EnvVar is a capability satisfied when an environment variable is set and
// non-empty.
func EnvVar(name, hint string) Capability {
	return Capability{
		Name: name,
		Hint: hint,
		Probe: func() bool {
			return os.Getenv(name) != ""
		},
	}
}

// Requires gates impl on the given capabilities. When every probe passes
// it returns impl unchanged. When any probe fails it returns a
// *DisabledPlugin stand-in that the registry skips at registration and
// that fails loudly, naming every missing capability, if it is ever
// invoked. Its Match always reports no match, so lookup falls through to
// the next candidate instead of raising.
func Requires(name string, impl any, caps ...Capability) any {
	var missing []MissingCapability
	for _, c := range caps {
		if c.Probe == nil || !c.Probe() {
			missing = append(missing, MissingCapability{Name: c.Name, Hint: c.Hint})
		}
	}
	if len(missing) == 0 {
		return impl
	}
	return &DisabledPlugin{name: name, missing: missing}
}

// DisabledPlugin is the inert stand-in for a plugin whose capabilities are
// unavailable. It satisfies the Loader, Transform and Deliverer contracts
// so a gated plugin can still take part in composition, but any actual
// invocation returns a CapabilityError rather than a raw low-level
// failure, and its Match never reports a match.
type DisabledPlugin struct {
	name    string
	missing []MissingCapability
}

// Name implements the common plugin contract.
func (d *DisabledPlugin) Name() string { return d.name }

// Missing returns the capabilities whose probes failed.
func (d *DisabledPlugin) Missing() []MissingCapability { return d.missing }

// Err builds the enumerated, actionable error for this stand-in.
func (d *DisabledPlugin) Err() *CapabilityError {
	return &CapabilityError{Plugin: d.name, Missing: d.missing}
}

func (d *DisabledPlugin) missingNames() []string {
	names := make([]string, len(d.missing))
	for i, m := range d.missing {
		names[i] = m.Name
	}
	return names
}

func (d *DisabledPlugin) Match(string) bool { return false }

func (d *DisabledPlugin) Load(string) (Payload, error) { return nil, d.Err() }

func (d *DisabledPlugin) Apply(Payload, string) (Payload, error) { return nil, d.Err() }

func (d *DisabledPlugin) Package(*string, []string, *AudioClip, string) (any, error) {
	return nil, d.Err()
}
