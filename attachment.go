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

import "github.com/google/uuid"

// Attachment is the unit of work threaded through the pipeline. It is
// created once per identifier, mutated stage by stage, and never shared
// across concurrent pipeline runs.
type Attachment struct {
	// ID identifies this run for triage across batch runs.
	ID string

	// Original is the raw identifier as given, command block included.
	Original string

	// Path is the locator with the command block stripped.
	Path string

	// Commands are the ordered DSL tokens parsed from the command block.
	Commands []Command

	// Content is the current payload. Ownership is exclusive and
	// sequential: each stage consumes and replaces it.
	Content Payload

	// Output slots. A nil slot means no renderer matched, which is not an
	// error. Text being set to an empty string is distinct from unset.
	Text   *string
	Images []string
	Audio  *AudioClip
}

// NewAttachment splits an identifier into locator and commands and returns
// a fresh attachment ready for loading.
func NewAttachment(identifier string) *Attachment {
	locator, block := Split(identifier)
	return &Attachment{
		ID:       uuid.NewString(),
		Original: identifier,
		Path:     locator,
		Commands: ParseCommands(block),
	}
}

// Command returns the argument of the first command with the given name and
// whether it was present. Argument-less tokens report ok with an empty
// argument.
func (a *Attachment) Command(name string) (arg string, ok bool) {
	for _, c := range a.Commands {
		if c.Name == name {
			return c.Arg, true
		}
	}
	return "", false
}
