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

// ArtifactKind tags a renderer's output slot.
type ArtifactKind string

const (
	ArtifactText  ArtifactKind = "text"
	ArtifactImage ArtifactKind = "image"
	ArtifactAudio ArtifactKind = "audio"
)

// Meta carries read-only attachment context into renderers.
type Meta struct {
	Source   string
	Title    string
	Commands []Command
}

// Artifact is a renderer's output. Exactly the field matching the
// renderer's ArtifactKind is populated.
type Artifact struct {
	Kind   ArtifactKind
	Text   string
	Images []string
	Audio  *AudioClip
}

// Loader turns a locator into the initial payload.
//
// Match MUST be cheap and side-effect free; it is probed during registry
// lookup before any loader is invoked.
type Loader interface {
	Name() string
	Match(locator string) bool
	Load(locator string) (Payload, error)
}

// Transform rewrites the payload in place in the pipeline chain. The
// argument is the uninterpreted text after the token's colon, empty for
// flag-style tokens.
type Transform interface {
	Name() string
	Apply(p Payload, arg string) (Payload, error)
}

// Renderer produces one output artifact kind from a payload.
type Renderer interface {
	Name() string
	ContentType() ArtifactKind
	Match(p Payload) bool
	Render(p Payload, meta Meta) (*Artifact, error)
}

// Deliverer packages rendered artifacts into a consumer-facing structure.
type Deliverer interface {
	Name() string
	Package(text *string, images []string, audio *AudioClip, prompt string) (any, error)
}

// Contract describes a plugin interface for the introspection-only
// contract kind. The pipeline never consults these.
type Contract struct {
	Kind        Kind
	Description string
	Methods     []string
}
