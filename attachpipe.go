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

// Package attachpipe turns an opaque input identifier (a file path or URL,
// possibly carrying an inline command block) into typed artifacts (text,
// images, audio) through a sequence of independently registered pipeline
// stages: Load, Transform, Render, Deliver.
package attachpipe

import (
	"log/slog"
	"net/http"
)

const (
	// PrioritySpecific is for format-specific plugins, tried first.
	PrioritySpecific = DefaultPriority
	// PriorityGeneric is for fallback plugins (plain text), tried last.
	PriorityGeneric = 50
)

// Engine is the pipeline entry point. It is single-threaded and
// synchronous; independent runs share no mutable state except the
// registry, and mutation of the registry must be externally serialized.
type Engine struct {
	logger       *slog.Logger
	registry     *Registry
	httpClient   *http.Client
	keepDataURIs bool
	noBuiltins   bool
}

// New creates an Engine with the given options and, unless disabled, the
// built-in plugins registered.
func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	if e.registry == nil {
		e.registry = NewRegistry(e.logger)
	}
	if e.httpClient == nil {
		e.httpClient = http.DefaultClient
	}
	if !e.noBuiltins {
		e.enableBuiltins()
	}
	return e
}

// Registry exposes the engine's plugin registry for runtime tuning,
// temporary registration and diagnostics.
func (e *Engine) Registry() *Registry { return e.registry }

// enableBuiltins registers the built-in plugins. The audio renderer is
// capability-gated and silently skipped when ffmpeg is absent.
func (e *Engine) enableBuiltins() {
	r := e.registry

	// Format-specific loaders.
	r.Register(KindLoader, "pdf", NewPDFLoader(), PrioritySpecific)
	r.Register(KindLoader, "pptx", NewPPTXLoader(), PrioritySpecific)
	r.Register(KindLoader, "csv", NewCSVLoader(), PrioritySpecific)
	r.Register(KindLoader, "xlsx", NewXLSXLoader(), PrioritySpecific)
	r.Register(KindLoader, "xls", NewXLSLoader(), PrioritySpecific)
	r.Register(KindLoader, "feed", NewFeedLoader(), PrioritySpecific)
	r.Register(KindLoader, "html", NewHTMLLoader(e), PrioritySpecific)
	r.Register(KindLoader, "image", NewImageLoader(), PrioritySpecific)
	r.Register(KindLoader, "audio", NewAudioLoader(), PrioritySpecific)
	r.Register(KindLoader, "url", NewURLLoader(e), PrioritySpecific)

	// Generic fallback.
	r.Register(KindLoader, "text", NewTextLoader(), PriorityGeneric)

	// Transforms.
	r.Register(KindTransform, "pages", NewSelectTransform("pages", e.logger), DefaultPriority)
	r.Register(KindTransform, "rows", NewSelectTransform("rows", e.logger), DefaultPriority)
	r.Register(KindTransform, "items", NewSelectTransform("items", e.logger), DefaultPriority)
	r.Register(KindTransform, "limit", NewLimitTransform(e.logger), DefaultPriority)
	r.Register(KindTransform, "sheet", NewSheetTransform(), DefaultPriority)
	r.Register(KindTransform, "join", NewJoinTransform(), DefaultPriority)

	// Renderers, one registry kind per artifact.
	r.Register(KindRendererText, "markdown", NewTextRenderer(e), DefaultPriority)
	r.Register(KindRendererImage, "images", NewImageRenderer(), DefaultPriority)
	r.Register(KindRendererAudio, "audio",
		Requires("audio", NewAudioRenderer(),
			Binary("ffmpeg", "install ffmpeg and ensure it is on PATH")),
		DefaultPriority)

	// Deliverers.
	r.Register(KindDeliverer, "text", NewTextDeliverer(), DefaultPriority)
	r.Register(KindDeliverer, "chat", NewChatDeliverer(), DefaultPriority)

	// Introspection-only contract descriptors.
	r.Register(KindContract, "loader", &Contract{
		Kind:        KindLoader,
		Description: "turns a locator into the initial payload",
		Methods:     []string{"Name() string", "Match(locator) bool", "Load(locator) (Payload, error)"},
	}, DefaultPriority)
	r.Register(KindContract, "transform", &Contract{
		Kind:        KindTransform,
		Description: "rewrites the payload in DSL order",
		Methods:     []string{"Name() string", "Apply(payload, arg) (Payload, error)"},
	}, DefaultPriority)
	r.Register(KindContract, "renderer", &Contract{
		Kind:        KindRendererText,
		Description: "produces one output artifact kind from a payload",
		Methods:     []string{"Name() string", "ContentType() ArtifactKind", "Match(payload) bool", "Render(payload, meta) (*Artifact, error)"},
	}, DefaultPriority)
	r.Register(KindContract, "deliverer", &Contract{
		Kind:        KindDeliverer,
		Description: "packages rendered artifacts for a consumer",
		Methods:     []string{"Name() string", "Package(text, images, audio, prompt) (any, error)"},
	}, DefaultPriority)
}
