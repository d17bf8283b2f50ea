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

// Process runs the linear pipeline for one identifier:
//
//	Split -> Load (required) -> Transform* (DSL order) -> Render (0..n)
//
// Loading is required: when no loader matches the locator the run fails
// with a NoLoaderError naming it. Transform tokens without a registered
// transform are ignored, since a token may target a different pipeline.
// Each renderer kind is resolved independently; a kind without a matching
// renderer leaves its output slot unset, which is not an error.
//
// Delivery is a separate, explicit step (see Deliver).
func (e *Engine) Process(identifier string) (*Attachment, error) {
	att := NewAttachment(identifier)

	if err := e.load(att); err != nil {
		return nil, err
	}
	if err := e.transform(att); err != nil {
		return nil, err
	}
	if err := e.render(att); err != nil {
		return nil, err
	}
	return att, nil
}

func (e *Engine) load(att *Attachment) error {
	entry, ok := e.registry.First(KindLoader, func(en Entry) bool {
		l, ok := en.Impl.(Loader)
		return ok && l.Match(att.Path)
	})
	if !ok {
		return &NoLoaderError{Locator: att.Path}
	}
	loader := entry.Impl.(Loader)

	payload, err := loader.Load(att.Path)
	if err != nil {
		return &StageError{ID: att.ID, Stage: "load", Kind: KindLoader, Plugin: entry.Name, Err: err}
	}
	att.Content = payload
	e.logger.Debug("loaded", "id", att.ID, "locator", att.Path, "loader", entry.Name,
		"payload", payload.PayloadKind())
	return nil
}

func (e *Engine) transform(att *Attachment) error {
	for _, cmd := range att.Commands {
		entry, ok := e.registry.First(KindTransform, func(en Entry) bool {
			t, ok := en.Impl.(Transform)
			return ok && t.Name() == cmd.Name
		})
		if !ok {
			e.logger.Debug("ignoring unknown transform token",
				"id", att.ID, "token", cmd.Name)
			continue
		}
		t := entry.Impl.(Transform)

		payload, err := t.Apply(att.Content, cmd.Arg)
		if err != nil {
			return &StageError{ID: att.ID, Stage: "transform", Kind: KindTransform, Plugin: entry.Name, Err: err}
		}
		att.Content = payload
	}
	return nil
}

var rendererKinds = []struct {
	kind     Kind
	artifact ArtifactKind
}{
	{KindRendererText, ArtifactText},
	{KindRendererImage, ArtifactImage},
	{KindRendererAudio, ArtifactAudio},
}

func (e *Engine) render(att *Attachment) error {
	meta := Meta{Source: att.Path, Commands: att.Commands}
	if d, ok := att.Content.(*Document); ok {
		meta.Title = d.Title
	}
	if t, ok := att.Content.(*Text); ok {
		meta.Title = t.Title
	}

	for _, rk := range rendererKinds {
		entry, ok := e.registry.First(rk.kind, func(en Entry) bool {
			r, ok := en.Impl.(Renderer)
			return ok && r.ContentType() == rk.artifact && r.Match(att.Content)
		})
		if !ok {
			continue
		}
		r := entry.Impl.(Renderer)

		artifact, err := r.Render(att.Content, meta)
		if err != nil {
			return &StageError{ID: att.ID, Stage: "render", Kind: rk.kind, Plugin: entry.Name, Err: err}
		}
		if artifact == nil {
			continue
		}
		switch rk.artifact {
		case ArtifactText:
			text := artifact.Text
			att.Text = &text
		case ArtifactImage:
			att.Images = artifact.Images
		case ArtifactAudio:
			att.Audio = artifact.Audio
		}
	}
	return nil
}

// Deliver packages an attachment's rendered artifacts using the deliverer
// registered under style. A missing deliverer is fatal, naming the style.
func (e *Engine) Deliver(att *Attachment, style, prompt string) (any, error) {
	entry, ok := e.registry.First(KindDeliverer, func(en Entry) bool {
		d, ok := en.Impl.(Deliverer)
		return ok && d.Name() == style
	})
	if !ok {
		return nil, &NoDelivererError{Style: style}
	}
	d := entry.Impl.(Deliverer)

	out, err := d.Package(att.Text, att.Images, att.Audio, prompt)
	if err != nil {
		return nil, &StageError{ID: att.ID, Stage: "deliver", Kind: KindDeliverer, Plugin: entry.Name, Err: err}
	}
	return out, nil
}
