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
	"encoding/base64"
	"fmt"
	"strings"
)

// TextRenderer renders any textual payload to normalized markdown. Its
// dispatcher carries one handler per payload shape, so custom payloads
// exposing the single-unit or multi-unit shape render through the Text
// and Collection handlers.
type TextRenderer struct {
	d *Dispatcher
}

// NewTextRenderer creates a new TextRenderer.
func NewTextRenderer(e *Engine) *TextRenderer {
	d := NewDispatcher("render_text")

	On(d, func(t *Text, _ string) (Payload, error) {
		return &Text{Source: t.Source, Title: t.Title, Content: normalizeText(t.Content)}, nil
	})
	On(d, func(doc *Document, _ string) (Payload, error) {
		var b strings.Builder
		if doc.Title != "" {
			fmt.Fprintf(&b, "# %s\n\n", doc.Title)
		}
		for _, pg := range doc.Pages {
			b.WriteString(pg.Content)
			b.WriteString("\n\n")
		}
		return &Text{Source: doc.Source, Title: doc.Title, Content: normalizeText(b.String())}, nil
	})
	On(d, func(tbl *Table, _ string) (Payload, error) {
		var b strings.Builder
		if tbl.Sheet != "" {
			fmt.Fprintf(&b, "## %s\n", tbl.Sheet)
		}
		b.WriteString(markdownTable(tbl.Rows))
		return &Text{Source: tbl.Source, Content: normalizeText(b.String())}, nil
	})
	On(d, func(c *Collection, _ string) (Payload, error) {
		var parts []string
		for _, item := range c.Items {
			if s, ok := payloadText(item); ok {
				parts = append(parts, s)
			}
		}
		return &Text{Source: c.Source, Content: normalizeText(strings.Join(parts, "\n\n"))}, nil
	})

	return &TextRenderer{d: d}
}

func (r *TextRenderer) Name() string { return "markdown" }

func (r *TextRenderer) ContentType() ArtifactKind { return ArtifactText }

func (r *TextRenderer) Match(p Payload) bool {
	return r.d.CanDispatch(p)
}

func (r *TextRenderer) Render(p Payload, meta Meta) (*Artifact, error) {
	out, err := r.d.Dispatch(p, "")
	if err != nil {
		return nil, err
	}
	text, ok := out.(*Text)
	if !ok {
		return nil, fmt.Errorf("text renderer produced %s, want text", out.PayloadKind())
	}
	return &Artifact{Kind: ArtifactText, Text: text.Content}, nil
}

// ImageRenderer renders an ImageSet to base64 data URIs.
type ImageRenderer struct{}

// NewImageRenderer creates a new ImageRenderer.
func NewImageRenderer() *ImageRenderer {
	return &ImageRenderer{}
}

func (r *ImageRenderer) Name() string { return "images" }

func (r *ImageRenderer) ContentType() ArtifactKind { return ArtifactImage }

func (r *ImageRenderer) Match(p Payload) bool {
	_, ok := p.(*ImageSet)
	return ok
}

func (r *ImageRenderer) Render(p Payload, meta Meta) (*Artifact, error) {
	set, ok := p.(*ImageSet)
	if !ok {
		return nil, fmt.Errorf("image renderer offered %s payload", p.PayloadKind())
	}
	var uris []string
	for _, img := range set.Images {
		uris = append(uris, fmt.Sprintf("data:%s;base64,%s",
			img.MIMEType, base64.StdEncoding.EncodeToString(img.Data)))
	}
	return &Artifact{Kind: ArtifactImage, Images: uris}, nil
}

// AudioRenderer passes an AudioClip through to the audio output slot. It
// is registered behind the ffmpeg capability gate, as downstream
// consumers need transcoding available.
type AudioRenderer struct{}

// NewAudioRenderer creates a new AudioRenderer.
func NewAudioRenderer() *AudioRenderer {
	return &AudioRenderer{}
}

func (r *AudioRenderer) Name() string { return "audio" }

func (r *AudioRenderer) ContentType() ArtifactKind { return ArtifactAudio }

func (r *AudioRenderer) Match(p Payload) bool {
	_, ok := p.(*AudioClip)
	return ok
}

func (r *AudioRenderer) Render(p Payload, meta Meta) (*Artifact, error) {
	clip, ok := p.(*AudioClip)
	if !ok {
		return nil, fmt.Errorf("audio renderer offered %s payload", p.PayloadKind())
	}
	return &Artifact{Kind: ArtifactAudio, Audio: clip}, nil
}
