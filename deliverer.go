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
	"fmt"
	"strings"
)

// TextDeliverer packages artifacts as one plain string: prompt first,
// then rendered text, with non-text artifacts summarized.
type TextDeliverer struct{}

// NewTextDeliverer creates a new TextDeliverer.
func NewTextDeliverer() *TextDeliverer {
	return &TextDeliverer{}
}

func (d *TextDeliverer) Name() string { return "text" }

func (d *TextDeliverer) Package(text *string, images []string, audio *AudioClip, prompt string) (any, error) {
	var parts []string
	if prompt != "" {
		parts = append(parts, prompt)
	}
	if text != nil {
		parts = append(parts, *text)
	}
	if len(images) > 0 {
		parts = append(parts, fmt.Sprintf("[%d image(s) attached]", len(images)))
	}
	if audio != nil {
		parts = append(parts, fmt.Sprintf("[audio attached: %s]", audio.MIMEType))
	}
	return strings.Join(parts, "\n\n"), nil
}

// ChatPart is one content part of a chat message.
type ChatPart struct {
	Type     string `json:"type"`
	Text     string `json:"text,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}

// ChatMessage is the vendor-neutral chat structure vendor adapters
// translate from.
type ChatMessage struct {
	Role    string     `json:"role"`
	Content []ChatPart `json:"content"`
}

// ChatDeliverer packages artifacts as a single user chat message with
// text and image-URL parts.
type ChatDeliverer struct{}

// NewChatDeliverer creates a new ChatDeliverer.
func NewChatDeliverer() *ChatDeliverer {
	return &ChatDeliverer{}
}

func (d *ChatDeliverer) Name() string { return "chat" }

func (d *ChatDeliverer) Package(text *string, images []string, audio *AudioClip, prompt string) (any, error) {
	msg := ChatMessage{Role: "user"}
	if prompt != "" {
		msg.Content = append(msg.Content, ChatPart{Type: "text", Text: prompt})
	}
	if text != nil {
		msg.Content = append(msg.Content, ChatPart{Type: "text", Text: *text})
	}
	for _, uri := range images {
		msg.Content = append(msg.Content, ChatPart{Type: "image_url", ImageURL: uri})
	}
	if audio != nil {
		msg.Content = append(msg.Content, ChatPart{
			Type: "text",
			Text: fmt.Sprintf("[audio attachment: %s, %d bytes]", audio.MIMEType, len(audio.Data)),
		})
	}
	return []ChatMessage{msg}, nil
}
