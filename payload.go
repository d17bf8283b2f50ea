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

// PayloadKind identifies a payload variant for diagnostics and dispatch
// error messages.
type PayloadKind string

const (
	PayloadText       PayloadKind = "text"
	PayloadDocument   PayloadKind = "document"
	PayloadTable      PayloadKind = "table"
	PayloadImageSet   PayloadKind = "imageset"
	PayloadAudio      PayloadKind = "audio"
	PayloadCollection PayloadKind = "collection"
)

// Payload is the content carried through the pipeline between stages. Each
// stage consumes the current payload and replaces it; payloads are never
// shared across concurrent pipeline runs.
//
// The built-in variants are *Text, *Document, *Table, *ImageSet, *AudioClip
// and *Collection. Third-party payloads may participate in dispatch by
// implementing Payload plus one of the shape interfaces (Chunked,
// ItemCollection).
type Payload interface {
	PayloadKind() PayloadKind
}

// Text is a single unit of textual content.
type Text struct {
	Source  string
	Title   string
	Content string
}

func (*Text) PayloadKind() PayloadKind { return PayloadText }

// Chunk implements the single-unit shape for Text itself.
func (t *Text) Chunk() (source, content string) { return t.Source, t.Content }

// Page is one page of a Document. Number is zero-based.
type Page struct {
	Number  int
	Content string
}

// Document is paged textual content (PDF pages, PPTX slides).
type Document struct {
	Source string
	Title  string
	Pages  []Page
}

func (*Document) PayloadKind() PayloadKind { return PayloadDocument }

// Table is row-oriented tabular content.
type Table struct {
	Source string
	Sheet  string
	Rows   [][]string
}

func (*Table) PayloadKind() PayloadKind { return PayloadTable }

// Image is a single image held in memory.
type Image struct {
	MIMEType string
	Data     []byte
}

// ImageSet is one or more images extracted from a source.
type ImageSet struct {
	Source string
	Images []Image
}

func (*ImageSet) PayloadKind() PayloadKind { return PayloadImageSet }

// AudioClip is audio content held in memory.
type AudioClip struct {
	Source   string
	MIMEType string
	Data     []byte
}

func (*AudioClip) PayloadKind() PayloadKind { return PayloadAudio }

// Collection is an ordered multi-unit container of payloads (feed items,
// workbook sheets).
type Collection struct {
	Source string
	Items  []Payload
}

func (*Collection) PayloadKind() PayloadKind { return PayloadCollection }

// Chunked is the single-unit shape: anything exposing a source and textual
// content. Payloads implementing it dispatch to handlers registered for
// *Text when no exact handler exists.
type Chunked interface {
	Chunk() (source, content string)
}

// ItemCollection is the multi-unit shape. Payloads implementing it dispatch
// to handlers registered for *Collection when no exact handler exists.
type ItemCollection interface {
	Units() []Payload
}

// Units implements the multi-unit shape for Collection itself.
func (c *Collection) Units() []Payload { return c.Items }
