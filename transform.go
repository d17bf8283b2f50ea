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
	"log/slog"
	"strconv"
	"strings"
)

// SelectTransform selects pages, rows or items by index expression. One
// dispatcher serves all three payload shapes, so `pages`, `rows` and
// `items` are interchangeable names for the same selection semantics.
//
// An empty argument selects everything; a non-empty argument whose specs
// all fail selects nothing, never everything.
type SelectTransform struct {
	name string
	d    *Dispatcher
}

// NewSelectTransform creates a selection transform registered under name.
func NewSelectTransform(name string, logger *slog.Logger) *SelectTransform {
	if logger == nil {
		logger = slog.Default()
	}
	d := NewDispatcher(Role(name))

	On(d, func(doc *Document, arg string) (Payload, error) {
		out := &Document{Source: doc.Source, Title: doc.Title}
		for _, i := range resolveIndexes(logger, arg, len(doc.Pages)) {
			out.Pages = append(out.Pages, doc.Pages[i])
		}
		return out, nil
	})
	On(d, func(t *Table, arg string) (Payload, error) {
		out := &Table{Source: t.Source, Sheet: t.Sheet}
		for _, i := range resolveIndexes(logger, arg, len(t.Rows)) {
			out.Rows = append(out.Rows, t.Rows[i])
		}
		return out, nil
	})
	On(d, func(c *Collection, arg string) (Payload, error) {
		out := &Collection{Source: c.Source}
		for _, i := range resolveIndexes(logger, arg, len(c.Items)) {
			out.Items = append(out.Items, c.Items[i])
		}
		return out, nil
	})

	return &SelectTransform{name: name, d: d}
}

func (t *SelectTransform) Name() string { return t.name }

func (t *SelectTransform) Apply(p Payload, arg string) (Payload, error) {
	return t.d.Dispatch(p, arg)
}

// LimitTransform truncates a payload to its first n units: runes for
// text, pages, rows or items otherwise. A malformed argument degrades to
// a no-op with a warning.
type LimitTransform struct {
	logger *slog.Logger
	d      *Dispatcher
}

// NewLimitTransform creates a new LimitTransform.
func NewLimitTransform(logger *slog.Logger) *LimitTransform {
	if logger == nil {
		logger = slog.Default()
	}
	t := &LimitTransform{logger: logger}
	d := NewDispatcher("limit")

	On(d, func(txt *Text, arg string) (Payload, error) {
		n, ok := t.parseLimit(arg)
		if !ok {
			return txt, nil
		}
		runes := []rune(txt.Content)
		if n < len(runes) {
			return &Text{Source: txt.Source, Title: txt.Title, Content: string(runes[:n])}, nil
		}
		return txt, nil
	})
	On(d, func(doc *Document, arg string) (Payload, error) {
		n, ok := t.parseLimit(arg)
		if !ok || n >= len(doc.Pages) {
			return doc, nil
		}
		return &Document{Source: doc.Source, Title: doc.Title, Pages: doc.Pages[:n]}, nil
	})
	On(d, func(tbl *Table, arg string) (Payload, error) {
		n, ok := t.parseLimit(arg)
		if !ok || n >= len(tbl.Rows) {
			return tbl, nil
		}
		return &Table{Source: tbl.Source, Sheet: tbl.Sheet, Rows: tbl.Rows[:n]}, nil
	})
	On(d, func(c *Collection, arg string) (Payload, error) {
		n, ok := t.parseLimit(arg)
		if !ok || n >= len(c.Items) {
			return c, nil
		}
		return &Collection{Source: c.Source, Items: c.Items[:n]}, nil
	})

	t.d = d
	return t
}

func (t *LimitTransform) Name() string { return "limit" }

func (t *LimitTransform) Apply(p Payload, arg string) (Payload, error) {
	return t.d.Dispatch(p, arg)
}

func (t *LimitTransform) parseLimit(arg string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || n < 0 {
		t.logger.Warn("ignoring malformed limit argument", "arg", arg)
		return 0, false
	}
	return n, true
}

// SheetTransform selects one sheet of a loaded workbook by name.
type SheetTransform struct {
	d *Dispatcher
}

// NewSheetTransform creates a new SheetTransform.
func NewSheetTransform() *SheetTransform {
	d := NewDispatcher("sheet")

	On(d, func(c *Collection, arg string) (Payload, error) {
		var names []string
		for _, item := range c.Items {
			tbl, ok := item.(*Table)
			if !ok {
				continue
			}
			if strings.EqualFold(tbl.Sheet, strings.TrimSpace(arg)) {
				return tbl, nil
			}
			names = append(names, tbl.Sheet)
		}
		return nil, fmt.Errorf("no sheet named %q (have: %s)", arg, strings.Join(names, ", "))
	})
	On(d, func(tbl *Table, arg string) (Payload, error) {
		if strings.EqualFold(tbl.Sheet, strings.TrimSpace(arg)) {
			return tbl, nil
		}
		return nil, fmt.Errorf("no sheet named %q (have: %s)", arg, tbl.Sheet)
	})

	return &SheetTransform{d: d}
}

func (t *SheetTransform) Name() string { return "sheet" }

func (t *SheetTransform) Apply(p Payload, arg string) (Payload, error) {
	return t.d.Dispatch(p, arg)
}

// JoinTransform flattens a Collection into a single Text payload.
type JoinTransform struct{}

// NewJoinTransform creates a new JoinTransform.
func NewJoinTransform() *JoinTransform {
	return &JoinTransform{}
}

func (t *JoinTransform) Name() string { return "join" }

func (t *JoinTransform) Apply(p Payload, arg string) (Payload, error) {
	c, ok := p.(*Collection)
	if !ok {
		// Already a single unit; joining is a no-op.
		return p, nil
	}

	sep := "\n\n"
	if arg != "" {
		sep = arg
	}

	var parts []string
	for _, item := range c.Items {
		if s, ok := payloadText(item); ok {
			parts = append(parts, s)
		}
	}
	return &Text{Source: c.Source, Content: strings.Join(parts, sep)}, nil
}

// payloadText is the plain textual form of a payload, used by join and
// the text renderer's collection handler.
func payloadText(p Payload) (string, bool) {
	switch v := p.(type) {
	case *Text:
		return v.Content, true
	case *Document:
		var pages []string
		for _, pg := range v.Pages {
			pages = append(pages, pg.Content)
		}
		return strings.Join(pages, "\n\n"), true
	case *Table:
		return markdownTable(v.Rows), true
	case *Collection:
		var parts []string
		for _, item := range v.Items {
			if s, ok := payloadText(item); ok {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, "\n\n"), true
	case Chunked:
		_, content := v.Chunk()
		return content, true
	default:
		return "", false
	}
}
