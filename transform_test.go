package attachpipe

import (
	"strings"
	"testing"
)

func threePageDoc() *Document {
	return &Document{
		Source: "report.pdf",
		Title:  "Report",
		Pages: []Page{
			{Number: 0, Content: "alpha"},
			{Number: 1, Content: "beta"},
			{Number: 2, Content: "gamma"},
		},
	}
}

func TestSelectTransformPages(t *testing.T) {
	sel := NewSelectTransform("pages", discardLogger())

	got, err := sel.Apply(threePageDoc(), "1,3")
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	doc := got.(*Document)
	if len(doc.Pages) != 2 || doc.Pages[0].Content != "alpha" || doc.Pages[1].Content != "gamma" {
		t.Errorf("selected pages = %+v", doc.Pages)
	}
	if doc.Title != "Report" {
		t.Error("selection dropped document metadata")
	}
}

func TestSelectTransformEmptyArgSelectsAll(t *testing.T) {
	sel := NewSelectTransform("pages", discardLogger())
	got, err := sel.Apply(threePageDoc(), "")
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(got.(*Document).Pages) != 3 {
		t.Error("empty argument should keep every page")
	}
}

func TestSelectTransformBadArgSelectsNothing(t *testing.T) {
	sel := NewSelectTransform("pages", discardLogger())
	got, err := sel.Apply(threePageDoc(), "99")
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(got.(*Document).Pages) != 0 {
		t.Error("out-of-range selection must yield nothing, not everything")
	}
}

func TestSelectTransformRowsAndItems(t *testing.T) {
	rows := NewSelectTransform("rows", discardLogger())
	tbl := &Table{Sheet: "Q1", Rows: [][]string{{"h"}, {"a"}, {"b"}}}
	got, err := rows.Apply(tbl, "1-2")
	if err != nil {
		t.Fatalf("rows Apply: %v", err)
	}
	if out := got.(*Table); len(out.Rows) != 2 || out.Sheet != "Q1" {
		t.Errorf("rows selection = %+v", got)
	}

	items := NewSelectTransform("items", discardLogger())
	col := &Collection{Items: []Payload{&Text{Content: "1"}, &Text{Content: "2"}, &Text{Content: "3"}}}
	got, err = items.Apply(col, "N")
	if err != nil {
		t.Fatalf("items Apply: %v", err)
	}
	out := got.(*Collection)
	if len(out.Items) != 1 || out.Items[0].(*Text).Content != "3" {
		t.Errorf("items selection = %+v", out.Items)
	}
}

func TestLimitTransform(t *testing.T) {
	lim := NewLimitTransform(discardLogger())

	got, err := lim.Apply(&Text{Content: "héllo wörld"}, "5")
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if got.(*Text).Content != "héllo" {
		t.Errorf("rune truncation = %q", got.(*Text).Content)
	}

	got, _ = lim.Apply(threePageDoc(), "2")
	if len(got.(*Document).Pages) != 2 {
		t.Error("document limit did not truncate pages")
	}

	// Limit past the end is a no-op.
	in := &Text{Content: "short"}
	got, _ = lim.Apply(in, "100")
	if got != Payload(in) {
		t.Error("over-long limit should return the payload unchanged")
	}

	// Malformed argument degrades to a no-op, never an error.
	got, err = lim.Apply(in, "lots")
	if err != nil || got != Payload(in) {
		t.Errorf("malformed limit: got (%v, %v), want unchanged payload", got, err)
	}
}

func TestSheetTransform(t *testing.T) {
	sheet := NewSheetTransform()
	book := &Collection{Items: []Payload{
		&Table{Sheet: "Q1", Rows: [][]string{{"q1"}}},
		&Table{Sheet: "Q2", Rows: [][]string{{"q2"}}},
	}}

	got, err := sheet.Apply(book, "q2")
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if got.(*Table).Sheet != "Q2" {
		t.Errorf("selected sheet = %q, want case-insensitive Q2", got.(*Table).Sheet)
	}

	_, err = sheet.Apply(book, "Q9")
	if err == nil {
		t.Fatal("missing sheet should be an error")
	}
	if !strings.Contains(err.Error(), "Q1") || !strings.Contains(err.Error(), "Q2") {
		t.Errorf("error %q should list available sheets", err)
	}
}

func TestJoinTransform(t *testing.T) {
	join := NewJoinTransform()
	col := &Collection{Source: "feed.xml", Items: []Payload{
		&Text{Content: "one"},
		&Text{Content: "two"},
	}}

	got, err := join.Apply(col, "")
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	text := got.(*Text)
	if text.Content != "one\n\ntwo" || text.Source != "feed.xml" {
		t.Errorf("join = %+v", text)
	}

	got, _ = join.Apply(col, " | ")
	if got.(*Text).Content != "one | two" {
		t.Errorf("join with separator = %q", got.(*Text).Content)
	}

	// Non-collections pass through untouched.
	in := &Text{Content: "solo"}
	got, _ = join.Apply(in, "")
	if got != Payload(in) {
		t.Error("join of a single unit should be a no-op")
	}
}
