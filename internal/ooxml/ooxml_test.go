package ooxml

import (
	"archive/zip"
	"bytes"
	"reflect"
	"strings"
	"testing"
)

func zipReader(t *testing.T, parts map[string]string) *zip.Reader {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range parts {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatal(err)
	}
	return zr
}

func TestReadPart(t *testing.T) {
	zr := zipReader(t, map[string]string{"a/b.xml": "<x/>"})

	data, err := ReadPart(zr, "a/b.xml")
	if err != nil || string(data) != "<x/>" {
		t.Errorf("ReadPart = (%q, %v)", data, err)
	}

	if _, err := ReadPart(zr, "missing.xml"); err == nil {
		t.Error("missing part should be an error")
	} else if !strings.Contains(err.Error(), "missing.xml") {
		t.Errorf("error %q should name the part", err)
	}
}

func TestRelationships(t *testing.T) {
	zr := zipReader(t, map[string]string{
		"ppt/_rels/presentation.xml.rels": `<?xml version="1.0"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="t" Target="slides/slide1.xml"/>
  <Relationship Id="rId2" Type="t" Target="/ppt/media/image1.png"/>
</Relationships>`,
	})

	rels, err := Relationships(zr, "ppt/presentation.xml")
	if err != nil {
		t.Fatalf("Relationships: %v", err)
	}
	if len(rels) != 2 || rels["rId1"].Target != "slides/slide1.xml" {
		t.Errorf("rels = %v", rels)
	}

	// A part without .rels yields an empty, usable map.
	empty, err := Relationships(zr, "ppt/slides/slide1.xml")
	if err != nil || len(empty) != 0 {
		t.Errorf("missing .rels = (%v, %v), want empty map", empty, err)
	}
}

func TestResolveTarget(t *testing.T) {
	tests := []struct {
		base, target, want string
	}{
		{"ppt/presentation.xml", "slides/slide1.xml", "ppt/slides/slide1.xml"},
		{"ppt/presentation.xml", "/ppt/media/image1.png", "ppt/media/image1.png"},
		{"ppt/slides/slide1.xml", "../media/image1.png", "ppt/media/image1.png"},
	}
	for _, tt := range tests {
		if got := ResolveTarget(tt.base, tt.target); got != tt.want {
			t.Errorf("ResolveTarget(%q, %q) = %q, want %q", tt.base, tt.target, got, tt.want)
		}
	}
}

func TestSlidePathsPresentationOrder(t *testing.T) {
	const relsNS = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"

	// The sldIdLst references rId3 before rId2; presentation order must win
	// over relationship file order.
	zr := zipReader(t, map[string]string{
		"ppt/presentation.xml": `<?xml version="1.0"?>
<p:presentation xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"
                xmlns:r="` + relsNS + `">
  <p:sldIdLst>
    <p:sldId id="256" r:id="rId3"/>
    <p:sldId id="257" r:id="rId2"/>
  </p:sldIdLst>
</p:presentation>`,
		"ppt/_rels/presentation.xml.rels": `<?xml version="1.0"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId2" Type="` + relsNS + `/slide" Target="slides/slide1.xml"/>
  <Relationship Id="rId3" Type="` + relsNS + `/slide" Target="slides/slide2.xml"/>
</Relationships>`,
	})

	got, err := SlidePaths(zr)
	if err != nil {
		t.Fatalf("SlidePaths: %v", err)
	}
	want := []string{"ppt/slides/slide2.xml", "ppt/slides/slide1.xml"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SlidePaths = %v, want %v", got, want)
	}
}
