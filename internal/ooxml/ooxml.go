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

// Package ooxml reads the bits of the Office Open XML package format the
// presentation loader needs: part lookup, relationship resolution and
// slide ordering.
package ooxml

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"path"
	"strings"
)

// Relationship is one entry of a .rels part.
type Relationship struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

type relationships struct {
	XMLName       xml.Name       `xml:"Relationships"`
	Relationships []Relationship `xml:"Relationship"`
}

// ReadPart returns the named part's bytes from the package.
func ReadPart(zr *zip.Reader, name string) ([]byte, error) {
	for _, f := range zr.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, fmt.Errorf("part %q not found in package", name)
}

// Relationships parses the .rels part for a given part path, keyed by
// relationship ID. A missing .rels part yields an empty map.
func Relationships(zr *zip.Reader, partPath string) (map[string]Relationship, error) {
	data, err := ReadPart(zr, relsPathFor(partPath))
	if err != nil {
		return map[string]Relationship{}, nil
	}
	var rels relationships
	if err := xml.NewDecoder(bytes.NewReader(data)).Decode(&rels); err != nil {
		return nil, fmt.Errorf("decode relationships: %w", err)
	}
	byID := make(map[string]Relationship, len(rels.Relationships))
	for _, rel := range rels.Relationships {
		byID[rel.ID] = rel
	}
	return byID, nil
}

// SlidePaths returns slide part paths in presentation order, resolved
// through ppt/presentation.xml and its relationships.
func SlidePaths(zr *zip.Reader) ([]string, error) {
	const presPath = "ppt/presentation.xml"

	presData, err := ReadPart(zr, presPath)
	if err != nil {
		return nil, err
	}
	rels, err := Relationships(zr, presPath)
	if err != nil {
		return nil, err
	}

	var paths []string
	dec := xml.NewDecoder(bytes.NewReader(presData))
	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "sldId" {
			continue
		}
		for _, attr := range se.Attr {
			if attr.Name.Local != "id" || !strings.Contains(attr.Name.Space, "relationships") {
				continue
			}
			if rel, ok := rels[attr.Value]; ok {
				paths = append(paths, ResolveTarget(presPath, rel.Target))
			}
		}
	}
	return paths, nil
}

// ResolveTarget resolves a relationship target against the referencing
// part's path.
func ResolveTarget(basePath, target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return path.Join(path.Dir(basePath), target)
}

// relsPathFor returns the .rels part path for a part.
func relsPathFor(partPath string) string {
	dir := path.Dir(partPath)
	base := path.Base(partPath)
	if dir == "." {
		return "_rels/" + base + ".rels"
	}
	return dir + "/_rels/" + base + ".rels"
}
