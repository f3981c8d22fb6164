package ooxml

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
)

// Relationship type URIs used by word/_rels/document.xml.rels.
const (
	RelTypeImage = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/image"

	relationshipsNS = "http://schemas.openxmlformats.org/package/2006/relationships"
)

// Relationship is one entry in a relationships part.
type Relationship struct {
	ID     string
	Type   string
	Target string
}

// ParseRelationships decodes a .rels part.
func ParseRelationships(data []byte) ([]Relationship, error) {
	var doc struct {
		XMLName xml.Name `xml:"Relationships"`
		Rels    []struct {
			ID     string `xml:"Id,attr"`
			Type   string `xml:"Type,attr"`
			Target string `xml:"Target,attr"`
		} `xml:"Relationship"`
	}
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRels, err)
	}

	rels := make([]Relationship, len(doc.Rels))
	for i, r := range doc.Rels {
		rels[i] = Relationship{ID: r.ID, Type: r.Type, Target: r.Target}
	}
	return rels, nil
}

// MarshalRelationships serializes a .rels part.
func MarshalRelationships(rels []Relationship) []byte {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	sb.WriteString("\r\n")
	sb.WriteString(`<Relationships xmlns="` + relationshipsNS + `">`)
	for _, r := range rels {
		el := El("Relationship",
			A("Id", r.ID),
			A("Type", r.Type),
			A("Target", r.Target),
		)
		el.Write(&sb)
	}
	sb.WriteString(`</Relationships>`)
	return []byte(sb.String())
}

// NextRelationshipID returns the first "rIdN" identifier greater than every
// numeric rId already present.
func NextRelationshipID(rels []Relationship) int {
	next := 1
	for _, r := range rels {
		n, ok := numericRID(r.ID)
		if ok && n >= next {
			next = n + 1
		}
	}
	return next
}

// numericRID parses "rId42" into 42.
func numericRID(id string) (int, bool) {
	rest, ok := strings.CutPrefix(id, "rId")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// EnsurePNGContentType makes sure a [Content_Types].xml part declares the
// png default extension, inserting one if the template never carried PNG
// media. The declaration is required for embedded badge images to resolve.
func EnsurePNGContentType(contentTypes []byte) []byte {
	if bytes.Contains(contentTypes, []byte(`Extension="png"`)) {
		return contentTypes
	}
	closing := []byte("</Types>")
	idx := bytes.LastIndex(contentTypes, closing)
	if idx < 0 {
		return contentTypes
	}
	def := []byte(`<Default Extension="png" ContentType="image/png"/>`)
	out := make([]byte, 0, len(contentTypes)+len(def))
	out = append(out, contentTypes[:idx]...)
	out = append(out, def...)
	out = append(out, contentTypes[idx:]...)
	return out
}
