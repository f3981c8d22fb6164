// Package ooxml builds WordprocessingML markup for the résumé document body.
//
// A DOCX file is a ZIP of XML parts. This package emits the paragraph, run,
// drawing, and relationship markup that goes into word/document.xml and
// word/_rels/document.xml.rels. Elements are assembled as a lightweight tree
// and serialized with explicit namespace prefixes (w:, r:, wp:, a:, pic:),
// which is how WordprocessingML is conventionally written and keeps the
// output byte-for-byte stable across runs.
package ooxml

import (
	"encoding/xml"
	"strings"
)

// Attr is a serialized XML attribute.
type Attr struct {
	Name  string
	Value string
}

// Element is a node in the document tree. Text and Children are mutually
// exclusive in practice; when both are set, Text is written first.
type Element struct {
	Tag      string
	Attrs    []Attr
	Text     string
	Children []*Element
}

// El creates an element with the given prefixed tag and attributes.
func El(tag string, attrs ...Attr) *Element {
	return &Element{Tag: tag, Attrs: attrs}
}

// A creates an attribute.
func A(name, value string) Attr {
	return Attr{Name: name, Value: value}
}

// Append adds children and returns the element for chaining.
func (e *Element) Append(children ...*Element) *Element {
	e.Children = append(e.Children, children...)
	return e
}

// WithText sets the element text and returns the element for chaining.
func (e *Element) WithText(text string) *Element {
	e.Text = text
	return e
}

// Write serializes the element to sb.
func (e *Element) Write(sb *strings.Builder) {
	sb.WriteByte('<')
	sb.WriteString(e.Tag)
	for _, attr := range e.Attrs {
		sb.WriteByte(' ')
		sb.WriteString(attr.Name)
		sb.WriteString(`="`)
		escape(sb, attr.Value)
		sb.WriteByte('"')
	}
	if e.Text == "" && len(e.Children) == 0 {
		sb.WriteString("/>")
		return
	}
	sb.WriteByte('>')
	if e.Text != "" {
		escape(sb, e.Text)
	}
	for _, child := range e.Children {
		child.Write(sb)
	}
	sb.WriteString("</")
	sb.WriteString(e.Tag)
	sb.WriteByte('>')
}

// String serializes the element to a string.
func (e *Element) String() string {
	var sb strings.Builder
	e.Write(&sb)
	return sb.String()
}

// escape writes s with XML special characters escaped.
func escape(sb *strings.Builder, s string) {
	// strings.Builder never returns a write error.
	_ = xml.EscapeText(sb, []byte(s))
}

// Walk visits e and all descendants in document order.
func (e *Element) Walk(visit func(*Element)) {
	visit(e)
	for _, child := range e.Children {
		child.Walk(visit)
	}
}
