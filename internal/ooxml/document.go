package ooxml

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Sentinel errors for document part handling.
var (
	ErrNoSectPr       = errors.New("document.xml has no w:sectPr element")
	ErrMalformedPart  = errors.New("malformed document part")
	ErrMalformedRels  = errors.New("malformed relationships part")
)

// namespaces declared on the w:document root, in emission order.
// The full set mirrors what Word itself writes, so downstream consumers
// (and the mc:Ignorable list) resolve every prefix the template may use.
var namespaces = []Attr{
	{"xmlns:wpc", "http://schemas.microsoft.com/office/word/2010/wordprocessingCanvas"},
	{"xmlns:cx", "http://schemas.microsoft.com/office/drawing/2014/chartex"},
	{"xmlns:cx1", "http://schemas.microsoft.com/office/drawing/2015/9/8/chartex"},
	{"xmlns:cx2", "http://schemas.microsoft.com/office/drawing/2015/10/21/chartex"},
	{"xmlns:cx3", "http://schemas.microsoft.com/office/drawing/2016/5/9/chartex"},
	{"xmlns:cx4", "http://schemas.microsoft.com/office/drawing/2016/5/10/chartex"},
	{"xmlns:cx5", "http://schemas.microsoft.com/office/drawing/2016/5/11/chartex"},
	{"xmlns:cx6", "http://schemas.microsoft.com/office/drawing/2016/5/12/chartex"},
	{"xmlns:cx7", "http://schemas.microsoft.com/office/drawing/2016/5/13/chartex"},
	{"xmlns:cx8", "http://schemas.microsoft.com/office/drawing/2016/5/14/chartex"},
	{"xmlns:mc", "http://schemas.openxmlformats.org/markup-compatibility/2006"},
	{"xmlns:aink", "http://schemas.microsoft.com/office/drawing/2016/ink"},
	{"xmlns:am3d", "http://schemas.microsoft.com/office/drawing/2017/model3d"},
	{"xmlns:o", "urn:schemas-microsoft-com:office:office"},
	{"xmlns:oel", "http://schemas.microsoft.com/office/2019/extlst"},
	{"xmlns:r", "http://schemas.openxmlformats.org/officeDocument/2006/relationships"},
	{"xmlns:m", "http://schemas.openxmlformats.org/officeDocument/2006/math"},
	{"xmlns:v", "urn:schemas-microsoft-com:vml"},
	{"xmlns:wp14", "http://schemas.microsoft.com/office/word/2010/wordprocessingDrawing"},
	{"xmlns:wp", "http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing"},
	{"xmlns:w10", "urn:schemas-microsoft-com:office:word"},
	{"xmlns:w", "http://schemas.openxmlformats.org/wordprocessingml/2006/main"},
	{"xmlns:w14", "http://schemas.microsoft.com/office/word/2010/wordml"},
	{"xmlns:w15", "http://schemas.microsoft.com/office/word/2012/wordml"},
	{"xmlns:w16cex", "http://schemas.microsoft.com/office/word/2018/wordml/cex"},
	{"xmlns:w16cid", "http://schemas.microsoft.com/office/word/2016/wordml/cid"},
	{"xmlns:w16", "http://schemas.microsoft.com/office/word/2018/wordml"},
	{"xmlns:w16du", "http://schemas.microsoft.com/office/word/2023/wordml/word16du"},
	{"xmlns:w16sdtdh", "http://schemas.microsoft.com/office/word/2020/wordml/sdtdatahash"},
	{"xmlns:w16sdtfl", "http://schemas.microsoft.com/office/word/2024/wordml/sdtformatlock"},
	{"xmlns:w16se", "http://schemas.microsoft.com/office/word/2015/wordml/symex"},
	{"xmlns:wpg", "http://schemas.microsoft.com/office/word/2010/wordprocessingGroup"},
	{"xmlns:wpi", "http://schemas.microsoft.com/office/word/2010/wordprocessingInk"},
	{"xmlns:wne", "http://schemas.microsoft.com/office/word/2006/wordml"},
	{"xmlns:wps", "http://schemas.microsoft.com/office/word/2010/wordprocessingShape"},
}

const mcIgnorable = "w14 w15 w16se w16cid w16 w16cex w16sdtdh w16sdtfl w16du wp14"

// Document serializes a complete word/document.xml from body paragraphs and
// the raw w:sectPr markup carried over from the template.
func Document(body []*Element, sectPr string) []byte {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	sb.WriteString("\r\n")
	sb.WriteString("<w:document")
	for _, ns := range namespaces {
		sb.WriteByte(' ')
		sb.WriteString(ns.Name)
		sb.WriteString(`="`)
		sb.WriteString(ns.Value)
		sb.WriteByte('"')
	}
	sb.WriteString(` mc:Ignorable="`)
	sb.WriteString(mcIgnorable)
	sb.WriteString(`">`)
	sb.WriteString("<w:body>")
	for _, p := range body {
		p.Write(&sb)
	}
	sb.WriteString(sectPr)
	sb.WriteString("</w:body></w:document>")
	return []byte(sb.String())
}

// ExtractSectPr returns the raw body-level w:sectPr markup from an existing
// document.xml. The element is the last child of w:body in any well-formed
// document, so the last occurrence is taken.
func ExtractSectPr(documentXML []byte) (string, error) {
	doc := string(documentXML)

	start := strings.LastIndex(doc, "<w:sectPr")
	if start < 0 {
		return "", ErrNoSectPr
	}

	// Self-closing form first, then the paired form.
	rest := doc[start:]
	closeTag := "</w:sectPr>"
	if end := strings.Index(rest, closeTag); end >= 0 {
		return rest[:end+len(closeTag)], nil
	}
	if end := strings.Index(rest, "/>"); end >= 0 && !strings.Contains(rest[:end], ">") {
		return rest[:end+2], nil
	}
	return "", fmt.Errorf("%w: unterminated w:sectPr", ErrMalformedPart)
}

// StyleIDs scans a word/styles.xml part and returns the set of defined
// w:styleId values.
func StyleIDs(stylesXML []byte) (map[string]bool, error) {
	return scanAttrValues(stylesXML, "style", "styleId")
}

// NumberingIDs scans a word/numbering.xml part and returns the set of
// defined w:numId values (the w:num definitions referenced by paragraphs).
func NumberingIDs(numberingXML []byte) (map[string]bool, error) {
	return scanAttrValues(numberingXML, "num", "numId")
}

// scanAttrValues collects attribute values of attrLocal on elements whose
// local name is elemLocal. Namespace prefixes are ignored, which makes the
// scan robust to whatever prefix the template declares.
func scanAttrValues(part []byte, elemLocal, attrLocal string) (map[string]bool, error) {
	ids := make(map[string]bool)
	dec := xml.NewDecoder(bytes.NewReader(part))
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedPart, err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != elemLocal {
			continue
		}
		for _, attr := range start.Attr {
			if attr.Name.Local == attrLocal {
				ids[attr.Value] = true
			}
		}
	}
	return ids, nil
}

// UsedReferences walks rendered body elements and collects every paragraph
// style ID (w:pStyle) and numbering ID (w:numId) the content refers to.
func UsedReferences(body []*Element) (styles, nums map[string]bool) {
	styles = make(map[string]bool)
	nums = make(map[string]bool)
	for _, el := range body {
		el.Walk(func(e *Element) {
			switch e.Tag {
			case "w:pStyle":
				for _, attr := range e.Attrs {
					if attr.Name == "w:val" {
						styles[attr.Value] = true
					}
				}
			case "w:numId":
				for _, attr := range e.Attrs {
					if attr.Name == "w:val" {
						nums[attr.Value] = true
					}
				}
			}
		})
	}
	return styles, nums
}
