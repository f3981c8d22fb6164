package resumedocx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"sort"

	"github.com/nguyenthenguyen/docx"

	"github.com/vertekal/go-resume-docx/internal/ooxml"
)

// Assemble finalizes the bound document: it verifies every style and
// numbering reference used by the rendered body resolves in the template
// (guarding against Word's silent fallback to unstyled defaults), rebuilds
// the DOCX container fully in memory, and sanity-checks that the produced
// bytes reopen as a readable document. Nothing touches the filesystem.
func Assemble(h *DocumentHandle) ([]byte, error) {
	if err := checkStyleConformance(h); err != nil {
		return nil, err
	}

	documentXML := ooxml.Document(h.body, h.sectPr)
	relsXML := ooxml.MarshalRelationships(h.rels)

	out, err := writeContainer(h, documentXML, relsXML)
	if err != nil {
		return nil, err
	}

	if err := verifyContainer(out); err != nil {
		return nil, err
	}
	return out, nil
}

// checkStyleConformance verifies each used style/numbering ID against the
// template's definitions.
func checkStyleConformance(h *DocumentHandle) error {
	styles, nums := ooxml.UsedReferences(h.body)

	for _, styleID := range sortedKeys(styles) {
		if !h.HasStyle(styleID) {
			return fmt.Errorf("%w: paragraph style %q", ErrStyleUnresolved, styleID)
		}
	}
	for _, numID := range sortedKeys(nums) {
		if !h.HasNumbering(numID) {
			return fmt.Errorf("%w: numbering definition %q", ErrStyleUnresolved, numID)
		}
	}
	return nil
}

// sortedKeys keeps conformance errors deterministic.
func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// writeContainer rebuilds the ZIP: template entries are copied in their
// original order with document.xml and its rels replaced, stripped template
// media skipped, the png content type guaranteed, and badge media appended.
func writeContainer(h *DocumentHandle, documentXML, relsXML []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, name := range h.partOrder {
		var content []byte
		switch {
		case name == partDocument:
			content = documentXML
		case name == partDocumentRels:
			content = relsXML
		case name == partContentTypes:
			content = ooxml.EnsurePNGContentType(h.parts[name])
		case h.removedMedia[name]:
			continue
		default:
			content = h.parts[name]
		}
		if err := writeZipEntry(zw, name, content); err != nil {
			return nil, err
		}
	}

	for _, name := range h.mediaOrder {
		if err := writeZipEntry(zw, mediaPrefix+name, h.media[name]); err != nil {
			return nil, err
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("closing container: %w", err)
	}
	return buf.Bytes(), nil
}

// writeZipEntry adds one entry. Header timestamps stay zero so repeated runs
// produce byte-identical containers.
func writeZipEntry(zw *zip.Writer, name string, content []byte) error {
	w, err := zw.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate})
	if err != nil {
		return fmt.Errorf("creating container entry %s: %w", name, err)
	}
	if _, err := w.Write(content); err != nil {
		return fmt.Errorf("writing container entry %s: %w", name, err)
	}
	return nil
}

// verifyContainer reopens the assembled bytes as a DOCX and checks the body
// came through non-empty.
func verifyContainer(out []byte) error {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(out), int64(len(out)))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAssembleVerify, err)
	}
	defer func() { _ = doc.Close() }()

	if doc.Editable().GetContent() == "" {
		return fmt.Errorf("%w: empty document body", ErrAssembleVerify)
	}
	return nil
}
