package resumedocx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/vertekal/go-resume-docx/internal/ooxml"
)

// ZIP part names the binder cares about.
const (
	partDocument     = "word/document.xml"
	partDocumentRels = "word/_rels/document.xml.rels"
	partStyles       = "word/styles.xml"
	partNumbering    = "word/numbering.xml"
	partContentTypes = "[Content_Types].xml"
	mediaPrefix      = "word/media/"
)

// maxTemplateSize caps template reads (a branded template is well under this).
const maxTemplateSize = 32 << 20

// DocumentHandle is an in-memory working copy of the branded template, bound
// once per generation. All mutation happens here; the template file on disk
// is never touched. Renderers append styled paragraphs and badge images;
// Assemble serializes the result.
type DocumentHandle struct {
	parts     map[string][]byte
	partOrder []string

	sectPr   string
	rels     []ooxml.Relationship
	styleIDs map[string]bool
	numIDs   map[string]bool

	body []*ooxml.Element

	media      map[string][]byte // added badge media, name -> bytes
	mediaOrder []string
	imageRIDs  map[string]string // media name -> assigned rId
	nextRID    int

	removedMedia map[string]bool // template media dropped with its image rels
}

// Bind loads the branded template into an in-memory DocumentHandle
// (copy-on-bind). It fails with ErrTemplateLoad if the file is missing, is
// not a readable ZIP, or lacks a required part. The template's existing
// image relationships are dropped along with the media they reference;
// badge images are added back per record during rendering.
func Bind(templatePath string) (*DocumentHandle, error) {
	data, err := os.ReadFile(templatePath) // #nosec G304 -- path is operator-supplied
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateLoad, err)
	}
	if len(data) > maxTemplateSize {
		return nil, fmt.Errorf("%w: template exceeds %d bytes", ErrTemplateLoad, maxTemplateSize)
	}

	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: not a readable docx container: %v", ErrTemplateLoad, err)
	}

	h := &DocumentHandle{
		parts:        make(map[string][]byte, len(reader.File)),
		media:        make(map[string][]byte),
		imageRIDs:    make(map[string]string),
		removedMedia: make(map[string]bool),
	}

	for _, file := range reader.File {
		content, err := readZipEntry(file)
		if err != nil {
			return nil, fmt.Errorf("%w: reading %s: %v", ErrTemplateLoad, file.Name, err)
		}
		h.parts[file.Name] = content
		h.partOrder = append(h.partOrder, file.Name)
	}

	for _, required := range []string{partDocument, partDocumentRels, partStyles, partContentTypes} {
		if _, ok := h.parts[required]; !ok {
			return nil, fmt.Errorf("%w: template missing %s", ErrTemplateLoad, required)
		}
	}

	if err := h.inspect(); err != nil {
		return nil, err
	}
	return h, nil
}

// readZipEntry extracts one entry, closing the reader on every path.
func readZipEntry(file *zip.File) ([]byte, error) {
	rc, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	return io.ReadAll(io.LimitReader(rc, maxTemplateSize))
}

// inspect captures the template's section properties, relationship table,
// and defined style/numbering IDs.
func (h *DocumentHandle) inspect() error {
	sectPr, err := ooxml.ExtractSectPr(h.parts[partDocument])
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrTemplateLoad, partDocument, err)
	}
	h.sectPr = sectPr

	rels, err := ooxml.ParseRelationships(h.parts[partDocumentRels])
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrTemplateLoad, partDocumentRels, err)
	}

	// Drop the template's image relationships and remember their media so
	// the assembler strips the placeholder badges from the container.
	h.rels = rels[:0:0]
	for _, rel := range rels {
		if rel.Type == ooxml.RelTypeImage {
			h.removedMedia["word/"+strings.TrimPrefix(rel.Target, "./")] = true
			continue
		}
		h.rels = append(h.rels, rel)
	}
	h.nextRID = ooxml.NextRelationshipID(rels)

	h.styleIDs, err = ooxml.StyleIDs(h.parts[partStyles])
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrTemplateLoad, partStyles, err)
	}

	h.numIDs = map[string]bool{}
	if numbering, ok := h.parts[partNumbering]; ok {
		h.numIDs, err = ooxml.NumberingIDs(numbering)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrTemplateLoad, partNumbering, err)
		}
	}
	return nil
}

// AppendParagraph appends a rendered paragraph to the document body.
func (h *DocumentHandle) AppendParagraph(p *ooxml.Element) {
	h.body = append(h.body, p)
}

// AddImage registers badge image bytes under word/media/<name> and returns
// the relationship ID embedding it. Adding the same name twice reuses the
// first relationship.
func (h *DocumentHandle) AddImage(name string, data []byte) string {
	if rid, ok := h.imageRIDs[name]; ok {
		return rid
	}
	rid := "rId" + strconv.Itoa(h.nextRID)
	h.nextRID++
	h.rels = append(h.rels, ooxml.Relationship{
		ID:     rid,
		Type:   ooxml.RelTypeImage,
		Target: "media/" + name,
	})
	h.media[name] = data
	h.mediaOrder = append(h.mediaOrder, name)
	h.imageRIDs[name] = rid
	return rid
}

// HasStyle reports whether the template defines the given paragraph style.
func (h *DocumentHandle) HasStyle(styleID string) bool {
	return h.styleIDs[styleID]
}

// HasNumbering reports whether the template defines the given numbering ID.
func (h *DocumentHandle) HasNumbering(numID string) bool {
	return h.numIDs[numID]
}
