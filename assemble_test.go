package resumedocx

// Notes:
// - Style conformance: the assembler must reject documents whose rendered
//   body references styles or numbering the template does not define,
//   instead of letting Word fall back to unstyled defaults silently.
// - Container readability is asserted through an independent DOCX library,
//   not our own ZIP reader, so the check cannot share bugs with the writer.

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/nguyenthenguyen/docx"
)

// ---------------------------------------------------------------------------
// TestAssemble - style conformance
// ---------------------------------------------------------------------------

func TestAssemble_StyleUnresolved(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts templateOpts
		want string
	}{
		{
			name: "missing ListParagraph style",
			opts: templateOpts{
				styleIDs:     []string{"Normal", "NoSpacing"},
				numberingIDs: []string{"62"},
			},
			want: "ListParagraph",
		},
		{
			name: "missing NoSpacing style",
			opts: templateOpts{
				styleIDs:     []string{"Normal", "ListParagraph"},
				numberingIDs: []string{"62"},
			},
			want: "NoSpacing",
		},
		{
			name: "missing bullet numbering definition",
			opts: templateOpts{
				styleIDs:     []string{"Normal", "NoSpacing", "ListParagraph"},
				numberingIDs: []string{"7"},
			},
			want: "62",
		},
		{
			name: "numbering part absent entirely",
			opts: templateOpts{
				styleIDs:     []string{"Normal", "NoSpacing", "ListParagraph"},
				numberingIDs: []string{"62"},
				omitParts:    []string{"word/numbering.xml"},
			},
			want: "62",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := New(WithTemplate(writeTestTemplate(t, tt.opts)))
			_, err := svc.Generate(t.Context(), validRecord())
			if !errors.Is(err, ErrStyleUnresolved) {
				t.Fatalf("Generate() = %v, want ErrStyleUnresolved", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not name %q", err, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestAssemble - container readability
// ---------------------------------------------------------------------------

func TestAssemble_OutputOpensAsDocx(t *testing.T) {
	t.Parallel()

	out := generate(t, validRecord())

	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(out), int64(len(out)))
	if err != nil {
		t.Fatalf("third-party reader rejected output: %v", err)
	}
	defer func() { _ = doc.Close() }()

	content := doc.Editable().GetContent()
	for _, want := range []string{
		"Jordan Avery",
		"Professional Experience Summary",
		"George Mason University",
		"U.S. Marine Corps",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("document content missing %q", want)
		}
	}
}

func TestAssemble_PreservesUntouchedParts(t *testing.T) {
	t.Parallel()

	out := generate(t, validRecord())

	// styles.xml and the package rels ride through assembly unchanged.
	if readOutputPart(t, out, "word/styles.xml") == nil {
		t.Error("word/styles.xml missing from output")
	}
	if readOutputPart(t, out, "_rels/.rels") == nil {
		t.Error("_rels/.rels missing from output")
	}
	ct := readOutputPart(t, out, "[Content_Types].xml")
	if !bytes.Contains(ct, []byte(`Extension="png"`)) {
		t.Error("png content type missing from output")
	}
}
