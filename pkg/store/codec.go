package store

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/aretw0/stickies/pkg/core"
)

// xmlHeader is written verbatim so the declaration always reads utf-8,
// regardless of what an encoder would emit, and carries no BOM.
const xmlHeader = `<?xml version="1.0" encoding="utf-8"?>` + "\n"

// noteRecord is the wire form of a single note element.
type noteRecord struct {
	XMLName   xml.Name `xml:"note"`
	ID        string   `xml:"id"`
	X         float64  `xml:"x"`
	Y         float64  `xml:"y"`
	W         float64  `xml:"w"`
	H         float64  `xml:"h"`
	Content   string   `xml:"content"`
	IsDefault bool     `xml:"isDefault"`
}

// noteDocument is the persisted file's root element. No namespace
// attributes are emitted; the document uses the empty default namespace.
type noteDocument struct {
	XMLName xml.Name     `xml:"notes"`
	Notes   []noteRecord `xml:"note"`
}

// encodeNotes serializes the ordered collection to the canonical text
// encoding: forced utf-8 declaration, indented body, trailing newline.
func encodeNotes(notes []*core.Note) ([]byte, error) {
	doc := noteDocument{Notes: make([]noteRecord, 0, len(notes))}
	for _, n := range notes {
		doc.Notes = append(doc.Notes, noteRecord{
			ID:        n.ID,
			X:         n.X,
			Y:         n.Y,
			W:         n.W,
			H:         n.H,
			Content:   n.Content,
			IsDefault: n.IsDefault,
		})
	}

	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal notes: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString(xmlHeader)
	buf.Write(body)
	buf.WriteString("\n")
	return buf.Bytes(), nil
}

// decodeNotes parses a persisted document back into entities, preserving
// file order.
func decodeNotes(data []byte) ([]*core.Note, error) {
	var doc noteDocument
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid notes document: %w", err)
	}

	notes := make([]*core.Note, 0, len(doc.Notes))
	for _, r := range doc.Notes {
		notes = append(notes, &core.Note{
			ID:        r.ID,
			X:         r.X,
			Y:         r.Y,
			W:         r.W,
			H:         r.H,
			Content:   r.Content,
			IsDefault: r.IsDefault,
		})
	}
	return notes, nil
}
