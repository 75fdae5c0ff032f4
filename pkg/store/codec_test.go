package store

import (
	"strings"
	"testing"

	"github.com/aretw0/stickies/pkg/core"
)

func TestEncodeNotes(t *testing.T) {
	n := core.NewNote()
	n.X, n.Y = 5, 7
	n.Content = "raid at <8pm>"

	data, err := encodeNotes([]*core.Note{n, core.NewDefaultNote()})
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	text := string(data)

	t.Run("Forces UTF-8 Declaration", func(t *testing.T) {
		if !strings.HasPrefix(text, `<?xml version="1.0" encoding="utf-8"?>`) {
			t.Errorf("missing forced utf-8 declaration: %q", text[:40])
		}
	})

	t.Run("No BOM", func(t *testing.T) {
		if data[0] == 0xEF {
			t.Error("output must not start with a BOM")
		}
	})

	t.Run("Trailing Newline", func(t *testing.T) {
		if !strings.HasSuffix(text, "\n") {
			t.Error("output must end with a newline")
		}
	})

	t.Run("Empty Default Namespace", func(t *testing.T) {
		if strings.Contains(text, "xmlns") {
			t.Errorf("output must not carry namespace attributes: %s", text)
		}
	})

	t.Run("Container And Element Names", func(t *testing.T) {
		if !strings.Contains(text, "<notes>") || !strings.Contains(text, "<note>") {
			t.Errorf("expected <notes> container with <note> elements, got: %s", text)
		}
	})

	t.Run("Content Escaped", func(t *testing.T) {
		if !strings.Contains(text, "raid at &lt;8pm&gt;") {
			t.Errorf("expected escaped content, got: %s", text)
		}
	})
}

func TestDecodeNotes(t *testing.T) {
	t.Run("Preserves Order And Fields", func(t *testing.T) {
		a, b := core.NewNote(), core.NewDefaultNote()
		a.X, a.Y, a.W, a.H = 1, 2, 3, 4

		data, err := encodeNotes([]*core.Note{a, b})
		if err != nil {
			t.Fatal(err)
		}

		got, err := decodeNotes(data)
		if err != nil {
			t.Fatalf("decode failed: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 notes, got %d", len(got))
		}
		if *got[0] != *a || *got[1] != *b {
			t.Errorf("decoded notes differ:\n got %+v %+v\nwant %+v %+v", got[0], got[1], a, b)
		}
	})

	t.Run("Rejects Malformed Document", func(t *testing.T) {
		if _, err := decodeNotes([]byte("<notes><note>")); err == nil {
			t.Error("expected error for malformed input")
		}
	})

	t.Run("Empty Container", func(t *testing.T) {
		got, err := decodeNotes([]byte(xmlHeader + "<notes></notes>\n"))
		if err != nil {
			t.Fatalf("decode failed: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("expected no notes, got %d", len(got))
		}
	})
}
