package interchange

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/kosuda/teibun"
)

const xmlHeader = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"

// Encode serializes folders to the interchange format, the structural
// inverse of Decode. Folders and snippets are emitted by stored Order, ties
// broken by original sequence. It fails only with teibun.ErrInvalidArgument,
// when a text field carries runes that cannot appear in an XML document.
func Encode(folders []teibun.SnippetFolder) ([]byte, error) {
	ordered := teibun.CloneFolders(folders)
	slices.SortStableFunc(ordered, func(a, b teibun.SnippetFolder) int {
		return cmp.Compare(a.Order, b.Order)
	})

	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString("<folders>\n")
	for _, f := range ordered {
		if err := validateText("folder title", f.Name); err != nil {
			return nil, err
		}
		if err := validateText("folder id", f.ID); err != nil {
			return nil, err
		}
		b.WriteString("  <folder>\n")
		if f.ID != "" {
			b.WriteString("    <id>" + escape(f.ID) + "</id>\n")
		}
		b.WriteString("    <title>" + escape(f.Name) + "</title>\n")
		b.WriteString("    <snippets>\n")
		snippets := slices.Clone(f.Snippets)
		slices.SortStableFunc(snippets, func(a, b teibun.Snippet) int {
			return cmp.Compare(a.Order, b.Order)
		})
		for _, s := range snippets {
			if err := encodeSnippet(&b, s); err != nil {
				return nil, err
			}
		}
		b.WriteString("    </snippets>\n")
		b.WriteString("  </folder>\n")
	}
	b.WriteString("</folders>\n")
	return []byte(b.String()), nil
}

func encodeSnippet(b *strings.Builder, s teibun.Snippet) error {
	for _, field := range []struct{ name, value string }{
		{"snippet id", s.ID},
		{"snippet title", s.Title},
		{"snippet content", s.Content},
		{"snippet description", s.Description},
	} {
		if err := validateText(field.name, field.value); err != nil {
			return err
		}
	}
	b.WriteString("      <snippet>\n")
	if s.ID != "" {
		b.WriteString("        <id>" + escape(s.ID) + "</id>\n")
	}
	b.WriteString("        <title>" + escape(s.Title) + "</title>\n")
	b.WriteString("        <content>" + escape(s.Content) + "</content>\n")
	if s.Description != "" {
		b.WriteString("        <description>" + escape(s.Description) + "</description>\n")
	}
	if s.Type != "" {
		b.WriteString("        <type>" + escape(string(s.Type)) + "</type>\n")
	}
	b.WriteString("      </snippet>\n")
	return nil
}

// escape substitutes the five XML special characters, ampersand first so
// entities introduced by the later substitutions are not double-escaped.
func escape(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, `"`, "&quot;")
	s = strings.ReplaceAll(s, "'", "&#39;")
	return s
}

// validateText rejects runes outside the XML 1.0 character range. Reaching
// this is a contract violation by the caller, reported as invalid-argument
// rather than silently emitting an unreadable document.
func validateText(field, s string) error {
	for _, r := range s {
		if !validXMLRune(r) {
			return fmt.Errorf("%w: %s contains rune %U", teibun.ErrInvalidArgument, field, r)
		}
	}
	return nil
}

func validXMLRune(r rune) bool {
	return r == 0x09 || r == 0x0A || r == 0x0D ||
		(r >= 0x20 && r <= 0xD7FF) ||
		(r >= 0xE000 && r <= 0xFFFD) ||
		(r >= 0x10000 && r <= 0x10FFFF)
}
