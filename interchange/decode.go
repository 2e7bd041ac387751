package interchange

import (
	"bytes"
	"encoding/xml"
	"strings"

	"github.com/kosuda/teibun"
)

// Decode parses an interchange document into folders. It never fails:
// malformed input yields whatever was parsed before the damage, and a
// document without a <folders> root yields an empty result. Tag names are
// matched case-insensitively and unknown elements are ignored.
//
// Each decoded snippet without an embedded <id> gets a fingerprint
// identifier, and Order is the zero-based position within its folder in
// document order; folders get Order equal to their document position.
// Snippet Type is taken from an optional embedded <type> element and is
// otherwise left unset; stamping master/personal is the caller's concern
// (Reconcile and ImportPersonal respectively).
func Decode(data []byte) []teibun.SnippetFolder {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Strict = false
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil
		}
		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if strings.EqualFold(se.Name.Local, "folders") {
			return decodeFolders(dec)
		}
		if dec.Skip() != nil {
			return nil
		}
	}
}

func decodeFolders(dec *xml.Decoder) []teibun.SnippetFolder {
	var folders []teibun.SnippetFolder
	for {
		tok, err := dec.Token()
		if err != nil {
			return folders
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if strings.EqualFold(t.Name.Local, "folder") {
				f, err := decodeFolder(dec)
				if err != nil {
					// Keep a best-effort partial folder when the document
					// breaks off mid-element.
					if f.Name != "" || len(f.Snippets) > 0 {
						finalizeFolder(&f, len(folders))
						folders = append(folders, f)
					}
					return folders
				}
				finalizeFolder(&f, len(folders))
				folders = append(folders, f)
			} else if dec.Skip() != nil {
				return folders
			}
		case xml.EndElement:
			return folders
		}
	}
}

func decodeFolder(dec *xml.Decoder) (teibun.SnippetFolder, error) {
	var f teibun.SnippetFolder
	for {
		tok, err := dec.Token()
		if err != nil {
			return f, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch {
			case strings.EqualFold(t.Name.Local, "title"):
				text, err := decodeText(dec)
				f.Name = strings.TrimSpace(text)
				if err != nil {
					return f, err
				}
			case strings.EqualFold(t.Name.Local, "id"):
				text, err := decodeText(dec)
				f.ID = strings.TrimSpace(text)
				if err != nil {
					return f, err
				}
			case strings.EqualFold(t.Name.Local, "snippets"):
				if err := decodeSnippets(dec, &f); err != nil {
					return f, err
				}
			case strings.EqualFold(t.Name.Local, "snippet"):
				// Tolerated shorthand: a <snippet> directly under <folder>.
				s, err := decodeSnippet(dec)
				f.Snippets = append(f.Snippets, s)
				if err != nil {
					return f, err
				}
			default:
				if err := dec.Skip(); err != nil {
					return f, err
				}
			}
		case xml.EndElement:
			return f, nil
		}
	}
}

func decodeSnippets(dec *xml.Decoder, f *teibun.SnippetFolder) error {
	for {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if strings.EqualFold(t.Name.Local, "snippet") {
				s, err := decodeSnippet(dec)
				f.Snippets = append(f.Snippets, s)
				if err != nil {
					return err
				}
			} else if err := dec.Skip(); err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		}
	}
}

func decodeSnippet(dec *xml.Decoder) (teibun.Snippet, error) {
	var s teibun.Snippet
	for {
		tok, err := dec.Token()
		if err != nil {
			return s, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			var dst *string
			switch {
			case strings.EqualFold(t.Name.Local, "id"):
				dst = &s.ID
			case strings.EqualFold(t.Name.Local, "title"):
				dst = &s.Title
			case strings.EqualFold(t.Name.Local, "content"):
				dst = &s.Content
			case strings.EqualFold(t.Name.Local, "description"):
				dst = &s.Description
			case strings.EqualFold(t.Name.Local, "type"):
				text, err := decodeText(dec)
				switch strings.ToLower(strings.TrimSpace(text)) {
				case string(teibun.TypePersonal):
					s.Type = teibun.TypePersonal
				case string(teibun.TypeMaster):
					s.Type = teibun.TypeMaster
				}
				if err != nil {
					return s, err
				}
				continue
			}
			if dst == nil {
				if err := dec.Skip(); err != nil {
					return s, err
				}
				continue
			}
			text, err := decodeText(dec)
			*dst = strings.TrimSpace(text)
			if err != nil {
				return s, err
			}
		case xml.EndElement:
			return s, nil
		}
	}
}

// decodeText collects the direct character data of the current element,
// ignoring text inside nested (unknown) elements.
func decodeText(dec *xml.Decoder) (string, error) {
	var sb strings.Builder
	depth := 0
	for {
		tok, err := dec.Token()
		if err != nil {
			return sb.String(), err
		}
		switch t := tok.(type) {
		case xml.CharData:
			if depth == 0 {
				sb.Write(t)
			}
		case xml.StartElement:
			depth++
		case xml.EndElement:
			if depth == 0 {
				return sb.String(), nil
			}
			depth--
		}
	}
}

func finalizeFolder(f *teibun.SnippetFolder, position int) {
	f.Order = position
	if f.ID == "" {
		f.ID = teibun.Fingerprint(f.Name, "", "")
	}
	for i := range f.Snippets {
		s := &f.Snippets[i]
		s.Folder = f.Name
		s.Order = i
		if s.ID == "" {
			s.ID = teibun.Fingerprint(f.Name, s.Title, s.Content)
		}
	}
}
