package interchange

import "github.com/kosuda/teibun"

// ImportPersonal merges a personal-export document into an existing catalog.
// Every imported snippet is re-created as a personal entry with a fresh
// random ID (never a fingerprint), so importing the same export twice keeps
// both copies, matching how personal snippets behave everywhere else.
// Same-named personal folders are merged; empty folders in the export are
// dropped.
func ImportPersonal(existing teibun.Catalog, data []byte, gen teibun.IDGenerator, clock teibun.Clock) teibun.Catalog {
	out := existing.Clone()
	for _, f := range Decode(data) {
		for _, s := range f.Snippets {
			out, _ = out.AddPersonal(f.Name, s.Title, s.Content, s.Description, gen, clock)
		}
	}
	return out
}
