package curation

// Catalog is the final ordered title list plus title→text mapping.
// Priority entries always precede "other" entries; within each bucket
// insertion order is preserved.
type Catalog struct {
	OrderedTitles []string
	TextByTitle   map[string]string
}

// Build merges classified entries into a Catalog. Titles were deduplicated
// during the scan, so no key collisions are expected.
func Build(priority, other []Entry) Catalog {
	catalog := Catalog{
		OrderedTitles: make([]string, 0, len(priority)+len(other)),
		TextByTitle:   make(map[string]string, len(priority)+len(other)),
	}

	for _, e := range priority {
		catalog.OrderedTitles = append(catalog.OrderedTitles, e.Title)
		catalog.TextByTitle[e.Title] = e.Text
	}
	for _, e := range other {
		catalog.OrderedTitles = append(catalog.OrderedTitles, e.Title)
		catalog.TextByTitle[e.Title] = e.Text
	}

	return catalog
}
