package layout

// Table is the two-level part -> region lookup of a background.
//
// The rectangles are fixed at construction. Changing the include-margins flag
// only reassigns the four alias fields of each part.
type Table struct {
	Geometry *Geometry

	Full   Regions
	Header Regions
	Body   Regions

	include bool
}

// NewTable builds the region table for g with margins included.
func NewTable(g *Geometry) *Table {
	header := areaRegions(g.HeaderRect(), g.Header)
	body := areaRegions(g.BodyRect(), g.Body)

	t := &Table{
		Geometry: g,
		Full:     fullRegions(g, header, body),
		Header:   header,
		Body:     body,
	}
	t.SetIncludeMargins(true)
	return t
}

// IncludeMargins reports whether the side aliases point at the inclusive bands.
func (t *Table) IncludeMargins() bool {
	return t.include
}

// SetIncludeMargins sets the flag and rebinds the aliases of every part.
func (t *Table) SetIncludeMargins(include bool) {
	t.include = include
	t.Full.bind(include)
	t.Header.bind(include)
	t.Body.bind(include)
}

// Toggle flips the flag and returns the new value.
func (t *Table) Toggle() bool {
	t.SetIncludeMargins(!t.include)
	return t.include
}

// Refresh rebinds the aliases for the current flag. It never changes the flag
// or any rectangle.
func (t *Table) Refresh() {
	t.SetIncludeMargins(t.include)
	t.SetIncludeMargins(t.include)
}

// Part returns the record of p.
func (t *Table) Part(p Part) (*Regions, bool) {
	switch p {
	case PartFull:
		return &t.Full, true
	case PartHeader:
		return &t.Header, true
	case PartBody:
		return &t.Body, true
	}
	return nil, false
}

// Lookup returns the region (p, name) without any fallback.
func (t *Table) Lookup(p Part, name string) (Region, bool) {
	regions, ok := t.Part(p)
	if !ok {
		return Region{}, false
	}
	return regions.Lookup(name)
}

// Resolution is the outcome of Resolve.
type Resolution struct {
	Part   Part
	Region string

	// UnknownPart and UnknownRegion report that the requested name was not
	// recognised and "full" was substituted.
	UnknownPart   bool
	UnknownRegion bool
}

// Degraded reports whether any substitution happened.
func (r Resolution) Degraded() bool {
	return r.UnknownPart || r.UnknownRegion
}

// Resolve validates a (part, region) pair. Unknown names fall back to "full";
// Resolve never fails. The alias bindings are refreshed first.
func (t *Table) Resolve(part, region string) Resolution {
	t.Refresh()

	res := Resolution{Part: Part(part), Region: region}
	regions, ok := t.Part(res.Part)
	if !ok {
		res.Part = PartFull
		res.UnknownPart = true
		regions = &t.Full
	}
	if _, ok := regions.Lookup(region); !ok {
		res.Region = RegionFull
		res.UnknownRegion = true
	}
	return res
}

// Region returns the rectangle for a resolution.
func (t *Table) Region(res Resolution) Region {
	r, _ := t.Lookup(res.Part, res.Region)
	return r
}

// Entry is one row of the table listing.
type Entry struct {
	Part   Part   `json:"part"`
	Name   string `json:"name"`
	Region Region `json:"region"`
}

// Entries lists every (part, region) pair in table order.
func (t *Table) Entries() []Entry {
	entries := make([]Entry, 0, len(Parts)*len(RegionNames))
	for _, p := range Parts {
		regions, _ := t.Part(p)
		for _, name := range RegionNames {
			r, _ := regions.Lookup(name)
			entries = append(entries, Entry{Part: p, Name: name, Region: r})
		}
	}
	return entries
}
