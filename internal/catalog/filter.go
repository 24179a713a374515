package catalog

// EntryFilter specifies criteria for listing entries.
// Nil fields are not filtered on. Results are always ordered by ID.
type EntryFilter struct {
	Type    *MediaType
	Watched *bool
	Owned   *bool
}

// FilterByType returns the entries of media type t, preserving order.
// An empty t keeps every entry.
func FilterByType(entries []*Entry, t MediaType) []*Entry {
	out := make([]*Entry, 0, len(entries))
	if t == "" {
		return append(out, entries...)
	}
	for _, e := range entries {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}
