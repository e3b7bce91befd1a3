package domain

import "strings"

// FilterClients returns the subsequence of clients matching the given search
// query and segment. The query matches case-insensitively as a substring of
// first name, last name, or email. An empty query and empty segment return
// the input unchanged. The projection is pure: the input slice is never
// mutated.
func FilterClients(clients []Client, query string, segment Segment) []Client {
	if query == "" && segment == "" {
		return clients
	}

	q := strings.ToLower(query)
	out := make([]Client, 0, len(clients))
	for _, c := range clients {
		if q != "" && !matchesQuery(c, q) {
			continue
		}
		if segment != "" && c.Segment != segment {
			continue
		}
		out = append(out, c)
	}
	return out
}

func matchesQuery(c Client, q string) bool {
	return strings.Contains(strings.ToLower(c.FirstName), q) ||
		strings.Contains(strings.ToLower(c.LastName), q) ||
		strings.Contains(strings.ToLower(c.Email), q)
}

// ToggleSegment implements the segment-tag toggle: selecting the active
// segment again clears the filter.
func ToggleSegment(active, selected Segment) Segment {
	if active == selected {
		return ""
	}
	return selected
}

// DistinctSegments returns the segments present in the list, in canonical
// display order.
func DistinctSegments(clients []Client) []Segment {
	present := make(map[Segment]bool, len(clients))
	for _, c := range clients {
		if c.Segment != "" {
			present[c.Segment] = true
		}
	}

	out := make([]Segment, 0, len(present))
	for _, s := range Segments {
		if present[s] {
			out = append(out, s)
		}
	}
	// Segments the palette does not know about still get a tag.
	for s := range present {
		if _, known := SegmentPalette[s]; !known {
			out = append(out, s)
		}
	}
	return out
}
