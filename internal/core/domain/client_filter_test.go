package domain

import "testing"

func sampleClients() []Client {
	return []Client{
		{ID: "c1", FirstName: "Maria", LastName: "Garcia", Email: "maria@example.com", Segment: SegmentVIP},
		{ID: "c2", FirstName: "John", LastName: "Smith", Email: "john.smith@example.com", Segment: SegmentAtRisk},
		{ID: "c3", FirstName: "Ana", LastName: "Martinez", Email: "ana@example.com", Segment: SegmentVIP},
		{ID: "c4", FirstName: "Lucia", LastName: "Lopez", Email: "lucia@example.com", Segment: SegmentNew},
	}
}

func TestFilterClients_NoFilters(t *testing.T) {
	clients := sampleClients()
	got := FilterClients(clients, "", "")
	if len(got) != len(clients) {
		t.Fatalf("expected %d clients, got %d", len(clients), len(got))
	}
	for i := range clients {
		if got[i].ID != clients[i].ID {
			t.Fatalf("order changed at %d: %s != %s", i, got[i].ID, clients[i].ID)
		}
	}
}

func TestFilterClients_QueryCaseInsensitive(t *testing.T) {
	cases := []struct {
		query string
		want  []string
	}{
		{"maria", []string{"c1"}},
		{"MARIA", []string{"c1"}},
		{"mar", []string{"c1", "c3"}}, // maria + martinez
		{"smith@", []string{"c2"}},    // email match
		{"zzz", nil},
	}

	for _, tc := range cases {
		got := FilterClients(sampleClients(), tc.query, "")
		if len(got) != len(tc.want) {
			t.Fatalf("query %q: expected %d matches, got %d", tc.query, len(tc.want), len(got))
		}
		for i, id := range tc.want {
			if got[i].ID != id {
				t.Fatalf("query %q: expected %s at %d, got %s", tc.query, id, i, got[i].ID)
			}
		}
	}
}

func TestFilterClients_SegmentExact(t *testing.T) {
	got := FilterClients(sampleClients(), "", SegmentVIP)
	if len(got) != 2 {
		t.Fatalf("expected 2 VIP clients, got %d", len(got))
	}
	for _, c := range got {
		if c.Segment != SegmentVIP {
			t.Fatalf("non-VIP client %s in result", c.ID)
		}
	}
}

func TestFilterClients_SegmentNoMatch(t *testing.T) {
	got := FilterClients(sampleClients(), "", SegmentLapsed)
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %d clients", len(got))
	}
}

func TestFilterClients_QueryAndSegmentCombine(t *testing.T) {
	// "mar" matches c1 and c3; the VIP segment keeps both, At-Risk neither.
	got := FilterClients(sampleClients(), "mar", SegmentVIP)
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}
	got = FilterClients(sampleClients(), "mar", SegmentAtRisk)
	if len(got) != 0 {
		t.Fatalf("expected 0 matches, got %d", len(got))
	}
}

func TestFilterClients_InputNotMutated(t *testing.T) {
	clients := sampleClients()
	_ = FilterClients(clients, "maria", SegmentVIP)
	want := sampleClients()
	for i := range want {
		if clients[i].ID != want[i].ID {
			t.Fatalf("input slice mutated at %d", i)
		}
	}
}

func TestToggleSegment(t *testing.T) {
	if got := ToggleSegment(SegmentVIP, SegmentVIP); got != "" {
		t.Fatalf("re-selecting active segment should clear, got %q", got)
	}
	if got := ToggleSegment(SegmentVIP, SegmentAtRisk); got != SegmentAtRisk {
		t.Fatalf("expected %q, got %q", SegmentAtRisk, got)
	}
	if got := ToggleSegment("", SegmentNew); got != SegmentNew {
		t.Fatalf("expected %q, got %q", SegmentNew, got)
	}
}

func TestDistinctSegments_CanonicalOrder(t *testing.T) {
	clients := []Client{
		{ID: "a", Segment: SegmentNew},
		{ID: "b", Segment: SegmentVIP},
		{ID: "c", Segment: SegmentNew},
		{ID: "d", Segment: SegmentAtRisk},
	}
	got := DistinctSegments(clients)
	want := []Segment{SegmentVIP, SegmentAtRisk, SegmentNew}
	if len(got) != len(want) {
		t.Fatalf("expected %d segments, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %q at %d, got %q", want[i], i, got[i])
		}
	}
}

func TestDistinctSegments_UnknownSegmentStillListed(t *testing.T) {
	clients := []Client{
		{ID: "a", Segment: Segment("Experimental")},
		{ID: "b", Segment: SegmentVIP},
	}
	got := DistinctSegments(clients)
	if len(got) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(got))
	}
	found := false
	for _, s := range got {
		if s == Segment("Experimental") {
			found = true
		}
	}
	if !found {
		t.Fatalf("unknown segment missing from %v", got)
	}
}

func TestSegmentColor_FallbackForUnknown(t *testing.T) {
	if SegmentVIP.Color() == SegmentFallbackColor {
		t.Fatalf("known segment should have its own color")
	}
	if got := Segment("Mystery").Color(); got != SegmentFallbackColor {
		t.Fatalf("expected fallback color, got %q", got)
	}
}
