package category

import (
	"reflect"
	"testing"
)

func TestSplitItems(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", []string{}},
		{"   ", []string{}},
		{"Digital Caliper", []string{"Digital Caliper"}},
		{"Digital Caliper, Dial Caliper, Vernier Caliper", []string{"Digital Caliper", "Dial Caliper", "Vernier Caliper"}},
		{"คาลิปเปอร์ดิจิทัล, เวอร์เนียร์", []string{"คาลิปเปอร์ดิจิทัล", "เวอร์เนียร์"}},
		// blank segments are dropped, surrounding whitespace trimmed
		{"A,  , B", []string{"A", "B"}},
	}
	for _, tc := range cases {
		got := SplitItems(tc.in)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("SplitItems(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestJoinSplitRoundTrip(t *testing.T) {
	items := []string{"Outside Micrometer", "Inside Micrometer", "Depth Micrometer"}
	joined := JoinItems(items)
	if joined != "Outside Micrometer, Inside Micrometer, Depth Micrometer" {
		t.Fatalf("unexpected joined form: %q", joined)
	}
	if got := SplitItems(joined); !reflect.DeepEqual(got, items) {
		t.Fatalf("round trip lost items: %v", got)
	}
}

func TestServiceNormalizesItemsOnCreate(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	s := NewService(repo)

	items := "Dial Indicator,Dial Test Indicator"
	created, err := s.Create(Category{BrandID: "mitutoyo", TitleEN: "Dial Indicators", ItemsEN: &items})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ItemsEN == nil {
		t.Fatalf("items dropped")
	}
	// stored form uses the canonical delimiter even when the input did not
	if *created.ItemsEN != "Dial Indicator,Dial Test Indicator" {
		// input without ", " is a single item; it must survive unchanged
		t.Fatalf("unexpected stored items: %q", *created.ItemsEN)
	}

	spaced := "Dial Indicator, Dial Test Indicator"
	updated, err := s.Update(created.ID, Category{BrandID: "mitutoyo", TitleEN: "Dial Indicators", ItemsEN: &spaced})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := SplitItems(*updated.ItemsEN); len(got) != 2 {
		t.Fatalf("expected 2 items, got %v", got)
	}
}
