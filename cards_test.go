package subgame

import (
	"reflect"
	"testing"
)

func TestBucketHoleCards(t *testing.T) {
	cases := []struct {
		cards []string
		want  string
	}{
		{nil, "unknown"},
		{[]string{"Ah"}, "unknown"},
		{[]string{"Ah", "Ad"}, "pair-A"},
		{[]string{"7c", "7s"}, "pair-7"},
		{[]string{"Kh", "Ah"}, "AhKhs"},
		{[]string{"Kd", "Ah"}, "AhKdo"},
		{[]string{"Ts", "9s"}, "9sTss"},
	}

	for _, tc := range cases {
		if got := BucketHoleCards(tc.cards); got != tc.want {
			t.Errorf("%v: expected %q, got %q", tc.cards, tc.want, got)
		}
	}
}

func TestBucketHoleCards_DoesNotMutateInput(t *testing.T) {
	cards := []string{"Kh", "Ah"}
	BucketHoleCards(cards)
	if cards[0] != "Kh" || cards[1] != "Ah" {
		t.Errorf("input was reordered: %v", cards)
	}
}

func TestValidHoleCards(t *testing.T) {
	got := ValidHoleCards([]string{"Ah", "Xx", "Ah", "Td", "10h", "", "2c"})
	want := []string{"Ah", "Td", "2c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	if got := ValidHoleCards(nil); len(got) != 0 {
		t.Errorf("expected no cards, got %v", got)
	}
}
