package workflow

import "testing"

func TestRetitleForProductCount(t *testing.T) {
	cases := []struct {
		title string
		count int
		want  string
	}{
		{"5 Melhores Air Fryers", 3, "3 Melhores Air Fryers"},
		{"Melhores Air Fryers", 5, "5 Melhores Air Fryers"},
		{"5 Melhores Air Fryers", 0, "Melhores Air Fryers"},
		{"10   Fryers", 2, "2 Fryers"},
	}
	for _, tc := range cases {
		if got := RetitleForProductCount(tc.title, tc.count); got != tc.want {
			t.Fatalf("RetitleForProductCount(%q, %d) = %q, want %q", tc.title, tc.count, got, tc.want)
		}
	}
}

func TestTitleWithoutCountPrefix(t *testing.T) {
	if got := TitleWithoutCountPrefix("5 Melhores Air Fryers"); got != "Melhores Air Fryers" {
		t.Fatalf("got %q", got)
	}
	if got := TitleWithoutCountPrefix("No prefix here"); got != "No prefix here" {
		t.Fatalf("got %q", got)
	}
}
