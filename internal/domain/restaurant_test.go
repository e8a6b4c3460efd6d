package domain

import (
	"errors"
	"testing"
)

func TestParsePriceRange(t *testing.T) {
	cases := []struct {
		in      string
		want    PriceRange
		wantErr bool
	}{
		{in: "5000 - 10000", want: PriceRange{Min: 5000, Max: 10000}},
		{in: "$5.000-$10.000", want: PriceRange{Min: 5000, Max: 10000}},
		{in: "  8000  ", want: PriceRange{Min: 8000, Max: 8000}},
		{in: "", wantErr: true},
		{in: "barato", wantErr: true},
		{in: "10000 - 5000", wantErr: true},
		{in: "5000 - ", wantErr: true},
	}
	for _, tc := range cases {
		got, err := ParsePriceRange(tc.in)
		if tc.wantErr {
			if !errors.Is(err, ErrInvalidPriceRange) {
				t.Errorf("%q: want ErrInvalidPriceRange, got %v", tc.in, err)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Errorf("%q: got %+v, %v; want %+v", tc.in, got, err, tc.want)
		}
	}
}

func TestPriceRange_String(t *testing.T) {
	if s := (PriceRange{Min: 3000, Max: 8000}).String(); s != "3000 - 8000" {
		t.Fatalf("got %q", s)
	}
}

func TestHasWebsite(t *testing.T) {
	blank, site := "  ", "https://x.cl"
	if (Restaurant{}).HasWebsite() || (Restaurant{Website: &blank}).HasWebsite() {
		t.Fatal("missing or blank website must not count")
	}
	if !(Restaurant{Website: &site}).HasWebsite() {
		t.Fatal("website not detected")
	}
}

func TestParseSorts(t *testing.T) {
	if by, err := ParseCategorySort("price"); err != nil || by != CategorySortAvgPrice {
		t.Fatalf("price alias: %v %v", by, err)
	}
	if by, err := ParseCategorySort(""); err != nil || by != CategorySortName {
		t.Fatalf("default: %v %v", by, err)
	}
	if _, err := ParseCategorySort("rating"); !errors.Is(err, ErrInvalidSort) {
		t.Fatalf("want ErrInvalidSort, got %v", err)
	}
	if by, err := ParseRestaurantSort(""); err != nil || by != RestaurantSortName {
		t.Fatalf("default: %v %v", by, err)
	}
	if _, err := ParseRestaurantSort("stars"); !errors.Is(err, ErrInvalidSort) {
		t.Fatalf("want ErrInvalidSort, got %v", err)
	}
}
