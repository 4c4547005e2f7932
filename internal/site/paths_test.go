package site

import "testing"

func TestPageBucket(t *testing.T) {
	cases := []struct {
		safeName string
		want     string
	}{
		{"Long_Sword", "L"},
		{"armor", "A"},
		{"2009_Patch", "0-9"},
		{"_odd", "0-9"},
		{"", "0-9"},
	}
	for _, tc := range cases {
		if got := PageBucket(tc.safeName); got != tc.want {
			t.Errorf("PageBucket(%q) = %q, want %q", tc.safeName, got, tc.want)
		}
	}
}

func TestPageURL(t *testing.T) {
	if got := PageURL("Long_Sword"); got != "pages/L/Long_Sword.html" {
		t.Errorf("got %q", got)
	}
}

func TestAssetPrefix(t *testing.T) {
	cases := []struct {
		rel  string
		want string
	}{
		{"index.html", ""},
		{"categories/Category_Weapons.html", "../"},
		{"pages/L/Long_Sword.html", "../../"},
	}
	for _, tc := range cases {
		if got := AssetPrefix(tc.rel); got != tc.want {
			t.Errorf("AssetPrefix(%q) = %q, want %q", tc.rel, got, tc.want)
		}
	}
}
