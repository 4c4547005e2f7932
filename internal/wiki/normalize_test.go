package wiki

import "testing"

func TestToSafeName(t *testing.T) {
	cases := []struct {
		name  string
		title string
		want  string
	}{
		{"plain", "Long Sword", "Long_Sword"},
		{"keeps safe chars", "Armor-Set_01", "Armor-Set_01"},
		{"collapses runs", "A / B :: C", "A_B_C"},
		{"trims underscores", "  ?Quests?  ", "Quests"},
		{"namespace colon", "Category:Weapons", "Category_Weapons"},
		{"empty falls back", "///", "page"},
		{"blank falls back", "", "page"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ToSafeName(tc.title); got != tc.want {
				t.Errorf("ToSafeName(%q) = %q, want %q", tc.title, got, tc.want)
			}
		})
	}
}

func TestToSafeNameUnicodeNormalization(t *testing.T) {
	// e + combining acute vs precomposed é must map to the same name.
	composed := "Café"
	decomposed := "Café"
	if ToSafeName(composed) != ToSafeName(decomposed) {
		t.Errorf("NFC variants diverge: %q vs %q", ToSafeName(composed), ToSafeName(decomposed))
	}
}

func TestNormalizeCategoryName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Category:Weapons", "Weapons"},
		{"Category: Weapons ", "Weapons"},
		{"Weapons", "Weapons"},
		{"  Weapons  ", "Weapons"},
		// Prefix match is exact and case-sensitive.
		{"category:Weapons", "category:Weapons"},
		{"Category:", ""},
	}
	for _, tc := range cases {
		if got := NormalizeCategoryName(tc.in); got != tc.want {
			t.Errorf("NormalizeCategoryName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCategoryOutputFilename(t *testing.T) {
	if got := CategoryOutputFilename("Weapons"); got != "Category_Weapons.html" {
		t.Errorf("got %q", got)
	}
	if got := CategoryOutputFilename("Mob item drops"); got != "Category_Mob_item_drops.html" {
		t.Errorf("got %q", got)
	}
}
