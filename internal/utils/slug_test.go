package utils

import "testing"

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Compressors":            "compressors",
		"Condenser Coils & Fans": "condenser-coils-fans",
		"  R-410A  Refrigerant ": "r-410a-refrigerant",
		"---":                    "",
	}

	for input, want := range cases {
		if got := Slugify(input); got != want {
			t.Errorf("Slugify(%q) = %q, want %q", input, got, want)
		}
	}
}
