package language

import "testing"

func TestToISO2(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"en", "en"},
		{"eng", "en"},
		{"English", "en"},
		{"english", "en"},
		{"FRE", "fr"},
		{"xx", "xx"},
		{"unknownlang", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := ToISO2(tc.in); got != tc.want {
			t.Errorf("ToISO2(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDisplayName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"en", "English"},
		{"ENGLISH", "English"},
		{"jpn", "Japanese"},
		{"catalan", "Catalan"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := DisplayName(tc.in); got != tc.want {
			t.Errorf("DisplayName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestRecognized(t *testing.T) {
	if !Recognized("English") {
		t.Fatal("expected English to be recognized")
	}
	if Recognized("klingon") {
		t.Fatal("expected klingon to be unrecognized")
	}
}
