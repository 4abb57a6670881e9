package daftar

import "testing"

func TestParseAmount(t *testing.T) {
	testCases := []struct {
		text string
		want string
	}{
		{"100", "100"},
		{"3.5", "3.5"},
		{"-20", "-20"},
		{" 42 ", "42"},
		{"", "0"},
		{"   ", "0"},
		{"abc", "0"},
		{"12three", "0"},
	}
	for _, tc := range testCases {
		if got := ParseAmount(tc.text); !got.Equal(dec(tc.want)) {
			t.Errorf("ParseAmount(%q) = %s, want %s", tc.text, got, tc.want)
		}
	}
}
