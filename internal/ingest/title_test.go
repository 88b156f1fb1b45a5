package ingest

import "testing"

func TestDeriveTitle(t *testing.T) {
	cases := []struct {
		filename string
		want     string
	}{
		{"intro_to_scorm.zip", "Intro To Scorm"},
		{"/tmp/uploads/safety-training.2024.zip", "Safety Training 2024"},
		{"Already Nice.zip", "Already Nice"},
		{"", "Untitled Course"},
		{"___.zip", "Untitled Course"},
	}
	for _, tc := range cases {
		if got := DeriveTitle(tc.filename); got != tc.want {
			t.Fatalf("DeriveTitle(%q) = %q, want %q", tc.filename, got, tc.want)
		}
	}
}
