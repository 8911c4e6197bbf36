package orgparse

import (
	"slices"
	"testing"
)

func TestIsPackageLine(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"+ foo", true},
		{"- foo", true},
		{"   - thunderbird", true},
		{"\t+ pkg {Debian}", true},
		{"+ _underscore", true},
		{"+ 7zip", true},
		{"", false},
		{"   ", false},
		{"* System relevant packages", false},
		{"** general", false},
		{"# + foo commented out", false},
		{"The following packages I always want", false},
		{"+foo", false},
		{"-foo", false},
		{"+ ", false},
		{"+  {Debian}", false},
		{"-- foo", false},
		{"+ -foo", false},
		{"a + b", false},
	}
	for _, tt := range tests {
		if got := IsPackageLine(tt.line); got != tt.want {
			t.Errorf("IsPackageLine(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestSplitPackageLine(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{"+ foo", []string{"foo"}},
		{"  - foo-two  ", []string{"foo-two"}},
		{"+ name1 {p1:r1:t1,t2}, name2", []string{"name1 {p1:r1:t1,t2}", "name2"}},
		{"+ baz, baz-alternative {distro1} :: for distro1 baz is missing", []string{"baz", "baz-alternative {distro1}"}},
		{"+ apache {::server} :: only on a server", []string{"apache {::server}"}},
		{"+ office-app-x {::desktop,laptop}", []string{"office-app-x {::desktop,laptop}"}},
		{"+ a {D::x}, b {::y,z}, c :: comment, with commas {and braces}", []string{"a {D::x}", "b {::y,z}", "c"}},
		{"- pkg::comment glued to the name", []string{"pkg"}},
		{"+ a,b,c", []string{"a", "b", "c"}},
		{"+ a, , b", []string{"a", "", "b"}},
	}
	for _, tt := range tests {
		if got := SplitPackageLine(tt.line); !slices.Equal(got, tt.want) {
			t.Errorf("SplitPackageLine(%q) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestSplitPackageLineUnclosedBraceKeepsRest(t *testing.T) {
	got := SplitPackageLine("+ a {D:1, b :: text")
	want := []string{"a {D:1, b :: text"}
	if !slices.Equal(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if _, err := ParseEntry(got[0]); err == nil {
		t.Fatal("expected unclosed brace to be malformed")
	}
}
