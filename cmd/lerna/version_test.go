package main

import (
	"testing"

	"golang.org/x/mod/semver"
)

func TestToolVersion(t *testing.T) {
	old := version
	t.Cleanup(func() { version = old })

	tests := []struct {
		in   string
		want string
	}{
		{"1.2.3", "1.2.3"},
		{"v2.0.0", "2.0.0"},
		{"3.0.0-beta.1", "3.0.0-beta.1"},
		{"1.2", "1.2.0"},
		{"1.2.3+build.5", "1.2.3"},
	}
	for _, tt := range tests {
		version = tt.in
		if got := toolVersion(); got != tt.want {
			t.Errorf("toolVersion() with version=%q = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestToolVersion_invalidFallsBack(t *testing.T) {
	old := version
	t.Cleanup(func() { version = old })

	for _, in := range []string{"dev", "", "01.02.03", "1.2.3-01", "1.2.3.4", "latest"} {
		version = in
		got := toolVersion()
		if got == in {
			t.Errorf("toolVersion() with version=%q kept the invalid value", in)
		}
		if !semver.IsValid("v" + got) {
			t.Errorf("toolVersion() with version=%q = %q, want a semantic version", in, got)
		}
	}
}

func TestCanonicalVersion(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"1.2.3", "1.2.3", true},
		{"v1.2.3-rc.1+meta", "1.2.3-rc.1", true},
		{"01.02.03", "", false},
		{"1.2.3-01", "", false},
		{"(devel)", "", false},
	}
	for _, tt := range tests {
		got, ok := canonicalVersion(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("canonicalVersion(%q) = %q, %v, want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
