package parse

import (
	"strings"
	"testing"
)

func TestFormatRoundTrip(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"S", "S"},
		{" ( K ) ", "K"},
		{"SKK", "S K K"},
		{"", "S K K"},
		{"(S K) K", "(S K) K"},
		{"S(K(S K))K", "S (K (S K)) K"},
	}
	for _, tt := range tests {
		n, err := ParseString(tt.input)
		if err != nil {
			t.Fatalf("ParseString(%q) returned error: %v", tt.input, err)
		}
		got := Format(n)
		if got != tt.want {
			t.Fatalf("Format(%q) = %q, want %q", tt.input, got, tt.want)
		}
		again, err := ParseString(got)
		if err != nil {
			t.Fatalf("ParseString(%q) returned error: %v", got, err)
		}
		if !Equal(n, again) {
			t.Fatalf("round trip of %q changed the tree", tt.input)
		}
	}
	if Format(nil) != "" {
		t.Fatalf("expected empty format for nil")
	}
}

func TestAppCollapses(t *testing.T) {
	if App() != nil {
		t.Fatalf("expected nil for empty App")
	}
	if n := App(nil, K(), nil); n.Kind != KK {
		t.Fatalf("expected single child, got %v", n.Kind)
	}
	if n := App(S(), K()); n.Kind != KApp || len(n.List) != 2 {
		t.Fatalf("expected application of 2, got %#v", n)
	}
}

func TestWalkers(t *testing.T) {
	n, err := ParseString("S (K S) K")
	if err != nil {
		t.Fatalf("ParseString returned error: %v", err)
	}
	kinds := KindsPreorder(n)
	want := []Kind{KApp, KS, KApp, KK, KS, KK}
	if len(kinds) != len(want) {
		t.Fatalf("kinds = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("kinds = %v, want %v", kinds, want)
		}
	}
	if got := Leaves(n); got != 4 {
		t.Fatalf("Leaves = %d, want 4", got)
	}
	if got := Depth(n); got != 3 {
		t.Fatalf("Depth = %d, want 3", got)
	}
	var seen int
	Walk(n, func(x *Node) bool {
		seen++
		return x.Kind != KApp || seen == 1
	})
	if seen != 3 {
		t.Fatalf("Walk visited %d nodes before stopping, want 3", seen)
	}
}

func TestDump(t *testing.T) {
	n, err := ParseString("S (K S)")
	if err != nil {
		t.Fatalf("ParseString returned error: %v", err)
	}
	got := Dump(n)
	want := strings.Join([]string{
		"- APP n=2 @1:1",
		"    - S @1:1",
		"    - APP n=2 @1:3",
		"        - K @1:4",
		"        - S @1:6",
		"",
	}, "\n")
	if got != want {
		t.Fatalf("Dump mismatch:\n%s\nwant:\n%s", got, want)
	}
	if Dump(Identity()) != "- APP n=3\n    - S\n    - K\n    - K\n" {
		t.Fatalf("unexpected dump of identity: %q", Dump(Identity()))
	}
}
