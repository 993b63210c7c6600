package image

import (
	"strings"
	"testing"
)

func TestPlaceholdersDeterministic(t *testing.T) {
	first := Placeholders("business workspace", 3)
	second := Placeholders("business workspace", 3)

	if len(first) != 3 {
		t.Fatalf("expected 3 placeholders, got %d", len(first))
	}
	for i := range first {
		if first[i].ID != second[i].ID || first[i].URLs != second[i].URLs {
			t.Fatalf("placeholders must be deterministic: %+v vs %+v", first[i], second[i])
		}
		if first[i].Source != SourcePlaceholder {
			t.Fatalf("source = %q", first[i].Source)
		}
		if !strings.Contains(first[i].URLs.Regular, "/seed/") {
			t.Fatalf("expected seeded url, got %q", first[i].URLs.Regular)
		}
	}

	other := Placeholders("different query", 3)
	if other[0].URLs.Regular == first[0].URLs.Regular {
		t.Fatalf("different queries must yield different seeds")
	}
}

func TestPlaceholdersEmpty(t *testing.T) {
	if got := Placeholders("q", 0); got != nil {
		t.Fatalf("expected nil for zero count, got %v", got)
	}
}

func TestFingerprint(t *testing.T) {
	data := briefing()

	a := Fingerprint("modern workspace", data)
	b := Fingerprint("modern workspace", data)
	if a != b {
		t.Fatalf("fingerprint not stable: %q vs %q", a, b)
	}

	if Fingerprint("different description", data) == a {
		t.Fatalf("description must change the fingerprint")
	}

	other := data.Clone()
	other["objective"] = "✨ Inspirar pessoas"
	if Fingerprint("modern workspace", other) == a {
		t.Fatalf("objective must change the fingerprint")
	}

	// Only the first 200 bytes of the description participate.
	long := strings.Repeat("x", 300)
	if Fingerprint(long, data) != Fingerprint(long[:200]+"suffix", data) {
		t.Fatalf("fingerprint must ignore description beyond the cap")
	}
}
