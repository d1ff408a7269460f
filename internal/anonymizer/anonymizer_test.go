package anonymizer

import "testing"

func TestParticipantIDs(t *testing.T) {
	a := New(true)

	if got := a.Resolve("John"); got != "P1" {
		t.Errorf("first speaker = %v, want P1", got)
	}
	if got := a.Resolve("Sarah"); got != "P2" {
		t.Errorf("second speaker = %v, want P2", got)
	}

	// Labels follow first-seen order, not alphabetical.
	b := New(true)
	if got := b.Resolve("Zoe"); got != "P1" {
		t.Errorf("Zoe = %v, want P1", got)
	}
	if got := b.Resolve("Adam"); got != "P2" {
		t.Errorf("Adam = %v, want P2", got)
	}
}

func TestInitials(t *testing.T) {
	tests := []struct {
		name    string
		speaker string
		want    string
	}{
		{"single token", "Madonna", "M1"},
		{"two tokens", "John Smith", "JS"},
		{"three tokens", "Anna Maria Verdi", "AV"},
		{"lowercase input", "jane doe", "JD"},
		{"extra whitespace", "  John   Smith  ", "JS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New(false)
			if got := a.Resolve(tt.speaker); got != tt.want {
				t.Errorf("Resolve(%q) = %v, want %v", tt.speaker, got, tt.want)
			}
		})
	}
}

func TestInitialsCollision(t *testing.T) {
	a := New(false)

	if got := a.Resolve("John Smith"); got != "JS" {
		t.Errorf("John Smith = %v, want JS", got)
	}
	if got := a.Resolve("Jane Smith"); got != "JS2" {
		t.Errorf("Jane Smith = %v, want JS2", got)
	}
	if got := a.Resolve("Jim Smyth"); got != "JS3" {
		t.Errorf("Jim Smyth = %v, want JS3", got)
	}
}

func TestIdempotent(t *testing.T) {
	for _, useIDs := range []bool{true, false} {
		a := New(useIDs)
		first := a.Resolve("John Smith")
		a.Resolve("Sarah Jones")
		second := a.Resolve("John Smith")
		if first != second {
			t.Errorf("useIDs=%v: Resolve not idempotent: %v != %v", useIDs, first, second)
		}
	}
}

func TestBijection(t *testing.T) {
	speakers := []string{
		"John Smith", "Jane Smith", "Jim Smyth", "Jo Small",
		"Madonna", "Maria", "Anna Maria Verdi", "Ada Verdi",
	}

	for _, useIDs := range []bool{true, false} {
		a := New(useIDs)
		for _, s := range speakers {
			a.Resolve(s)
		}

		seen := make(map[string]string)
		for original, label := range a.Mapping() {
			if prev, ok := seen[label]; ok {
				t.Errorf("useIDs=%v: label %q assigned to both %q and %q", useIDs, label, prev, original)
			}
			seen[label] = original
		}
		if len(seen) != len(speakers) {
			t.Errorf("useIDs=%v: %d labels for %d speakers", useIDs, len(seen), len(speakers))
		}
	}
}

func TestEmptyName(t *testing.T) {
	a := New(false)
	if got := a.Resolve(""); got != "" {
		t.Errorf("Resolve(\"\") = %q, want empty", got)
	}
	if len(a.Mapping()) != 0 {
		t.Error("empty name must not enter the mapping")
	}
}
