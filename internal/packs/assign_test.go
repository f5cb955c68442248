package packs

import "testing"

func TestHashName_NonNegative(t *testing.T) {
	t.Parallel()

	names := []string{"", "a", "alice", "Bob Smith", "参加者", "zzzzzzzzzzzzzzzz", "user_42"}
	for _, name := range names {
		if h := HashName(name); h < 0 {
			t.Errorf("HashName(%q) = %d, want non-negative", name, h)
		}
	}
}

func TestHashName_Deterministic(t *testing.T) {
	t.Parallel()

	if HashName("alice") != HashName("alice") {
		t.Error("HashName not stable across calls")
	}
	// Known value: "ab" -> 'a'*31 + 'b' = 97*31 + 98 = 3105.
	if h := HashName("ab"); h != 3105 {
		t.Errorf("HashName(\"ab\") = %d, want 3105", h)
	}
}

func TestPickPackForName(t *testing.T) {
	t.Parallel()

	manifest := []string{"packs/user_01", "packs/user_02", "packs/user_03"}

	tests := []struct {
		name     string
		manifest []string
		fallback string
		want     string
	}{
		{"alice", manifest, "", manifest[HashName("alice")%3]},
		{"alice", nil, "custom_set", "custom_set"},
		{"alice", nil, "", DefaultQuestionSet},
		{"alice", []string{"only"}, "", "only"},
	}
	for _, tt := range tests {
		if got := PickPackForName(tt.name, tt.manifest, tt.fallback); got != tt.want {
			t.Errorf("PickPackForName(%q, %v, %q) = %q, want %q",
				tt.name, tt.manifest, tt.fallback, got, tt.want)
		}
	}
}

func TestPickPackForName_StableAcrossCalls(t *testing.T) {
	t.Parallel()

	manifest := []string{"packs/a", "packs/b", "packs/c", "packs/d"}
	for _, name := range []string{"alice", "bob", "carol", "dave"} {
		first := PickPackForName(name, manifest, "")
		for i := 0; i < 10; i++ {
			if got := PickPackForName(name, manifest, ""); got != first {
				t.Fatalf("PickPackForName(%q) flapped: %q then %q", name, first, got)
			}
		}
	}
}

func TestPickPackForName_IndexInRange(t *testing.T) {
	t.Parallel()

	manifest := []string{"p0", "p1", "p2", "p3", "p4"}
	names := []string{"", "x", "alice smith", "участник", "name-with-dashes", "UPPER"}
	for _, name := range names {
		got := PickPackForName(name, manifest, "")
		found := false
		for _, p := range manifest {
			if got == p {
				found = true
			}
		}
		if !found {
			t.Errorf("PickPackForName(%q) = %q, not in manifest", name, got)
		}
	}
}
