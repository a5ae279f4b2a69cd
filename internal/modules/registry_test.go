package modules

import "testing"

func TestResolveKnown(t *testing.T) {
	tests := []struct {
		id          string
		displayName string
		locator     string
	}{
		{"javascript", "JavaScript", "JavaScript"},
		{"typescript", "TypeScript", "TypeScript"},
		{"react", "React", "React"},
		{"github", "GitHub", "GitHub"},
		{"dsa", "DSA", "DSA"},
		{"tailwind", "Tailwind", "Tailwind"},
		{"networking-linux", "Networking & Linux", "Networking-Linux"},
		{"node-express", "Node & Express", "Node-Express"},
		{"sql", "SQL", "SQL"},
	}

	for _, tt := range tests {
		m := Resolve(tt.id)
		if m.DisplayName != tt.displayName {
			t.Errorf("Resolve(%q).DisplayName = %q, want %q", tt.id, m.DisplayName, tt.displayName)
		}
		if m.Locator != tt.locator {
			t.Errorf("Resolve(%q).Locator = %q, want %q", tt.id, m.Locator, tt.locator)
		}
		if m.DisplayName == "" || m.Locator == "" {
			t.Errorf("Resolve(%q) returned empty fields", tt.id)
		}
	}
}

func TestResolveUnknownFallsBackVerbatim(t *testing.T) {
	m := Resolve("unknown-module")
	if m.DisplayName != "unknown-module" {
		t.Errorf("DisplayName = %q, want verbatim identifier", m.DisplayName)
	}
	if m.Locator != "unknown-module" {
		t.Errorf("Locator = %q, want verbatim identifier", m.Locator)
	}
	if Known("unknown-module") {
		t.Error("Known(unknown-module) = true, want false")
	}
}

func TestAllSortedAndComplete(t *testing.T) {
	mods := All()
	if len(mods) != len(known) {
		t.Fatalf("All() returned %d modules, want %d", len(mods), len(known))
	}
	for i := 1; i < len(mods); i++ {
		if mods[i-1].ID >= mods[i].ID {
			t.Errorf("All() not sorted: %q before %q", mods[i-1].ID, mods[i].ID)
		}
	}
}

func TestMatch(t *testing.T) {
	mods, err := Match("n*")
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	want := []string{"networking-linux", "node-express"}
	if len(mods) != len(want) {
		t.Fatalf("Match(n*) returned %d modules, want %d", len(mods), len(want))
	}
	for i, m := range mods {
		if m.ID != want[i] {
			t.Errorf("Match(n*)[%d] = %q, want %q", i, m.ID, want[i])
		}
	}

	all, err := Match("")
	if err != nil {
		t.Fatalf("Match empty: %v", err)
	}
	if len(all) != len(known) {
		t.Errorf("Match(\"\") returned %d modules, want all %d", len(all), len(known))
	}

	if _, err := Match("["); err == nil {
		t.Error("Match with malformed pattern should error")
	}
}
