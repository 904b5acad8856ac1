package gamedomain

import (
	"testing"
)

func TestResolve_Aliases(t *testing.T) {
	table := Default()

	cases := []struct {
		name string
		want string
	}{
		{"Skyrim Special Edition", "skyrimspecialedition"},
		{"SkyrimSE", "skyrimspecialedition"},
		{"skyrimspecialedition", "skyrimspecialedition"},
		{"SKYRIMSE", "skyrimspecialedition"},
		{"Skyrim", "skyrim"},
		{"Skyrim Legendary Edition", "skyrim"},
		{"Fallout 4", "fallout4"},
		{"fallout4", "fallout4"},
		{"Baldur's Gate 3", "baldursgate3"},
		{"Mount & Blade II: Bannerlord", "mountandblade2bannerlord"},
	}

	for _, tc := range cases {
		got, ok := table.Resolve(tc.name)
		if !ok {
			t.Errorf("Resolve(%q): not found", tc.name)
			continue
		}
		if got != tc.want {
			t.Errorf("Resolve(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestResolve_Unknown(t *testing.T) {
	table := Default()

	for _, name := range []string{"FalloutNV", "MadeUpGame", "", "   "} {
		if slug, ok := table.Resolve(name); ok {
			t.Errorf("Resolve(%q) = %q, want not found", name, slug)
		}
	}
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Skyrim Special Edition", "skyrimspecialedition"},
		{"Baldur's Gate 3", "baldursgate3"},
		{"Mount & Blade II: Bannerlord", "mountandbladeiibannerlord"},
		{"Léon", "leon"},
		{"  ", ""},
	}
	for _, tc := range cases {
		if got := Normalize(tc.in); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSuggest(t *testing.T) {
	table := Default()

	// Typo of a known slug should suggest the slug.
	slug, ok := table.Suggest("skyrimspecialedtion")
	if !ok || slug != "skyrimspecialedition" {
		t.Errorf("Suggest(typo) = %q, %v; want skyrimspecialedition", slug, ok)
	}

	// Garbage should not produce a suggestion.
	if slug, ok := table.Suggest("zzzzqqqq"); ok {
		t.Errorf("Suggest(garbage) = %q, want no suggestion", slug)
	}

	if _, ok := table.Suggest(""); ok {
		t.Error("Suggest(empty) should not suggest")
	}
}

func TestSuggest_TieBreakIsStable(t *testing.T) {
	// "aaab" and "aaac" score identically against "aaad"; the lexically
	// first alias must win, and repeated calls must agree.
	table := New(map[string][]string{
		"gamex": {"aaab"},
		"gamey": {"aaac"},
	})

	first, ok := table.Suggest("aaad")
	if !ok {
		t.Fatal("Suggest should find a candidate")
	}
	if first != "gamex" {
		t.Errorf("Suggest = %q, want gamex (alias %q sorts first)", first, "aaab")
	}
	for i := 0; i < 20; i++ {
		got, ok := table.Suggest("aaad")
		if !ok || got != first {
			t.Fatalf("Suggest varied across calls: %q then %q", first, got)
		}
	}
}

func TestTableIsolation(t *testing.T) {
	table := New(map[string][]string{"skyrim": {"Skyrim"}})

	slugs := table.Slugs()
	slugs[0] = "mutated"
	if got, _ := table.Resolve("Skyrim"); got != "skyrim" {
		t.Errorf("table mutated through Slugs(): %q", got)
	}

	aliases := table.Aliases("skyrim")
	if len(aliases) != 1 || aliases[0] != "Skyrim" {
		t.Fatalf("Aliases = %v", aliases)
	}
	aliases[0] = "mutated"
	if got := table.Aliases("skyrim")[0]; got != "Skyrim" {
		t.Errorf("table mutated through Aliases(): %q", got)
	}
}
