// Package gamedomain maps free-text game names to canonical Nexus Mods
// game domain slugs.
package gamedomain

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Table is an immutable alias table. Build one with New or Default and pass
// it by reference; there is no package-level mutable state.
type Table struct {
	aliases map[string]string   // normalized alias -> canonical slug
	display map[string][]string // slug -> alias spellings as registered
	slugs   []string
}

// New builds a table from a slug -> alias spellings mapping. Every slug
// resolves to itself regardless of the alias list.
func New(entries map[string][]string) *Table {
	t := &Table{
		aliases: make(map[string]string),
		display: make(map[string][]string, len(entries)),
	}
	for slug, names := range entries {
		t.aliases[Normalize(slug)] = slug
		for _, n := range names {
			t.aliases[Normalize(n)] = slug
		}
		t.display[slug] = append([]string(nil), names...)
		t.slugs = append(t.slugs, slug)
	}
	sort.Strings(t.slugs)
	return t
}

// Default returns the table of game domains this tool recognizes.
// Manifests produced by third-party tools spell these many ways; the alias
// lists cover the spellings seen in the wild.
func Default() *Table {
	return New(map[string][]string{
		"skyrimspecialedition": {"Skyrim Special Edition", "SkyrimSE"},
		"skyrim":               {"Skyrim", "Skyrim Legendary Edition", "SkyrimLE"},
		"fallout4":             {"Fallout 4"},
		"oblivion":             {"Oblivion"},
		"morrowind":            {"Morrowind"},
		"starfield":            {"Starfield"},
		"cyberpunk2077":        {"Cyberpunk 2077"},
		"witcher3":             {"The Witcher 3", "The Witcher 3 Wild Hunt"},
		"baldursgate3":         {"Baldur's Gate 3", "BG3"},
		"stardewvalley":        {"Stardew Valley"},
		"valheim":              {"Valheim"},
		"mountandblade2bannerlord": {"Mount & Blade II: Bannerlord", "Bannerlord"},
	})
}

// Resolve maps a free-text game name to its canonical slug. Unknown names,
// including empty or whitespace-only input, report ok=false rather than
// passing the raw name through.
func (t *Table) Resolve(name string) (slug string, ok bool) {
	key := Normalize(name)
	if key == "" {
		return "", false
	}
	slug, ok = t.aliases[key]
	return slug, ok
}

// Slugs returns the canonical slugs in sorted order.
func (t *Table) Slugs() []string {
	return append([]string(nil), t.slugs...)
}

// Aliases returns the registered alias spellings for a slug.
func (t *Table) Aliases(slug string) []string {
	return append([]string(nil), t.display[slug]...)
}

// Normalize reduces a game name to its comparison key: lowercase, accents
// stripped, everything but letters and digits removed.
func Normalize(name string) string {
	s := strings.ToLower(name)
	s = removeAccents(s)
	s = strings.ReplaceAll(s, "&", "and")

	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func removeAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}
