// Package manifest extracts download-source descriptors from modlist
// manifest files. Manifests have no fixed schema: archive descriptors may be
// nested arbitrarily inside dependency lists, so extraction walks the whole
// tree and matches node shapes instead of assuming a layout.
package manifest

import (
	"encoding/json"
	"strings"
)

// RawDescriptor is an untyped candidate node pulled from the manifest tree.
// GameName is free text and the IDs keep their source representation
// (json.Number or string); validation and coercion happen downstream.
type RawDescriptor struct {
	GameName string
	ModID    any
	FileID   any
	Name     string
}

// Recognized key spellings, compared after normalizeKey.
var (
	domainKeys = map[string]bool{"gamename": true, "gamedomain": true, "game": true, "domain": true}
	modKeys    = map[string]bool{"modid": true}
	fileKeys   = map[string]bool{"fileid": true}
	nameKeys   = map[string]bool{"name": true, "label": true}
)

// Extract walks the manifest tree depth-first in document order and collects
// every node that looks like a download-source descriptor. Qualifying nodes
// are emitted independently and never merged with siblings; deduplication is
// the normalizer's job.
func Extract(root any) []RawDescriptor {
	var out []RawDescriptor
	walk(root, "", &out)
	return out
}

func walk(v any, label string, out *[]RawDescriptor) {
	switch v := v.(type) {
	case *Object:
		if d, ok := descriptor(v, label); ok {
			*out = append(*out, d)
		}
		// Wabbajack keeps the archive name on the parent and the IDs on a
		// nested State object, so a node's name becomes the fallback label
		// for its subtree.
		if n, ok := nameOf(v); ok {
			label = n
		}
		for _, k := range v.Keys() {
			child, _ := v.Get(k)
			walk(child, label, out)
		}
	case []any:
		for _, e := range v {
			walk(e, label, out)
		}
	}
}

// descriptor reports whether the object qualifies as a RawDescriptor: it
// must carry a game-domain key, a mod-id key and a file-id key under some
// recognized spelling. Anything else is skipped, not fatal.
func descriptor(o *Object, inherited string) (RawDescriptor, bool) {
	game, ok := stringMember(o, domainKeys)
	if !ok {
		return RawDescriptor{}, false
	}
	modID, ok := scalarMember(o, modKeys)
	if !ok {
		return RawDescriptor{}, false
	}
	fileID, ok := scalarMember(o, fileKeys)
	if !ok {
		return RawDescriptor{}, false
	}

	name := inherited
	if n, ok := nameOf(o); ok {
		name = n
	}

	return RawDescriptor{
		GameName: game,
		ModID:    modID,
		FileID:   fileID,
		Name:     name,
	}, true
}

func nameOf(o *Object) (string, bool) {
	return stringMember(o, nameKeys)
}

// stringMember finds the first member in document order whose normalized key
// is in the set and whose value is a string.
func stringMember(o *Object, keys map[string]bool) (string, bool) {
	for _, k := range o.Keys() {
		if !keys[normalizeKey(k)] {
			continue
		}
		if s, ok := mustGet(o, k).(string); ok {
			return s, true
		}
	}
	return "", false
}

// scalarMember is like stringMember but accepts numbers as well, since IDs
// appear both as integers and as numeric strings in the wild.
func scalarMember(o *Object, keys map[string]bool) (any, bool) {
	for _, k := range o.Keys() {
		if !keys[normalizeKey(k)] {
			continue
		}
		switch v := mustGet(o, k).(type) {
		case string:
			return v, true
		default:
			if isNumber(v) {
				return v, true
			}
		}
	}
	return nil, false
}

func mustGet(o *Object, key string) any {
	v, _ := o.Get(key)
	return v
}

func isNumber(v any) bool {
	switch v.(type) {
	case json.Number, int, int64, float64:
		return true
	}
	return false
}

// normalizeKey lowercases a key and strips separators so spellings like
// "mod_id", "ModID" and "modId" all compare equal.
func normalizeKey(k string) string {
	k = strings.ToLower(k)
	k = strings.ReplaceAll(k, "_", "")
	k = strings.ReplaceAll(k, "-", "")
	return k
}
