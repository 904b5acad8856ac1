package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const wabbajackDoc = `{
  "Name": "Example List",
  "Archives": [
    {
      "Hash": "abc=",
      "Name": "SkyrimSE Patch.7z",
      "State": {
        "$type": "NexusDownloader, Wabbajack.Lib",
        "GameName": "SkyrimSE",
        "ModID": 100,
        "FileID": 1
      }
    },
    {
      "Name": "Texture Pack.zip",
      "State": {
        "$type": "NexusDownloader, Wabbajack.Lib",
        "GameName": "Fallout 4",
        "ModID": "200",
        "FileID": "17"
      }
    },
    {
      "Name": "FromTheWeb.zip",
      "State": {
        "$type": "HttpDownloader, Wabbajack.Lib",
        "Url": "https://example.com/file.zip"
      }
    }
  ]
}`

func TestExtract_Wabbajack(t *testing.T) {
	root := parseDoc(t, wabbajackDoc)

	descs := Extract(root)
	if len(descs) != 2 {
		t.Fatalf("Extract returned %d descriptors, want 2", len(descs))
	}

	if descs[0].GameName != "SkyrimSE" {
		t.Errorf("descs[0].GameName = %q", descs[0].GameName)
	}
	if descs[0].Name != "SkyrimSE Patch.7z" {
		t.Errorf("descs[0].Name = %q, want inherited archive name", descs[0].Name)
	}
	if descs[1].GameName != "Fallout 4" {
		t.Errorf("descs[1].GameName = %q", descs[1].GameName)
	}
	if descs[1].Name != "Texture Pack.zip" {
		t.Errorf("descs[1].Name = %q", descs[1].Name)
	}
}

func TestExtract_KeySpellings(t *testing.T) {
	doc := `[
    {"game_domain": "skyrim", "mod_id": 5, "file_id": 6, "label": "underscored"},
    {"game": "fallout4", "modId": "7", "fileId": "8", "name": "camelCase"}
  ]`
	descs := Extract(parseDoc(t, doc))
	if len(descs) != 2 {
		t.Fatalf("Extract returned %d descriptors, want 2", len(descs))
	}
	if descs[0].Name != "underscored" || descs[1].Name != "camelCase" {
		t.Errorf("names = %q, %q", descs[0].Name, descs[1].Name)
	}
}

func TestExtract_DeepNesting(t *testing.T) {
	doc := `{
    "wrapper": {
      "deps": [
        [{"inner": {"gameName": "skyrim", "modID": 1, "fileID": 2, "name": "deep"}}]
      ]
    }
  }`
	descs := Extract(parseDoc(t, doc))
	if len(descs) != 1 {
		t.Fatalf("Extract returned %d descriptors, want 1", len(descs))
	}
	if descs[0].Name != "deep" {
		t.Errorf("Name = %q", descs[0].Name)
	}
}

func TestExtract_PartialShapesSkipped(t *testing.T) {
	// Missing fileID must not be merged with the sibling that has one.
	doc := `[
    {"gameName": "skyrim", "modID": 1, "name": "no file id"},
    {"gameName": "skyrim", "modID": 1, "fileID": 2, "name": "complete"},
    {"gameName": 42, "modID": 1, "fileID": 2, "name": "numeric game"},
    {"gameName": "skyrim", "modID": true, "fileID": 2, "name": "bool mod id"}
  ]`
	descs := Extract(parseDoc(t, doc))
	if len(descs) != 1 {
		t.Fatalf("Extract returned %d descriptors, want 1: %+v", len(descs), descs)
	}
	if descs[0].Name != "complete" {
		t.Errorf("Name = %q", descs[0].Name)
	}
}

func TestExtract_DuplicatesEmittedIndependently(t *testing.T) {
	doc := `[
    {"gameName": "skyrim", "modID": 1, "fileID": 2, "name": "first"},
    {"gameName": "skyrim", "modID": 1, "fileID": 2, "name": "second"}
  ]`
	descs := Extract(parseDoc(t, doc))
	if len(descs) != 2 {
		t.Fatalf("Extract returned %d descriptors, want 2 (dedup is deferred)", len(descs))
	}
}

func TestExtract_OrderStable(t *testing.T) {
	root := parseDoc(t, wabbajackDoc)

	first := Extract(root)
	second := Extract(root)
	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("descriptor %d differs between runs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Load(missing) = %v, want ErrNotFound", err)
	}
	if !strings.Contains(err.Error(), "missing.json") {
		t.Errorf("error should name the file: %v", err)
	}
}

func TestLoad_ParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte(`{"Archives": [`), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !errors.Is(err, ErrParse) {
		t.Fatalf("Load(broken) = %v, want ErrParse", err)
	}
}

func TestParse_TrailingContent(t *testing.T) {
	_, err := Parse(strings.NewReader(`{"a": 1} {"b": 2}`))
	if err == nil {
		t.Fatal("Parse should reject trailing content after the root value")
	}
}

func TestObject_KeyOrder(t *testing.T) {
	root := parseDoc(t, `{"z": 1, "a": 2, "m": 3}`)
	obj, ok := root.(*Object)
	if !ok {
		t.Fatalf("root is %T, want *Object", root)
	}
	want := []string{"z", "a", "m"}
	got := obj.Keys()
	if len(got) != len(want) {
		t.Fatalf("Keys = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Keys[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func parseDoc(t *testing.T, doc string) any {
	t.Helper()
	root, err := Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return root
}
