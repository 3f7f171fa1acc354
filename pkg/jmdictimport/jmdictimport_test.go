package jmdictimport

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

const wrappedJSON = `{"words": [
	{
		"id": "1386060",
		"kanji": [{"text": "食べる", "common": true, "tags": []}],
		"kana": [{"text": "たべる", "common": true, "tags": [], "appliesToKanji": ["*"]}],
		"sense": [
			{"partOfSpeech": ["v1", "vt"], "gloss": [{"text": "to eat", "lang": "eng", "type": ""}]}
		]
	}
]}`

const bareArrayJSON = `[
	{
		"id": "1628500",
		"kanji": [],
		"kana": [{"text": "です", "common": true, "tags": []}],
		"sense": [
			{"partOfSpeech": ["cop-da"], "gloss": [{"text": "to be", "lang": "eng", "type": ""}]}
		]
	}
]`

func TestLoadFileWrappedObject(t *testing.T) {
	path := writeTempFile(t, "wrapped.json", wrappedJSON)
	entries, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(entries) != 1 || entries[0].ID != "1386060" {
		t.Fatalf("unexpected entries: %+v", entries)
	}
	if entries[0].Kanji[0].Text != "食べる" {
		t.Fatalf("unexpected kanji: %+v", entries[0].Kanji)
	}
}

func TestLoadFileBareArray(t *testing.T) {
	path := writeTempFile(t, "bare.json", bareArrayJSON)
	entries, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(entries) != 1 || entries[0].ID != "1628500" {
		t.Fatalf("unexpected entries: %+v", entries)
	}
	if len(entries[0].Kanji) != 0 || entries[0].Kana[0].Text != "です" {
		t.Fatalf("unexpected entry shape: %+v", entries[0])
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}

func TestPriorityTag(t *testing.T) {
	if got := priorityTag(true); got != "common" {
		t.Fatalf("expected \"common\", got %q", got)
	}
	if got := priorityTag(false); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestJoinTags(t *testing.T) {
	if got := joinTags([]string{"common", "news1"}); got != "common,news1" {
		t.Fatalf("unexpected join: %q", got)
	}
	if got := joinTags(nil); got != "" {
		t.Fatalf("expected empty string for nil tags, got %q", got)
	}
}
