package main

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"msgbag/internal/bag"
	"msgbag/internal/bagfmt"
)

func TestFilterBag(t *testing.T) {
	b := bag.New()
	b.Add("items.0.name", "a")
	b.Add("items.1.name", "b")
	b.Add("email", "c")

	got := filterBag(b, "items.*")
	if !reflect.DeepEqual(got.Keys(), []string{"items.0.name", "items.1.name"}) {
		t.Fatalf("filtered keys = %v", got.Keys())
	}
	if got.Has("email") {
		t.Fatal("filter leaked a non-matching key")
	}
}

func TestLoadBagByExtension(t *testing.T) {
	dir := t.TempDir()

	b := bag.New()
	b.Add("foo", "bar")

	jsonPath := filepath.Join(dir, "bag.json")
	if err := os.WriteFile(jsonPath, []byte(b.ToJSON()), 0o644); err != nil {
		t.Fatal(err)
	}
	mp, err := bagfmt.EncodeMsgpack(b)
	if err != nil {
		t.Fatal(err)
	}
	mpPath := filepath.Join(dir, "bag.mp")
	if err := os.WriteFile(mpPath, mp, 0o644); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{jsonPath, mpPath} {
		got, err := loadBag(path)
		if err != nil {
			t.Fatalf("load %s: %v", path, err)
		}
		if got.First("foo") != "bar" {
			t.Fatalf("%s: loaded bag = %v", path, got.ToMap())
		}
	}

	if _, err := loadBag(filepath.Join(dir, "absent.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestStripANSI(t *testing.T) {
	if got := stripANSI("\x1b[33;1m0\x1b[0m.1"); got != "0.1" {
		t.Fatalf("stripANSI = %q", got)
	}
	if got := stripANSI("plain"); got != "plain" {
		t.Fatalf("stripANSI mangled plain text: %q", got)
	}
}
