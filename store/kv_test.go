package store

import (
	"testing"
)

func TestFileKV_RoundTrip(t *testing.T) {
	kv := NewFileKV(t.TempDir())

	if err := kv.Set("projects", []byte(`[{"id":"1"}]`)); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, ok, err := kv.Get("projects")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatal("expected key to exist")
	}
	if string(got) != `[{"id":"1"}]` {
		t.Errorf("unexpected value: %s", got)
	}
}

func TestFileKV_AbsentKey(t *testing.T) {
	kv := NewFileKV(t.TempDir())

	_, ok, err := kv.Get("projects")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Error("expected absent key")
	}
}

func TestFileKV_Overwrite(t *testing.T) {
	kv := NewFileKV(t.TempDir())

	if err := kv.Set("projects", []byte("old")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := kv.Set("projects", []byte("new")); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, _, err := kv.Get("projects")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != "new" {
		t.Errorf("expected overwritten value, got %s", got)
	}
}
