package feed

import (
	"fmt"
	"testing"

	"github.com/colmreid/sundial/internal/host"
)

func TestAppendAndEntries(t *testing.T) {
	f := New(4)

	f.Append(host.LevelInfo, "first")
	f.Append(host.LevelWarn, "second")

	entries := f.Entries()
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}
	if entries[0].Message != "first" || entries[1].Message != "second" {
		t.Fatalf("entries = %+v, want arrival order", entries)
	}
	if entries[1].Level != host.LevelWarn {
		t.Fatalf("level = %v, want %v", entries[1].Level, host.LevelWarn)
	}
	if entries[0].Time.IsZero() {
		t.Fatal("entry time not set")
	}
}

func TestRingEvictsOldest(t *testing.T) {
	f := New(3)
	for i := 0; i < 5; i++ {
		f.Append(host.LevelInfo, fmt.Sprintf("msg-%d", i))
	}

	if f.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", f.Len())
	}
	entries := f.Entries()
	want := []string{"msg-2", "msg-3", "msg-4"}
	for i, w := range want {
		if entries[i].Message != w {
			t.Fatalf("entries[%d] = %q, want %q", i, entries[i].Message, w)
		}
	}
}

func TestEntriesReturnsCopy(t *testing.T) {
	f := New(2)
	f.Append(host.LevelInfo, "keep")

	got := f.Entries()
	got[0].Message = "mutated"

	if f.Entries()[0].Message != "keep" {
		t.Fatal("Entries() exposed internal storage")
	}
}
