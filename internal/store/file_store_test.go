package store_test

import (
	"testing"
	"time"

	"calc/internal/domain"
	"calc/internal/store"
)

func entry(expr, result string) domain.HistoryEntry {
	return domain.HistoryEntry{Expression: expr, Result: result, At: time.Now()}
}

func TestHistory_AppendList_OK(t *testing.T) {
	home := t.TempDir()

	var hs domain.HistoryStore = store.NewFileStore(home, 0)

	if err := hs.AppendHistory(entry("2+3", "5")); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := hs.AppendHistory(entry("5+4", "9")); err != nil {
		t.Fatalf("append: %v", err)
	}

	got, err := hs.ListHistory(0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2", len(got))
	}
	if got[0].Expression != "2+3" || got[1].Result != "9" {
		t.Fatalf("unexpected entries: %+v", got)
	}
}

func TestHistory_ListLimit_ReturnsNewest(t *testing.T) {
	home := t.TempDir()
	hs := store.NewFileStore(home, 0)

	for _, e := range []domain.HistoryEntry{entry("1+1", "2"), entry("2+2", "4"), entry("3+3", "6")} {
		if err := hs.AppendHistory(e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := hs.ListHistory(2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2", len(got))
	}
	if got[0].Expression != "2+2" || got[1].Expression != "3+3" {
		t.Fatalf("unexpected entries: %+v", got)
	}
}

func TestHistory_CapDropsOldest(t *testing.T) {
	home := t.TempDir()
	hs := store.NewFileStore(home, 2)

	for _, e := range []domain.HistoryEntry{entry("1+1", "2"), entry("2+2", "4"), entry("3+3", "6")} {
		if err := hs.AppendHistory(e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := hs.ListHistory(0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2", len(got))
	}
	if got[0].Expression != "2+2" {
		t.Fatalf("oldest entry not dropped: %+v", got)
	}
}

func TestHistory_MissingFile_IsEmpty(t *testing.T) {
	hs := store.NewFileStore(t.TempDir(), 0)

	got, err := hs.ListHistory(0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("got %d entries, want 0", len(got))
	}
}

func TestHistory_Clear(t *testing.T) {
	home := t.TempDir()
	hs := store.NewFileStore(home, 0)

	if err := hs.AppendHistory(entry("2+3", "5")); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := hs.ClearHistory(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	got, err := hs.ListHistory(0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("got %d entries after clear, want 0", len(got))
	}
}
