package casestore

import (
	"fmt"
	"sync"
	"testing"

	"github.com/PancyStudios/PancyModGo/pkg/storage"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	fs, err := storage.NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}
	return NewStore(fs), dir
}

// reopen builds a fresh Store over the same directory, simulating a
// process restart
func reopen(t *testing.T, dir string) *Store {
	t.Helper()
	fs, err := storage.NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}
	return NewStore(fs)
}

// TestAddWarningAssignsSequentialIDs verifies the per-member counter
func TestAddWarningAssignsSequentialIDs(t *testing.T) {
	store, _ := newTestStore(t)

	first, err := store.AddWarning("guild1", "member1", "spam", "mod1")
	if err != nil {
		t.Fatalf("AddWarning() error = %v", err)
	}
	if first.ID != 1 {
		t.Errorf("first warning ID = %v, want 1", first.ID)
	}

	second, err := store.AddWarning("guild1", "member1", "flood", "mod1")
	if err != nil {
		t.Fatalf("AddWarning() error = %v", err)
	}
	if second.ID != 2 {
		t.Errorf("second warning ID = %v, want 2", second.ID)
	}

	// A different member starts its own counter
	other, err := store.AddWarning("guild1", "member2", "spam", "mod1")
	if err != nil {
		t.Fatalf("AddWarning() error = %v", err)
	}
	if other.ID != 1 {
		t.Errorf("other member warning ID = %v, want 1", other.ID)
	}
}

// TestAddWarningAfterRemovalNeverReusesIDs verifies deleting a warning
// does not cause a later duplicate ID
func TestAddWarningAfterRemovalNeverReusesIDs(t *testing.T) {
	store, _ := newTestStore(t)

	for i := 0; i < 3; i++ {
		if _, err := store.AddWarning("guild1", "member1", "spam", "mod1"); err != nil {
			t.Fatalf("AddWarning() error = %v", err)
		}
	}

	removed, err := store.RemoveWarning("guild1", "member1", 2)
	if err != nil {
		t.Fatalf("RemoveWarning() error = %v", err)
	}
	if !removed {
		t.Fatal("RemoveWarning() = false, want true")
	}

	next, err := store.AddWarning("guild1", "member1", "again", "mod1")
	if err != nil {
		t.Fatalf("AddWarning() error = %v", err)
	}
	if next.ID != 4 {
		t.Errorf("warning ID after removal = %v, want 4", next.ID)
	}
}

// TestRemoveWarningMissing verifies removing a nonexistent warning
// reports false without touching the ledger
func TestRemoveWarningMissing(t *testing.T) {
	store, _ := newTestStore(t)

	if _, err := store.AddWarning("guild1", "member1", "spam", "mod1"); err != nil {
		t.Fatalf("AddWarning() error = %v", err)
	}

	removed, err := store.RemoveWarning("guild1", "member1", 99)
	if err != nil {
		t.Fatalf("RemoveWarning() error = %v", err)
	}
	if removed {
		t.Error("RemoveWarning() = true, want false")
	}

	warns, err := store.LoadWarnings("guild1")
	if err != nil {
		t.Fatalf("LoadWarnings() error = %v", err)
	}
	if len(warns["member1"]) != 1 {
		t.Errorf("warnings length = %v, want 1", len(warns["member1"]))
	}
}

// TestRemoveLastWarningDropsMember verifies the member key disappears
// once its list is empty
func TestRemoveLastWarningDropsMember(t *testing.T) {
	store, _ := newTestStore(t)

	if _, err := store.AddWarning("guild1", "member1", "spam", "mod1"); err != nil {
		t.Fatalf("AddWarning() error = %v", err)
	}
	if _, err := store.RemoveWarning("guild1", "member1", 1); err != nil {
		t.Fatalf("RemoveWarning() error = %v", err)
	}

	warns, err := store.LoadWarnings("guild1")
	if err != nil {
		t.Fatalf("LoadWarnings() error = %v", err)
	}
	if _, ok := warns["member1"]; ok {
		t.Error("member key still present after removing its last warning")
	}
}

// TestConcurrentAddWarnings verifies N parallel warns on one guild
// produce N distinct IDs with no lost update
func TestConcurrentAddWarnings(t *testing.T) {
	store, _ := newTestStore(t)

	const n = 20
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			_, err := store.AddWarning("guild1", "member1", fmt.Sprintf("razón %d", i), "mod1")
			if err != nil {
				t.Errorf("AddWarning() error = %v", err)
			}
		}(i)
	}
	wg.Wait()

	warns, err := store.LoadWarnings("guild1")
	if err != nil {
		t.Fatalf("LoadWarnings() error = %v", err)
	}
	list := warns["member1"]
	if len(list) != n {
		t.Fatalf("warnings length = %v, want %v", len(list), n)
	}

	seen := make(map[int]bool, n)
	for _, w := range list {
		if seen[w.ID] {
			t.Errorf("duplicate warning ID %v", w.ID)
		}
		seen[w.ID] = true
	}
}

// TestWarningsSurviveReopen verifies the ledger persists across a
// simulated restart
func TestWarningsSurviveReopen(t *testing.T) {
	store, dir := newTestStore(t)

	if _, err := store.AddWarning("guild1", "member1", "spam", "mod1"); err != nil {
		t.Fatalf("AddWarning() error = %v", err)
	}

	fresh := reopen(t, dir)
	warns, err := fresh.LoadWarnings("guild1")
	if err != nil {
		t.Fatalf("LoadWarnings() error = %v", err)
	}
	if len(warns["member1"]) != 1 {
		t.Fatalf("warnings after reopen = %v, want 1", len(warns["member1"]))
	}
	if warns["member1"][0].Reason != "spam" {
		t.Errorf("reason after reopen = %v, want spam", warns["member1"][0].Reason)
	}
}

// TestLogChannelSurvivesReopen verifies settings persist across a
// simulated restart
func TestLogChannelSurvivesReopen(t *testing.T) {
	store, dir := newTestStore(t)

	if err := store.SetLogChannel("guild1", "channel-42"); err != nil {
		t.Fatalf("SetLogChannel() error = %v", err)
	}

	fresh := reopen(t, dir)
	channel, err := fresh.LogChannel("guild1")
	if err != nil {
		t.Fatalf("LogChannel() error = %v", err)
	}
	if channel != "channel-42" {
		t.Errorf("LogChannel() = %v, want channel-42", channel)
	}
}

// TestLogChannelUnset verifies an unset channel reads back empty
func TestLogChannelUnset(t *testing.T) {
	store, _ := newTestStore(t)

	channel, err := store.LogChannel("guild1")
	if err != nil {
		t.Fatalf("LogChannel() error = %v", err)
	}
	if channel != "" {
		t.Errorf("LogChannel() = %v, want empty", channel)
	}
}

// TestLogChannelLastWriteWins verifies consecutive updates replace each
// other
func TestLogChannelLastWriteWins(t *testing.T) {
	store, _ := newTestStore(t)

	if err := store.SetLogChannel("guild1", "first"); err != nil {
		t.Fatalf("SetLogChannel() error = %v", err)
	}
	if err := store.SetLogChannel("guild1", "second"); err != nil {
		t.Fatalf("SetLogChannel() error = %v", err)
	}

	channel, err := store.LogChannel("guild1")
	if err != nil {
		t.Fatalf("LogChannel() error = %v", err)
	}
	if channel != "second" {
		t.Errorf("LogChannel() = %v, want second", channel)
	}
}

// TestBlacklistOrdering verifies count-descending order with the member
// ID as tie-breaker
func TestBlacklistOrdering(t *testing.T) {
	store, _ := newTestStore(t)

	for i := 0; i < 3; i++ {
		if _, err := store.AddWarning("guild1", "heavy", "spam", "mod1"); err != nil {
			t.Fatalf("AddWarning() error = %v", err)
		}
	}
	if _, err := store.AddWarning("guild1", "b-light", "spam", "mod1"); err != nil {
		t.Fatalf("AddWarning() error = %v", err)
	}
	if _, err := store.AddWarning("guild1", "a-light", "spam", "mod1"); err != nil {
		t.Fatalf("AddWarning() error = %v", err)
	}

	entries, err := store.Blacklist("guild1")
	if err != nil {
		t.Fatalf("Blacklist() error = %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("Blacklist() length = %v, want 3", len(entries))
	}
	if entries[0].MemberID != "heavy" || entries[0].Count != 3 {
		t.Errorf("entries[0] = %+v, want heavy with 3", entries[0])
	}
	if entries[1].MemberID != "a-light" {
		t.Errorf("entries[1] = %+v, want a-light (tie broken by ID)", entries[1])
	}
	if entries[2].MemberID != "b-light" {
		t.Errorf("entries[2] = %+v, want b-light", entries[2])
	}
}

// TestTenantsAreIsolated verifies warnings never leak across tenants
func TestTenantsAreIsolated(t *testing.T) {
	store, _ := newTestStore(t)

	if _, err := store.AddWarning("guild1", "member1", "spam", "mod1"); err != nil {
		t.Fatalf("AddWarning() error = %v", err)
	}

	warns, err := store.LoadWarnings("guild2")
	if err != nil {
		t.Fatalf("LoadWarnings() error = %v", err)
	}
	if len(warns) != 0 {
		t.Errorf("guild2 warnings = %v, want empty", warns)
	}
}
